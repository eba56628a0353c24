// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

package convert

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/tidwall/gjson"
)

// FieldHTMLCode is the single field the model must return.
const FieldHTMLCode = "html_code"

// Result is the validated reply of the completion service: the generated
// HTML document.
type Result struct {
	HTMLCode string `json:"html_code" jsonschema:"title=Html Code"`
}

// ErrValidation is matched by every *ValidationError via errors.Is.
var ErrValidation = errors.New("convert: response failed schema validation")

// ValidationError reports why a completion payload does not match the
// Result schema.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "convert: invalid response: " + e.Reason
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Validate parses raw as JSON and extracts the html_code string field.
// The value is returned unescaped and otherwise unchanged; an empty string is
// accepted. Extra fields are ignored. When the key is repeated, the last
// occurrence is the one validated.
func Validate(raw string) (*Result, error) {
	if !gjson.Valid(raw) {
		return nil, &ValidationError{Reason: "payload is not valid JSON"}
	}

	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return nil, &ValidationError{Reason: "payload is not a JSON object"}
	}

	field := lastMember(doc, FieldHTMLCode)
	if !field.Exists() {
		return nil, &ValidationError{Reason: fmt.Sprintf("field %q is missing", FieldHTMLCode)}
	}
	if field.Type != gjson.String {
		return nil, &ValidationError{Reason: fmt.Sprintf("field %q must be a string, got %s", FieldHTMLCode, field.Type)}
	}

	return &Result{HTMLCode: field.String()}, nil
}

// lastMember returns the last value stored under key in obj. gjson's Get
// resolves duplicates to the first occurrence.
func lastMember(obj gjson.Result, key string) gjson.Result {
	var found gjson.Result
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			found = v
		}
		return true
	})
	return found
}

// Schema returns the indented JSON Schema of Result, as embedded in the
// system prompt.
func Schema() string {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
	}
	s := r.Reflect(&Result{})
	s.Version = ""
	s.Title = "Code"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		// Result is a fixed struct; marshalling its schema cannot fail.
		panic(fmt.Sprintf("convert: marshal schema: %v", err))
	}
	return string(data)
}
