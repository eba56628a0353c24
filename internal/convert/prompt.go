// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

package convert

// Prompt is the two-message conversation sent to the completion service.
type Prompt struct {
	System string
	User   string
}

const instruction = `You are a React to HTML converter. The user message is the source of a React component tree.
Convert it to a single, complete, static HTML document. Translate every className into equivalent inline CSS in style attributes; do not reference external stylesheets or scripts.
Respond with a JSON object only.
The JSON object must use the schema: `

var systemPrompt = instruction + Schema()

// BuildPrompt pairs the fixed conversion instruction with input, which is
// carried as the user message exactly as given. Any string is accepted.
func BuildPrompt(input string) Prompt {
	return Prompt{
		System: systemPrompt,
		User:   input,
	}
}

// SystemPrompt returns the fixed instruction shared by every conversion.
func SystemPrompt() string {
	return systemPrompt
}
