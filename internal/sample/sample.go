// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

// Package sample holds the storefront component used as default input.
package sample

import _ "embed"

// ReactApp is a single-file React storefront: navbar, hero, product list and
// detail, two forms, and a footer, all styled with Tailwind classes.
//
//go:embed app.jsx
var ReactApp string
