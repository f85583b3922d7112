// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders an assembled report as annotated text, optionally
// colored, or as a JSON or YAML document.
package output
