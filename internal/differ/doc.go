// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ aligns two IR bodies line by line and filters the result so
// that renumbered SSA values and whitespace reflow do not read as changes.
package differ
