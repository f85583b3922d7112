// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package report assembles pass groups, change status and filtered diffs into
// a single Report ready for rendering.
package report
