// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package segment splits a print-ir-after-all dump into per-pass snapshots and
// reads the baseline IR that precedes them.
package segment
