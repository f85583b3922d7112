// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package grouper turns pass snapshots into reporting groups, optionally
// folding cleanup passes into the pass before them, and decides which groups
// changed the IR.
package grouper
