// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package grouper

import (
	"github.com/tfctl/irdiff/internal/log"
	"github.com/tfctl/irdiff/internal/segment"
)

// Outcome is the change status of one group. Before is the body the group was
// compared against and After is the group's resulting body. NoFinalNewline
// reports that After ended its file without a line terminator.
type Outcome struct {
	Group          PassGroup
	Changed        bool
	Before         []string
	After          []string
	NoFinalNewline bool
}

// Step compares snap against baseline. It returns the baseline for the next
// group and whether the body differs, a missing final newline included. An
// unchanged body leaves the baseline as is.
func Step(baseline segment.Snapshot, snap segment.Snapshot) (next segment.Snapshot, changed bool) {
	if baseline.SameBody(snap) {
		return baseline, false
	}
	return snap, true
}

// Fold walks groups in order, comparing each resulting body against the last
// body that belonged to a changed group. snaps must be indexed by position,
// baseline first.
func Fold(snaps []segment.Snapshot, groups []PassGroup) []Outcome {
	if len(snaps) == 0 {
		return nil
	}

	outcomes := make([]Outcome, 0, len(groups))
	baseline := snaps[0]

	for _, g := range groups {
		snap := snaps[g.Result]
		next, changed := Step(baseline, snap)

		outcomes = append(outcomes, Outcome{
			Group:          g,
			Changed:        changed,
			Before:         baseline.Lines,
			After:          snap.Lines,
			NoFinalNewline: snap.NoFinalNewline,
		})
		log.Tracef("group folded: passes=%v changed=%v", g.Passes, changed)

		baseline = next
	}

	return outcomes
}

// ChangedCount returns how many outcomes changed the IR.
func ChangedCount(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Changed {
			n++
		}
	}
	return n
}
