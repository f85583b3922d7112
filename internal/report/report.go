// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"github.com/tfctl/irdiff/internal/differ"
	"github.com/tfctl/irdiff/internal/grouper"
	"github.com/tfctl/irdiff/internal/log"
	"github.com/tfctl/irdiff/internal/segment"
)

// Options carries the grouping mode and the processed line cap for one
// report.
type Options struct {
	Grouping grouper.Options
	MaxLines int
}

// DefaultOptions returns grouping disabled, the default cleanup set and the
// default line cap.
func DefaultOptions() Options {
	return Options{
		Grouping: grouper.Options{
			Enabled: false,
			Cleanup: grouper.NewSet(grouper.DefaultCleanup...),
		},
		MaxLines: differ.DefaultMaxLines,
	}
}

// Section is the report entry for one pass group. Before and After are line
// counts. Skipped is set when the group changed but the line budget was spent,
// in which case Diff is empty. NoFinalNewline marks a resulting body whose
// last line had no terminator.
type Section struct {
	Passes         []string
	Label          string
	Changed        bool
	Before         int
	After          int
	Skipped        bool
	NoFinalNewline bool
	Diff           []differ.Line
}

// Report is the assembled result of one run.
type Report struct {
	Header    string
	Baseline  []string
	Sections  []Section
	Changed   int
	Total     int
	MaxLines  int
	Truncated bool
}

// Build groups the pass snapshots, folds change detection over the groups and
// diffs every changed group against the last changed body. snaps[0] must be
// the baseline.
func Build(snaps []segment.Snapshot, opts Options) *Report {
	r := &Report{MaxLines: opts.MaxLines}
	if len(snaps) == 0 {
		return r
	}

	r.Header = snaps[0].Label
	r.Baseline = snaps[0].Lines

	groups := grouper.Group(snaps, opts.Grouping)
	outcomes := grouper.Fold(snaps, groups)
	budget := differ.NewBudget(opts.MaxLines)

	for _, o := range outcomes {
		s := Section{
			Passes:  o.Group.Passes,
			Label:   o.Group.Label(),
			Changed: o.Changed,
			Before:  len(o.Before),
			After:   len(o.After),

			NoFinalNewline: o.NoFinalNewline,
		}

		if o.Changed {
			if budget.Allow(len(o.Before) + len(o.After)) {
				s.Diff = differ.Diff(o.Before, o.After)
				added, removed, neutralized, suppressed := differ.Stats(s.Diff)
				log.Debugf("group diffed: passes=%v added=%d removed=%d neutralized=%d suppressed=%d",
					o.Group.Passes, added, removed, neutralized, suppressed)
			} else {
				s.Skipped = true
				log.Debugf("diff skipped: passes=%v used=%d", o.Group.Passes, budget.Used())
			}
		}

		r.Sections = append(r.Sections, s)
	}

	r.Changed = grouper.ChangedCount(outcomes)
	r.Total = len(outcomes)
	log.Infof("report built: changed=%d total=%d lines=%d", r.Changed, r.Total, budget.Used())
	return r
}
