// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package grouper

import (
	"slices"
	"strings"

	"github.com/tfctl/irdiff/internal/log"
	"github.com/tfctl/irdiff/internal/segment"
)

// Set is a set of pass names.
type Set map[string]struct{}

// NewSet builds a Set from names. Blank names are skipped.
func NewSet(names ...string) Set {
	s := Set{}
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			s[n] = struct{}{}
		}
	}
	return s
}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the set members in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// DefaultCleanup lists the passes that usually only tidy up after the pass
// before them.
var DefaultCleanup = []string{
	"Canonicalizer",
	"CSE",
	"DCE",
	"RemoveDeadValues",
	"SCCP",
	"SymbolDCE",
}

// Options controls grouping. When Enabled is false every pass is its own
// group.
type Options struct {
	Enabled bool
	Cleanup Set
}

// PassGroup is a run of consecutive passes reported as one unit. First and
// Result are snapshot indexes; Result holds the group's resulting IR.
type PassGroup struct {
	Passes []string
	Labels []string
	First  int
	Result int
}

// dumpPrefixes are tried in order when pulling a pass name out of a label.
var dumpPrefixes = []string{"IR Dump After", "IR Dump Before", "IR Dump"}

// PassName extracts the pass name from a dump header such as
// "// -----// IR Dump After CSE (cse) //----- //".
func PassName(label string) string {
	for _, p := range dumpPrefixes {
		idx := strings.Index(label, p)
		if idx < 0 {
			continue
		}

		if fields := strings.Fields(label[idx+len(p):]); len(fields) > 0 {
			return fields[0]
		}
	}

	return strings.TrimSpace(label)
}

// Group converts the pass snapshots (everything after the baseline) into
// groups. snaps[0] is expected to be the baseline and is never grouped.
func Group(snaps []segment.Snapshot, opts Options) []PassGroup {
	var groups []PassGroup

	for _, s := range snaps {
		if s.Index == 0 {
			continue
		}

		name := PassName(s.Label)

		if opts.Enabled && len(groups) > 0 && opts.Cleanup.Has(name) {
			g := &groups[len(groups)-1]
			g.Passes = append(g.Passes, name)
			g.Labels = append(g.Labels, s.Label)
			g.Result = s.Index
			log.Tracef("merged cleanup pass into group: pass=%s first=%d", name, g.First)
			continue
		}

		groups = append(groups, PassGroup{
			Passes: []string{name},
			Labels: []string{s.Label},
			First:  s.Index,
			Result: s.Index,
		})
	}

	log.Debugf("passes grouped: groups=%d enabled=%v", len(groups), opts.Enabled)
	return groups
}

// Label is the dump header of the group's resulting snapshot.
func (g PassGroup) Label() string {
	if len(g.Labels) == 0 {
		return ""
	}
	return g.Labels[len(g.Labels)-1]
}
