// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/irdiff/internal/differ"
	"github.com/tfctl/irdiff/internal/grouper"
	"github.com/tfctl/irdiff/internal/segment"
)

func snapshots(baseline []string, passes ...[]string) []segment.Snapshot {
	snaps := []segment.Snapshot{{Index: 0, Label: segment.BaselineLabel, Lines: baseline}}
	for i, p := range passes {
		snaps = append(snaps, segment.Snapshot{Index: i + 1, Label: p[0], Lines: p[1:]})
	}
	return snaps
}

func TestBuild_Empty(t *testing.T) {
	r := Build(nil, DefaultOptions())
	assert.Equal(t, 0, r.Total)
	assert.Equal(t, 0, r.Changed)
	assert.Empty(t, r.Sections)
}

func TestBuild_BaselineOnly(t *testing.T) {
	r := Build(snapshots([]string{"a"}), DefaultOptions())
	assert.Equal(t, segment.BaselineLabel, r.Header)
	assert.Equal(t, []string{"a"}, r.Baseline)
	assert.Equal(t, 0, r.Total)
}

func TestBuild_ChangedAndUnchanged(t *testing.T) {
	snaps := snapshots([]string{"a", "b"},
		[]string{"IR Dump After Foo", "a", "b", "c"},
		[]string{"IR Dump After Bar", "a", "b", "c"},
	)

	r := Build(snaps, DefaultOptions())
	require.Len(t, r.Sections, 2)
	assert.Equal(t, 1, r.Changed)
	assert.Equal(t, 2, r.Total)

	foo := r.Sections[0]
	assert.True(t, foo.Changed)
	assert.Equal(t, []string{"Foo"}, foo.Passes)
	assert.Equal(t, "IR Dump After Foo", foo.Label)
	assert.Equal(t, 2, foo.Before)
	assert.Equal(t, 3, foo.After)
	assert.Equal(t, []string{"  a", "  b", "+ c"}, differ.Render(foo.Diff))

	bar := r.Sections[1]
	assert.False(t, bar.Changed)
	assert.Empty(t, bar.Diff)
}

func TestBuild_Grouped(t *testing.T) {
	snaps := snapshots([]string{"a"},
		[]string{"IR Dump After Foo", "a", "dead"},
		[]string{"IR Dump After DCE", "a"},
		[]string{"IR Dump After CSE", "a", "b"},
	)

	opts := DefaultOptions()
	opts.Grouping = grouper.Options{Enabled: true, Cleanup: grouper.NewSet(grouper.DefaultCleanup...)}

	r := Build(snaps, opts)
	require.Len(t, r.Sections, 1)
	assert.Equal(t, []string{"Foo", "DCE", "CSE"}, r.Sections[0].Passes)
	assert.Equal(t, "IR Dump After CSE", r.Sections[0].Label)
	assert.Equal(t, 1, r.Changed)
	assert.Equal(t, 1, r.Total)
	assert.Equal(t, []string{"  a", "+ b"}, differ.Render(r.Sections[0].Diff))
}

func TestBuild_LineBudget(t *testing.T) {
	snaps := snapshots([]string{"a"},
		[]string{"IR Dump After A", "a", "b"},
		[]string{"IR Dump After B", "a", "b", "c"},
		[]string{"IR Dump After C", "a", "b", "c", "d"},
	)

	tests := []struct {
		name    string
		max     int
		skipped []bool
	}{
		{name: "unlimited", max: 0, skipped: []bool{false, false, false}},
		{name: "crossing group still diffed", max: 2, skipped: []bool{false, true, true}},
		{name: "roomy", max: 100, skipped: []bool{false, false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.MaxLines = tt.max

			r := Build(snaps, opts)
			require.Len(t, r.Sections, 3)
			assert.Equal(t, 3, r.Changed)
			assert.Equal(t, tt.max, r.MaxLines)
			for i, s := range r.Sections {
				assert.Equal(t, tt.skipped[i], s.Skipped, "section %d", i)
				assert.Equal(t, tt.skipped[i], len(s.Diff) == 0, "section %d", i)
			}
		})
	}
}
