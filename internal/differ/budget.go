// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

// DefaultMaxLines caps the body lines diffed across one report.
const DefaultMaxLines = 200000

// Budget tracks the body lines handed to the differ across a report. Once the
// running total is past Max no further diffs are allowed. A Max of zero or
// less never runs out.
type Budget struct {
	Max  int
	used int
}

// NewBudget returns a Budget capped at limit lines.
func NewBudget(limit int) *Budget {
	return &Budget{Max: limit}
}

// Allow reports whether a diff over n more lines may run and, if so, charges
// them.
func (b *Budget) Allow(n int) bool {
	if b.Exhausted() {
		return false
	}
	b.used += n
	return true
}

// Exhausted reports whether the running total has passed Max.
func (b *Budget) Exhausted() bool {
	return b.Max > 0 && b.used > b.Max
}

// Used returns the lines charged so far.
func (b *Budget) Used() int {
	return b.used
}
