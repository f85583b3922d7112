// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"regexp"
	"strings"

	"github.com/tfctl/irdiff/internal/log"
)

// Kind is the role of a diff line in the report.
type Kind int

const (
	Context Kind = iota
	Addition
	Removal
	SuppressedRemoval
	NeutralizedAddition
)

func (k Kind) String() string {
	switch k {
	case Context:
		return "context"
	case Addition:
		return "addition"
	case Removal:
		return "removal"
	case SuppressedRemoval:
		return "suppressed-removal"
	case NeutralizedAddition:
		return "neutralized-addition"
	}
	return "unknown"
}

// Line is one classified line of a filtered diff. Text is the IR line without
// any marker.
type Line struct {
	Kind Kind
	Text string
}

// Visible reports whether the line is rendered at all.
func (l Line) Visible() bool {
	return l.Kind != SuppressedRemoval
}

// String renders the line with its two-column marker. A removal turns the
// marker column and the indentation into dashes, so "-   foo" (two spaces of
// indentation) becomes "----foo". Suppressed removals render empty.
func (l Line) String() string {
	switch l.Kind {
	case Addition:
		return "+ " + l.Text
	case Removal:
		content := strings.TrimLeft(l.Text, " ")
		spaces := 1 + len(l.Text) - len(content)
		return strings.Repeat("-", spaces+1) + content
	case SuppressedRemoval:
		return ""
	}
	return "  " + l.Text
}

// ssaName matches SSA value identifiers such as %0, %arg1 or %tmp_1.
var ssaName = regexp.MustCompile(`%[A-Za-z0-9_]+`)

// EquivalentUpToSSA reports whether a and b match once every SSA value name is
// erased and surrounding whitespace is trimmed.
func EquivalentUpToSSA(a string, b string) bool {
	return normalize(a) == normalize(b)
}

func normalize(s string) string {
	return strings.TrimSpace(ssaName.ReplaceAllString(s, ""))
}

// Uninteresting reports whether ops[i] is a removal or addition whose direct
// neighbor is the opposite operation on an equivalent line. Only positions i-1
// and i+1 are inspected.
func Uninteresting(ops []Op, i int) bool {
	var opposite OpTag
	switch ops[i].Tag {
	case Delete:
		opposite = Insert
	case Insert:
		opposite = Delete
	default:
		return false
	}

	for _, j := range []int{i - 1, i + 1} {
		if j < 0 || j >= len(ops) {
			continue
		}
		if ops[j].Tag == opposite && EquivalentUpToSSA(ops[i].Text, ops[j].Text) {
			return true
		}
	}

	return false
}

// Diff aligns before and after and classifies every line. Removals are only
// shown when the body did not grow, and then only the interesting ones.
// Uninteresting additions are kept as context so they stay lined up with the
// removal they replace.
func Diff(before []string, after []string) []Line {
	ops := Align(before, after)
	showRemovals := len(before) >= len(after)

	lines := make([]Line, 0, len(ops))
	for i, op := range ops {
		var kind Kind
		switch op.Tag {
		case Delete:
			kind = SuppressedRemoval
			if showRemovals && !Uninteresting(ops, i) {
				kind = Removal
			}
		case Insert:
			kind = Addition
			if Uninteresting(ops, i) {
				kind = NeutralizedAddition
			}
		default:
			kind = Context
		}
		lines = append(lines, Line{Kind: kind, Text: op.Text})
	}

	log.Tracef("diff computed: before=%d after=%d ops=%d", len(before), len(after), len(ops))
	return lines
}

// Render returns the visible lines of a diff as text.
func Render(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.Visible() {
			out = append(out, l.String())
		}
	}
	return out
}

// Stats counts the lines of a diff by kind.
func Stats(lines []Line) (added, removed, neutralized, suppressed int) {
	for _, l := range lines {
		switch l.Kind {
		case Addition:
			added++
		case Removal:
			removed++
		case NeutralizedAddition:
			neutralized++
		case SuppressedRemoval:
			suppressed++
		}
	}
	return
}
