// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"github.com/pmezard/go-difflib/difflib"
)

// OpTag identifies an alignment operation.
type OpTag byte

const (
	Equal  OpTag = ' '
	Delete OpTag = '-'
	Insert OpTag = '+'
)

// Op is one line of the raw alignment.
type Op struct {
	Tag  OpTag
	Text string
}

const (
	// Replaced lines pair up when their character similarity reaches this.
	pairCutoff = 0.75

	// Replace blocks with more line pairs than this are not searched for
	// similar lines.
	pairCells = 1 << 20
)

// Align runs a line-level sequence match over before and after and returns
// the operations in order. Inside a replaced block, similar lines are paired
// so a modified line shows up as a removal directly followed by its addition.
func Align(before []string, after []string) []Op {
	m := difflib.NewMatcher(before, after)

	var ops []Op
	for _, c := range m.GetOpCodes() {
		switch c.Tag {
		case 'e':
			ops = dump(ops, Equal, before[c.I1:c.I2])
		case 'd':
			ops = dump(ops, Delete, before[c.I1:c.I2])
		case 'i':
			ops = dump(ops, Insert, after[c.J1:c.J2])
		case 'r':
			ops = pairReplace(ops, before, c.I1, c.I2, after, c.J1, c.J2)
		}
	}

	return ops
}

func dump(ops []Op, tag OpTag, lines []string) []Op {
	for _, l := range lines {
		ops = append(ops, Op{Tag: tag, Text: l})
	}
	return ops
}

// pairReplace finds the most similar line pair in a[alo:ahi] x b[blo:bhi],
// emits it as an adjacent removal and addition, and recurses on either side.
// Identical lines act as a synchronization point when nothing is similar
// enough. With neither, the block is emitted plainly.
func pairReplace(ops []Op, a []string, alo, ahi int, b []string, blo, bhi int) []Op {
	if (ahi-alo)*(bhi-blo) > pairCells {
		return plainReplace(ops, a, alo, ahi, b, blo, bhi)
	}

	bestRatio := pairCutoff - 0.01
	bestI, bestJ := -1, -1
	eqI, eqJ := -1, -1

	cruncher := difflib.NewMatcher(nil, nil)
	for j := blo; j < bhi; j++ {
		cruncher.SetSeq2(chars(b[j]))
		for i := alo; i < ahi; i++ {
			if a[i] == b[j] {
				if eqI < 0 {
					eqI, eqJ = i, j
				}
				continue
			}

			cruncher.SetSeq1(chars(a[i]))
			if cruncher.RealQuickRatio() > bestRatio &&
				cruncher.QuickRatio() > bestRatio {
				if r := cruncher.Ratio(); r > bestRatio {
					bestRatio, bestI, bestJ = r, i, j
				}
			}
		}
	}

	identical := false
	if bestRatio < pairCutoff {
		if eqI < 0 {
			return plainReplace(ops, a, alo, ahi, b, blo, bhi)
		}
		bestI, bestJ = eqI, eqJ
		identical = true
	}

	ops = pairHelper(ops, a, alo, bestI, b, blo, bestJ)
	if identical {
		ops = append(ops, Op{Tag: Equal, Text: a[bestI]})
	} else {
		ops = append(ops,
			Op{Tag: Delete, Text: a[bestI]},
			Op{Tag: Insert, Text: b[bestJ]},
		)
	}
	return pairHelper(ops, a, bestI+1, ahi, b, bestJ+1, bhi)
}

func pairHelper(ops []Op, a []string, alo, ahi int, b []string, blo, bhi int) []Op {
	switch {
	case alo < ahi && blo < bhi:
		return pairReplace(ops, a, alo, ahi, b, blo, bhi)
	case alo < ahi:
		return dump(ops, Delete, a[alo:ahi])
	case blo < bhi:
		return dump(ops, Insert, b[blo:bhi])
	}
	return ops
}

// plainReplace emits the shorter side of a replaced block first.
func plainReplace(ops []Op, a []string, alo, ahi int, b []string, blo, bhi int) []Op {
	if bhi-blo < ahi-alo {
		ops = dump(ops, Insert, b[blo:bhi])
		return dump(ops, Delete, a[alo:ahi])
	}
	ops = dump(ops, Delete, a[alo:ahi])
	return dump(ops, Insert, b[blo:bhi])
}

// chars splits s into single-rune strings for character-level matching.
func chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
