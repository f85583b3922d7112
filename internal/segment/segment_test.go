// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package segment

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name       string
		dump       string
		wantLabels []string
		wantBodies [][]string
	}{
		{
			name:       "empty dump",
			dump:       "",
			wantLabels: nil,
			wantBodies: nil,
		},
		{
			name:       "single pass",
			dump:       "// -----// IR Dump After Foo (foo) //----- //\na\nb\n",
			wantLabels: []string{"// -----// IR Dump After Foo (foo) //----- //"},
			wantBodies: [][]string{{"a", "b"}},
		},
		{
			name: "two passes, last line unterminated",
			dump: "IR Dump After Foo\na\nIR Dump After Bar\nb\nc",
			wantLabels: []string{
				"IR Dump After Foo",
				"IR Dump After Bar",
			},
			wantBodies: [][]string{{"a"}, {"b", "c"}},
		},
		{
			name:       "preamble dropped",
			dump:       "noise\nIR Dump After Foo\na\n",
			wantLabels: []string{"IR Dump After Foo"},
			wantBodies: [][]string{{"a"}},
		},
		{
			name:       "marker with empty body",
			dump:       "IR Dump After Foo\nIR Dump After Bar\nx\n",
			wantLabels: []string{"IR Dump After Foo", "IR Dump After Bar"},
			wantBodies: [][]string{nil, {"x"}},
		},
		{
			name:       "crlf terminators",
			dump:       "IR Dump After Foo\r\na\r\n",
			wantLabels: []string{"IR Dump After Foo"},
			wantBodies: [][]string{{"a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snaps, err := Segment(strings.NewReader(tt.dump), DefaultOptions())
			require.NoError(t, err)
			require.Len(t, snaps, len(tt.wantLabels))

			for i, s := range snaps {
				assert.Equal(t, i+1, s.Index)
				assert.Equal(t, tt.wantLabels[i], s.Label)
				assert.Equal(t, tt.wantBodies[i], s.Lines)
			}
		})
	}
}

func TestSegment_FinalNewline(t *testing.T) {
	tests := []struct {
		name string
		dump string
		want []bool
	}{
		{name: "terminated", dump: "IR Dump After A\na\nIR Dump After B\na\n", want: []bool{false, false}},
		{name: "last body unterminated", dump: "IR Dump After A\na\nIR Dump After B\na", want: []bool{false, true}},
		{name: "last marker unterminated", dump: "IR Dump After A\na\nIR Dump After B", want: []bool{false, false}},
		{name: "crlf unterminated", dump: "IR Dump After A\r\na\r\nb", want: []bool{true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snaps, err := Segment(strings.NewReader(tt.dump), DefaultOptions())
			require.NoError(t, err)
			require.Len(t, snaps, len(tt.want))
			for i, s := range snaps {
				assert.Equal(t, tt.want[i], s.NoFinalNewline, "snapshot %d", i+1)
			}
		})
	}
}

func TestReadBaseline_FinalNewline(t *testing.T) {
	closed, err := ReadBaseline(strings.NewReader("a\nb\n"), DefaultOptions())
	require.NoError(t, err)
	open, err := ReadBaseline(strings.NewReader("a\nb"), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, closed.Lines, open.Lines)
	assert.False(t, closed.NoFinalNewline)
	assert.True(t, open.NoFinalNewline)
	assert.False(t, closed.SameBody(open))
	assert.True(t, closed.SameBody(Snapshot{Index: 3, Lines: []string{"a", "b"}}))
}

func TestSegment_CustomMarker(t *testing.T) {
	dump := "*** IR Dump After Foo ***\na\n=== pass Bar ===\nb\n"
	snaps, err := Segment(strings.NewReader(dump), Options{Marker: "=== pass"})
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, "=== pass Bar ===", snaps[0].Label)
	assert.Equal(t, []string{"b"}, snaps[0].Lines)
}

func TestSegment_InvalidUTF8StopsEarly(t *testing.T) {
	dump := "IR Dump After Foo\na\nIR Dump After Bar\nb\n\xff\xfe broken\nIR Dump After Baz\nc\n"

	snaps, err := Segment(strings.NewReader(dump), DefaultOptions())
	require.Error(t, err)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.True(t, errors.Is(err, encoding.ErrInvalidUTF8))
	assert.Equal(t, 5, decodeErr.Line)

	require.Len(t, snaps, 2)
	assert.Equal(t, "IR Dump After Bar", snaps[1].Label)
	assert.Equal(t, []string{"b"}, snaps[1].Lines)
}

func TestLoad(t *testing.T) {
	snaps, err := Load(
		strings.NewReader("a\nb\n"),
		strings.NewReader("IR Dump After Foo\na\nb\nc\n"),
		DefaultOptions(),
	)
	require.NoError(t, err)
	require.Len(t, snaps, 2)

	assert.Equal(t, 0, snaps[0].Index)
	assert.Equal(t, BaselineLabel, snaps[0].Label)
	assert.Equal(t, []string{"a", "b"}, snaps[0].Lines)
	assert.Equal(t, 1, snaps[1].Index)
	assert.Equal(t, []string{"a", "b", "c"}, snaps[1].Lines)
}

func TestLoad_PartialOnDecodeError(t *testing.T) {
	snaps, err := Load(
		strings.NewReader("x\n"),
		strings.NewReader("IR Dump After Foo\nx\ny\n\xc3\x28\n"),
		DefaultOptions(),
	)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	require.Len(t, snaps, 2)
	assert.Equal(t, []string{"x", "y"}, snaps[1].Lines)
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", 1000) + strings.Repeat("b", 1000)

	got := Truncate(long, 1000)
	note := "...<line truncated from 2000 to 1000 chars>..."

	assert.Contains(t, got, "2000")
	assert.Contains(t, got, "1000")
	assert.Len(t, got, 1000+len(note))
	assert.Equal(t, strings.Repeat("a", 500)+note+strings.Repeat("b", 500), got)
	assert.Equal(t, got, Truncate(long, 1000), "truncation is deterministic")
}

func TestTruncate_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		limit int
		want  string
	}{
		{name: "shorter than limit", line: "abc", limit: 10, want: "abc"},
		{name: "exactly limit", line: "abcd", limit: 4, want: "abcd"},
		{name: "disabled", line: strings.Repeat("x", 50), limit: 0, want: strings.Repeat("x", 50)},
		{name: "odd limit keeps limit chars", line: "abcdefgh", limit: 3, want: "a...<line truncated from 8 to 3 chars>...gh"},
		{name: "multibyte measured in chars", line: "ééé", limit: 3, want: "ééé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.line, tt.limit))
		})
	}
}

func TestTruncate_MultibyteRunes(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		limit int
		head  string
		tail  string
	}{
		{name: "even limit", line: strings.Repeat("€", 1000), limit: 1000 - 2, head: strings.Repeat("€", 499), tail: strings.Repeat("€", 499)},
		{name: "odd limit", line: strings.Repeat("€", 1000), limit: 999, head: strings.Repeat("€", 499), tail: strings.Repeat("€", 500)},
		{name: "mixed widths", line: "a€b€c€d€", limit: 5, head: "a€", tail: "€d€"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.line, tt.limit)
			assert.True(t, utf8.ValidString(got))

			note := fmt.Sprintf("...<line truncated from %d to %d chars>...", utf8.RuneCountInString(tt.line), tt.limit)
			assert.Equal(t, tt.head+note+tt.tail, got)
			assert.Equal(t, tt.limit, utf8.RuneCountInString(got)-utf8.RuneCountInString(note))
		})
	}

	// A line of 1000 three-byte runes is within a 1001 char limit.
	line := strings.Repeat("€", 1000)
	assert.Equal(t, line, Truncate(line, 1001))
}

func TestReadBaseline_TruncatesLongLines(t *testing.T) {
	line := strings.Repeat("z", 30)
	snap, err := ReadBaseline(strings.NewReader(line+"\nok\n"), Options{MaxLineLength: 10})
	require.NoError(t, err)
	require.Len(t, snap.Lines, 2)
	assert.Equal(t, "zzzzz...<line truncated from 30 to 10 chars>...zzzzz", snap.Lines[0])
	assert.Equal(t, "ok", snap.Lines[1])
}
