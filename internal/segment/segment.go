// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/tfctl/irdiff/internal/log"
)

const (
	// BaselineLabel is the label of snapshot 0.
	BaselineLabel = "// input IR"

	// DefaultMarker is the substring identifying a dump header line.
	DefaultMarker = "IR Dump"

	// DefaultMaxLineLength is the line length above which lines are truncated.
	DefaultMaxLineLength = 1000
)

// Snapshot is the full IR text captured at one pass boundary. Index 0 is the
// baseline. Lines carry no line terminator; NoFinalNewline records that the
// last body line ended the file without one.
type Snapshot struct {
	Index          int
	Label          string
	Lines          []string
	NoFinalNewline bool
}

// SameBody reports whether s and o hold the same body, final newline
// included.
func (s Snapshot) SameBody(o Snapshot) bool {
	return s.NoFinalNewline == o.NoFinalNewline && slices.Equal(s.Lines, o.Lines)
}

// Options controls segmentation. A zero MaxLineLength disables truncation and
// an empty Marker falls back to DefaultMarker.
type Options struct {
	Marker        string
	MaxLineLength int
}

// DefaultOptions returns the options used by the CLI when nothing overrides
// them.
func DefaultOptions() Options {
	return Options{
		Marker:        DefaultMarker,
		MaxLineLength: DefaultMaxLineLength,
	}
}

func (o Options) marker() string {
	if o.Marker == "" {
		return DefaultMarker
	}
	return o.Marker
}

// DecodeError reports that the dump stopped decoding cleanly. Snapshots read
// before the failure are still returned alongside it.
type DecodeError struct {
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("dump decoding stopped at line %d: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ReadBaseline reads the input IR verbatim as snapshot 0.
func ReadBaseline(r io.Reader, opts Options) (Snapshot, error) {
	snap := Snapshot{Index: 0, Label: BaselineLabel}

	lines, _, open, err := readLines(r, opts.MaxLineLength)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read baseline: %w", err)
	}
	snap.Lines = lines
	snap.NoFinalNewline = open

	log.Debugf("baseline read: lines=%d", len(snap.Lines))
	return snap, nil
}

// Segment scans the dump and returns one snapshot per marker line. Indexes
// start at 1 so the result can follow the baseline directly. Lines ahead of the
// first marker belong to no pass and are dropped.
//
// Invalid UTF-8 ends the scan. The snapshots collected up to that point are
// returned together with a *DecodeError.
func Segment(r io.Reader, opts Options) ([]Snapshot, error) {
	marker := opts.marker()

	var (
		snaps    []Snapshot
		preamble int
	)

	validated := transform.NewReader(r, encoding.UTF8Validator)
	lines, count, open, err := readLines(validated, opts.MaxLineLength)

	lastWasBody := false
	for _, line := range lines {
		lastWasBody = false
		if strings.Contains(line, marker) {
			snaps = append(snaps, Snapshot{Index: len(snaps) + 1, Label: line})
			continue
		}

		if len(snaps) == 0 {
			preamble++
			continue
		}

		last := &snaps[len(snaps)-1]
		last.Lines = append(last.Lines, line)
		lastWasBody = true
	}

	if open && lastWasBody {
		snaps[len(snaps)-1].NoFinalNewline = true
	}

	if preamble > 0 {
		log.Debugf("dropped lines ahead of first marker: lines=%d", preamble)
	}

	if err != nil {
		decodeErr := &DecodeError{Line: count + 1, Err: err}
		log.Warnf("%v; keeping %d snapshots", decodeErr, len(snaps))
		return snaps, decodeErr
	}

	log.Debugf("dump segmented: snapshots=%d lines=%d", len(snaps), count)
	return snaps, nil
}

// Load reads the baseline and the dump and returns every snapshot, baseline
// first. A *DecodeError from the dump is returned with the partial result; any
// other error leaves the result nil.
func Load(baseline io.Reader, dump io.Reader, opts Options) ([]Snapshot, error) {
	base, err := ReadBaseline(baseline, opts)
	if err != nil {
		return nil, err
	}

	passes, err := Segment(dump, opts)
	snaps := append([]Snapshot{base}, passes...)

	var decodeErr *DecodeError
	if err != nil && !errors.As(err, &decodeErr) {
		return nil, err
	}

	return snaps, err
}

// readLines reads r to EOF, returning its lines without terminators, the
// number of complete lines read, and whether the last line had no
// terminator. A partial line preceding a read error is discarded.
func readLines(r io.Reader, maxLen int) ([]string, int, bool, error) {
	var lines []string

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return lines, len(lines), false, err
		}

		open := false
		if line != "" {
			open = !strings.HasSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, Truncate(line, maxLen))
		}

		if err != nil {
			return lines, len(lines), open, nil
		}
	}
}

// Truncate shortens lines longer than limit characters. The first limit/2
// and the remaining tail characters are kept, with a note of the original and
// kept lengths between them, so exactly limit characters of the line survive.
// Lengths count runes. A limit of zero or less leaves the line alone.
func Truncate(line string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(line) <= limit {
		return line
	}

	runes := []rune(line)
	head := limit / 2
	tail := limit - head
	note := fmt.Sprintf("...<line truncated from %d to %d chars>...", len(runes), limit)

	return string(runes[:head]) + note + string(runes[len(runes)-tail:])
}
