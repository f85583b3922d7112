// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/tfctl/irdiff/internal/report"
)

// Summary is the one-line count of groups that changed the IR.
func Summary(r *report.Report) string {
	return fmt.Sprintf("// Number of passes that changed the IR: %d out of %d", r.Changed, r.Total)
}

// passList formats pass names as "[A, B]".
func passList(passes []string) string {
	return "[" + strings.Join(passes, ", ") + "]"
}

func count(n int) string {
	return humanize.Comma(int64(n))
}

// Text writes the report in its annotated text form. Output is written to w.
// If w is nil, os.Stdout is used.
func Text(w io.Writer, r *report.Report, style Style) error {
	if w == nil {
		w = os.Stdout
	}

	bw := bufio.NewWriter(w)
	emit := func(s string) {
		_, _ = bw.WriteString(s)
		_ = bw.WriteByte('\n')
	}

	emit(style.annotation(r.Header))
	for _, l := range r.Baseline {
		emit(l)
	}

	for _, s := range r.Sections {
		if !s.Changed {
			emit(style.annotation("// unchanged by passes " + passList(s.Passes)))
			continue
		}

		emit("")
		emit("")
		emit(style.annotation("// changed by passes " + passList(s.Passes)))
		emit(style.annotation(fmt.Sprintf("// line count %s -> %s", count(s.Before), count(s.After))))
		emit(style.label(s.Label))

		if s.Skipped {
			emit(style.annotation(fmt.Sprintf("// diff skipped: processed line budget of %s exceeded", count(r.MaxLines))))
			continue
		}

		for _, l := range s.Diff {
			if l.Visible() {
				emit(style.line(l))
			}
		}
		if s.NoFinalNewline {
			emit(style.annotation("// no newline at end of body"))
		}
	}

	if r.Truncated {
		emit(style.annotation("// dump truncated at its first undecodable line"))
	}
	emit(style.annotation(Summary(r)))

	return bw.Flush()
}
