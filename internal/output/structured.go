// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tfctl/irdiff/internal/report"
)

// Document is the structured form of a report used for json and yaml output.
type Document struct {
	Summary   string     `json:"summary" yaml:"summary"`
	Changed   int        `json:"changed" yaml:"changed"`
	Total     int        `json:"total" yaml:"total"`
	Truncated bool       `json:"truncated" yaml:"truncated"`
	Header    string     `json:"header" yaml:"header"`
	Baseline  []string   `json:"baseline" yaml:"baseline"`
	Groups    []GroupDoc `json:"groups" yaml:"groups"`
}

// GroupDoc is one pass group.
type GroupDoc struct {
	Passes  []string  `json:"passes" yaml:"passes"`
	Label   string    `json:"label" yaml:"label"`
	Changed bool      `json:"changed" yaml:"changed"`
	Before  int       `json:"before" yaml:"before"`
	After   int       `json:"after" yaml:"after"`
	Skipped bool      `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Diff    []LineDoc `json:"diff,omitempty" yaml:"diff,omitempty"`

	NoFinalNewline bool `json:"no_final_newline,omitempty" yaml:"no_final_newline,omitempty"`
}

// LineDoc is one visible diff line.
type LineDoc struct {
	Kind string `json:"kind" yaml:"kind"`
	Text string `json:"text" yaml:"text"`
}

// NewDocument converts r. Suppressed removals are left out, as in the text
// form.
func NewDocument(r *report.Report) Document {
	doc := Document{
		Summary:   Summary(r),
		Changed:   r.Changed,
		Total:     r.Total,
		Truncated: r.Truncated,
		Header:    r.Header,
		Baseline:  r.Baseline,
		Groups:    make([]GroupDoc, 0, len(r.Sections)),
	}
	if doc.Baseline == nil {
		doc.Baseline = []string{}
	}

	for _, s := range r.Sections {
		g := GroupDoc{
			Passes:  s.Passes,
			Label:   s.Label,
			Changed: s.Changed,
			Before:  s.Before,
			After:   s.After,
			Skipped: s.Skipped,

			NoFinalNewline: s.NoFinalNewline,
		}
		for _, l := range s.Diff {
			if l.Visible() {
				g.Diff = append(g.Diff, LineDoc{Kind: l.Kind.String(), Text: l.Text})
			}
		}
		doc.Groups = append(doc.Groups, g)
	}

	return doc
}

// JSON writes the report as an indented JSON document. If w is nil, os.Stdout
// is used.
func JSON(w io.Writer, r *report.Report) error {
	if w == nil {
		w = os.Stdout
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(r)); err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	return nil
}

// YAML writes the report as a YAML document. If w is nil, os.Stdout is used.
func YAML(w io.Writer, r *report.Report) error {
	if w == nil {
		w = os.Stdout
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(r)); err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	return enc.Close()
}

// Write dispatches on the output format name.
func Write(w io.Writer, r *report.Report, format string, style Style) error {
	switch format {
	case "json":
		return JSON(w, r)
	case "yaml":
		return YAML(w, r)
	case "text", "":
		return Text(w, r, style)
	}
	return fmt.Errorf("unknown output format: %s", format)
}
