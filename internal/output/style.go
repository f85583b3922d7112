// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"image/color"
	"os"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/tfctl/irdiff/internal/config"
	"github.com/tfctl/irdiff/internal/differ"
)

// Style holds the lipgloss styles applied to the text report. The zero value
// renders plain text.
type Style struct {
	Enabled    bool
	Addition   lipgloss.Style
	Removal    lipgloss.Style
	Annotation lipgloss.Style
	Label      lipgloss.Style
}

// PlainStyle renders without escape sequences.
func PlainStyle() Style {
	return Style{}
}

// ColorStyle builds styles from the "colors" config keys, falling back to
// defaults that suit the terminal background.
func ColorStyle() Style {
	addition, removal, annotation := getColors("colors")

	return Style{
		Enabled:    true,
		Addition:   lipgloss.NewStyle().Foreground(addition),
		Removal:    lipgloss.NewStyle().Foreground(removal),
		Annotation: lipgloss.NewStyle().Foreground(annotation).Faint(true),
		Label:      lipgloss.NewStyle().Foreground(annotation).Bold(true),
	}
}

func (s Style) render(st lipgloss.Style, text string) string {
	if !s.Enabled || text == "" {
		return text
	}
	return st.Render(text)
}

func (s Style) annotation(text string) string {
	return s.render(s.Annotation, text)
}

func (s Style) label(text string) string {
	return s.render(s.Label, text)
}

func (s Style) line(l differ.Line) string {
	switch l.Kind {
	case differ.Addition:
		return s.render(s.Addition, l.String())
	case differ.Removal:
		return s.render(s.Removal, l.String())
	}
	return l.String()
}

// getColors returns configured color values for the diff. Each color is
// selected based on terminal background so additions and removals stay
// readable on light and dark themes.
func getColors(key string) (addition, removal, annotation color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	// Use the explicit color if found in the config and leave it up to the user
	// to choose appropriate colors for their theme.
	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	addition = resolveColor(key+".addition", "#1a7f37", "#3fb950")
	removal = resolveColor(key+".removal", "#cf222e", "#f85149")
	annotation = resolveColor(key+".annotation", "#6e7781", "#8b949e")

	return
}
