// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/geoblob/cmd/geoblob/cli"
	"github.com/bureau-foundation/geoblob/lib/config"
)

// nameWidth bounds piece, curve, and channel names in the inspect
// listing. Longer names are truncated with an ellipsis.
const nameWidth = 32

// palette is the inspect colour scheme, in ANSI 256-colour codes.
var palette = struct {
	title, label, faint, warn lipgloss.Color
}{
	title: lipgloss.Color("75"),
	label: lipgloss.Color("250"),
	faint: lipgloss.Color("243"),
	warn:  lipgloss.Color("214"),
}

// summaryRenderer writes the inspect listing. With colour disabled the
// lipgloss renderer uses the Ascii profile and styles emit no escape
// sequences, so the same code path produces plain text.
type summaryRenderer struct {
	w     io.Writer
	title lipgloss.Style
	label lipgloss.Style
	faint lipgloss.Style
	warn  lipgloss.Style
}

func newSummaryRenderer(w io.Writer, mode string) *summaryRenderer {
	profile := termenv.Ascii
	if useColor(w, mode) {
		profile = termenv.ANSI256
	}
	// SetColorProfile pins the profile; without it lipgloss re-detects
	// from the environment.
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)

	return &summaryRenderer{
		w:     w,
		title: renderer.NewStyle().Foreground(palette.title).Bold(true),
		label: renderer.NewStyle().Foreground(palette.label).Width(14),
		faint: renderer.NewStyle().Foreground(palette.faint),
		warn:  renderer.NewStyle().Foreground(palette.warn),
	}
}

// useColor applies inspect.color: always, never, or auto (colour only
// when w is a terminal).
func useColor(w io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return cli.IsTerminal(w)
	}
}

func (r *summaryRenderer) heading(text string) {
	fmt.Fprintln(r.w, r.title.Render(text))
}

func (r *summaryRenderer) field(name string, value any) {
	fmt.Fprintf(r.w, "  %s %v\n", r.label.Render(name+":"), value)
}

func (r *summaryRenderer) note(text string) {
	fmt.Fprintf(r.w, "  %s\n", r.warn.Render(text))
}

// section writes a titled list of rows. Each row is a name and a detail;
// names are truncated by display width and padded into a column.
func (r *summaryRenderer) section(title string, rows [][2]string) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(r.w, "  %s\n", r.label.UnsetWidth().Render(title+":"))

	column := 0
	for _, row := range rows {
		column = max(column, ansi.StringWidth(ansi.Truncate(row[0], nameWidth, "…")))
	}
	for _, row := range rows {
		name := ansi.Truncate(row[0], nameWidth, "…")
		padding := strings.Repeat(" ", column-ansi.StringWidth(name))
		fmt.Fprintf(r.w, "    %s%s  %s\n", name, padding, r.faint.Render(row[1]))
	}
}
