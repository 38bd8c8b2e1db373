package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/zephyrtronium/objmodel"
)

var (
	accentColor = lipgloss.Color("#3B82F6")
	mutedColor  = lipgloss.Color("#6B7280")

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	nameStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	summaryStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// styles renders demo names and headers, with color only when writing to a
// terminal.
type styles struct {
	color bool
}

func newStyles(w io.Writer) styles {
	f, ok := w.(*os.File)
	if !ok {
		return styles{}
	}
	return styles{color: isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())}
}

func (s styles) header(d objmodel.Demo) string {
	h := "=== " + d.Name + " ==="
	if !s.color {
		return h
	}
	return headerStyle.Render(h)
}

func (s styles) listing(d objmodel.Demo) string {
	if !s.color {
		return d.Name + "\t" + d.Summary
	}
	return nameStyle.Width(16).Render(d.Name) + summaryStyle.Render(d.Summary)
}
