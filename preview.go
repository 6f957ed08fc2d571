package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

var (
	// Style for the detail pane header
	previewHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	noPreviewStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// RowMarkdown describes a row as a two-column markdown table of column
// name and value. Empty cells are shown as a placeholder.
func RowMarkdown(columns []string, row Row) string {
	var b strings.Builder
	b.WriteString("| column | value |\n")
	b.WriteString("| --- | --- |\n")
	for i, col := range columns {
		value := ""
		if i < len(row) {
			value = row[i]
		}
		if value == "" {
			value = "_(empty)_"
		} else {
			value = escapeMarkdownCell(value)
		}
		fmt.Fprintf(&b, "| %s | %s |\n", col, value)
	}
	return b.String()
}

// escapeMarkdownCell keeps a value on one table line
func escapeMarkdownCell(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// plainRowText is the fallback rendering used when markdown is unavailable
func plainRowText(columns []string, row Row) string {
	var b strings.Builder
	for i, col := range columns {
		value := ""
		if i < len(row) {
			value = row[i]
		}
		fmt.Fprintf(&b, "%s: %s\n", col, value)
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderRowDetail renders the side pane for one row: a header naming the
// record followed by its column/value table.
func RenderRowDetail(columns []string, row Row, index, width int) string {
	var b strings.Builder
	b.WriteString(previewHeaderStyle.Render(fmt.Sprintf("Record %d", index+1)))
	b.WriteString("\n")
	if width > 0 {
		b.WriteString(strings.Repeat("─", width))
		b.WriteString("\n")
	}
	b.WriteString(renderMarkdown(columns, row, width))
	return b.String()
}

// renderMarkdown renders the row table for terminal display.
// Falls back to plain word wrapped text for narrow panes or on render errors.
func renderMarkdown(columns []string, row Row, width int) string {
	if width < 20 {
		return wordwrap.String(plainRowText(columns, row), max(width, 1))
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return wordwrap.String(plainRowText(columns, row), width)
	}

	rendered, err := renderer.Render(RowMarkdown(columns, row))
	if err != nil {
		return wordwrap.String(plainRowText(columns, row), width)
	}

	// Trim trailing whitespace
	return strings.TrimRight(rendered, "\n\r\t ")
}
