package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Cell styles
	numCellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("141")) // Purple for numbers
	textCellStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("114")) // Green for text
	emptyCellStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)

	// Search highlight style
	searchHighlightStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("226")).
				Foreground(lipgloss.Color("0")).
				Bold(true)
)

// emptyCellMarker stands in for padding cells so they are visible in the grid
const emptyCellMarker = "·"

// isNumeric reports whether a cell holds a number
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// cellStyle picks the style for a cell based on its content
func cellStyle(value string) lipgloss.Style {
	switch {
	case value == "":
		return emptyCellStyle
	case isNumeric(value):
		return numCellStyle
	default:
		return textCellStyle
	}
}

// HighlightCell styles a cell and marks every case-insensitive occurrence
// of query within it. The value must already be truncated to its column.
func HighlightCell(value, query string) string {
	if value == "" {
		return emptyCellStyle.Render(emptyCellMarker)
	}
	base := cellStyle(value)

	matches := findMatches(value, query)
	if len(matches) == 0 {
		return base.Render(value)
	}

	var b strings.Builder
	pos := 0
	for _, start := range matches {
		end := start + len(query)
		if start > pos {
			b.WriteString(base.Render(value[pos:start]))
		}
		b.WriteString(searchHighlightStyle.Render(value[start:end]))
		pos = end
	}
	if pos < len(value) {
		b.WriteString(base.Render(value[pos:]))
	}
	return b.String()
}

// findMatches returns the byte offsets of non-overlapping matches of query
// in s, ignoring case.
func findMatches(s, query string) []int {
	if query == "" {
		return nil
	}
	lower := strings.ToLower(s)
	queryLower := strings.ToLower(query)
	// Case folding changed byte lengths; fall back to exact matching
	if len(lower) != len(s) || len(queryLower) != len(query) {
		lower, queryLower = s, query
	}

	var matches []int
	pos := 0
	for {
		idx := strings.Index(lower[pos:], queryLower)
		if idx == -1 {
			break
		}
		matches = append(matches, pos+idx)
		pos += idx + len(queryLower)
	}
	return matches
}

// rowMatches reports whether any cell of row contains query, ignoring case
func rowMatches(row Row, query string) bool {
	queryLower := strings.ToLower(query)
	for _, cell := range row {
		if strings.Contains(strings.ToLower(cell), queryLower) {
			return true
		}
	}
	return false
}
