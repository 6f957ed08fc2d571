package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	minCellWidth = 3
	maxCellWidth = 14
	rowNumWidth  = 6
	frozenCols   = 2 // run and type stay visible while scrolling columns
)

type Model struct {
	summary *Summary
	columns []string
	rows    []Row
	widths  []int // display width per column

	// Viewer state
	cursorRow    int // Current row (0-indexed)
	scrollOffset int // First visible row
	colOffset    int // First visible entropy column

	detail string // Rendered side pane for cursorRow

	// Search state
	searchQuery string
	searchInput string
	searchMode  bool
	numBuffer   string // For vim number prefix (e.g., "10" in "10j")
	lastKey     string // Track last key for "gg" detection

	keys keyMap
	help help.Model

	// Dimensions
	width  int
	height int
	ready  bool
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	searchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	cursorLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	lineNumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(rowNumWidth).
			Align(lipgloss.Right)
)

func NewModel(summary *Summary) Model {
	m := Model{
		summary: summary,
		columns: summary.Columns,
		rows:    summary.Rows,
		keys:    newKeyMap(),
		help:    help.New(),
	}
	m.widths = columnWidths(m.columns, m.rows)
	return m
}

// columnWidths sizes each column to its widest cell, clamped to the cell limits
func columnWidths(columns []string, rows []Row) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = lipgloss.Width(col)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	for i := range widths {
		widths[i] = min(max(widths[i], minCellWidth), maxCellWidth)
	}
	return widths
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searchMode {
			return m.handleSearchInput(msg)
		}
		return m.handleKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.ensureCursorVisible()
		m.refreshDetail()
	}

	return m, nil
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	// Handle number prefix for vim commands
	if len(keyStr) == 1 && keyStr >= "0" && keyStr <= "9" {
		if keyStr == "0" && m.numBuffer == "" {
			// "0" by itself - back to the first entropy column
			m.colOffset = 0
			return m, nil
		}
		m.numBuffer += keyStr
		return m, nil
	}

	count := 1
	if m.numBuffer != "" {
		n, err := strconv.Atoi(m.numBuffer)
		if err == nil && n > 0 {
			count = n
		}
		m.numBuffer = ""
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Clear):
		m.searchQuery = ""
		m.searchInput = ""

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(count)

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-count)

	case key.Matches(msg, m.keys.HalfDown):
		m.moveCursor(m.gridHeight() / 2)

	case key.Matches(msg, m.keys.HalfUp):
		m.moveCursor(-m.gridHeight() / 2)

	case key.Matches(msg, m.keys.Right):
		m.scrollColumns(count)

	case key.Matches(msg, m.keys.Left):
		m.scrollColumns(-count)

	case key.Matches(msg, m.keys.Top):
		if m.lastKey == "g" {
			m.cursorRow = 0
			m.scrollOffset = 0
			m.lastKey = ""
			m.refreshDetail()
		} else {
			m.lastKey = "g"
		}
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.rows))

	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.searchInput = ""
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.findNext(1)

	case key.Matches(msg, m.keys.Prev):
		m.findNext(-1)
	}

	m.lastKey = ""
	return m, nil
}

func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchQuery = m.searchInput
		m.searchMode = false
		if m.searchQuery != "" {
			m.findNext(1)
		}
		return m, nil

	case "esc":
		m.searchMode = false
		m.searchInput = ""
		return m, nil

	case "backspace":
		if len(m.searchInput) > 0 {
			runes := []rune(m.searchInput)
			m.searchInput = string(runes[:len(runes)-1])
		}
		return m, nil

	default:
		if msg.Type == tea.KeyRunes {
			m.searchInput += string(msg.Runes)
		}
		return m, nil
	}
}

// moveCursor moves the row cursor by delta, clamped to the table
func (m *Model) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursorRow = min(max(m.cursorRow+delta, 0), len(m.rows)-1)
	m.ensureCursorVisible()
	m.refreshDetail()
}

// scrollColumns shifts the visible entropy columns by delta
func (m *Model) scrollColumns(delta int) {
	scrollable := len(m.columns) - frozenCols
	if scrollable <= 0 {
		m.colOffset = 0
		return
	}
	m.colOffset = min(max(m.colOffset+delta, 0), scrollable-1)
}

// findNext moves the cursor to the next row containing the search query
func (m *Model) findNext(direction int) {
	if m.searchQuery == "" || len(m.rows) == 0 {
		return
	}

	total := len(m.rows)
	for i := 1; i <= total; i++ {
		idx := ((m.cursorRow+i*direction)%total + total) % total
		if rowMatches(m.rows[idx], m.searchQuery) {
			m.cursorRow = idx
			m.ensureCursorVisible()
			m.refreshDetail()
			return
		}
	}
}

// refreshDetail re-renders the side pane for the current row
func (m *Model) refreshDetail() {
	if !m.ready {
		return
	}
	if len(m.rows) == 0 {
		m.detail = noPreviewStyle.Render("No records")
		return
	}
	m.detail = RenderRowDetail(m.columns, m.rows[m.cursorRow], m.cursorRow, m.rightPaneWidth())
}

// viewerHeight returns the number of lines between header and footer
func (m Model) viewerHeight() int {
	return m.height - 4 // header + divider + footer + padding
}

// gridHeight returns the number of data rows visible in the grid
func (m Model) gridHeight() int {
	return max(m.viewerHeight()-1, 1) // column header
}

// leftPaneWidth returns the width of the grid pane (left side)
func (m Model) leftPaneWidth() int {
	return m.width * 60 / 100
}

// rightPaneWidth returns the width of the detail pane (right side)
func (m Model) rightPaneWidth() int {
	return max(m.width-m.leftPaneWidth()-3, 0) // 3 for separator
}

// ensureCursorVisible adjusts scroll to keep cursor in view
func (m *Model) ensureCursorVisible() {
	viewHeight := m.gridHeight()

	if m.cursorRow < m.scrollOffset {
		m.scrollOffset = m.cursorRow
	}
	if m.cursorRow >= m.scrollOffset+viewHeight {
		m.scrollOffset = m.cursorRow - viewHeight + 1
	}
}

// visibleColumns returns the column indexes that fit in width: run and
// type first, then entropy columns starting at colOffset.
func (m Model) visibleColumns(width int) []int {
	var cols []int
	used := rowNumWidth
	for i := 0; i < len(m.columns); i++ {
		if i >= frozenCols && i < frozenCols+m.colOffset {
			continue
		}
		need := m.widths[i] + 1
		if used+need > width && len(cols) >= frozenCols {
			break
		}
		cols = append(cols, i)
		used += need
	}
	return cols
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	// Header
	header := titleStyle.Render(filepath.Base(m.summary.OutputPath))
	if m.searchQuery != "" {
		header += "  " + searchStyle.Render(fmt.Sprintf("[/%s]", m.searchQuery))
	}
	info := helpStyle.Render(fmt.Sprintf("Row %d/%d • %d entropy columns",
		min(m.cursorRow+1, len(m.rows)), len(m.rows), m.summary.Width))
	headerPadding := max(m.width-lipgloss.Width(header)-lipgloss.Width(info), 1)
	b.WriteString(header + strings.Repeat(" ", headerPadding) + info)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", m.width))
	b.WriteString("\n")

	// Two-column layout
	leftWidth := m.leftPaneWidth()
	viewHeight := m.viewerHeight()

	leftLines := m.buildGrid(leftWidth, viewHeight)
	rightLines := strings.Split(m.detail, "\n")

	for i := 0; i < viewHeight; i++ {
		leftLine := ""
		if i < len(leftLines) {
			leftLine = leftLines[i]
		}
		rightLine := ""
		if i < len(rightLines) {
			rightLine = rightLines[i]
		}

		b.WriteString(padOrTruncate(leftLine, leftWidth))
		b.WriteString(" │ ")
		b.WriteString(rightLine)
		b.WriteString("\n")
	}

	// Footer
	if m.searchMode {
		b.WriteString(searchStyle.Render(fmt.Sprintf("/%s", m.searchInput)))
	} else {
		b.WriteString(m.help.View(m.keys))
	}

	return b.String()
}

// buildGrid renders the column header and the visible rows
func (m Model) buildGrid(width, height int) []string {
	cols := m.visibleColumns(width)

	var lines []string
	var hdr strings.Builder
	hdr.WriteString(strings.Repeat(" ", rowNumWidth))
	for _, c := range cols {
		hdr.WriteString(" ")
		hdr.WriteString(headerStyle.Render(fitCell(m.columns[c], m.widths[c])))
	}
	lines = append(lines, hdr.String())

	if len(m.rows) == 0 {
		lines = append(lines, helpStyle.Render("No records to display"))
		return lines
	}

	for i := 0; i < height-1; i++ {
		rowIdx := m.scrollOffset + i
		if rowIdx >= len(m.rows) {
			break
		}
		lines = append(lines, m.renderRow(rowIdx, cols))
	}
	return lines
}

// renderRow renders one grid line; the cursor row is drawn unstyled on a
// solid background so cell colors don't break it up.
func (m Model) renderRow(rowIdx int, cols []int) string {
	row := m.rows[rowIdx]
	var b strings.Builder
	b.WriteString(lineNumberStyle.Render(strconv.Itoa(rowIdx + 1)))

	if rowIdx == m.cursorRow {
		var plain strings.Builder
		for _, c := range cols {
			plain.WriteString(" ")
			plain.WriteString(fitCell(cellText(row, c), m.widths[c]))
		}
		b.WriteString(cursorLineStyle.Render(plain.String()))
		return b.String()
	}

	for _, c := range cols {
		value := truncate.String(cellText(row, c), uint(m.widths[c]))
		b.WriteString(" ")
		b.WriteString(HighlightCell(value, m.searchQuery))
		shown := lipgloss.Width(value)
		if value == "" {
			shown = lipgloss.Width(emptyCellMarker)
		}
		b.WriteString(strings.Repeat(" ", max(m.widths[c]-shown, 0)))
	}
	return b.String()
}

// Keep multi-line cells on one grid line
var lineBreakReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func cellText(row Row, col int) string {
	if col < len(row) {
		return lineBreakReplacer.Replace(row[col])
	}
	return ""
}

// fitCell truncates or pads plain text to exactly width cells
func fitCell(s string, width int) string {
	if lipgloss.Width(s) > width {
		return truncate.StringWithTail(s, uint(width), "…")
	}
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}

// padOrTruncate ensures a string (with possible ANSI codes) fits exactly in width
func padOrTruncate(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible > width {
		return truncate.String(s, uint(width))
	}
	if visible < width {
		return s + strings.Repeat(" ", width-visible)
	}
	return s
}
