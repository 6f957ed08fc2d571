package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testSummary() *Summary {
	rows := []Row{
		{"1", "won", "0.1", "0.2", "0.3"},
		{"2", "lost", "0.5", "", ""},
		{"3", "aborted", "", "", ""},
		{"4", "won", "0.9", "0.8", ""},
	}
	return &Summary{
		InputPath:  "logs/entropy_log.jsonl",
		OutputPath: "logs/output.csv",
		Records:    len(rows),
		Width:      3,
		Columns:    Columns(3),
		Rows:       rows,
	}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// sendKeys feeds key presses through Update and returns the resulting model
func sendKeys(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	var model tea.Model = m
	for _, msg := range msgs {
		model, _ = model.Update(msg)
	}
	return model.(Model)
}

func readyModel(t *testing.T) Model {
	t.Helper()
	return sendKeys(t, NewModel(testSummary()), tea.WindowSizeMsg{Width: 120, Height: 30})
}

func TestModelNavigation(t *testing.T) {
	m := readyModel(t)

	m = sendKeys(t, m, runeKey("j"), runeKey("j"))
	if m.cursorRow != 2 {
		t.Errorf("Expected cursor on row 2, got %d", m.cursorRow)
	}

	m = sendKeys(t, m, runeKey("k"))
	if m.cursorRow != 1 {
		t.Errorf("Expected cursor on row 1, got %d", m.cursorRow)
	}

	m = sendKeys(t, m, runeKey("G"))
	if m.cursorRow != 3 {
		t.Errorf("Expected G to jump to the last row, got %d", m.cursorRow)
	}

	m = sendKeys(t, m, runeKey("g"), runeKey("g"))
	if m.cursorRow != 0 {
		t.Errorf("Expected gg to jump to the first row, got %d", m.cursorRow)
	}

	// Clamped at the bottom
	m = sendKeys(t, m, runeKey("1"), runeKey("0"), runeKey("j"))
	if m.cursorRow != 3 {
		t.Errorf("Expected 10j to clamp at the last row, got %d", m.cursorRow)
	}
}

func TestModelColumnScroll(t *testing.T) {
	m := readyModel(t)

	m = sendKeys(t, m, runeKey("l"), runeKey("l"), runeKey("l"), runeKey("l"))
	if m.colOffset != 2 {
		t.Errorf("Expected column offset clamped to 2, got %d", m.colOffset)
	}

	m = sendKeys(t, m, runeKey("h"))
	if m.colOffset != 1 {
		t.Errorf("Expected column offset 1, got %d", m.colOffset)
	}

	m = sendKeys(t, m, runeKey("0"))
	if m.colOffset != 0 {
		t.Errorf("Expected 0 to reset the column offset, got %d", m.colOffset)
	}
}

func TestModelSearch(t *testing.T) {
	m := readyModel(t)

	m = sendKeys(t, m, runeKey("/"), runeKey("w"), runeKey("o"), runeKey("n"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.searchMode {
		t.Fatal("Expected enter to leave search mode")
	}
	if m.searchQuery != "won" {
		t.Fatalf("Expected search query %q, got %q", "won", m.searchQuery)
	}
	// Search starts after the cursor, so the first hit is row 3
	if m.cursorRow != 3 {
		t.Errorf("Expected cursor on row 3, got %d", m.cursorRow)
	}

	m = sendKeys(t, m, runeKey("n"))
	if m.cursorRow != 0 {
		t.Errorf("Expected n to wrap to row 0, got %d", m.cursorRow)
	}

	m = sendKeys(t, m, runeKey("N"))
	if m.cursorRow != 3 {
		t.Errorf("Expected N to go back to row 3, got %d", m.cursorRow)
	}

	m = sendKeys(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.searchQuery != "" {
		t.Errorf("Expected esc to clear the search, got %q", m.searchQuery)
	}
}

func TestModelQuit(t *testing.T) {
	m := readyModel(t)

	_, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("Expected q to return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected q to quit")
	}
}

func TestModelView(t *testing.T) {
	m := readyModel(t)
	view := stripAnsi(m.View())

	for _, want := range []string{"output.csv", "Row 1/4", "run", "type", "entropy_0", "aborted", "Record 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}
}

func TestModelViewBeforeResize(t *testing.T) {
	m := NewModel(testSummary())
	if m.View() != "Initializing..." {
		t.Errorf("Expected placeholder before the first resize, got %q", m.View())
	}
}

func TestModelEmptyTable(t *testing.T) {
	summary := &Summary{OutputPath: "out.csv", Columns: Columns(0)}
	m := sendKeys(t, NewModel(summary), tea.WindowSizeMsg{Width: 80, Height: 20}, runeKey("j"), runeKey("G"))

	if m.cursorRow != 0 {
		t.Errorf("Expected cursor to stay at 0, got %d", m.cursorRow)
	}
	if !strings.Contains(stripAnsi(m.View()), "No records") {
		t.Error("Expected empty table message")
	}
}

func TestColumnWidths(t *testing.T) {
	widths := columnWidths([]string{"run", "type"}, []Row{{"1", "a very long type label indeed"}})

	if widths[0] != minCellWidth {
		t.Errorf("Expected run column at min width %d, got %d", minCellWidth, widths[0])
	}
	if widths[1] != maxCellWidth {
		t.Errorf("Expected type column capped at %d, got %d", maxCellWidth, widths[1])
	}
}
