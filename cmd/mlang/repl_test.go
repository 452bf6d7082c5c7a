package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestUpdateQuitCommandReturnsQuit(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":quit")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after quit command")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestUpdateHelpCommandTogglesHelp(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":help")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if cmd != nil {
		t.Fatalf("expected no command for help toggle")
	}
	if !rm.showHelp {
		t.Fatalf("help toggle should be enabled")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after command")
	}
}

func TestUpdateAnalyzesEnteredProgram(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("{ let x = 10 ; }")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)

	if len(rm.history) != 1 {
		t.Fatalf("expected one history entry, got %d", len(rm.history))
	}
	entry := rm.history[0]
	if entry.isErr {
		t.Fatalf("unexpected error entry: %q", entry.output)
	}
	if !strings.Contains(entry.output, "1 symbol(s)") {
		t.Fatalf("unexpected summary: %q", entry.output)
	}
	if _, ok := rm.lastTable["x"]; !ok {
		t.Fatalf("symbol table not retained: %v", rm.lastTable)
	}
}

func TestUpdateMarksFailedAnalysis(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("{ let y 20 ; }")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)

	if len(rm.history) != 1 {
		t.Fatalf("expected one history entry, got %d", len(rm.history))
	}
	entry := rm.history[0]
	if !entry.isErr {
		t.Fatalf("expected error entry")
	}
	if !strings.Contains(entry.output, "Syntax error") {
		t.Fatalf("unexpected output: %q", entry.output)
	}
}

func TestHandleAutocompleteCompletesKeyword(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("{ ou")

	m = m.handleAutocomplete()

	if got := m.textInput.Value(); got != "{ output" {
		t.Fatalf("unexpected completion: %q", got)
	}
}

func TestHandleAutocompleteListsMultipleMatches(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("l")

	m = m.handleAutocomplete()

	if len(m.history) != 1 {
		t.Fatalf("expected a completions entry, got %d", len(m.history))
	}
	if !strings.Contains(m.history[0].output, "let") ||
		!strings.Contains(m.history[0].output, "loop") {
		t.Fatalf("unexpected completions: %q", m.history[0].output)
	}
}
