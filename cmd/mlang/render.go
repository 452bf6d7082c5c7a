package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/HanteRus/mlang/mlang"
)

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(successColor)

	errStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	tableBorderStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(highlightColor).
				Bold(true).
				Padding(0, 1)

	tableCellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(headers...)
}

func renderTokenTable(tokens []mlang.Token) string {
	t := newTable("TYPE", "VALUE")
	for _, tok := range tokens {
		t.Row(string(tok.Type), tok.ValueString())
	}
	return t.Render()
}

func renderSymbolTable(symbols mlang.SymbolTable) string {
	t := newTable("VARIABLE", "KIND", "VALUE", "DECLARED")
	for _, name := range symbols.Names() {
		entry := symbols[name]
		value := ""
		if entry.Value != nil {
			value = entry.Value.String()
		}
		declared := "no"
		if entry.Declared {
			declared = "yes"
		}
		t.Row(name, entry.Kind, value, declared)
	}
	return t.Render()
}

// renderReport lays out the full analysis report: token table, one
// section per phase, and the symbol table the checks ran against.
func renderReport(result mlang.Result, withTokens bool) string {
	var b strings.Builder

	if withTokens {
		b.WriteString(headerStyle.Render("Tokens") + "\n")
		if len(result.Tokens) == 0 {
			b.WriteString(mutedStyle.Render("  (none)") + "\n")
		} else {
			b.WriteString(renderTokenTable(result.Tokens) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(headerStyle.Render("Lexical analysis") + "\n")
	if len(result.LexicalErrors) == 0 {
		b.WriteString(okStyle.Render("  no lexical errors") + "\n")
	} else {
		for _, e := range result.LexicalErrors {
			b.WriteString(errStyle.Render("  ✗ "+e) + "\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Syntax analysis") + "\n")
	if result.Parse.Success {
		b.WriteString(okStyle.Render("  parse succeeded") + "\n")
	} else {
		b.WriteString(errStyle.Render("  ✗ "+result.Parse.Err.Error()) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Semantic analysis") + "\n")
	if result.Semantic.Success {
		b.WriteString(okStyle.Render("  no semantic errors") + "\n")
	} else {
		for _, e := range result.Semantic.Errors {
			b.WriteString(errStyle.Render("  ✗ "+e) + "\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Symbol table") + "\n")
	if len(result.Semantic.Table) == 0 {
		b.WriteString(mutedStyle.Render("  (empty)"))
	} else {
		b.WriteString(renderSymbolTable(result.Semantic.Table))
	}

	return b.String()
}
