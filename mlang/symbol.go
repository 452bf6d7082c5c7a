package mlang

import "sort"

// KindVariable is the only symbol kind the grammar produces.
const KindVariable = "variable"

// SymbolEntry records what the parser learned about one identifier.
// Declared is set by a let declaration only; a plain assignment inserts
// an entry without it.
type SymbolEntry struct {
	Kind     string
	Value    Expr
	Declared bool
}

// SymbolTable maps identifier names to their recorded entries. Entries
// are unique per analysis run; a re-declaration overwrites the value but
// never changes the kind.
type SymbolTable map[string]SymbolEntry

// Names returns the identifiers in sorted order so that iteration over
// the table is stable.
func (t SymbolTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
