package mlang

import "fmt"

// SemanticResult aggregates every error the pipeline found plus the
// symbol table the checks ran against.
type SemanticResult struct {
	Success bool
	Errors  []string
	Table   SymbolTable
}

type checker struct {
	errors []string
	table  SymbolTable
}

// Check validates a successful parse: every identifier must be declared
// with let somewhere in the stream, and every recorded symbol value must
// classify as a known numeric type. Lexical errors are carried into the
// final list first; a failed parse short-circuits both passes.
func Check(lexicalErrors []string, parse ParseResult, tokens []Token) SemanticResult {
	c := &checker{errors: []string{}, table: make(SymbolTable)}

	for _, e := range lexicalErrors {
		c.errors = append(c.errors, "Lexical error: "+e)
	}

	if !parse.Success {
		c.errors = append(c.errors, "Syntax error: "+parse.Err.Error())
		return SemanticResult{Errors: c.errors, Table: c.table}
	}

	c.table = parse.Table
	c.checkVariables(tokens)
	c.checkTypes()

	return SemanticResult{Success: len(c.errors) == 0, Errors: c.errors, Table: c.table}
}

// checkVariables scans the token stream independently of the symbol
// table: first it collects every identifier that immediately follows a
// let keyword, then reports each distinct identifier used without one.
// Duplicate uses of the same undeclared identifier collapse into a single
// error, emitted in first-appearance order.
func (c *checker) checkVariables(tokens []Token) {
	declared := make(map[string]struct{})
	for i, tok := range tokens {
		if tok.Type == TokenKeyword && tok.Literal == "let" &&
			i+1 < len(tokens) && tokens[i+1].Type == TokenIdentifier {
			declared[tokens[i+1].Literal] = struct{}{}
		}
	}

	reported := make(map[string]struct{})
	for _, tok := range tokens {
		if tok.Type != TokenIdentifier {
			continue
		}
		if _, ok := declared[tok.Literal]; ok {
			continue
		}
		if _, ok := reported[tok.Literal]; ok {
			continue
		}
		reported[tok.Literal] = struct{}{}
		c.errors = append(c.errors, fmt.Sprintf("Variable %s is used before declaration.", tok.Literal))
	}
}

// checkTypes classifies every recorded value; entries without a value
// never fire.
func (c *checker) checkTypes() {
	for _, name := range c.table.Names() {
		entry := c.table[name]
		if entry.Kind != KindVariable || entry.Value == nil {
			continue
		}
		if classify(entry.Value) == typeUnknown {
			c.errors = append(c.errors, fmt.Sprintf("Unknown type for variable %s.", name))
		}
	}
}

const (
	typeInt     = "int"
	typeFloat   = "float"
	typeUnknown = "unknown"
)

// classify maps an expression value to its numeric type; identifier
// references and comparisons have no numeric classification.
func classify(v Expr) string {
	num, ok := v.(*NumberExpr)
	if !ok {
		return typeUnknown
	}
	if num.Value.IsFloat {
		return typeFloat
	}
	return typeInt
}
