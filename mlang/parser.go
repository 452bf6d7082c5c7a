package mlang

import "fmt"

type parseError struct {
	msg string
}

func (e *parseError) Error() string { return e.msg }

// ParseResult is the outcome of a parse: either a populated symbol table
// or the first error encountered. Table is set only on success; a parse
// that fails part way discards whatever it had collected.
type ParseResult struct {
	Success bool
	Table   SymbolTable
	Err     error
}

type parser struct {
	tokens []Token
	cur    int
	table  SymbolTable
}

// Parse runs recursive descent over the token sequence. Any unmet
// expectation aborts the whole parse immediately; there is no recovery
// or resynchronization.
func Parse(tokens []Token) ParseResult {
	p := &parser{tokens: tokens, table: make(SymbolTable)}
	if err := p.parseProgram(); err != nil {
		return ParseResult{Err: err}
	}
	return ParseResult{Success: true, Table: p.table}
}

func (p *parser) peek() (Token, bool) {
	if p.cur >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.cur], true
}

func (p *parser) peekTypeAt(offset int) TokenType {
	if p.cur+offset >= len(p.tokens) {
		return ""
	}
	return p.tokens[p.cur+offset].Type
}

// match consumes the token at the cursor when it has the expected kind;
// otherwise it reports the expectation and the offending token (or end of
// input) without advancing.
func (p *parser) match(expected TokenType) (Token, error) {
	if tok, ok := p.peek(); ok && tok.Type == expected {
		p.cur++
		return tok, nil
	}
	return Token{}, p.errorExpected(string(expected))
}

func (p *parser) errorExpected(expected string) error {
	if tok, ok := p.peek(); ok {
		return &parseError{msg: fmt.Sprintf("expected %s, found %s", expected, tok)}
	}
	return &parseError{msg: fmt.Sprintf("expected %s, found end of input", expected)}
}

// Program := '{' (Declaration | Statement)* '}'
func (p *parser) parseProgram() error {
	if _, err := p.match(TokenDelimiter); err != nil { // {
		return err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok.Literal == "}" {
			break
		}
		if tok.Type == TokenKeyword && tok.Literal == "let" {
			if err := p.parseDeclaration(); err != nil {
				return err
			}
			continue
		}
		if err := p.parseStatement(); err != nil {
			return err
		}
	}
	_, err := p.match(TokenDelimiter) // }
	return err
}

// Declaration := 'let' IDENT '=' Expr ';'
func (p *parser) parseDeclaration() error {
	if _, err := p.match(TokenKeyword); err != nil { // let
		return err
	}
	ident, err := p.match(TokenIdentifier)
	if err != nil {
		return err
	}
	if _, err := p.match(TokenAssign); err != nil {
		return err
	}
	value, err := p.parseExpression()
	if err != nil {
		return err
	}
	if _, err := p.match(TokenDelimiter); err != nil { // ;
		return err
	}
	p.table[ident.Literal] = SymbolEntry{Kind: KindVariable, Value: value, Declared: true}
	return nil
}

func (p *parser) parseStatement() error {
	tok, ok := p.peek()
	if !ok {
		return &parseError{msg: "unexpected end of input"}
	}

	switch {
	case tok.Type == TokenIdentifier && p.peekTypeAt(1) == TokenAssign:
		return p.parseAssignment()
	case tok.Type == TokenKeyword:
		switch tok.Literal {
		case "if":
			return p.parseConditional()
		case "for":
			return p.parseFixedLoop()
		case "do":
			return p.parseWhileLoop()
		case "input":
			return p.parseInput()
		case "output":
			return p.parseOutput()
		}
	case tok.Type == TokenDelimiter && tok.Literal == "{":
		return p.parseCompoundStatement()
	}
	return &parseError{msg: fmt.Sprintf("unknown statement: %s", tok)}
}

// Assignment := IDENT '=' Expr ';'
//
// Updates the value of a known identifier, or inserts a fresh entry with
// the declared flag unset.
func (p *parser) parseAssignment() error {
	ident, err := p.match(TokenIdentifier)
	if err != nil {
		return err
	}
	if _, err := p.match(TokenAssign); err != nil {
		return err
	}
	value, err := p.parseExpression()
	if err != nil {
		return err
	}
	if _, err := p.match(TokenDelimiter); err != nil { // ;
		return err
	}
	if entry, ok := p.table[ident.Literal]; ok {
		entry.Value = value
		p.table[ident.Literal] = entry
	} else {
		p.table[ident.Literal] = SymbolEntry{Kind: KindVariable, Value: value}
	}
	return nil
}

// Conditional := 'if' Expr 'then' CompoundStatement ['else' CompoundStatement]
func (p *parser) parseConditional() error {
	if _, err := p.match(TokenKeyword); err != nil { // if
		return err
	}
	if _, err := p.parseExpression(); err != nil {
		return err
	}
	if _, err := p.match(TokenKeyword); err != nil { // then
		return err
	}
	if err := p.parseCompoundStatement(); err != nil {
		return err
	}
	if tok, ok := p.peek(); ok && tok.Literal == "else" {
		if _, err := p.match(TokenKeyword); err != nil { // else
			return err
		}
		return p.parseCompoundStatement()
	}
	return nil
}

// FixedLoop := 'for' IDENT '=' Expr KEYWORD Expr CompoundStatement
//
// The loop bound keyword is matched by kind only and not further
// validated.
func (p *parser) parseFixedLoop() error {
	if _, err := p.match(TokenKeyword); err != nil { // for
		return err
	}
	if _, err := p.match(TokenIdentifier); err != nil {
		return err
	}
	if _, err := p.match(TokenAssign); err != nil {
		return err
	}
	if _, err := p.parseExpression(); err != nil {
		return err
	}
	if _, err := p.match(TokenKeyword); err != nil { // bound keyword
		return err
	}
	if _, err := p.parseExpression(); err != nil {
		return err
	}
	return p.parseCompoundStatement()
}

// WhileLoop := 'do' CompoundStatement 'while' Expr
func (p *parser) parseWhileLoop() error {
	if _, err := p.match(TokenKeyword); err != nil { // do
		return err
	}
	if err := p.parseCompoundStatement(); err != nil {
		return err
	}
	if _, err := p.match(TokenKeyword); err != nil { // while
		return err
	}
	_, err := p.parseExpression()
	return err
}

// Input := 'input' IDENT ';'
func (p *parser) parseInput() error {
	if _, err := p.match(TokenKeyword); err != nil { // input
		return err
	}
	if _, err := p.match(TokenIdentifier); err != nil {
		return err
	}
	_, err := p.match(TokenDelimiter) // ;
	return err
}

// Output := 'output' Expr ';'
func (p *parser) parseOutput() error {
	if _, err := p.match(TokenKeyword); err != nil { // output
		return err
	}
	if _, err := p.parseExpression(); err != nil {
		return err
	}
	_, err := p.match(TokenDelimiter) // ;
	return err
}

// CompoundStatement := '{' Statement* '}'
func (p *parser) parseCompoundStatement() error {
	if _, err := p.match(TokenDelimiter); err != nil { // {
		return err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok.Literal == "}" {
			break
		}
		if err := p.parseStatement(); err != nil {
			return err
		}
	}
	_, err := p.match(TokenDelimiter) // }
	return err
}

// Expr := (IDENT | NUMBER) [RelOp Expr]
func (p *parser) parseExpression() (Expr, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.errorExpected("IDENTIFIER or NUMBER")
	}

	var left Expr
	switch tok.Type {
	case TokenIdentifier:
		p.cur++
		left = &IdentExpr{Name: tok.Literal}
	case TokenNumber:
		p.cur++
		left = &NumberExpr{Value: tok.Num}
	default:
		return nil, p.errorExpected("IDENTIFIER or NUMBER")
	}

	if rel, ok := p.peek(); ok && rel.Type == TokenRelOp {
		p.cur++
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &CompareExpr{Left: left, Operator: rel.Literal, Right: right}, nil
	}

	return left, nil
}
