package mlang

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule pairs a token category with the anchored pattern that recognizes
// it. Rules are tried in slice order and the first match wins, so a rule
// slice is an explicit priority table: the generic number rule shadows
// the suffixed binary/octal/decimal forms for digit-led literals, and
// keywords shadow identifiers.
type Rule struct {
	Type    TokenType
	Pattern string
}

// DefaultRules returns the standard priority table. Callers may reorder
// or extend a copy and pass it through Config.
func DefaultRules() []Rule {
	return []Rule{
		{TokenComment, `/\*.*?\*/`},
		{TokenNumber, `\d+(?:\.\d+)?(?:[Ee][+-]?\d+)?`},
		{TokenBinNumber, `[01]+[Bb]`},
		{TokenOctNumber, `[0-7]+[Oo]`},
		{TokenDecNumber, `\d+[Dd]?`},
		{TokenHexNumber, `[0-9A-Fa-f]+[Hh]`},
		{TokenKeyword, `(?:let|if|then|else|for|do|while|loop|input|output)\b`},
		{TokenIdentifier, `[A-Za-z_][A-Za-z_0-9]*`},
		{TokenAssign, `=`},
		{TokenRelOp, `[<>]=?`},
		{TokenAddOp, `[+-]|or`},
		{TokenMulOp, `[*/]|and`},
		{TokenUnaryOp, `not`},
		{TokenDelimiter, `[{}();,]`},
		{TokenWhitespace, `[ \t]+`},
		{TokenNewline, `\n`},
	}
}

type compiledRule struct {
	tt TokenType
	re *regexp.Regexp
}

// Tokenizer scans source text against a fixed-priority rule table. It is
// stateless between calls and safe for concurrent use.
type Tokenizer struct {
	rules []compiledRule
}

// NewTokenizer compiles the given priority table; a nil slice selects
// DefaultRules.
func NewTokenizer(rules []Rule) (*Tokenizer, error) {
	if rules == nil {
		rules = DefaultRules()
	}
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		re, err := regexp.Compile(`^(?:` + r.Pattern + `)`)
		if err != nil {
			return nil, fmt.Errorf("compile rule %s: %w", r.Type, err)
		}
		compiled = append(compiled, compiledRule{tt: r.Type, re: re})
	}
	return &Tokenizer{rules: compiled}, nil
}

type span struct {
	start, end int
}

// Tokenize scans source left to right, taking at each position the first
// rule that matches. Comment, whitespace, and newline matches advance the
// scan but are dropped from the output. Positions no rule consumes are
// skipped one rune at a time and reported by a second pass; the returned
// errors are never fatal.
func (t *Tokenizer) Tokenize(source string) ([]Token, []string) {
	tokens := []Token{}
	var gaps []span

	pos := 0
	for pos < len(source) {
		tt, length := t.matchAt(source[pos:])
		if length == 0 {
			_, w := utf8.DecodeRuneInString(source[pos:])
			gaps = append(gaps, span{pos, pos + w})
			pos += w
			continue
		}
		literal := source[pos : pos+length]
		pos += length
		switch tt {
		case TokenComment, TokenWhitespace, TokenNewline:
			// Consumed but not part of the token sequence.
		case TokenNumber:
			tokens = append(tokens, Token{Type: tt, Literal: literal, Num: parseNumber(literal)})
		default:
			tokens = append(tokens, Token{Type: tt, Literal: literal})
		}
	}

	return tokens, reportUnrecognized(source, gaps)
}

// matchAt tries every rule in priority order against the remaining input
// and returns the first non-empty hit.
func (t *Tokenizer) matchAt(rest string) (TokenType, int) {
	for _, r := range t.rules {
		if loc := r.re.FindStringIndex(rest); loc != nil && loc[1] > 0 {
			return r.tt, loc[1]
		}
	}
	return "", 0
}

// reportUnrecognized is the independent second pass: every non-space rune
// the primary scan left unconsumed yields one error, in source order.
func reportUnrecognized(source string, gaps []span) []string {
	errs := []string{}
	for _, g := range gaps {
		for _, r := range source[g.start:g.end] {
			if unicode.IsSpace(r) {
				continue
			}
			errs = append(errs, fmt.Sprintf("unrecognized character: %q", r))
		}
	}
	return errs
}

func parseNumber(literal string) Number {
	if strings.ContainsAny(literal, ".Ee") {
		f, _ := strconv.ParseFloat(literal, 64)
		return Number{IsFloat: true, Float: f}
	}
	i, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		// Digit runs past int64 range still need a value.
		f, _ := strconv.ParseFloat(literal, 64)
		return Number{IsFloat: true, Float: f}
	}
	return Number{Int: i}
}
