package mlang

import (
	"testing"
)

func tokenizeDefault(t *testing.T, source string) ([]Token, []string) {
	t.Helper()
	tok, err := NewTokenizer(nil)
	if err != nil {
		t.Fatalf("NewTokenizer failed: %v", err)
	}
	return tok.Tokenize(source)
}

func requireTypes(t *testing.T, tokens []Token, want ...TokenType) {
	t.Helper()
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Fatalf("token %d: expected %s, got %s", i, tt, tokens[i])
		}
	}
}

func TestTokenizeDeclaration(t *testing.T) {
	tokens, errs := tokenizeDefault(t, "{ let x = 10 ; }")
	if len(errs) != 0 {
		t.Fatalf("unexpected lexical errors: %v", errs)
	}
	requireTypes(t, tokens,
		TokenDelimiter, TokenKeyword, TokenIdentifier, TokenAssign,
		TokenNumber, TokenDelimiter, TokenDelimiter)
	if tokens[1].Literal != "let" || tokens[2].Literal != "x" {
		t.Fatalf("unexpected literals: %v", tokens)
	}
	num := tokens[4].Num
	if num.IsFloat || num.Int != 10 {
		t.Fatalf("expected integer 10, got %#v", num)
	}
}

func TestTokenizeNumberClassification(t *testing.T) {
	cases := []struct {
		literal string
		isFloat bool
		intVal  int64
		fltVal  float64
	}{
		{"10", false, 10, 0},
		{"10.5", true, 0, 10.5},
		{"1E3", true, 0, 1000},
		{"2e-1", true, 0, 0.2},
	}
	for _, tc := range cases {
		tokens, errs := tokenizeDefault(t, tc.literal)
		if len(errs) != 0 {
			t.Fatalf("%s: unexpected errors %v", tc.literal, errs)
		}
		requireTypes(t, tokens, TokenNumber)
		num := tokens[0].Num
		if num.IsFloat != tc.isFloat {
			t.Fatalf("%s: IsFloat = %v", tc.literal, num.IsFloat)
		}
		if tc.isFloat && num.Float != tc.fltVal {
			t.Fatalf("%s: float value %v", tc.literal, num.Float)
		}
		if !tc.isFloat && num.Int != tc.intVal {
			t.Fatalf("%s: int value %v", tc.literal, num.Int)
		}
	}
}

func TestTokenizeDropsWhitespaceNewlinesComments(t *testing.T) {
	tokens, errs := tokenizeDefault(t, "let /* note */ x\n\toutput")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	requireTypes(t, tokens, TokenKeyword, TokenIdentifier, TokenKeyword)
}

func TestTokenizeUnrecognizedCharacter(t *testing.T) {
	tokens, errs := tokenizeDefault(t, "let $z = 30 ;")
	if len(errs) != 1 {
		t.Fatalf("expected one lexical error, got %v", errs)
	}
	if errs[0] != `unrecognized character: '$'` {
		t.Fatalf("unexpected error text: %q", errs[0])
	}
	// The $ is skipped; everything around it still tokenizes.
	requireTypes(t, tokens,
		TokenKeyword, TokenIdentifier, TokenAssign, TokenNumber, TokenDelimiter)
	if tokens[1].Literal != "z" {
		t.Fatalf("expected identifier z, got %s", tokens[1])
	}
}

func TestTokenizeUnrecognizedPerOccurrence(t *testing.T) {
	_, errs := tokenizeDefault(t, "$ x $")
	if len(errs) != 2 {
		t.Fatalf("expected two lexical errors, got %v", errs)
	}
}

func TestTokenizePriorityDigitLedSuffixSplits(t *testing.T) {
	// The generic number rule outranks the suffixed numeric literals, so a
	// digit-led literal like 10h splits into a number and an identifier.
	tokens, errs := tokenizeDefault(t, "10h")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	requireTypes(t, tokens, TokenNumber, TokenIdentifier)
	if tokens[1].Literal != "h" {
		t.Fatalf("unexpected trailing token: %s", tokens[1])
	}

	tokens, _ = tokenizeDefault(t, "01b")
	requireTypes(t, tokens, TokenNumber, TokenIdentifier)
	if tokens[0].Literal != "01" || tokens[1].Literal != "b" {
		t.Fatalf("unexpected split: %v", tokens)
	}
}

func TestTokenizeLetterLedHexLiteral(t *testing.T) {
	// Letter-led hex literals do not collide with the number rule and win
	// over the identifier rule.
	tokens, errs := tokenizeDefault(t, "Ah")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	requireTypes(t, tokens, TokenHexNumber)
	if tokens[0].Literal != "Ah" {
		t.Fatalf("unexpected literal: %q", tokens[0].Literal)
	}
}

func TestTokenizeKeywordBoundary(t *testing.T) {
	tokens, _ := tokenizeDefault(t, "letx let")
	requireTypes(t, tokens, TokenIdentifier, TokenKeyword)
	if tokens[0].Literal != "letx" {
		t.Fatalf("unexpected literal: %q", tokens[0].Literal)
	}
}

func TestTokenizeWordOperatorsResolveAsIdentifiers(t *testing.T) {
	// The identifier rule outranks the operator word forms, so or/and/not
	// come out as identifiers under the default priority order.
	tokens, _ := tokenizeDefault(t, "or and not")
	requireTypes(t, tokens, TokenIdentifier, TokenIdentifier, TokenIdentifier)
}

func TestTokenizeOperatorsAndDelimiters(t *testing.T) {
	tokens, errs := tokenizeDefault(t, "< <= > >= = + - * / { } ( ) ; ,")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	requireTypes(t, tokens,
		TokenRelOp, TokenRelOp, TokenRelOp, TokenRelOp, TokenAssign,
		TokenAddOp, TokenAddOp, TokenMulOp, TokenMulOp,
		TokenDelimiter, TokenDelimiter, TokenDelimiter, TokenDelimiter,
		TokenDelimiter, TokenDelimiter)
	if tokens[1].Literal != "<=" || tokens[3].Literal != ">=" {
		t.Fatalf("relational operators mis-tokenized: %v", tokens[:4])
	}
}

func TestTokenizeCustomRuleOrder(t *testing.T) {
	// Moving the hex rule ahead of the generic number rule flips how a
	// digit-led suffixed literal resolves.
	rules := DefaultRules()
	var reordered []Rule
	var hex Rule
	for _, r := range rules {
		if r.Type == TokenHexNumber {
			hex = r
			continue
		}
		reordered = append(reordered, r)
	}
	reordered = append([]Rule{hex}, reordered...)

	tok, err := NewTokenizer(reordered)
	if err != nil {
		t.Fatalf("NewTokenizer failed: %v", err)
	}
	tokens, _ := tok.Tokenize("10h")
	requireTypes(t, tokens, TokenHexNumber)
	if tokens[0].Literal != "10h" {
		t.Fatalf("unexpected literal: %q", tokens[0].Literal)
	}
}

func TestNewTokenizerRejectsBadPattern(t *testing.T) {
	_, err := NewTokenizer([]Rule{{Type: TokenNumber, Pattern: "("}})
	if err == nil {
		t.Fatalf("expected compile error")
	}
}
