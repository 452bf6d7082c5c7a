package mlang

import "strconv"

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	TokenComment    TokenType = "COMMENT"
	TokenNumber     TokenType = "NUMBER"
	TokenBinNumber  TokenType = "BIN_NUMBER"
	TokenOctNumber  TokenType = "OCT_NUMBER"
	TokenDecNumber  TokenType = "DEC_NUMBER"
	TokenHexNumber  TokenType = "HEX_NUMBER"
	TokenKeyword    TokenType = "KEYWORD"
	TokenIdentifier TokenType = "IDENTIFIER"
	TokenAssign     TokenType = "ASSIGN"
	TokenRelOp      TokenType = "REL_OP"
	TokenAddOp      TokenType = "ADD_OP"
	TokenMulOp      TokenType = "MUL_OP"
	TokenUnaryOp    TokenType = "UNARY_OP"
	TokenDelimiter  TokenType = "DELIMITER"
	TokenWhitespace TokenType = "WHITESPACE"
	TokenNewline    TokenType = "NEWLINE"
)

// Token captures lexical information for the parser. Num carries the
// parsed numeric payload and is only meaningful when Type is TokenNumber.
type Token struct {
	Type    TokenType
	Literal string
	Num     Number
}

// ValueString renders the token payload: the numeric value for NUMBER
// tokens, the matched text for everything else.
func (t Token) ValueString() string {
	if t.Type == TokenNumber {
		return t.Num.String()
	}
	return t.Literal
}

func (t Token) String() string {
	return string(t.Type) + "(" + t.ValueString() + ")"
}

// Number is a numeric token payload, integer or floating-point. A literal
// classifies as floating-point when it contains a decimal point or an
// exponent marker.
type Number struct {
	IsFloat bool
	Int     int64
	Float   float64
}

func (n Number) String() string {
	if n.IsFloat {
		return strconv.FormatFloat(n.Float, 'g', -1, 64)
	}
	return strconv.FormatInt(n.Int, 10)
}
