// Package mlang implements the front end of a small imperative teaching
// language: a tokenizer driven by a fixed-priority rule table, a
// recursive-descent parser that builds a symbol table, and a semantic
// checker for declared-before-use and value-type classification. The
// three phases are sequenced by Analyze, which always returns a complete
// Result even when a phase fails.
//
// The language:
//   - Programs are brace-delimited blocks of declarations and statements.
//   - `let name = expr;` declares a variable; `name = expr;` assigns.
//   - Statements: if/then/else conditionals, fixed loops, do/while loops,
//     input, output, and nested compound blocks.
//   - Expressions are a single identifier or number, optionally compared
//     with <, >, <= or >= against another expression (right recursive).
//
// Comments are `/* ... */`. The additive, multiplicative, and unary
// operator categories exist in the lexicon but are not consumed by the
// expression grammar: at most one relational level per expression and no
// arithmetic composition. Parsing is fail fast; the first unmet
// expectation aborts the parse with no recovery.
package mlang
