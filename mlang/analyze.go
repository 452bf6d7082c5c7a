package mlang

// Config adjusts how an Analyzer tokenizes its input. A nil Rules slice
// selects DefaultRules.
type Config struct {
	Rules []Rule
}

// Analyzer sequences the three analysis phases over source text. It
// holds no per-run state, so a single Analyzer may serve concurrent
// Analyze calls.
type Analyzer struct {
	tokenizer *Tokenizer
}

// Result bundles the output of every phase. It is always complete and
// well formed, even when a phase failed.
type Result struct {
	Tokens        []Token
	LexicalErrors []string
	Parse         ParseResult
	Semantic      SemanticResult
}

func NewAnalyzer(cfg Config) (*Analyzer, error) {
	tok, err := NewTokenizer(cfg.Rules)
	if err != nil {
		return nil, err
	}
	return &Analyzer{tokenizer: tok}, nil
}

// MustNewAnalyzer panics when the configuration is invalid; intended for
// configurations known to be well formed.
func MustNewAnalyzer(cfg Config) *Analyzer {
	a, err := NewAnalyzer(cfg)
	if err != nil {
		panic(err)
	}
	return a
}

// Analyze runs tokenizer, parser, and semantic checker in order. Each
// call constructs fresh per-run state and returns it; nothing is shared
// across calls.
func (a *Analyzer) Analyze(source string) Result {
	tokens, lexicalErrors := a.tokenizer.Tokenize(source)
	parse := Parse(tokens)
	semantic := Check(lexicalErrors, parse, tokens)
	return Result{
		Tokens:        tokens,
		LexicalErrors: lexicalErrors,
		Parse:         parse,
		Semantic:      semantic,
	}
}

var defaultAnalyzer = MustNewAnalyzer(Config{})

// Analyze runs the default analyzer over source.
func Analyze(source string) Result {
	return defaultAnalyzer.Analyze(source)
}
