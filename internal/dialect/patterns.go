package dialect

import "headspace/internal/token"

type chainSignal struct {
	Dialect Kind
	Score   int
}

// chainSignals are well-known dotted call targets.
var chainSignals = map[string]chainSignal{
	"fmt.Println":        {Dialect: Go, Score: 6},
	"fmt.Printf":         {Dialect: Go, Score: 6},
	"console.log":        {Dialect: JavaScript, Score: 6},
	"System.out.println": {Dialect: Java, Score: 8},
	"System.out.print":   {Dialect: Java, Score: 8},
	"Console.WriteLine":  {Dialect: DotNet, Score: 8},
	"Console.Write":      {Dialect: DotNet, Score: 8},
	"sys.stdout.write":   {Dialect: Python, Score: 6},
}

// Scanner feeds significant tokens, in source order, into Evidence. It
// tracks a two-token window for operator patterns and the current dotted
// identifier chain.
type Scanner struct {
	ev      *Evidence
	prev    token.Token
	hasPrev bool
	chain   string
	dotted  bool
}

func NewScanner(ev *Evidence) *Scanner {
	return &Scanner{ev: ev}
}

// Observe records evidence for tok. Trivia is skipped but breaks adjacency.
func (s *Scanner) Observe(tok token.Token) {
	if tok.Kind.IsTrivia() {
		s.hasPrev = false
		s.dotted = false
		if tok.Kind == token.Comment {
			s.chain = ""
		}
		return
	}
	if s.hasPrev {
		s.observePair(s.prev, tok)
	}
	s.observeChain(tok)
	if tok.Kind == token.Ident {
		RecordIdent(s.ev, tok.Text)
	}
	s.prev, s.hasPrev = tok, true
}

func (s *Scanner) observePair(prev, tok token.Token) {
	switch {
	case prev.IsSymbol('#') && tok.Kind == token.Ident && (tok.Text == "include" || tok.Text == "define"):
		s.ev.Add(Hint{Dialect: C, Score: 8, Reason: "C preprocessor `#" + tok.Text + "`"})
	case prev.IsSymbol(':') && tok.IsSymbol('='):
		s.ev.Add(Hint{Dialect: Go, Score: 5, Reason: "go short variable declaration `:=`"})
	case prev.IsSymbol('=') && tok.IsSymbol('>'):
		s.ev.Add(Hint{Dialect: JavaScript, Score: 3, Reason: "arrow function `=>`"})
		s.ev.Add(Hint{Dialect: DotNet, Score: 1, Reason: "lambda `=>`"})
	case prev.IsSymbol('-') && tok.IsSymbol('>'):
		s.ev.Add(Hint{Dialect: C, Score: 3, Reason: "C member access `->`"})
	}
}

func (s *Scanner) observeChain(tok token.Token) {
	switch {
	case tok.Kind == token.Ident && s.dotted && s.chain != "":
		s.chain += "." + tok.Text
		s.dotted = false
		if sig, ok := chainSignals[s.chain]; ok {
			s.ev.Add(Hint{Dialect: sig.Dialect, Score: sig.Score, Reason: "call to `" + s.chain + "`"})
		}
	case tok.Kind == token.Ident:
		s.chain = tok.Text
		s.dotted = false
	case tok.IsSymbol('.') && s.chain != "" && s.hasPrev && s.prev.Kind == token.Ident:
		s.dotted = true
	default:
		s.chain = ""
		s.dotted = false
	}
}
