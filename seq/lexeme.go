package seq

import (
	"github.com/npillmayer/gorgo/lr/scanner"

	"github.com/npillmayer/fresnel/internal/tracing"
)

// Lexeme is one token as delivered by a lexer: the token's numeric type,
// the token value, and its position and length in the underlying input.
// Token-level grammars usually match on Token and carry Value along.
type Lexeme struct {
	Token int
	Value interface{}
	Pos   uint64
	Len   uint64
}

// Drain reads all tokens from a gorgo Tokenizer, up to but excluding the
// terminal EOF token, and collects them into a token sequence. Grammars
// then operate on the drained sequence; the single-pass evaluation model of
// package fresnel has no way to pull tokens on demand.
func Drain(tz scanner.Tokenizer) Tokens[Lexeme] {
	var toks Tokens[Lexeme]
	for {
		t, v, pos, length := tz.NextToken(scanner.AnyToken)
		if t == scanner.EOF {
			tracing.Debugf("drained %d token(s) from lexer", len(toks))
			return toks
		}
		toks = append(toks, Lexeme{Token: t, Value: v, Pos: pos, Len: length})
	}
}
