package seq_test

import (
	"testing"

	"github.com/npillmayer/gorgo/lr/scanner"

	"github.com/npillmayer/fresnel/internal/tracing"
	"github.com/npillmayer/fresnel/seq"
)

func TestText(t *testing.T) {
	tracing.SetTestingLog(t)
	r, rest, ok := seq.Text("개=GAE").Uncons()
	if !ok || r != '개' || rest != "=GAE" {
		t.Errorf("Expected ('개', \"=GAE\"), is (%q, %q, %v)", r, rest, ok)
	}
	if _, _, ok = seq.Text("").Uncons(); ok {
		t.Error("Expected uncons of empty text to fail")
	}
	if s := seq.Text("bc").Cons('a'); s != "abc" {
		t.Errorf("Expected \"abc\", is %q", s)
	}
	if s := seq.Text("x").Empty(); s != "" {
		t.Errorf("Expected the empty text, is %q", s)
	}
}

func TestTextMalformed(t *testing.T) {
	tracing.SetTestingLog(t)
	r, rest, ok := seq.Text("\xffab").Uncons()
	if !ok || r != '�' {
		t.Errorf("Expected the replacement rune for a malformed byte, is (%q, %v)", r, ok)
	}
	if rest != "ab" {
		t.Errorf("Expected a one-byte step over the malformed byte, remainder is %q", rest)
	}
}

func TestBytes(t *testing.T) {
	tracing.SetTestingLog(t)
	b := seq.Bytes{1, 2, 3}
	head, rest, ok := b.Uncons()
	if !ok || head != 1 || len(rest) != 2 {
		t.Errorf("Expected (1, [2 3]), is (%d, %v, %v)", head, rest, ok)
	}
	if _, _, ok = seq.Bytes(nil).Uncons(); ok {
		t.Error("Expected uncons of an empty buffer to fail")
	}
	consed := rest.Cons(9)
	if len(consed) != 3 || consed[0] != 9 {
		t.Errorf("Expected [9 2 3], is %v", consed)
	}
	// the original buffer is untouched; sequences are read-only values
	if b[0] != 1 || b[1] != 2 {
		t.Errorf("Expected the original buffer to be unshared, is %v", b)
	}
}

func TestTokens(t *testing.T) {
	tracing.SetTestingLog(t)
	toks := seq.Tokens[string]{"let", "x"}
	head, rest, ok := toks.Uncons()
	if !ok || head != "let" || len(rest) != 1 {
		t.Errorf("Expected (\"let\", [x]), is (%q, %v, %v)", head, rest, ok)
	}
	consed := rest.Cons("const")
	if len(consed) != 2 || consed[0] != "const" || consed[1] != "x" {
		t.Errorf("Expected [const x], is %v", consed)
	}
	if _, _, ok = seq.Tokens[string](nil).Uncons(); ok {
		t.Error("Expected uncons of an empty token list to fail")
	}
}

// listTokenizer is a canned gorgo tokenizer for testing Drain.
type listTokenizer struct {
	toks []seq.Lexeme
	next int
}

func (tz *listTokenizer) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	if tz.next >= len(tz.toks) {
		return scanner.EOF, nil, 0, 0
	}
	tok := tz.toks[tz.next]
	tz.next++
	return tok.Token, tok.Value, tok.Pos, tok.Len
}

func (tz *listTokenizer) SetErrorHandler(h func(error)) {}

func TestDrain(t *testing.T) {
	tracing.SetTestingLog(t)
	tz := &listTokenizer{toks: []seq.Lexeme{
		{Token: 10, Value: "let", Pos: 0, Len: 3},
		{Token: 20, Value: "x", Pos: 4, Len: 1},
	}}
	toks := seq.Drain(tz)
	if len(toks) != 2 {
		t.Fatalf("Expected 2 drained tokens, have %d", len(toks))
	}
	if toks[0].Token != 10 || toks[0].Value != "let" {
		t.Errorf("Expected token (10, \"let\"), is (%d, %v)", toks[0].Token, toks[0].Value)
	}
	if toks[1].Pos != 4 || toks[1].Len != 1 {
		t.Errorf("Expected position (4, 1), is (%d, %d)", toks[1].Pos, toks[1].Len)
	}
}
