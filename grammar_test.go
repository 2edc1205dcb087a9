package fresnel_test

import (
	"testing"
	"unicode"

	"github.com/npillmayer/fresnel"
	"github.com/npillmayer/fresnel/internal/tracing"
	"github.com/npillmayer/fresnel/seq"
)

// checkLaws verifies the two prism laws for a grammar on a set of inputs:
// reconstructing from a successful match reproduces the input, and anything
// just constructed matches back to exactly what built it.
func checkLaws[A comparable](t *testing.T, g fresnel.Grammar[seq.Text, A], inputs ...seq.Text) {
	t.Helper()
	for _, s := range inputs {
		a, rest, ok := g.Match(s)
		if !ok {
			continue
		}
		if back := g.Construct(a, rest); back != s {
			t.Errorf("Expected construct(%v, %q) to be %q, is %q", a, rest, s, back)
		}
		a2, rest2, ok2 := g.Match(g.Construct(a, rest))
		if !ok2 || a2 != a || rest2 != rest {
			t.Errorf("Expected construct(%v, %q) to match back, got (%v, %q, %v)",
				a, rest, a2, rest2, ok2)
		}
	}
}

func TestElement(t *testing.T) {
	tracing.SetTestingLog(t)
	g := fresnel.Element[seq.Text, rune]()
	r, rest, ok := g.Match("abc")
	if !ok || r != 'a' || rest != "bc" {
		t.Errorf("Expected element match to be ('a', \"bc\"), is (%q, %q, %v)", r, rest, ok)
	}
	if _, rest, ok = g.Match(""); ok || rest != "" {
		t.Error("Expected element match on empty input to fail")
	}
	checkLaws(t, g, "a", "abc", "개=Hang")
}

func TestSatisfy(t *testing.T) {
	tracing.SetTestingLog(t)
	g := fresnel.Satisfy[seq.Text](unicode.IsDigit)
	if d, rest, ok := g.Match("12"); !ok || d != '1' || rest != "2" {
		t.Errorf("Expected digit match to be ('1', \"2\"), is (%q, %q, %v)", d, rest, ok)
	}
	if _, rest, ok := g.Match("x2"); ok || rest != "x2" {
		t.Errorf("Expected failed satisfy to return the original input, is %q", rest)
	}
	checkLaws(t, g, "1", "12x")
	// construct does not re-check the predicate
	if s := g.Construct('x', "2"); s != "x2" {
		t.Errorf("Expected construct to trust the caller, is %q", s)
	}
}

func TestSymbol(t *testing.T) {
	tracing.SetTestingLog(t)
	g := fresnel.Symbol[seq.Text]('a')
	if _, _, ok := g.Match("abc"); !ok {
		t.Error("Expected symbol 'a' to match \"abc\"")
	}
	if _, rest, ok := g.Match("bc"); ok || rest != "bc" {
		t.Error("Expected symbol 'a' to fail on \"bc\", leaving the input untouched")
	}
	checkLaws(t, g, "a", "ab")
}

func TestLiteral(t *testing.T) {
	tracing.SetTestingLog(t)
	g := fresnel.Literal[seq.Text]('(')
	u, rest, ok := g.Match("(x")
	if !ok || u != (fresnel.Unit{}) || rest != "x" {
		t.Errorf("Expected literal to match \"(x\" with remainder \"x\", is (%q, %v)", rest, ok)
	}
	if _, rest, ok = g.Match("x"); ok || rest != "x" {
		t.Error("Expected literal to fail on \"x\", leaving the input untouched")
	}
	if s := g.Construct(fresnel.Unit{}, "x"); s != "(x" {
		t.Errorf("Expected construct to write the literal, is %q", s)
	}
	checkLaws(t, g, "(", "()")
}

func TestEOF(t *testing.T) {
	tracing.SetTestingLog(t)
	g := fresnel.EOF[seq.Text, rune]()
	if _, ok := fresnel.Parse(g, ""); !ok {
		t.Error("Expected EOF to match empty input")
	}
	if _, ok := fresnel.Parse(g, "x"); ok {
		t.Error("Expected EOF to fail on non-empty input")
	}
	if s := fresnel.Print(g, fresnel.Unit{}); s != "" {
		t.Errorf("Expected EOF to print nothing, is %q", s)
	}
	checkLaws(t, g, "")
}

func TestParseDiscardsRemainder(t *testing.T) {
	tracing.SetTestingLog(t)
	g := fresnel.Symbol[seq.Text]('a')
	if r, ok := fresnel.Parse(g, "abc"); !ok || r != 'a' {
		t.Errorf("Expected parse to succeed on a partial match, is (%q, %v)", r, ok)
	}
	exact := fresnel.ThenSkip(g, fresnel.EOF[seq.Text, rune]())
	if _, ok := fresnel.Parse(exact, "abc"); ok {
		t.Error("Expected parse with explicit EOF to reject leftover input")
	}
}

func TestPrintOnBytesAndTokens(t *testing.T) {
	tracing.SetTestingLog(t)
	gb := fresnel.Symbol[seq.Bytes](byte(0x1f))
	if b := fresnel.Print(gb, byte(0x1f)); len(b) != 1 || b[0] != 0x1f {
		t.Errorf("Expected print over bytes to be [0x1f], is %v", b)
	}
	gt := fresnel.Symbol[seq.Tokens[int]](42)
	if toks := fresnel.Print(gt, 42); len(toks) != 1 || toks[0] != 42 {
		t.Errorf("Expected print over tokens to be [42], is %v", toks)
	}
}
