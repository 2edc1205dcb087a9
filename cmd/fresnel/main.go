// Command fresnel round-trips text through one of the built-in
// bidirectional grammars: the input is parsed to a value, the value is
// printed back, and both renderings are compared. Exit status is 1 if the
// parse fails or the round trip does not reproduce the input.
//
// Usage:
//
//	fresnel [-g int|word|runs] [-t D|I|E] [text ...]
//
// Text is taken from the arguments, or from stdin if none are given.
package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/pflag"

	"github.com/npillmayer/fresnel"
	"github.com/npillmayer/fresnel/numeral"
	"github.com/npillmayer/fresnel/seq"
)

func main() {
	grammarName := pflag.StringP("grammar", "g", "runs", "grammar to round-trip through: int | word | runs")
	tlevel := pflag.StringP("trace", "t", "E", "trace level: D | I | E")
	pflag.Parse()
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(traceLevel(*tlevel))
	input := seq.Text(readInput(pflag.Args()))
	var ok bool
	switch *grammarName {
	case "int":
		ok = roundTrip(exact(numeral.Int[seq.Text, int64]()), input)
	case "word":
		ok = roundTrip(exact(wordGrammar()), input)
	case "runs":
		ok = roundTrip(exact(runsGrammar()), input)
	default:
		fmt.Fprintf(os.Stderr, "unknown grammar %q\n", *grammarName)
		pflag.Usage()
		os.Exit(2)
	}
	if !ok {
		os.Exit(1)
	}
}

// exact requires a grammar to consume its input completely.
func exact[A any](g fresnel.Grammar[seq.Text, A]) fresnel.Grammar[seq.Text, A] {
	return fresnel.ThenSkip(g, fresnel.EOF[seq.Text, rune]())
}

// wordGrammar matches a single run of letters as a string.
func wordGrammar() fresnel.Grammar[seq.Text, string] {
	return runOf(unicode.IsLetter)
}

// runsGrammar matches any text as alternating runs of letters and
// non-letters, so every input round-trips.
func runsGrammar() fresnel.Grammar[seq.Text, []fresnel.Either[string, string]] {
	letters := runOf(unicode.IsLetter)
	others := runOf(func(r rune) bool { return !unicode.IsLetter(r) })
	return fresnel.Many(fresnel.Choice(letters, others))
}

func runOf(pred func(rune) bool) fresnel.Grammar[seq.Text, string] {
	return fresnel.Map(fresnel.Many1(fresnel.Satisfy[seq.Text](pred)),
		func(n fresnel.NonEmpty[rune]) (string, bool) {
			return string(n.Slice()), true
		},
		func(s string) fresnel.NonEmpty[rune] {
			runes := []rune(s)
			return fresnel.NonEmpty[rune]{Head: runes[0], Tail: runes[1:]}
		})
}

func roundTrip[A any](g fresnel.Grammar[seq.Text, A], input seq.Text) bool {
	value, ok := fresnel.Parse(g, input)
	if !ok {
		fmt.Fprintf(os.Stderr, "input does not parse: %q\n", input)
		return false
	}
	fmt.Printf("parsed:  %v\n", value)
	output := fresnel.Print(g, value)
	fmt.Printf("printed: %q\n", output)
	if output != input {
		fmt.Fprintln(os.Stderr, "round trip does not reproduce the input")
		return false
	}
	return true
}

func readInput(args []string) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}
	data, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return strings.TrimSuffix(string(data), "\n")
}

func traceLevel(l string) tracing.TraceLevel {
	switch l {
	case "D":
		return tracing.LevelDebug
	case "I":
		return tracing.LevelInfo
	case "E":
		return tracing.LevelError
	}
	return tracing.LevelError
}
