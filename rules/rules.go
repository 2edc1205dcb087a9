/*
Package rules provides named-rule sets for recursive bidirectional grammars.

Description

Grammars are plain values, so a grammar referring to itself — nested
delimited structures are the usual case — cannot be written by direct
composition: the definition would expand forever. A rule set breaks the
cycle with a name. Rule(name) returns a grammar which defers the lookup of
the named grammar until matching or constructing actually happens, so the
reference may be taken before the rule is defined:

   set := rules.NewSet[seq.Text, []node]()
   forest := fresnel.Many(nodeGrammar(set.Rule("forest")))
   set.Define("forest", forest)

Mutually recursive rules work the same way, with one Define per rule.

Rule sets are for the wiring-up phase of a program: Define all rules first,
then match and construct. Evaluating a rule that has not been defined is an
API misuse and panics.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package rules

import (
	"github.com/emirpasic/gods/maps/treemap"

	"github.com/npillmayer/fresnel"
	"github.com/npillmayer/fresnel/internal/tracing"
)

// Set is a collection of named grammars over one sequence type and one
// value type. The zero value is not usable; create sets with NewSet.
type Set[S, A any] struct {
	table *treemap.Map // rule name -> fresnel.Grammar[S, A], sorted by name
}

// NewSet creates an empty rule set.
func NewSet[S, A any]() *Set[S, A] {
	return &Set[S, A]{table: treemap.NewWithStringComparator()}
}

// Define binds a grammar to a rule name, replacing any previous binding.
func (set *Set[S, A]) Define(name string, g fresnel.Grammar[S, A]) {
	set.table.Put(name, g)
}

// Rule returns a grammar standing in for the rule with the given name.
// The name is looked up anew on every match and construct, which is what
// makes recursive and mutually recursive definitions expressible: Rule may
// be called before the corresponding Define.
//
// Matching or constructing through a rule that is never defined panics.
func (set *Set[S, A]) Rule(name string) fresnel.Grammar[S, A] {
	return fresnel.New(
		func(a A, rest S) S {
			return set.lookup(name).Construct(a, rest)
		},
		func(s S) (A, S, bool) {
			return set.lookup(name).Match(s)
		})
}

func (set *Set[S, A]) lookup(name string) fresnel.Grammar[S, A] {
	g, ok := set.table.Get(name)
	if !ok {
		panic("rules.Rule: grammar \"" + name + "\" has not been defined")
	}
	return g.(fresnel.Grammar[S, A])
}

// Names returns the names of all defined rules, sorted alphabetically.
func (set *Set[S, A]) Names() []string {
	names := make([]string, 0, set.table.Size())
	it := set.table.Iterator()
	for it.Next() {
		names = append(names, it.Key().(string))
	}
	return names
}

// Dump traces the rule table, sorted by name.
func (set *Set[S, A]) Dump() {
	tracing.Infof("rule set with %d rule(s):", set.table.Size())
	it := set.table.Iterator()
	for it.Next() {
		tracing.P("rule", it.Key()).Infof("defined")
	}
}
