/*
Package sexptree represents S-expressions of the Game Description Language
(GDL) as immutable trees.

Description

General Game Playing systems exchange game rules as S-expression text in
GDL, a dialect of KIF. Reasoners built on logic-programming systems,
however, want the very same rules as Prolog-style clause sets. This
module converts between the two notations:

   raw GDL text → parser.Parse → []sexptree.TreeNode → prolog.Translate

Package sexptree is the core of the module: it provides the tree value
type together with its derived analyses. Sub-package parser turns raw
text into trees, sub-package prolog re-emits trees as Prolog clauses.

A TreeNode is exactly one of two things: a leaf, holding a single
textual value, or a tuple, holding an ordered sequence of child nodes.
GDL's reserved keywords (role, init, true, does, legal, next, goal,
terminal, input, base, or, not, distinct) are case-normalized at leaf
construction time; every other leaf value is preserved verbatim.
Leaf values starting with '?' denote logic variables, and the leaf
value "<=" is the rule connective separating a clause head from its
body literals.

TreeNodes are read-only values. Derived construction, e.g. ReplaceAtoms,
always yields new trees; there is no in-place mutation anywhere in this
module, and all operations are deterministic, pure functions.

Analyses

Besides round-trip rendering (Sexpr), package sexptree computes atom
sets, functor-arity maps and variable argument-position maps over single
trees or whole forests. The argument-position maps record, per variable,
every (functor, argument-index) slot the variable occupies. Two slots
filled by the same variable range over the same value domain; the
same-domain operations derive these slot pairs for rule clauses and feed
the helper-clause synthesis of sub-package prolog.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package sexptree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
