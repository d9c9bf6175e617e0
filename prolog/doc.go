/*
Package prolog re-emits sexptree forests as Prolog clause sets.

Every top-level tree node becomes one clause, terminated by '.' and a
line break, in input order. A tuple headed by the rule connective "<="
renders as "head :- body1, body2, ...", any other tuple as a fact, and
a bare leaf as an atom fact. Variables (leaf values starting with '?')
render as Prolog variables with an underscore prefix; characters that
are neither alphanumeric nor underscore are escaped as "_c<code>_".

Translation is parameterized with functional options: Quoted wraps
atoms and functors in single quotes (required for Prolog dialects that
treat unquoted lowercase-starting tokens specially), AtomPrefix and
FunctorPrefix prepend caller-chosen namespaces, and HelperClauses
appends synthesized clauses describing the rule set itself:
user_defined_functor/2 for every non-reserved functor and its arity,
connected_args/4 for argument slots sharing a variable within a rule
body, and equivalent_args/4 for slots shared between a rule head and
its body. Head/body sharing is the stronger relationship; in-body pairs
already implied by a head/body pair are suppressed. Helper clauses are
emitted in sorted order, so translation output is reproducible
byte-for-byte.

A tree that violates the compound-term shape contract yields a
*sexptree.ShapeError and no output.

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
package prolog

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global syntax tracer.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}
