/*
Package lalrgen implements the analytical core of an LALR(1) parser table
generator: the transformation from a canonicalized grammar into a pair of
compact shift-reduce driving tables.

The pipeline is strictly layered, one subpackage per stage:

■ grammar: canonical symbol numbering, rule storage, nullability and
derivation sets.

■ lr0: construction of the characteristic finite-state machine (the LR(0)
automaton) via item-set closure and goto.

■ lalr: LALR(1) lookahead sets, computed with the DeRemer–Pennello digraph
algorithm over the goto relation.

■ action: fusion of shifts and lookahead-indexed reductions into per-state
action rows, precedence-based conflict resolution, default reductions.

■ pack: compression of the sparse per-state action/goto vectors into shared
base/check/table arrays.

Each stage consumes only the immutable output of its predecessor; a
Generator (package generator) owns the whole run and releases every
stage's arena when it completes or aborts.

This package does not lex grammar source, does not emit generated parser
code, and does not implement GLR or backtracking search — see the
project's specification document for the precise boundary.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright (c) 2024, The lalrgen Authors
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
package lalrgen

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global syntax tracer.
func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
