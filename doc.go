/*
Package dynamize turns static containers into dynamic ones.

Dynamization

Some containers can only be built efficiently in bulk: a sorted array, a
static search tree, a perfect hash table. Adding a single item to such a
container means rebuilding it. Dynamization (the "logarithmic method" of
Bentley and Saxe) removes this restriction: items are kept in a small number
of partial containers, called units, which are merged from time to time
according to a placement strategy. With the binary strategies every item
takes part in at most O(log N) merges, so insertion becomes cheap in the
amortized sense while queries scan O(log N) units.

A container type takes part in dynamization by implementing Static:

	Len() int               // logical item count
	MergeWith(other C) C    // consumes both operands

Containers with a natural one-item form may additionally implement
Singleton, which lets Insert build units from single items.

Strategies

Three placement strategies are available, selected by Kind:

	Binary        unit k holds between 2^(k-1)+1 and 2^k items
	SimpleBinary  every new unit starts merging at slot 0, sizes are ignored
	SkewBinary    at most two merges per insertion

Dynamic values are not safe for concurrent use. Read-only operations may run
concurrently with each other if callers synchronize against mutation.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package dynamize

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dynamize'
func tracer() tracing.Trace {
	return tracing.Select("dynamize")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
