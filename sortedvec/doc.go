/*
Package sortedvec provides dynamized sorted arrays.

A SortedVec is a static container: an ascending array which is cheap to
merge with another one but expensive to insert into. Dynamizing it with
package dynamize yields two useful containers:

  - SVQueue, a max-priority queue. The maximum of every unit is its last
    element, so peeking scans O(log N) units.
  - SVMap, an associative array. Lookups binary-search every unit; removal
    leaves a tombstone which is purged by a periodic rebuild.

Items of an ordered type are compared with cmp.Compare, so floating point
NaNs sort below every other value and equal each other. Other item types
bring their own comparator: see NewFunc, NewSVQueueFunc and NewSVMapFunc.

Neither container is safe for concurrent use.

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
package sortedvec

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
