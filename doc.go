/*
Package redblack offers a generic ordered container backed by a
red-black tree.

# Ordered containers

A red-black tree keeps items sorted under a caller-supplied total order
while guaranteeing logarithmic height through color-based rebalancing.
Sets created by this package support insertion, removal, membership
tests and in-order traversal over arbitrary owned items.

	Operation     |   Set           |  Slice (sorted)
	--------------+-----------------+----------------
	Contains      |   O(log n)      |   O(log n)
	Insert        |   O(log n)      |   O(n)
	Delete        |   O(log n)      |   O(n)
	Iterate       |   O(n)          |   O(n)

The container stores opaque comparable items only; there is no
key/value separation, no persistence and no internal locking. Clients
inject two capabilities at construction time: a comparator defining the
total order, and an optional disposer which the set calls exactly once
for every item that leaves its ownership.

The balancing engine lives in the rbtree sub-package; this package is
the public facade. Package vectors contains an example client computing
the Euclidean-norm-maximal member of a set of numeric sequences.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

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
package redblack

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'redblack'
func tracer() tracing.Trace {
	return tracing.Select("redblack")
}

// SetError is an error type for the redblack module
type SetError string

func (e SetError) Error() string {
	return string(e)
}

// ErrNoComparator is flagged when a set is created without a comparator
// function.
const ErrNoComparator = SetError("cannot create a set without a comparator")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SetError("illegal arguments")
