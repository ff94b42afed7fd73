/*
Package vectors is an example client of the redblack ordered container.

It stores numeric sequences ("vectors") in a set under a lexicographic
element-by-element order and reduces the set to the member with the
largest Euclidean norm, demonstrating traversal-driven reduction with
borrowed item access.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package vectors

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'redblack'
func tracer() tracing.Trace {
	return tracing.Select("redblack")
}
