/*
Package rbtree provides the red-black tree engine behind the redblack
ordered-container facade.

The package is intentionally not a key/value map. It stores opaque,
owned items under a caller-supplied total order and maintains the
classical red-black invariants:

  - binary-search-tree order without duplicates,
  - no red node has a red child,
  - every root-to-leaf path carries the same number of black nodes,
  - the root, if present, is black,
  - parent links are exact inverses of child links.

Structural mutation is split into the textbook phases: a plain BST
insert/unlink followed by a color fix-up. Both fix-ups are written as
explicit, height-bounded loops rather than recursion. The deletion
fix-up tracks the side of the vacancy under its parent and dispatches
on sibling and nephew colors; nil nodes always read as black.

Current status:
  - item-typed tree with injected comparator and disposer,
  - lookup, insert and delete with full fix-up case coverage,
  - in-order traversal with early exit, iter.Seq range, Min/Max,
  - strict structural invariant checker (`Check`) for tests,
  - Graphviz and console dumps for debugging.

Ownership model:
  - the tree exclusively owns inserted items,
  - the disposer runs exactly once per item leaving the tree,
  - traversal callbacks receive borrowed access only.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'redblack'
func tracer() tracing.Trace {
	return tracing.Select("redblack")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
