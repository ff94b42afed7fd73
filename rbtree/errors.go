package rbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrInvalidTree signals an operation on a nil or inconsistent tree.
	ErrInvalidTree = errors.New("rbtree: invalid tree")
	// ErrInvariantViolated signals that a structural check found the tree
	// in a state forbidden by the red-black invariants.
	ErrInvariantViolated = errors.New("rbtree: invariant violated")
)
