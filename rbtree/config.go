package rbtree

import "fmt"

// CompareFunc is a total order over items.
//
// For items a, b it returns a value < 0 if a orders before b, 0 if both
// are equal under the order, and > 0 if a orders after b. The order must
// be consistent and transitive; the tree uses it for every structural
// decision.
type CompareFunc[T any] func(a, b T) int

// DisposeFunc destroys one item that left the tree's ownership.
//
// The tree calls it exactly once per item, on delete or on full-tree
// teardown, and never for an item still logically present.
type DisposeFunc[T any] func(item T)

// Config configures an ordered red-black tree.
type Config[T any] struct {
	// Compare is the total order over items. Required.
	Compare CompareFunc[T]
	// Dispose destroys an item leaving the tree. Optional; defaults to
	// a no-op for items without teardown needs.
	Dispose DisposeFunc[T]
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Dispose == nil {
		cfg.Dispose = func(T) {}
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	return nil
}
