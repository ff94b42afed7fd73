package redblack

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"

	"github.com/npillmayer/redblack/rbtree"
)

// Set is an ordered container of unique items of type T.
//
// A set keeps its items sorted under the comparator injected at
// construction time. Mutating operations report success as a boolean
// and leave the set untouched on failure; no partial mutation is ever
// observable.
//
// Sets are not safe for concurrent use; callers must serialize access
// externally.
type Set[T any] struct {
	tree *rbtree.Tree[T]
}

// New creates an empty set.
//
// compare defines the total order over items and is required: for items
// a, b it returns a value < 0, 0, or > 0 for a before, equal to, or
// after b. dispose, if non-nil, is called exactly once for every item
// that leaves the set's ownership, on Delete or Destroy.
func New[T any](compare func(a, b T) int, dispose func(item T)) (*Set[T], error) {
	if compare == nil {
		return nil, ErrNoComparator
	}
	tree, err := rbtree.New(rbtree.Config[T]{
		Compare: compare,
		Dispose: dispose,
	})
	if err != nil {
		tracer().Errorf("set creation failed: %v", err)
		return nil, ErrIllegalArguments
	}
	return &Set[T]{tree: tree}, nil
}

// Insert adds an item to the set. It returns false if the set is nil or
// an item comparing equal is already present; the set is unchanged in
// that case. On success the set takes ownership of the item.
func (s *Set[T]) Insert(item T) bool {
	if s == nil {
		return false
	}
	return s.tree.Insert(item)
}

// Delete removes the item comparing equal to item. It returns false if
// the set is nil or the item is absent. On success the disposer has
// been applied to the removed item.
func (s *Set[T]) Delete(item T) bool {
	if s == nil {
		return false
	}
	return s.tree.Delete(item)
}

// Contains reports whether an item comparing equal to item is present.
func (s *Set[T]) Contains(item T) bool {
	if s == nil {
		return false
	}
	return s.tree.Contains(item)
}

// ForEach applies fn to every item in ascending order. Traversal stops
// at the first invocation returning false, and ForEach then reports
// false; otherwise it reports true after visiting every item exactly
// once. fn receives borrowed access to items and must not retain them.
func (s *Set[T]) ForEach(fn func(item T) bool) bool {
	if s == nil {
		return false
	}
	return s.tree.ForEach(fn)
}

// All returns an iterator over all items in ascending order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for item := range s.tree.Items() {
			if !yield(item) {
				return
			}
		}
	}
}

// Min returns the smallest item, or the zero value and false for an
// empty set.
func (s *Set[T]) Min() (T, bool) {
	if s == nil {
		var zero T
		return zero, false
	}
	return s.tree.Min()
}

// Max returns the largest item, or the zero value and false for an
// empty set.
func (s *Set[T]) Max() (T, bool) {
	if s == nil {
		var zero T
		return zero, false
	}
	return s.tree.Max()
}

// Len returns the number of items in the set.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.tree.Len()
}

// IsEmpty reports whether the set has no items.
func (s *Set[T]) IsEmpty() bool {
	return s == nil || s.tree.IsEmpty()
}

// Destroy disposes every item and releases all nodes. The set is empty
// afterwards and may be reused.
func (s *Set[T]) Destroy() {
	if s == nil {
		return
	}
	s.tree.Destroy()
}
