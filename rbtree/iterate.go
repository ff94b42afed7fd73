package rbtree

import "iter"

// ForEach applies fn to every item in ascending comparator order.
//
// If any invocation returns false, traversal stops immediately and
// ForEach reports false; otherwise it reports true after visiting every
// item exactly once. An empty tree trivially succeeds with zero visits.
// Traversal is read-only with respect to the tree structure; fn
// receives borrowed access to the item.
func (t *Tree[T]) ForEach(fn func(item T) bool) bool {
	if t == nil || fn == nil {
		return false
	}
	// In-order walk with an explicit stack, bounded by tree height.
	stack := make([]*node[T], 0, 32)
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur.item) {
			return false
		}
		cur = cur.right
	}
	return true
}

// Items returns an iterator over all items in ascending order.
func (t *Tree[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.ForEach(func(item T) bool {
			return yield(item)
		})
	}
}

// Min returns the smallest item, or the zero value and false for an
// empty tree.
func (t *Tree[T]) Min() (T, bool) {
	if t == nil || t.root == nil {
		var zero T
		return zero, false
	}
	return minNode(t.root).item, true
}

// Max returns the largest item, or the zero value and false for an
// empty tree.
func (t *Tree[T]) Max() (T, bool) {
	if t == nil || t.root == nil {
		var zero T
		return zero, false
	}
	return maxNode(t.root).item, true
}
