package rbtree

// Tree is an ordered container over owned items of type T.
//
// The tree keeps items in a red-black binary search tree under the
// configured total order. All operations are synchronous and
// single-threaded; callers needing concurrent access must provide
// external mutual exclusion.
type Tree[T any] struct {
	cfg  Config[T]
	root *node[T]
	size int
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[T]{cfg: cfg}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// IsEmpty reports whether the tree has no items.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of items in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Destroy disposes every item and releases all nodes.
//
// Each item is passed to the configured disposer exactly once. The tree
// itself is reset to empty and may be reused afterwards.
func (t *Tree[T]) Destroy() {
	if t == nil || t.root == nil {
		return
	}
	tracer().Debugf("destroying tree with %d items", t.size)
	stack := make([]*node[T], 0, 32)
	stack = append(stack, t.root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		t.cfg.Dispose(n.item)
		t.release(n)
	}
	t.root = nil
	t.size = 0
}

// release clears all links of a node leaving the tree. Items must have
// been disposed by the caller.
func (t *Tree[T]) release(n *node[T]) {
	var zero T
	n.item = zero
	n.parent, n.left, n.right = nil, nil, nil
}

// replaceChild rehooks the link from n's parent (or the root slot) to
// point at c instead of n. c may be nil. c's parent link is updated.
func (t *Tree[T]) replaceChild(n, c *node[T]) {
	if n.parent == nil {
		t.root = c
	} else {
		n.parent.setChild(n.sideUnderParent(), c)
	}
	if c != nil {
		c.parent = n.parent
	}
}
