package rbtree

// Contains reports whether an item comparing equal to item is present.
func (t *Tree[T]) Contains(item T) bool {
	return t.find(item) != nil
}

// find locates the node holding an item equal to item, or nil.
//
// Descent is iterative and bounded by tree height: the comparator
// decides at each node, with a positive result sending the probe into
// the right subtree.
func (t *Tree[T]) find(item T) *node[T] {
	if t == nil {
		return nil
	}
	cur := t.root
	for cur != nil {
		comp := t.cfg.Compare(item, cur.item)
		switch {
		case comp == 0:
			return cur
		case comp < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil
}
