package rbtree

// Delete removes the item comparing equal to item from the tree.
//
// It returns false without mutating the tree when the tree is nil or
// the item is absent. On success the removed item has been passed to
// the disposer exactly once and the red-black invariants hold again.
func (t *Tree[T]) Delete(item T) bool {
	if t == nil || t.root == nil {
		return false
	}
	n := t.find(item)
	if n == nil {
		return false
	}
	if n.left != nil && n.right != nil {
		// Swap the stored item with the in-order successor's and remove
		// the successor node instead. This guarantees the physically
		// removed node has at most one child.
		succ := minNode(n.right)
		n.item, succ.item = succ.item, n.item
		n = succ
	}
	t.removeNode(n)
	t.size--
	return true
}

// removeNode unlinks a node with at most one child and restores the
// color invariants. The node's item is disposed and its links cleared.
func (t *Tree[T]) removeNode(n *node[T]) {
	assert(n.left == nil || n.right == nil, "removeNode requires at most one child")
	switch {
	case n.color == red:
		// A red node with a single child would break the black-height
		// invariant, so a red removal candidate is always a leaf.
		assert(n.left == nil && n.right == nil, "red node with a child")
		t.replaceChild(n, nil)
	case n.left != nil || n.right != nil:
		// Black with one child: the child must be red; splicing it in
		// and recoloring it black preserves the black-height. Covers
		// the root case by promoting the child as new black root.
		child := n.left
		if child == nil {
			child = n.right
		}
		assert(isRed(child), "single child of a black node must be red")
		t.replaceChild(n, child)
		child.color = black
	default:
		// Black leaf: removing it leaves a double-black deficiency at
		// the vacated position.
		parent := n.parent
		if parent == nil {
			t.root = nil
		} else {
			vacancy := n.sideUnderParent()
			parent.setChild(vacancy, nil)
			t.fixupDelete(parent, vacancy)
		}
	}
	t.cfg.Dispose(n.item)
	t.release(n)
}

// fixupDelete eliminates a double-black deficiency on the given side
// under parent.
//
// The loop dispatches on the sibling's and nephews' colors; nil nodes
// read as black. It terminates at the root, at a red parent, or through
// the terminal far-nephew rotation. Ascent is bounded by tree height.
func (t *Tree[T]) fixupDelete(parent *node[T], vacancy side) {
	for {
		sib := parent.child(vacancy.opposite())
		if isRed(sib) {
			// Red sibling: rotate it over the parent and re-dispatch at
			// the same parent, which now has a black sibling below it.
			sib.color = black
			parent.color = red
			t.rotate(parent, vacancy)
			continue
		}
		// A deficiency implies a sibling subtree of positive
		// black-height, so a black sibling node must exist.
		assert(sib != nil, "double-black deficiency without sibling")
		near := sib.child(vacancy)
		far := sib.child(vacancy.opposite())
		switch {
		case isBlack(near) && isBlack(far):
			// Recoloring the sibling red balances the two subtrees
			// locally. A red parent absorbs the deficiency; a black
			// parent propagates it one level up.
			sib.color = red
			if parent.color == red {
				parent.color = black
				return
			}
			if parent.parent == nil {
				return
			}
			vacancy = parent.sideUnderParent()
			parent = parent.parent
		case isRed(near) && isBlack(far):
			// Rotate the near nephew into the sibling's place, reducing
			// to the far-nephew-red case.
			near.color = black
			sib.color = red
			t.rotate(sib, vacancy.opposite())
		default:
			// Far nephew red: terminal case.
			sib.color = parent.color
			parent.color = black
			far.color = black
			t.rotate(parent, vacancy)
			return
		}
	}
}
