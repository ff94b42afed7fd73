package rbtree

// Insert adds an item to the tree.
//
// It returns false without mutating the tree when the tree is nil or an
// item comparing equal is already present. On success the red-black
// invariants hold again before Insert returns.
func (t *Tree[T]) Insert(item T) bool {
	if t == nil {
		return false
	}
	if t.root == nil {
		t.root = &node[T]{item: item, color: black}
		t.size++
		return true
	}
	n := t.attach(item)
	if n == nil {
		return false // duplicate
	}
	t.fixupInsert(n)
	t.size++
	return true
}

// attach descends from the root and hooks a new red leaf into its BST
// position. Returns nil if an equal item is already present.
func (t *Tree[T]) attach(item T) *node[T] {
	cur := t.root
	for {
		comp := t.cfg.Compare(item, cur.item)
		switch {
		case comp == 0:
			return nil
		case comp < 0:
			if cur.left == nil {
				n := &node[T]{item: item, color: red, parent: cur}
				cur.left = n
				return n
			}
			cur = cur.left
		default:
			if cur.right == nil {
				n := &node[T]{item: item, color: red, parent: cur}
				cur.right = n
				return n
			}
			cur = cur.right
		}
	}
}

// fixupInsert restores the color invariants after attaching a red leaf.
//
// The loop ascends from the new node. A red uncle only recolors and
// moves the violation two levels up; a black or absent uncle ends the
// loop with one of exactly four rotation shapes, selected by the new
// node's side under its parent and the parent's side under the
// grandparent.
func (t *Tree[T]) fixupInsert(n *node[T]) {
	for {
		if n.parent == nil {
			n.color = black
			return
		}
		if n.parent.color == black {
			return
		}
		// Red parent under a black root implies a grandparent.
		grandparent := n.parent.parent
		assert(grandparent != nil, "red parent without grandparent")
		if uncle := n.uncle(); isRed(uncle) {
			n.parent.color = black
			uncle.color = black
			grandparent.color = red
			n = grandparent
			continue
		}
		parentSide := n.parent.sideUnderParent()
		nodeSide := n.sideUnderParent()
		switch {
		case parentSide == leftSide && nodeSide == leftSide:
			// left-left: single right rotation at the grandparent.
			n.parent.color = black
			grandparent.color = red
			t.rotateRight(grandparent)
		case parentSide == leftSide && nodeSide == rightSide:
			// left-right: rotate the parent left, then the grandparent
			// right; n itself ends up on top.
			t.rotateLeft(n.parent)
			n.color = black
			grandparent.color = red
			t.rotateRight(grandparent)
		case parentSide == rightSide && nodeSide == leftSide:
			// right-left: mirror of left-right.
			t.rotateRight(n.parent)
			n.color = black
			grandparent.color = red
			t.rotateLeft(grandparent)
		default:
			// right-right: single left rotation at the grandparent.
			n.parent.color = black
			grandparent.color = red
			t.rotateLeft(grandparent)
		}
		return
	}
}
