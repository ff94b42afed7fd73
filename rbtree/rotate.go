package rbtree

// rotate performs a tree rotation at pivot in the given direction.
// dir=leftSide rotates left, dir=rightSide rotates right.
//
// Left rotation:
//
//	  X              Y
//	A   Y    =>    X   C
//	  B C        A B
//
// Right rotation:
//
//	    Y            X
//	  X   C  =>    A   Y
//	A B              B C
//
// The rotated-up child takes pivot's place under pivot's parent, or
// becomes the new root. Colors are not touched; callers recolor.
func (t *Tree[T]) rotate(pivot *node[T], dir side) {
	up := pivot.child(dir.opposite())
	assert(up != nil, "rotate requires a child opposite the rotation direction")

	// Move the inner subtree across.
	inner := up.child(dir)
	pivot.setChild(dir.opposite(), inner)
	if inner != nil {
		inner.parent = pivot
	}

	// Hand pivot's slot to the rotated-up node.
	up.parent = pivot.parent
	if pivot.parent == nil {
		t.root = up
	} else {
		pivot.parent.setChild(pivot.sideUnderParent(), up)
	}

	up.setChild(dir, pivot)
	pivot.parent = up
}

func (t *Tree[T]) rotateLeft(pivot *node[T]) {
	t.rotate(pivot, leftSide)
}

func (t *Tree[T]) rotateRight(pivot *node[T]) {
	t.rotate(pivot, rightSide)
}
