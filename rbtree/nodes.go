package rbtree

// Color values follow the usual encoding where the zero value is red,
// matching the color of freshly attached leaves.
type color bool

const (
	red   color = false
	black color = true
)

// side names a child slot under a parent. The deletion fix-up tracks the
// side of a vacancy with it.
type side uint8

const (
	leftSide side = iota
	rightSide
)

func (s side) opposite() side {
	if s == leftSide {
		return rightSide
	}
	return leftSide
}

// node is one tree cell. It owns its item and its children; the parent
// link is a plain back-reference without ownership.
type node[T any] struct {
	item                T
	parent, left, right *node[T]
	color               color
}

// isRed and isBlack treat nil as black, the color of conceptual leaves.
func isRed[T any](n *node[T]) bool {
	return n != nil && n.color == red
}

func isBlack[T any](n *node[T]) bool {
	return n == nil || n.color == black
}

func (n *node[T]) child(s side) *node[T] {
	if s == leftSide {
		return n.left
	}
	return n.right
}

func (n *node[T]) setChild(s side, c *node[T]) {
	if s == leftSide {
		n.left = c
	} else {
		n.right = c
	}
}

// sideUnderParent identifies the child slot by pointer identity, never
// through the comparator.
func (n *node[T]) sideUnderParent() side {
	assert(n.parent != nil, "sideUnderParent called on a root node")
	if n.parent.left == n {
		return leftSide
	}
	assert(n.parent.right == n, "parent link does not match any child link")
	return rightSide
}

func (n *node[T]) sibling() *node[T] {
	if n.parent == nil {
		return nil
	}
	return n.parent.child(n.sideUnderParent().opposite())
}

// uncle returns the parent's sibling, or nil for absent kin.
func (n *node[T]) uncle() *node[T] {
	if n.parent == nil || n.parent.parent == nil {
		return nil
	}
	return n.parent.sibling()
}

// minNode returns the leftmost node of a non-nil subtree.
func minNode[T any](n *node[T]) *node[T] {
	assert(n != nil, "minNode called with nil subtree")
	for n.left != nil {
		n = n.left
	}
	return n
}

// maxNode returns the rightmost node of a non-nil subtree.
func maxNode[T any](n *node[T]) *node[T] {
	assert(n != nil, "maxNode called with nil subtree")
	for n.right != nil {
		n = n.right
	}
	return n
}
