package rbtree

import "fmt"

// Check validates the structural red-black invariants.
//
// This checker is intentionally strict and meant for use in tests and
// debugging sessions. It verifies BST order, the color rules, equal
// black-heights, parent/child link consistency and the item count.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree must have size 0, has %d", ErrInvariantViolated, t.size)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent link", ErrInvariantViolated)
	}
	if t.root.color != black {
		return fmt.Errorf("%w: root is not black", ErrInvariantViolated)
	}
	count, _, err := t.checkNode(t.root)
	if err != nil {
		tracer().Errorf("tree check failed: %v", err)
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrInvariantViolated, count, t.size)
	}
	return t.checkOrder()
}

// checkOrder verifies that the in-order item sequence is strictly
// increasing, which catches order violations deeper than one link.
func (t *Tree[T]) checkOrder() error {
	var prev T
	first := true
	ordered := t.ForEach(func(item T) bool {
		if !first && t.cfg.Compare(prev, item) >= 0 {
			return false
		}
		prev = item
		first = false
		return true
	})
	if !ordered {
		return fmt.Errorf("%w: in-order sequence not strictly increasing", ErrInvariantViolated)
	}
	return nil
}

// checkNode validates the subtree under n, returning its item count and
// black-height.
func (t *Tree[T]) checkNode(n *node[T]) (items int, blackHeight int, err error) {
	if n == nil {
		// A conceptual leaf contributes one black node.
		return 0, 1, nil
	}
	if n.left != nil && n.left.parent != n {
		return 0, 0, fmt.Errorf("%w: left child has mismatched parent link", ErrInvariantViolated)
	}
	if n.right != nil && n.right.parent != n {
		return 0, 0, fmt.Errorf("%w: right child has mismatched parent link", ErrInvariantViolated)
	}
	if n.color == red && (isRed(n.left) || isRed(n.right)) {
		return 0, 0, fmt.Errorf("%w: red node has a red child", ErrInvariantViolated)
	}
	if n.left != nil && t.cfg.Compare(n.left.item, n.item) >= 0 {
		return 0, 0, fmt.Errorf("%w: left subtree not smaller", ErrInvariantViolated)
	}
	if n.right != nil && t.cfg.Compare(n.right.item, n.item) <= 0 {
		return 0, 0, fmt.Errorf("%w: right subtree not larger", ErrInvariantViolated)
	}
	leftItems, leftBlack, err := t.checkNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rightItems, rightBlack, err := t.checkNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	if leftBlack != rightBlack {
		return 0, 0, fmt.Errorf("%w: black-height mismatch (%d != %d)", ErrInvariantViolated, leftBlack, rightBlack)
	}
	height := leftBlack
	if n.color == black {
		height++
	}
	return leftItems + rightItems + 1, height, nil
}
