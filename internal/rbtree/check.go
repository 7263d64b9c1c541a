package rbtree

import "fmt"

// Check walks the whole tree and verifies key order, coloring, black
// heights, parent links and the node count. It returns an error wrapping
// ErrCorrupt for the first violation found.
func (t *Tree[K, V]) Check() error {
	if t.root == nil {
		if t.count != 0 {
			return fmt.Errorf("%w: empty tree with count %d", ErrCorrupt, t.count)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root %v has a parent", ErrCorrupt, t.root.key)
	}
	if t.root.color != black {
		return fmt.Errorf("%w: root %v is red", ErrCorrupt, t.root.key)
	}

	count, _, err := t.check(t.root)
	if err != nil {
		return err
	}
	if count != t.count {
		return fmt.Errorf("%w: counted %d nodes, tree reports %d", ErrCorrupt, count, t.count)
	}

	prev := t.root.min()
	for n := prev.successor(); n != nil; n = n.successor() {
		if t.compare(prev.key, n.key) >= 0 {
			return fmt.Errorf("%w: key %v not below successor %v", ErrCorrupt, prev.key, n.key)
		}
		prev = n
	}
	return nil
}

// check returns the node count and black height of the sub-tree at n.
func (t *Tree[K, V]) check(n *Node[K, V]) (int, int, error) {
	if n == nil {
		return 0, 1, nil
	}
	if n.color == red && (colorOf(n.left) == red || colorOf(n.right) == red) {
		return 0, 0, fmt.Errorf("%w: red node %v has a red child", ErrCorrupt, n.key)
	}
	if n.left != nil && n.left.parent != n {
		return 0, 0, fmt.Errorf("%w: left child of %v has a stale parent link", ErrCorrupt, n.key)
	}
	if n.right != nil && n.right.parent != n {
		return 0, 0, fmt.Errorf("%w: right child of %v has a stale parent link", ErrCorrupt, n.key)
	}

	lc, lh, err := t.check(n.left)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := t.check(n.right)
	if err != nil {
		return 0, 0, err
	}
	if lh != rh {
		return 0, 0, fmt.Errorf("%w: black heights %d and %d differ below %v", ErrCorrupt, lh, rh, n.key)
	}
	if n.color == black {
		lh++
	}
	return lc + rc + 1, lh, nil
}
