package rbtree

type color bool

const (
	red   color = true
	black color = false
)

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

// Node is a single entry of a Tree. The parent link is navigational only;
// a node is owned by the child link of its parent (or by the tree's root).
type Node[K, V any] struct {
	key    K
	value  V
	color  color
	left   *Node[K, V]
	right  *Node[K, V]
	parent *Node[K, V]
}

// Key returns the key the node is ordered by.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns the value stored with the key.
func (n *Node[K, V]) Value() V {
	return n.value
}

// SetValue overwrites the stored value. The tree shape is not affected.
func (n *Node[K, V]) SetValue(value V) {
	n.value = value
}

// colorOf treats absent children as black.
func colorOf[K, V any](n *Node[K, V]) color {
	if n == nil {
		return black
	}
	return n.color
}

// min returns the lowest node of the sub-tree rooted at n, nil for an
// empty sub-tree.
func (n *Node[K, V]) min() *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *Node[K, V]) max() *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the in-order next node or nil at the end.
func (n *Node[K, V]) successor() *Node[K, V] {
	if n.right != nil {
		return n.right.min()
	}
	p := n.parent
	for p != nil && n == p.right {
		n = p
		p = p.parent
	}
	return p
}
