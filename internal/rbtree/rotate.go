package rbtree

// rotateLeft lifts n.right into n's place:
//
//	   n              r
//	  / \            / \
//	 a   r    ->    n   c
//	    / \        / \
//	   b   c      a   b
func (t *Tree[K, V]) rotateLeft(n *Node[K, V]) {
	r := n.right
	n.right = r.left
	if r.left != nil {
		r.left.parent = n
	}
	t.replaceChild(n.parent, n, r)
	r.left = n
	n.parent = r
}

// rotateRight is the mirror of rotateLeft.
func (t *Tree[K, V]) rotateRight(n *Node[K, V]) {
	l := n.left
	n.left = l.right
	if l.right != nil {
		l.right.parent = n
	}
	t.replaceChild(n.parent, n, l)
	l.right = n
	n.parent = l
}

// replaceChild points the link that held old (the root when parent is nil)
// at replacement and fixes replacement's parent link.
func (t *Tree[K, V]) replaceChild(parent, old, replacement *Node[K, V]) {
	switch {
	case parent == nil:
		t.root = replacement
	case parent.left == old:
		parent.left = replacement
	default:
		parent.right = replacement
	}
	if replacement != nil {
		replacement.parent = parent
	}
}
