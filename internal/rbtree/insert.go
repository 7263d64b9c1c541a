package rbtree

// Insert stores value under key. An existing key has its value overwritten
// in place and Insert returns false; otherwise a node is added and the tree
// rebalanced.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	var parent *Node[K, V]
	c := 0
	for n := t.root; n != nil; {
		parent = n
		c = t.compare(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			n.value = value
			return false
		}
	}

	n := &Node[K, V]{key: key, value: value, color: red, parent: parent}
	switch {
	case parent == nil:
		t.root = n
	case c < 0:
		parent.left = n
	default:
		parent.right = n
	}
	t.count++
	t.fixInsert(n)
	return true
}

// fixInsert resolves a red node with a red parent.
func (t *Tree[K, V]) fixInsert(n *Node[K, V]) {
	for n.parent != nil && n.parent.color == red {
		// a red parent is never the root, so the grandparent exists
		g := n.parent.parent
		if n.parent == g.left {
			if u := g.right; colorOf(u) == red {
				n.parent.color = black
				u.color = black
				g.color = red
				n = g
				continue
			}
			if n == n.parent.right {
				n = n.parent
				t.rotateLeft(n)
			}
			n.parent.color = black
			g.color = red
			t.rotateRight(g)
		} else {
			if u := g.left; colorOf(u) == red {
				n.parent.color = black
				u.color = black
				g.color = red
				n = g
				continue
			}
			if n == n.parent.left {
				n = n.parent
				t.rotateRight(n)
			}
			n.parent.color = black
			g.color = red
			t.rotateLeft(g)
		}
	}
	t.root.color = black
}
