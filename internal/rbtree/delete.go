package rbtree

// Remove deletes key and reports whether it was present.
func (t *Tree[K, V]) Remove(key K) bool {
	n := t.find(key)
	if n == nil {
		return false
	}
	t.delete(n)
	t.count--
	return true
}

func (t *Tree[K, V]) delete(z *Node[K, V]) {
	// x is the position that lost a node; it may be nil, so its parent is
	// tracked separately.
	var x, xParent *Node[K, V]
	removed := z.color

	switch {
	case z.left == nil:
		x, xParent = z.right, z.parent
		t.replaceChild(z.parent, z, z.right)
	case z.right == nil:
		x, xParent = z.left, z.parent
		t.replaceChild(z.parent, z, z.left)
	default:
		// splice the successor out and move it into z's place with z's color
		y := z.right.min()
		removed = y.color
		x = y.right
		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			t.replaceChild(y.parent, y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.replaceChild(z.parent, z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}
	z.left, z.right, z.parent = nil, nil, nil

	if removed == black {
		t.fixDelete(x, xParent)
	}
}

// fixDelete repairs a missing black on the path through x, a child
// position of parent.
func (t *Tree[K, V]) fixDelete(x, parent *Node[K, V]) {
	for x != t.root && colorOf(x) == black {
		if x == parent.left {
			s := sibling(parent.right)
			if s.color == red {
				s.color = black
				parent.color = red
				t.rotateLeft(parent)
				s = sibling(parent.right)
			}
			if colorOf(s.left) == black && colorOf(s.right) == black {
				s.color = red
				x = parent
				parent = x.parent
				continue
			}
			if colorOf(s.right) == black {
				s.left.color = black
				s.color = red
				t.rotateRight(s)
				s = sibling(parent.right)
			}
			s.color = parent.color
			parent.color = black
			s.right.color = black
			t.rotateLeft(parent)
			x = t.root
		} else {
			s := sibling(parent.left)
			if s.color == red {
				s.color = black
				parent.color = red
				t.rotateRight(parent)
				s = sibling(parent.left)
			}
			if colorOf(s.left) == black && colorOf(s.right) == black {
				s.color = red
				x = parent
				parent = x.parent
				continue
			}
			if colorOf(s.left) == black {
				s.right.color = black
				s.color = red
				t.rotateLeft(s)
				s = sibling(parent.left)
			}
			s.color = parent.color
			parent.color = black
			s.left.color = black
			t.rotateRight(parent)
			x = t.root
		}
	}
	if x != nil {
		x.color = black
	}
}

// sibling asserts the presence of the sibling of a deficient position.
// Its absence means the black-height invariant was already broken.
func sibling[K, V any](s *Node[K, V]) *Node[K, V] {
	if s == nil {
		panic("rbtree: corrupt tree: deficient position without sibling")
	}
	return s
}
