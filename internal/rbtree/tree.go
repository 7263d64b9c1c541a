// Package rbtree implements a red-black tree keyed by a three-way
// comparison. Nodes carry parent links so the tree can be walked in key
// order without an explicit stack.
//
// A Tree is not safe for concurrent use. Access it from a single
// goroutine or guard it with a mutex.
package rbtree

import "cmp"

// Tree is an ordered mapping from K to V.
type Tree[K, V any] struct {
	root    *Node[K, V]
	count   int
	compare func(a, b K) int
}

// New creates an empty tree ordered by the natural order of K.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc creates an empty tree ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when
// a > b.
func NewFunc[K, V any](compare func(a, b K) int) *Tree[K, V] {
	return &Tree[K, V]{compare: compare}
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	return t.count
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Clear drops every node.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.count = 0
}

// Get returns the value stored for key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	if n := t.find(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether key is present.
func (t *Tree[K, V]) ContainsKey(key K) bool {
	return t.find(key) != nil
}

// Min returns the node with the lowest key, nil if the tree is empty.
func (t *Tree[K, V]) Min() *Node[K, V] {
	return t.root.min()
}

// Max returns the node with the highest key, nil if the tree is empty.
func (t *Tree[K, V]) Max() *Node[K, V] {
	return t.root.max()
}

func (t *Tree[K, V]) find(key K) *Node[K, V] {
	n := t.root
	for n != nil {
		switch c := t.compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}
