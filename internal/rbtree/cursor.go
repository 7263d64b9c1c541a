package rbtree

import "iter"

// Cursor walks a tree in ascending key order. It is single pass: once
// exhausted it stays exhausted, create a new one to walk again.
type Cursor[K, V any] struct {
	next *Node[K, V]
}

// Cursor returns a cursor positioned before the lowest key.
func (t *Tree[K, V]) Cursor() *Cursor[K, V] {
	return &Cursor[K, V]{next: t.root.min()}
}

// HasNext reports whether Next will return a node.
func (c *Cursor[K, V]) HasNext() bool {
	return c.next != nil
}

// Next returns the next node in key order, or ErrExhausted once every node
// has been returned.
func (c *Cursor[K, V]) Next() (*Node[K, V], error) {
	n := c.next
	if n == nil {
		return nil, ErrExhausted
	}
	c.next = n.successor()
	return n, nil
}

// All yields every key and value in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := t.root.min(); n != nil; n = n.successor() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}
