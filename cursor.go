package multimap

import "github.com/alexhholmes/multimap/internal/rbtree"

// Cursor walks a Bucket from first to last value. It is single pass;
// call Bucket.Cursor again to start over.
type Cursor[V comparable] struct {
	next *element[V]
}

// Cursor returns a cursor positioned before the first value.
func (b *Bucket[V]) Cursor() *Cursor[V] {
	return &Cursor[V]{next: b.head}
}

// HasNext reports whether Next will return a value.
func (c *Cursor[V]) HasNext() bool {
	return c.next != nil
}

// Next returns the next value, or ErrExhausted once the end was reached.
func (c *Cursor[V]) Next() (V, error) {
	e := c.next
	if e == nil {
		var zero V
		return zero, ErrExhausted
	}
	c.next = e.next
	return e.value, nil
}

// KeyCursor walks the keys of a MultiMap in ascending order.
type KeyCursor[K any, V comparable] struct {
	c *rbtree.Cursor[K, *Bucket[V]]
}

// HasNext reports whether Next will return a key.
func (c *KeyCursor[K, V]) HasNext() bool {
	return c.c.HasNext()
}

// Next returns the next key with its bucket, or ErrExhausted once every key
// has been returned.
func (c *KeyCursor[K, V]) Next() (K, *Bucket[V], error) {
	n, err := c.c.Next()
	if err != nil {
		var zero K
		return zero, nil, err
	}
	return n.Key(), n.Value(), nil
}
