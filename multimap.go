// Package multimap provides an in-memory ordered multimap: every key maps
// to an insertion ordered bucket of values, duplicates allowed, and keys are
// kept sorted in a red-black tree.
//
// A MultiMap is not safe for concurrent use. Callers that share one
// between goroutines must serialize access themselves, for example with a
// sync.Mutex around every call.
package multimap

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/alexhholmes/multimap/internal/rbtree"
)

// MultiMap associates each key with a Bucket of values.
//
// Invariants: size equals the sum of all bucket lengths, and no key is kept
// with an empty bucket.
type MultiMap[K any, V comparable] struct {
	tree   *rbtree.Tree[K, *Bucket[V]]
	size   int
	logger Logger
}

// New creates an empty multimap ordered by the natural order of K.
func New[K cmp.Ordered, V comparable](opts ...Option) *MultiMap[K, V] {
	return NewFunc[K, V](cmp.Compare[K], opts...)
}

// NewFunc creates an empty multimap whose keys are ordered by compare, a
// three-way comparison returning <0, 0 or >0.
func NewFunc[K any, V comparable](compare func(a, b K) int, opts ...Option) *MultiMap[K, V] {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &MultiMap[K, V]{
		tree:   rbtree.NewFunc[K, *Bucket[V]](compare),
		logger: options.logger,
	}
}

// Len returns the total number of values across all keys.
func (m *MultiMap[K, V]) Len() int {
	return m.size
}

// IsEmpty reports whether the multimap holds no values.
func (m *MultiMap[K, V]) IsEmpty() bool {
	return m.size == 0
}

// KeyCount returns the number of distinct keys.
func (m *MultiMap[K, V]) KeyCount() int {
	return m.tree.Len()
}

// ContainsKey reports whether key has at least one value.
func (m *MultiMap[K, V]) ContainsKey(key K) bool {
	return m.tree.ContainsKey(key)
}

// ContainsValue reports whether any key holds value. It visits every value.
func (m *MultiMap[K, V]) ContainsValue(value V) bool {
	for _, b := range m.tree.All() {
		if b.Contains(value) {
			return true
		}
	}
	return false
}

// Get returns the bucket for key, or a new empty bucket when key is absent.
// The returned bucket is live; change it through the MultiMap only, since
// editing it directly bypasses the value count.
func (m *MultiMap[K, V]) Get(key K) *Bucket[V] {
	if b, ok := m.tree.Get(key); ok {
		return b
	}
	return &Bucket[V]{}
}

// Put appends value to the bucket of key.
func (m *MultiMap[K, V]) Put(key K, value V) {
	m.bucket(key).AddLast(value)
	m.size++
}

// PutFirst inserts value at the front of the bucket of key.
func (m *MultiMap[K, V]) PutFirst(key K, value V) {
	m.bucket(key).AddFirst(value)
	m.size++
}

// PutAll appends values to the bucket of key in order.
func (m *MultiMap[K, V]) PutAll(key K, values ...V) {
	for _, v := range values {
		m.Put(key, v)
	}
}

// Remove deletes one occurrence of value from key. A key whose bucket
// becomes empty is removed as well.
func (m *MultiMap[K, V]) Remove(key K, value V) bool {
	b, ok := m.tree.Get(key)
	if !ok || !b.Remove(value) {
		return false
	}
	m.size--
	if b.IsEmpty() {
		m.tree.Remove(key)
	}
	return true
}

// Replace swaps the first occurrence of old under key for value, keeping
// its position.
func (m *MultiMap[K, V]) Replace(key K, old, value V) bool {
	b, ok := m.tree.Get(key)
	if !ok {
		return false
	}
	return b.Update(old, value)
}

// RemoveAll detaches and returns the bucket of key, or an empty bucket when
// key is absent.
func (m *MultiMap[K, V]) RemoveAll(key K) *Bucket[V] {
	b, ok := m.tree.Get(key)
	if !ok {
		return &Bucket[V]{}
	}
	m.tree.Remove(key)
	m.size -= b.Len()
	return b
}

// Values returns a new bucket with every value, ordered by key and then by
// position within each key's bucket.
func (m *MultiMap[K, V]) Values() *Bucket[V] {
	all := &Bucket[V]{}
	for _, b := range m.tree.All() {
		all.AddAll(b)
	}
	return all
}

// Keys returns a cursor over the keys in ascending order.
func (m *MultiMap[K, V]) Keys() *KeyCursor[K, V] {
	return &KeyCursor[K, V]{c: m.tree.Cursor()}
}

// All yields each key with its live bucket in ascending key order.
func (m *MultiMap[K, V]) All() iter.Seq2[K, *Bucket[V]] {
	return m.tree.All()
}

// Clear removes every key.
func (m *MultiMap[K, V]) Clear() {
	m.logger.Info("multimap cleared", "keys", m.tree.Len(), "values", m.size)
	m.tree.Clear()
	m.size = 0
}

// Check verifies the tree invariants, every bucket's links, that no key is
// kept with an empty bucket and that the value count matches the buckets.
// Violations are logged and returned wrapping ErrCorrupt.
func (m *MultiMap[K, V]) Check() error {
	err := m.check()
	if err != nil {
		m.logger.Error("multimap check failed", "error", err)
	}
	return err
}

func (m *MultiMap[K, V]) check() error {
	if err := m.tree.Check(); err != nil {
		return err
	}

	total := 0
	for key, b := range m.tree.All() {
		if b == nil || b.IsEmpty() {
			return fmt.Errorf("%w: key %v has an empty bucket", ErrCorrupt, key)
		}
		if err := b.check(); err != nil {
			return fmt.Errorf("key %v: %w", key, err)
		}
		total += b.Len()
	}
	if total != m.size {
		return fmt.Errorf("%w: buckets hold %d values, size is %d", ErrCorrupt, total, m.size)
	}
	return nil
}

// bucket returns the bucket for key, inserting an empty one if needed.
func (m *MultiMap[K, V]) bucket(key K) *Bucket[V] {
	b, ok := m.tree.Get(key)
	if !ok {
		b = &Bucket[V]{}
		m.tree.Insert(key, b)
	}
	return b
}
