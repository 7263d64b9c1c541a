package multimap

import (
	"fmt"
	"iter"
	"strings"
)

// element is one link of a Bucket
type element[V comparable] struct {
	value V
	prev  *element[V]
	next  *element[V]
}

// Bucket is an insertion ordered sequence of values that permits
// duplicates. The zero value is an empty bucket ready to use.
type Bucket[V comparable] struct {
	head *element[V]
	tail *element[V]
	size int
}

// NewBucket returns a bucket holding values in order.
func NewBucket[V comparable](values ...V) *Bucket[V] {
	b := &Bucket[V]{}
	for _, v := range values {
		b.AddLast(v)
	}
	return b
}

// Len returns the number of values in the bucket.
func (b *Bucket[V]) Len() int {
	return b.size
}

// IsEmpty reports whether the bucket holds no values.
func (b *Bucket[V]) IsEmpty() bool {
	return b.size == 0
}

// AddFirst inserts value before every other value.
func (b *Bucket[V]) AddFirst(value V) {
	e := &element[V]{value: value, next: b.head}
	if b.head == nil {
		b.tail = e
	} else {
		b.head.prev = e
	}
	b.head = e
	b.size++
}

// AddLast appends value after every other value.
func (b *Bucket[V]) AddLast(value V) {
	e := &element[V]{value: value, prev: b.tail}
	if b.tail == nil {
		b.head = e
	} else {
		b.tail.next = e
	}
	b.tail = e
	b.size++
}

// AddAll appends the values of other in other's order.
func (b *Bucket[V]) AddAll(other *Bucket[V]) {
	// bounded by the starting size so that b.AddAll(b) terminates
	n := other.size
	for e := other.head; n > 0; e, n = e.next, n-1 {
		b.AddLast(e.value)
	}
}

// Remove deletes the first occurrence of value and reports whether one was
// found.
func (b *Bucket[V]) Remove(value V) bool {
	e := b.find(value)
	if e == nil {
		return false
	}
	b.unlink(e)
	return true
}

// Update replaces the first occurrence of old with value and reports
// whether one was found.
func (b *Bucket[V]) Update(old, value V) bool {
	e := b.find(old)
	if e == nil {
		return false
	}
	e.value = value
	return true
}

// Contains reports whether value is in the bucket.
func (b *Bucket[V]) Contains(value V) bool {
	return b.find(value) != nil
}

// Get returns the value at index. The walk starts from whichever end is
// closer. An index outside [0, Len()) returns ErrIndexOutOfRange.
func (b *Bucket[V]) Get(index int) (V, error) {
	if index < 0 || index >= b.size {
		var zero V
		return zero, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, b.size)
	}

	var e *element[V]
	if index < b.size/2 {
		e = b.head
		for i := 0; i < index; i++ {
			e = e.next
		}
	} else {
		e = b.tail
		for i := b.size - 1; i > index; i-- {
			e = e.prev
		}
	}
	return e.value, nil
}

// Slice copies the values out in order.
func (b *Bucket[V]) Slice() []V {
	if b.size == 0 {
		return nil
	}
	out := make([]V, 0, b.size)
	for e := b.head; e != nil; e = e.next {
		out = append(out, e.value)
	}
	return out
}

// All yields the values from first to last.
func (b *Bucket[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := b.head; e != nil; e = e.next {
			if !yield(e.value) {
				return
			}
		}
	}
}

// String renders the bucket as "a <-> b <-> nil".
func (b *Bucket[V]) String() string {
	var sb strings.Builder
	for e := b.head; e != nil; e = e.next {
		fmt.Fprintf(&sb, "%v <-> ", e.value)
	}
	sb.WriteString("nil")
	return sb.String()
}

func (b *Bucket[V]) find(value V) *element[V] {
	for e := b.head; e != nil; e = e.next {
		if e.value == value {
			return e
		}
	}
	return nil
}

func (b *Bucket[V]) unlink(e *element[V]) {
	if e.prev == nil {
		b.head = e.next
	} else {
		e.prev.next = e.next
	}
	if e.next == nil {
		b.tail = e.prev
	} else {
		e.next.prev = e.prev
	}
	e.prev, e.next = nil, nil
	b.size--
}

// check verifies the links in both directions against size.
func (b *Bucket[V]) check() error {
	n := 0
	var prev *element[V]
	for e := b.head; e != nil; e = e.next {
		if e.prev != prev {
			return fmt.Errorf("%w: bucket link %d has a stale back link", ErrCorrupt, n)
		}
		prev = e
		n++
	}
	if prev != b.tail {
		return fmt.Errorf("%w: bucket tail is not the last link", ErrCorrupt)
	}
	if n != b.size {
		return fmt.Errorf("%w: bucket holds %d links, size is %d", ErrCorrupt, n, b.size)
	}
	return nil
}
