package rbtree

import "errors"

var (
	ErrExhausted = errors.New("iterator exhausted")
	ErrCorrupt   = errors.New("tree invariant violated")
)
