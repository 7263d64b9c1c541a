package multimap

import (
	"errors"

	"github.com/alexhholmes/multimap/internal/rbtree"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")

	ErrExhausted = rbtree.ErrExhausted
	ErrCorrupt   = rbtree.ErrCorrupt
)
