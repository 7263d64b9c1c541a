// Package route keeps a routing table of destinations to ordered next hops.
// Hops for a destination are tried in order; the first one is the primary.
//
// A Table is not safe for concurrent use.
package route

import (
	"encoding/binary"
	"errors"
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/elastic/go-freelru"

	"github.com/alexhholmes/multimap"
)

// NextHop is a forwarding target.
type NextHop struct {
	Addr   string
	Weight int
}

// Table maps destinations to next hops, sorted by destination.
type Table struct {
	routes *multimap.MultiMap[string, NextHop]
	cache  *freelru.LRU[string, []NextHop] // materialized hops per destination
	logger multimap.Logger
}

// New creates an empty table.
func New(opts ...Option) (*Table, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.cacheSize == 0 {
		return nil, errors.New("route: cache size must be positive")
	}

	cache, err := freelru.New[string, []NextHop](options.cacheSize, hashString)
	if err != nil {
		return nil, fmt.Errorf("route: creating lookup cache: %w", err)
	}

	return &Table{
		routes: multimap.New[string, NextHop](multimap.WithLogger(options.logger)),
		cache:  cache,
		logger: options.logger,
	}, nil
}

func hashString(s string) uint32 {
	return uint32(xxhash.Sum64String(s))
}

// Len returns the number of hops across all destinations.
func (t *Table) Len() int {
	return t.routes.Len()
}

// Add appends hop to the hops of dest.
func (t *Table) Add(dest string, hop NextHop) {
	t.routes.Put(dest, hop)
	t.cache.Remove(dest)
	t.logger.Info("route added", "dest", dest, "addr", hop.Addr, "weight", hop.Weight)
}

// AddAll appends hops to dest in order.
func (t *Table) AddAll(dest string, hops ...NextHop) {
	for _, hop := range hops {
		t.Add(dest, hop)
	}
}

// Prefer moves hop to the front of dest's hops. It reports false when dest
// has no such hop.
func (t *Table) Prefer(dest string, hop NextHop) bool {
	if !t.routes.Remove(dest, hop) {
		return false
	}
	t.routes.PutFirst(dest, hop)
	t.cache.Remove(dest)
	t.logger.Info("route preferred", "dest", dest, "addr", hop.Addr)
	return true
}

// Replace swaps old for hop in place.
func (t *Table) Replace(dest string, old, hop NextHop) bool {
	if !t.routes.Replace(dest, old, hop) {
		return false
	}
	t.cache.Remove(dest)
	t.logger.Info("route replaced", "dest", dest, "old", old.Addr, "addr", hop.Addr)
	return true
}

// Withdraw removes one occurrence of hop from dest.
func (t *Table) Withdraw(dest string, hop NextHop) bool {
	if !t.routes.Remove(dest, hop) {
		t.logger.Warn("withdraw of unknown route", "dest", dest, "addr", hop.Addr)
		return false
	}
	t.cache.Remove(dest)
	t.logger.Info("route withdrawn", "dest", dest, "addr", hop.Addr)
	return true
}

// WithdrawAll removes dest and returns the hops it had.
func (t *Table) WithdrawAll(dest string) []NextHop {
	hops := t.routes.RemoveAll(dest).Slice()
	if hops != nil {
		t.cache.Remove(dest)
		t.logger.Info("destination withdrawn", "dest", dest, "hops", len(hops))
	}
	return hops
}

// Lookup returns the hops of dest in order, nil when dest is unknown. The
// returned slice belongs to the caller.
func (t *Table) Lookup(dest string) []NextHop {
	if hops, ok := t.cache.Get(dest); ok {
		return slices.Clone(hops)
	}
	hops := t.routes.Get(dest).Slice()
	if hops == nil {
		return nil
	}
	t.cache.Add(dest, hops)
	return slices.Clone(hops)
}

// Primary returns the first hop of dest.
func (t *Table) Primary(dest string) (NextHop, bool) {
	hop, err := t.routes.Get(dest).Get(0)
	if errors.Is(err, multimap.ErrIndexOutOfRange) {
		return NextHop{}, false
	}
	return hop, true
}

// Destinations returns every destination in ascending order.
func (t *Table) Destinations() []string {
	dests := make([]string, 0, t.routes.KeyCount())
	for dest := range t.routes.All() {
		dests = append(dests, dest)
	}
	return dests
}

// Reset removes every route.
func (t *Table) Reset() {
	t.routes.Clear()
	t.cache.Purge()
}

// Checksum digests the destinations and their hops in order. Two tables
// with the same routes in the same order share a checksum.
func (t *Table) Checksum() uint64 {
	d := xxhash.New()
	var buf []byte
	for dest, hops := range t.routes.All() {
		buf = binary.AppendUvarint(buf[:0], uint64(len(dest)))
		buf = append(buf, dest...)
		buf = binary.AppendUvarint(buf, uint64(hops.Len()))
		for hop := range hops.All() {
			buf = binary.AppendUvarint(buf, uint64(len(hop.Addr)))
			buf = append(buf, hop.Addr...)
			buf = binary.AppendVarint(buf, int64(hop.Weight))
		}
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}
