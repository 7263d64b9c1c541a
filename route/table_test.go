package route

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	hopA = NextHop{Addr: "10.0.0.1", Weight: 1}
	hopB = NextHop{Addr: "10.0.0.2", Weight: 2}
	hopC = NextHop{Addr: "10.0.0.3", Weight: 3}
)

func setup(t *testing.T, opts ...Option) *Table {
	t.Helper()
	table, err := New(opts...)
	require.NoError(t, err)
	return table
}

func TestTableLookup(t *testing.T) {
	t.Parallel()

	table := setup(t)
	table.AddAll("/api", hopA, hopB)
	table.Add("/static", hopC)

	if diff := cmp.Diff([]NextHop{hopA, hopB}, table.Lookup("/api")); diff != "" {
		t.Errorf("Lookup mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, table.Lookup("/missing"))
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, []string{"/api", "/static"}, table.Destinations())
}

func TestTableLookupIsACopy(t *testing.T) {
	t.Parallel()

	table := setup(t)
	table.Add("/api", hopA)

	hops := table.Lookup("/api")
	hops[0] = hopC

	assert.Equal(t, []NextHop{hopA}, table.Lookup("/api"))
	assert.Equal(t, []NextHop{hopA}, table.Lookup("/api"), "cached result must not be aliased")
}

func TestTableCacheInvalidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(table *Table)
		want   []NextHop
	}{
		{name: "add", mutate: func(table *Table) { table.Add("/api", hopC) }, want: []NextHop{hopA, hopB, hopC}},
		{name: "withdraw", mutate: func(table *Table) { table.Withdraw("/api", hopA) }, want: []NextHop{hopB}},
		{name: "withdraw_all", mutate: func(table *Table) { table.WithdrawAll("/api") }, want: nil},
		{name: "prefer", mutate: func(table *Table) { table.Prefer("/api", hopB) }, want: []NextHop{hopB, hopA}},
		{name: "replace", mutate: func(table *Table) { table.Replace("/api", hopA, hopC) }, want: []NextHop{hopC, hopB}},
		{name: "reset", mutate: func(table *Table) { table.Reset() }, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := setup(t, WithCacheSize(4))
			table.AddAll("/api", hopA, hopB)
			_ = table.Lookup("/api") // warm the cache

			tt.mutate(table)
			if diff := cmp.Diff(tt.want, table.Lookup("/api")); diff != "" {
				t.Errorf("Lookup after %s (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestTableCacheEviction(t *testing.T) {
	t.Parallel()

	table := setup(t, WithCacheSize(2))
	for _, dest := range []string{"/a", "/b", "/c", "/d"} {
		table.Add(dest, hopA)
		assert.Equal(t, []NextHop{hopA}, table.Lookup(dest))
	}
	// evicted entries are rebuilt from the routes
	assert.Equal(t, []NextHop{hopA}, table.Lookup("/a"))
}

func TestTablePrimary(t *testing.T) {
	t.Parallel()

	table := setup(t)
	_, ok := table.Primary("/api")
	assert.False(t, ok)

	table.AddAll("/api", hopA, hopB)
	hop, ok := table.Primary("/api")
	assert.True(t, ok)
	assert.Equal(t, hopA, hop)

	require.True(t, table.Prefer("/api", hopB))
	hop, _ = table.Primary("/api")
	assert.Equal(t, hopB, hop)
}

func TestTableMisses(t *testing.T) {
	t.Parallel()

	table := setup(t)
	table.Add("/api", hopA)

	assert.False(t, table.Withdraw("/api", hopB))
	assert.False(t, table.Withdraw("/other", hopA))
	assert.False(t, table.Prefer("/api", hopC))
	assert.False(t, table.Replace("/api", hopC, hopB))
	assert.Nil(t, table.WithdrawAll("/other"))
	assert.Equal(t, 1, table.Len())
}

func TestTableWithdrawLastHopDropsDestination(t *testing.T) {
	t.Parallel()

	table := setup(t)
	table.Add("/api", hopA)
	table.Add("/web", hopB)

	require.True(t, table.Withdraw("/api", hopA))
	assert.Equal(t, []string{"/web"}, table.Destinations())
	assert.Equal(t, []NextHop{hopB}, table.WithdrawAll("/web"))
	assert.Empty(t, table.Destinations())
}

func TestTableChecksum(t *testing.T) {
	t.Parallel()

	a := setup(t)
	b := setup(t)
	assert.Equal(t, a.Checksum(), b.Checksum())

	a.AddAll("/api", hopA, hopB)
	a.Add("/web", hopC)
	// same routes, different insertion order of destinations
	b.Add("/web", hopC)
	b.AddAll("/api", hopA, hopB)
	assert.Equal(t, a.Checksum(), b.Checksum())

	// hop order matters
	b.Prefer("/api", hopB)
	assert.NotEqual(t, a.Checksum(), b.Checksum())

	// moving a byte between fields changes the digest
	c := setup(t)
	d := setup(t)
	c.Add("/ab", NextHop{Addr: "c"})
	d.Add("/a", NextHop{Addr: "bc"})
	assert.NotEqual(t, c.Checksum(), d.Checksum())
}

func TestTableZeroCacheSize(t *testing.T) {
	t.Parallel()

	_, err := New(WithCacheSize(0))
	assert.Error(t, err)
}

func TestTableLogsChanges(t *testing.T) {
	t.Parallel()

	log := &recordingLogger{}
	table := setup(t, WithLogger(log))
	table.Add("/api", hopA)
	table.Lookup("/api")
	table.Withdraw("/api", hopB)
	table.Withdraw("/api", hopA)

	assert.Equal(t, []string{"route added", "route withdrawn"}, log.infos)
	assert.Equal(t, []string{"withdraw of unknown route"}, log.warns)
}

type recordingLogger struct {
	warns []string
	infos []string
}

func (r *recordingLogger) Error(string, ...any) {}

func (r *recordingLogger) Warn(msg string, _ ...any) { r.warns = append(r.warns, msg) }

func (r *recordingLogger) Info(msg string, _ ...any) { r.infos = append(r.infos, msg) }
