package memstore

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int64
	Name string
}

func newItemStore(seed ...item) *Store[item] {
	return New(
		func(i item) int64 { return i.ID },
		func(i *item, id int64) { i.ID = id },
		seed...,
	)
}

func TestStore_CreateAssignsSequentialIDs(t *testing.T) {
	s := newItemStore()

	var last int64
	for i := 0; i < 50; i++ {
		got := s.Create(item{Name: "x"})
		assert.Equal(t, last+1, got.ID)
		last = got.ID
	}
	assert.Equal(t, 50, s.Len())
}

func TestStore_CreateIgnoresCallerID(t *testing.T) {
	s := newItemStore()

	got := s.Create(item{ID: 42, Name: "a"})
	assert.Equal(t, int64(1), got.ID)

	_, ok := s.Get(42)
	assert.False(t, ok)
}

func TestStore_Seed(t *testing.T) {
	s := newItemStore(item{ID: 9, Name: "first"}, item{Name: "second"})

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, item{ID: 1, Name: "first"}, list[0])
	assert.Equal(t, item{ID: 2, Name: "second"}, list[1])

	created := s.Create(item{Name: "third"})
	assert.Equal(t, int64(3), created.ID)
}

func TestStore_Get(t *testing.T) {
	s := newItemStore(item{Name: "a"}, item{Name: "b"})

	t.Run("found", func(t *testing.T) {
		got, ok := s.Get(2)
		assert.True(t, ok)
		assert.Equal(t, "b", got.Name)
	})

	t.Run("never created", func(t *testing.T) {
		for _, id := range []int64{0, -1, 3, 99} {
			_, ok := s.Get(id)
			assert.False(t, ok, "id %d", id)
		}
	})
}

func TestStore_ListIsACopy(t *testing.T) {
	s := newItemStore(item{Name: "a"})

	list := s.List()
	list[0].Name = "mutated"

	got, _ := s.Get(1)
	assert.Equal(t, "a", got.Name)
}

func TestStore_ListIsStableWithoutWrites(t *testing.T) {
	s := newItemStore(item{Name: "a"}, item{Name: "b"})
	assert.Equal(t, s.List(), s.List())
}

func TestStore_ConcurrentCreate(t *testing.T) {
	s := newItemStore()
	const n = 200

	ids := make([]int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = s.Create(item{}).ID
		}(i)
	}
	wg.Wait()

	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	for i, id := range ids {
		assert.Equal(t, int64(i+1), id)
	}
	assert.Equal(t, n, s.Len())
}
