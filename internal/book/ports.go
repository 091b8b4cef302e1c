package book

import (
	"librarygateway/internal/platform/memstore"
)

// Store holds books in memory.
type Store = memstore.Store[Book]

// NewStore returns a store holding seed, numbered from 1.
func NewStore(seed ...Book) *Store {
	return memstore.New(
		func(b Book) int64 { return b.ID },
		func(b *Book, id int64) { b.ID = id },
		seed...,
	)
}

// NewSeededStore returns a store with the two demo books, so the next id is 3.
func NewSeededStore() *Store {
	return NewStore(
		Book{Title: "Spring Boot in Action", Author: "Craig Walls", ISBN: "978-1617292545"},
		Book{Title: "Clean Code", Author: "Robert Martin", ISBN: "978-0132350884"},
	)
}
