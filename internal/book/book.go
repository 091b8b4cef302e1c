package book

import (
	"errors"
)

var (
	// ErrNotFound is returned when a book is not found.
	ErrNotFound = errors.New("book not found")
	// ErrInvalidPayload is returned when a create payload fails validation.
	ErrInvalidPayload = errors.New("invalid book payload")
)

// Book represents a book record.
type Book struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

// Payload is the body accepted when creating a book. Any id sent by the
// caller is dropped during decoding.
type Payload struct {
	Title  string `json:"title" validate:"max=255"`
	Author string `json:"author" validate:"max=255"`
	ISBN   string `json:"isbn" validate:"max=32"`
}

func (p Payload) toBook() Book {
	return Book{Title: p.Title, Author: p.Author, ISBN: p.ISBN}
}
