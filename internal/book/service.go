package book

import (
	"context"
	"fmt"
	"strconv"

	"librarygateway/internal/httpx"
)

const (
	collectionPath = "/api/books"
	gatewayPath    = "/gateway/books"

	createdMessage = "Book created successfully"
)

// ListResponse is the collection representation.
type ListResponse struct {
	Books []Book      `json:"livros"`
	Count int         `json:"count"`
	Links httpx.Links `json:"_links"`
}

// ItemResponse is the single book representation.
type ItemResponse struct {
	Book  Book        `json:"livro"`
	Links httpx.Links `json:"_links"`
}

// CreatedResponse is returned after a successful create.
type CreatedResponse struct {
	Book    Book        `json:"livro"`
	Message string      `json:"message"`
	Links   httpx.Links `json:"_links"`
}

// Service provides the REST resource view of the book store.
type Service struct {
	store *Store
}

// NewService creates a new book service.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

func itemPath(id int64) string {
	return collectionPath + "/" + strconv.FormatInt(id, 10)
}

func itemLinks(id int64) httpx.Links {
	return httpx.Links{
		"self":    itemPath(id),
		"all":     collectionPath,
		"gateway": gatewayPath + "/" + strconv.FormatInt(id, 10),
	}
}

// List returns every book. It never fails; an empty store yields count 0.
func (s *Service) List(ctx context.Context) ListResponse {
	books := s.store.List()
	return ListResponse{
		Books: books,
		Count: len(books),
		Links: httpx.Links{
			"self":    collectionPath,
			"gateway": gatewayPath,
		},
	}
}

// Get returns the book with the given id or ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (ItemResponse, error) {
	b, ok := s.store.Get(id)
	if !ok {
		return ItemResponse{}, fmt.Errorf("book %d: %w", id, ErrNotFound)
	}
	return ItemResponse{Book: b, Links: itemLinks(id)}, nil
}

// Create stores a new book under a server-assigned id.
func (s *Service) Create(ctx context.Context, p Payload) (CreatedResponse, error) {
	if err := httpx.Validate(p); err != nil {
		return CreatedResponse{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	b := s.store.Create(p.toBook())
	return CreatedResponse{
		Book:    b,
		Message: createdMessage,
		Links:   itemLinks(b.ID),
	}, nil
}
