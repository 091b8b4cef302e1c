package gateway

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"librarygateway/internal/book"
	"librarygateway/internal/httpx"
	"librarygateway/internal/platform/metrics"
	"librarygateway/internal/user"
)

var (
	ErrNotFound = errors.New("resource not found")
	// ErrBadRequest is returned by CreateBook for any backend failure. The
	// cause is logged, not returned.
	ErrBadRequest = errors.New("bad request")
	// ErrUpstream is returned when a backend could not be reached or failed.
	ErrUpstream = errors.New("upstream failure")
)

const (
	gatewayPath      = "/gateway"
	gatewayBooksPath = "/gateway/books"
	gatewayUsersPath = "/gateway/users"
	restBooksPath    = "/api/books"
	soapPath         = "/ws"
	wsdlPath         = "/ws/users.wsdl"

	backendREST = "rest"
	backendSOAP = "soap"

	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

// Aggregator fronts the book and user backends with one envelope format.
type Aggregator struct {
	books  BookResource
	users  UserOperations
	logger logrus.FieldLogger
}

func NewAggregator(books BookResource, users UserOperations, logger logrus.FieldLogger) *Aggregator {
	return &Aggregator{books: books, users: users, logger: logger}
}

// Info describes the gateway. It makes no backend call.
func (a *Aggregator) Info() Info {
	return Info{
		Name:        "Library API Gateway",
		Version:     "1.0.0",
		Description: "Gateway integrating REST and SOAP APIs",
		APIs: map[string]string{
			"rest": "Books API - book management via REST",
			"soap": "Users API - user management via SOAP",
		},
		Links: httpx.Links{
			"self":  gatewayPath,
			"books": gatewayBooksPath,
			"users": gatewayUsersPath,
			"wsdl":  wsdlPath,
			"soap":  soapPath,
		},
	}
}

func (a *Aggregator) ListBooks(ctx context.Context) Envelope[book.ListResponse] {
	data := a.books.List(ctx)
	metrics.RecordBackendCall(backendREST, "list_books", outcomeOK)

	return Envelope[book.ListResponse]{
		Source: SourceREST,
		Data:   data,
		Links: httpx.Links{
			"gateway": gatewayPath,
			"self":    gatewayBooksPath,
			"direct":  restBooksPath,
		},
	}
}

func (a *Aggregator) GetBook(ctx context.Context, id int64) (Envelope[book.ItemResponse], error) {
	data, err := a.books.Get(ctx, id)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			metrics.RecordBackendCall(backendREST, "get_book", outcomeNotFound)
			return Envelope[book.ItemResponse]{}, fmt.Errorf("book %d: %w", id, ErrNotFound)
		}
		metrics.RecordBackendCall(backendREST, "get_book", outcomeError)
		a.logger.WithError(err).WithField("book_id", id).Warn("book backend failed")
		return Envelope[book.ItemResponse]{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	metrics.RecordBackendCall(backendREST, "get_book", outcomeOK)

	sid := strconv.FormatInt(id, 10)
	return Envelope[book.ItemResponse]{
		Source: SourceREST,
		Data:   data,
		Links: httpx.Links{
			"gateway": gatewayPath,
			"self":    gatewayBooksPath + "/" + sid,
			"all":     gatewayBooksPath,
			"direct":  restBooksPath + "/" + sid,
		},
	}, nil
}

// CreateBook forwards p to the book backend. Every failure, validation
// included, is reported as ErrBadRequest.
func (a *Aggregator) CreateBook(ctx context.Context, p book.Payload) (Envelope[book.CreatedResponse], error) {
	data, err := a.books.Create(ctx, p)
	if err != nil {
		metrics.RecordBackendCall(backendREST, "create_book", outcomeError)
		a.logger.WithError(err).Warn("gateway book create rejected")
		return Envelope[book.CreatedResponse]{}, ErrBadRequest
	}
	metrics.RecordBackendCall(backendREST, "create_book", outcomeOK)

	return Envelope[book.CreatedResponse]{
		Source: SourceREST,
		Data:   data,
		Links: httpx.Links{
			"gateway": gatewayPath,
			"self":    gatewayBooksPath + "/" + strconv.FormatInt(data.Book.ID, 10),
			"all":     gatewayBooksPath,
		},
	}, nil
}

func (a *Aggregator) ListUsers(ctx context.Context) (Envelope[UserList], error) {
	resp, err := a.users.GetAllUsers(ctx, &user.GetAllUsersRequest{})
	if err != nil {
		metrics.RecordBackendCall(backendSOAP, "list_users", outcomeError)
		a.logger.WithError(err).Warn("user backend failed")
		return Envelope[UserList]{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	metrics.RecordBackendCall(backendSOAP, "list_users", outcomeOK)

	usuarios := resp.Usuarios
	if usuarios == nil {
		usuarios = []user.Usuario{}
	}
	return Envelope[UserList]{
		Source: SourceSOAP,
		Data:   UserList{Usuarios: usuarios, Count: len(usuarios)},
		Links: httpx.Links{
			"gateway": gatewayPath,
			"self":    gatewayUsersPath,
			"wsdl":    wsdlPath,
			"soap":    soapPath,
		},
	}, nil
}

func (a *Aggregator) GetUser(ctx context.Context, id int64) (Envelope[UserItem], error) {
	resp, err := a.users.GetUser(ctx, &user.GetUserRequest{ID: id})
	if err != nil {
		metrics.RecordBackendCall(backendSOAP, "get_user", outcomeError)
		a.logger.WithError(err).WithField("user_id", id).Warn("user backend failed")
		return Envelope[UserItem]{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.Usuario == nil {
		metrics.RecordBackendCall(backendSOAP, "get_user", outcomeNotFound)
		return Envelope[UserItem]{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	metrics.RecordBackendCall(backendSOAP, "get_user", outcomeOK)

	return Envelope[UserItem]{
		Source: SourceSOAP,
		Data:   UserItem{Usuario: *resp.Usuario},
		Links: httpx.Links{
			"gateway": gatewayPath,
			"self":    gatewayUsersPath + "/" + strconv.FormatInt(id, 10),
			"all":     gatewayUsersPath,
			"wsdl":    wsdlPath,
		},
	}, nil
}
