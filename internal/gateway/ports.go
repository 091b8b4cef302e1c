package gateway

import (
	"context"

	"librarygateway/internal/book"
	"librarygateway/internal/user"
)

//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

// BookResource is the REST book backend as seen by the gateway.
type BookResource interface {
	List(ctx context.Context) book.ListResponse
	Get(ctx context.Context, id int64) (book.ItemResponse, error)
	Create(ctx context.Context, p book.Payload) (book.CreatedResponse, error)
}

// UserOperations is the SOAP user backend as seen by the gateway.
type UserOperations interface {
	GetUser(ctx context.Context, req *user.GetUserRequest) (*user.GetUserResponse, error)
	GetAllUsers(ctx context.Context, req *user.GetAllUsersRequest) (*user.GetAllUsersResponse, error)
}
