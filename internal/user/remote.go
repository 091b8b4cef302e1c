package user

import (
	"context"
	"fmt"

	"librarygateway/internal/soap"
)

// RemoteEndpoint offers the Endpoint operations of a user service reached
// over SOAP.
type RemoteEndpoint struct {
	client *soap.Client
}

func NewRemoteEndpoint(client *soap.Client) *RemoteEndpoint {
	return &RemoteEndpoint{client: client}
}

func (e *RemoteEndpoint) GetUser(ctx context.Context, req *GetUserRequest) (*GetUserResponse, error) {
	var resp GetUserResponse
	if err := e.client.Call(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("getUsuario: %w", err)
	}
	return &resp, nil
}

func (e *RemoteEndpoint) GetAllUsers(ctx context.Context, req *GetAllUsersRequest) (*GetAllUsersResponse, error) {
	var resp GetAllUsersResponse
	if err := e.client.Call(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("getAllUsuarios: %w", err)
	}
	if resp.Usuarios == nil {
		resp.Usuarios = []Usuario{}
	}
	return &resp, nil
}

func (e *RemoteEndpoint) CreateUser(ctx context.Context, req *CreateUserRequest) (*CreateUserResponse, error) {
	var resp CreateUserResponse
	if err := e.client.Call(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("createUsuario: %w", err)
	}
	return &resp, nil
}
