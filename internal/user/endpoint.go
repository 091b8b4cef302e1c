package user

import (
	"context"

	"librarygateway/internal/httpx"
	"librarygateway/internal/soap"
)

// Endpoint implements the user operations over a local store.
type Endpoint struct {
	store *Store
}

func NewEndpoint(store *Store) *Endpoint {
	return &Endpoint{store: store}
}

// GetUser looks up one user. An unknown id is not an error: the response
// simply carries no usuario.
func (e *Endpoint) GetUser(ctx context.Context, req *GetUserRequest) (*GetUserResponse, error) {
	resp := &GetUserResponse{}
	if u, ok := e.store.Get(req.ID); ok {
		usuario := toUsuario(u)
		resp.Usuario = &usuario
	}
	return resp, nil
}

func (e *Endpoint) GetAllUsers(ctx context.Context, req *GetAllUsersRequest) (*GetAllUsersResponse, error) {
	users := e.store.List()
	resp := &GetAllUsersResponse{Usuarios: make([]Usuario, 0, len(users))}
	for _, u := range users {
		resp.Usuarios = append(resp.Usuarios, toUsuario(u))
	}
	return resp, nil
}

func (e *Endpoint) CreateUser(ctx context.Context, req *CreateUserRequest) (*CreateUserResponse, error) {
	if err := httpx.Validate(req); err != nil {
		return nil, soap.ClientFault("%v", err)
	}

	u := e.store.Create(User{Name: req.Nome, Email: req.Email})
	usuario := toUsuario(u)
	return &CreateUserResponse{Usuario: &usuario}, nil
}

// Register adds the three user operations to m.
func Register(m *soap.Mux, e *Endpoint) {
	soap.Handle(m, e.GetUser)
	soap.Handle(m, e.GetAllUsers)
	soap.Handle(m, e.CreateUser)
}

// NewDefinition describes the user service for WSDL publication, with the
// SOAP endpoint mounted at path.
func NewDefinition(path string) soap.Definition {
	return soap.Definition{
		Service:         "UsersPortService",
		PortType:        "UsersPort",
		TargetNamespace: Namespace,
		Schema:          Schema,
		Path:            path,
	}
}
