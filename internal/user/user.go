package user

import (
	"encoding/xml"

	"librarygateway/internal/platform/memstore"
)

// Namespace qualifies every payload element of the user service.
const Namespace = "http://proj.example.com/usuario"

// User represents a stored user.
type User struct {
	ID    int64
	Name  string
	Email string
}

// Usuario is the wire shape of a user in both XML and JSON.
type Usuario struct {
	ID    int64  `xml:"id" json:"id"`
	Nome  string `xml:"nome" json:"nome"`
	Email string `xml:"email" json:"email"`
}

func toUsuario(u User) Usuario {
	return Usuario{ID: u.ID, Nome: u.Name, Email: u.Email}
}

type GetUserRequest struct {
	XMLName xml.Name `xml:"http://proj.example.com/usuario getUsuarioRequest"`
	ID      int64    `xml:"id"`
}

// GetUserResponse leaves Usuario nil when no user has the requested id.
type GetUserResponse struct {
	XMLName xml.Name `xml:"http://proj.example.com/usuario getUsuarioResponse"`
	Usuario *Usuario `xml:"usuario,omitempty"`
}

type GetAllUsersRequest struct {
	XMLName xml.Name `xml:"http://proj.example.com/usuario getAllUsuariosRequest"`
}

type GetAllUsersResponse struct {
	XMLName  xml.Name  `xml:"http://proj.example.com/usuario getAllUsuariosResponse"`
	Usuarios []Usuario `xml:"usuario"`
}

type CreateUserRequest struct {
	XMLName xml.Name `xml:"http://proj.example.com/usuario createUsuarioRequest"`
	Nome    string   `xml:"nome" validate:"max=255"`
	Email   string   `xml:"email" validate:"max=255"`
}

type CreateUserResponse struct {
	XMLName xml.Name `xml:"http://proj.example.com/usuario createUsuarioResponse"`
	Usuario *Usuario `xml:"usuario"`
}

// Store holds users in memory.
type Store = memstore.Store[User]

// NewStore returns a store holding seed, numbered from 1.
func NewStore(seed ...User) *Store {
	return memstore.New(
		func(u User) int64 { return u.ID },
		func(u *User, id int64) { u.ID = id },
		seed...,
	)
}

// NewSeededStore returns a store with the two demo users.
func NewSeededStore() *Store {
	return NewStore(
		User{Name: "João Silva", Email: "joao@email.com"},
		User{Name: "Maria Santos", Email: "maria@email.com"},
	)
}
