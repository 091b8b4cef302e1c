package gateway

import (
	"librarygateway/internal/httpx"
	"librarygateway/internal/user"
)

const (
	SourceREST = "REST API"
	SourceSOAP = "SOAP API"
)

// Envelope wraps a backend payload with its origin and navigation links.
type Envelope[T any] struct {
	Source string      `json:"source"`
	Data   T           `json:"data"`
	Links  httpx.Links `json:"_links"`
}

type UserList struct {
	Usuarios []user.Usuario `json:"usuarios"`
	Count    int            `json:"count"`
}

type UserItem struct {
	Usuario user.Usuario `json:"usuario"`
}

// Info describes the gateway and the APIs behind it.
type Info struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	APIs        map[string]string `json:"apis"`
	Links       httpx.Links       `json:"_links"`
}
