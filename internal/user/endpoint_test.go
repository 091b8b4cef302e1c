package user

import (
	"context"
	"encoding/xml"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"librarygateway/internal/soap"
)

func TestEndpoint_GetUser(t *testing.T) {
	ctx := context.Background()
	e := NewEndpoint(NewSeededStore())

	t.Run("found", func(t *testing.T) {
		resp, err := e.GetUser(ctx, &GetUserRequest{ID: 1})

		require.NoError(t, err)
		require.NotNil(t, resp.Usuario)
		assert.Equal(t, Usuario{ID: 1, Nome: "João Silva", Email: "joao@email.com"}, *resp.Usuario)
	})

	t.Run("unknown id leaves usuario empty", func(t *testing.T) {
		resp, err := e.GetUser(ctx, &GetUserRequest{ID: 42})

		require.NoError(t, err)
		assert.Nil(t, resp.Usuario)
	})
}

func TestEndpoint_GetAllUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("seeded", func(t *testing.T) {
		resp, err := NewEndpoint(NewSeededStore()).GetAllUsers(ctx, &GetAllUsersRequest{})

		require.NoError(t, err)
		require.Len(t, resp.Usuarios, 2)
		assert.Equal(t, "Maria Santos", resp.Usuarios[1].Nome)
		assert.Equal(t, int64(2), resp.Usuarios[1].ID)
	})

	t.Run("empty", func(t *testing.T) {
		resp, err := NewEndpoint(NewStore()).GetAllUsers(ctx, &GetAllUsersRequest{})

		require.NoError(t, err)
		assert.NotNil(t, resp.Usuarios)
		assert.Empty(t, resp.Usuarios)
	})
}

func TestEndpoint_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns next id", func(t *testing.T) {
		store := NewSeededStore()
		e := NewEndpoint(store)

		resp, err := e.CreateUser(ctx, &CreateUserRequest{Nome: "Ana", Email: "ana@email.com"})

		require.NoError(t, err)
		assert.Equal(t, Usuario{ID: 3, Nome: "Ana", Email: "ana@email.com"}, *resp.Usuario)

		got, err := e.GetUser(ctx, &GetUserRequest{ID: 3})
		require.NoError(t, err)
		assert.Equal(t, resp.Usuario, got.Usuario)
	})

	t.Run("too long is a client fault", func(t *testing.T) {
		store := NewSeededStore()
		e := NewEndpoint(store)

		_, err := e.CreateUser(ctx, &CreateUserRequest{Nome: strings.Repeat("a", 256)})

		var f *soap.Fault
		require.True(t, errors.As(err, &f))
		assert.Equal(t, soap.FaultClient, f.Code)
		assert.Contains(t, f.String, "nome")
		assert.Equal(t, 2, store.Len())
	})
}

func newTestServer(t *testing.T) (*httptest.Server, *Store) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	store := NewSeededStore()

	mux := soap.NewMux(logger)
	Register(mux, NewEndpoint(store))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, store
}

func TestRegister_PrefixedRequest(t *testing.T) {
	srv, _ := newTestServer(t)

	body := `<?xml version="1.0"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"
               xmlns:usr="http://proj.example.com/usuario">
    <soap:Body>
        <usr:getAllUsuariosRequest/>
    </soap:Body>
</soap:Envelope>`

	res, err := http.Post(srv.URL, soap.ContentType, strings.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var env struct {
		Body struct {
			Response GetAllUsersResponse `xml:"getAllUsuariosResponse"`
		} `xml:"Body"`
	}
	require.NoError(t, xml.NewDecoder(res.Body).Decode(&env))
	require.Len(t, env.Body.Response.Usuarios, 2)
	assert.Equal(t, "joao@email.com", env.Body.Response.Usuarios[0].Email)
}

func TestRegister_GetUnknownUserHasNoUsuarioElement(t *testing.T) {
	srv, _ := newTestServer(t)

	body := `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">` +
		`<soap:Body><getUsuarioRequest xmlns="http://proj.example.com/usuario"><id>99</id></getUsuarioRequest></soap:Body></soap:Envelope>`

	res, err := http.Post(srv.URL, soap.ContentType, strings.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `<getUsuarioResponse xmlns="http://proj.example.com/usuario"></getUsuarioResponse>`)
}

func TestRemoteEndpoint(t *testing.T) {
	srv, store := newTestServer(t)
	remote := NewRemoteEndpoint(soap.NewClient(srv.URL, srv.Client()))
	ctx := context.Background()

	t.Run("get all", func(t *testing.T) {
		resp, err := remote.GetAllUsers(ctx, &GetAllUsersRequest{})

		require.NoError(t, err)
		require.Len(t, resp.Usuarios, 2)
		assert.Equal(t, Usuario{ID: 2, Nome: "Maria Santos", Email: "maria@email.com"}, resp.Usuarios[1])
	})

	t.Run("get", func(t *testing.T) {
		resp, err := remote.GetUser(ctx, &GetUserRequest{ID: 1})

		require.NoError(t, err)
		require.NotNil(t, resp.Usuario)
		assert.Equal(t, "João Silva", resp.Usuario.Nome)
	})

	t.Run("get unknown", func(t *testing.T) {
		resp, err := remote.GetUser(ctx, &GetUserRequest{ID: 99})

		require.NoError(t, err)
		assert.Nil(t, resp.Usuario)
	})

	t.Run("create", func(t *testing.T) {
		resp, err := remote.CreateUser(ctx, &CreateUserRequest{Nome: "Ana", Email: "ana@email.com"})

		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.Usuario.ID)
		assert.Equal(t, 3, store.Len())
	})

	t.Run("create fault", func(t *testing.T) {
		_, err := remote.CreateUser(ctx, &CreateUserRequest{Email: strings.Repeat("e", 300)})

		var f *soap.Fault
		require.True(t, errors.As(err, &f))
		assert.Equal(t, soap.FaultClient, f.Code)
	})
}

func TestDefinition_ListsUserOperations(t *testing.T) {
	logger, _ := test.NewNullLogger()
	mux := soap.NewMux(logger)
	Register(mux, NewEndpoint(NewStore()))

	var b strings.Builder
	def := NewDefinition("/ws")
	require.NoError(t, def.Render(&b, "http://localhost:8080/ws", mux.Operations()))

	wsdl := b.String()
	assert.Contains(t, wsdl, `targetNamespace="`+Namespace+`"`)
	for _, op := range []string{"getUsuario", "getAllUsuarios", "createUsuario"} {
		assert.Contains(t, wsdl, `<wsdl:operation name="`+op+`">`)
	}
	assert.Equal(t, 6, strings.Count(wsdl, `<wsdl:operation name=`))
	assert.Contains(t, wsdl, `<xs:element name="getAllUsuariosResponse">`)
	assert.Contains(t, wsdl, `<soap:address location="http://localhost:8080/ws"/>`)
}
