package gateway

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"librarygateway/internal/book"
	"librarygateway/internal/httpx"
)

type HTTPHandler struct {
	agg *Aggregator
}

func NewHTTPHandler(agg *Aggregator) *HTTPHandler {
	return &HTTPHandler{agg: agg}
}

// Register mounts the gateway routes on r.
func (h *HTTPHandler) Register(r chi.Router) {
	r.Route(gatewayPath, func(r chi.Router) {
		r.Get("/", h.Info)
		r.Get("/books", h.ListBooks)
		r.Post("/books", h.CreateBook)
		r.Get("/books/{id}", h.GetBook)
		r.Get("/users", h.ListUsers)
		r.Get("/users/{id}", h.GetUser)
	})
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func writeError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "NOT_FOUND", notFoundMsg, nil)
	case errors.Is(err, ErrBadRequest):
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid book payload", nil)
	case errors.Is(err, ErrUpstream):
		httpx.JSONErrorWithRequest(r, w, http.StatusBadGateway, "BAD_GATEWAY", "Backend service unavailable", nil)
	default:
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}

// Info handles GET /gateway
// @Summary Gateway information
// @Description Lists the APIs reachable through the gateway
// @Tags gateway
// @Produce json
// @Success 200 {object} Info
// @Router /gateway [get]
func (h *HTTPHandler) Info(w http.ResponseWriter, r *http.Request) {
	httpx.JSONOK(w, h.agg.Info())
}

// ListBooks handles GET /gateway/books
// @Summary Books via gateway
// @Tags gateway
// @Produce json
// @Success 200 {object} Envelope[book.ListResponse]
// @Router /gateway/books [get]
func (h *HTTPHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	httpx.JSONOK(w, h.agg.ListBooks(r.Context()))
}

// GetBook handles GET /gateway/books/{id}
// @Summary Book by id via gateway
// @Tags gateway
// @Produce json
// @Param id path int true "Book id"
// @Success 200 {object} Envelope[book.ItemResponse]
// @Failure 404 {object} httpx.ErrorResponse
// @Router /gateway/books/{id} [get]
func (h *HTTPHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "Book id must be an integer", nil)
		return
	}

	env, err := h.agg.GetBook(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Book not found")
		return
	}
	httpx.JSONOK(w, env)
}

// CreateBook handles POST /gateway/books
// @Summary Create book via gateway
// @Tags gateway
// @Accept json
// @Produce json
// @Param book body book.Payload true "Book"
// @Success 200 {object} Envelope[book.CreatedResponse]
// @Failure 400 {object} httpx.ErrorResponse
// @Router /gateway/books [post]
func (h *HTTPHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var p book.Payload
	if err := httpx.DecodeJSON(r, &p); err != nil {
		writeError(w, r, ErrBadRequest, "")
		return
	}

	env, err := h.agg.CreateBook(r.Context(), p)
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	httpx.JSONOK(w, env)
}

// ListUsers handles GET /gateway/users
// @Summary Users via gateway
// @Description Calls the SOAP getAllUsuarios operation
// @Tags gateway
// @Produce json
// @Success 200 {object} Envelope[UserList]
// @Failure 502 {object} httpx.ErrorResponse
// @Router /gateway/users [get]
func (h *HTTPHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	env, err := h.agg.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	httpx.JSONOK(w, env)
}

// GetUser handles GET /gateway/users/{id}
// @Summary User by id via gateway
// @Description Calls the SOAP getUsuario operation
// @Tags gateway
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} Envelope[UserItem]
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /gateway/users/{id} [get]
func (h *HTTPHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "User id must be an integer", nil)
		return
	}

	env, err := h.agg.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "User not found")
		return
	}
	httpx.JSONOK(w, env)
}
