package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"librarygateway/internal/book"
	"librarygateway/internal/gateway"
	"librarygateway/internal/httpx"
	"librarygateway/internal/platform/metrics"
	"librarygateway/internal/soap"
	"librarygateway/internal/user"
)

const soapPath = "/ws"

// newRouter builds every backend and mounts all routes. ctx bounds the rate
// limiter's background cleanup.
func newRouter(ctx context.Context, cfg config, logger logrus.FieldLogger) http.Handler {
	bookService := book.NewService(book.NewSeededStore())

	userEndpoint := user.NewEndpoint(user.NewSeededStore())
	soapMux := soap.NewMux(logger)
	user.Register(soapMux, userEndpoint)
	definition := user.NewDefinition(soapPath)

	var users gateway.UserOperations = userEndpoint
	if cfg.UsersSOAPURL != "" {
		logger.WithField("url", cfg.UsersSOAPURL).Info("gateway uses remote user service")
		users = user.NewRemoteEndpoint(soap.NewClient(cfg.UsersSOAPURL, nil))
	}
	aggregator := gateway.NewAggregator(bookService, users, logger)

	r := chi.NewRouter()
	r.Use(httpx.RequestIDMiddleware)
	r.Use(httpx.AccessLogMiddleware(logger))
	r.Use(httpx.RecoveryMiddleware(logger))
	r.Use(metrics.InstrumentHandler)
	r.Use(httpx.SecurityHeadersMiddleware(cfg.EnableHSTS))
	r.Use(httpx.CORSMiddleware(cfg.CORSOrigins))
	r.Use(httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
	r.Use(httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware)
	if cfg.JWTSecret != "" {
		r.Use(httpx.AuthMiddleware(cfg.JWTSecret))
	}

	r.NotFound(httpx.NotFoundHandler)
	r.MethodNotAllowed(httpx.MethodNotAllowedHandler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	book.NewHTTPHandler(bookService).Register(r)
	gateway.NewHTTPHandler(aggregator).Register(r)

	r.Handle(soapPath, soapMux)
	r.Method(http.MethodGet, soapPath+"/users.wsdl", definition.WSDLHandler(soapMux, logger))
	r.Method(http.MethodGet, soapPath+"/users.xsd", definition.SchemaHandler())

	return r
}
