package handlers

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"

	"todolist/api"
	"todolist/internal/generated/openapi"
	"todolist/internal/log"
	"todolist/web"
)

// NewRouter wires the browser page and the item API onto one chi router.
func NewRouter(ctx context.Context, db *sql.DB) (*chi.Mux, error) {
	doc, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}
	validator, err := NewRequestValidator(doc)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(RequestLogger)

	web.Register(router)

	openapi.HandlerWithOptions(NewItemAPIServer(db), openapi.ChiServerOptions{
		BaseRouter:       router,
		Middlewares:      []openapi.MiddlewareFunc{validator.Middleware},
		ErrorHandlerFunc: paramErrorHandler,
	})

	return router, nil
}

// NewServer returns an http.Server for router that logs through zerolog.
func NewServer(addr string, router http.Handler) *http.Server {
	return &http.Server{
		Addr:     addr,
		Handler:  router,
		ErrorLog: log.StdErrorLogger(),
	}
}
