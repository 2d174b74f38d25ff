// Package server implements the taskapp HTTP API on a chi router.
// The same router serves API Gateway (through algnhsa) and the local dev server.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/taskapp/taskapp/internal/app"
)

// Router wraps the chi mux and the application services.
type Router struct {
	router   *chi.Mux
	svc      *app.Service
	identity IdentityResolver
	validate *validator.Validate
}

// Option configures a Router.
type Option func(*Router)

// WithIdentityResolver overrides how the caller identity is resolved.
func WithIdentityResolver(resolver IdentityResolver) Option {
	return func(r *Router) {
		r.identity = resolver
	}
}

// NewRouter creates a new chi router with routes configured.
// A zero requestTimeout disables the timeout middleware.
func NewRouter(svc *app.Service, requestTimeout time.Duration, allowedOrigins []string, opts ...Option) *Router {
	r := chi.NewRouter()
	router := &Router{
		router:   r,
		svc:      svc,
		identity: JWTClaimsIdentity{},
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(router)
	}

	r.Use(router.requestIDMiddleware)
	r.Use(router.requestLoggingMiddleware)
	r.Use(corsMiddleware(allowedOrigins))
	r.Use(setContentTypeJSONMiddleware)
	if requestTimeout > 0 {
		r.Use(router.requestTimeoutMiddleware(requestTimeout))
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeErrorResponse(w, http.StatusNotFound, "not found", "route does not exist")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed", "")
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", router.handleHealth)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", router.handleSignUp)
			r.Post("/confirm", router.handleConfirmSignUp)
			r.Post("/login", router.handleSignIn)
		})

		r.Group(func(r chi.Router) {
			r.Use(router.authenticateRequestMiddleware)

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", router.handleListTasks)
				r.Post("/", router.handleCreateTask)
				r.Get("/{taskID}", router.handleGetTask)
				r.Patch("/{taskID}", router.handleUpdateTask)
				r.Delete("/{taskID}", router.handleDeleteTask)
				r.Post("/{taskID}/complete", router.handleCompleteTask)
			})

			r.Route("/users/me", func(r chi.Router) {
				r.Get("/", router.handleGetCurrentUser)
				r.Post("/", router.handleCreateCurrentUser)
				r.Patch("/preferences", router.handleUpdatePreferences)
			})
		})
	})

	return router
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// ChiMux returns the underlying chi router for advanced usage.
func (r *Router) ChiMux() *chi.Mux {
	return r.router
}

// Handler returns an http.Handler for the router.
func (r *Router) Handler() http.Handler {
	return r.router
}
