// Package router sets up all HTTP routes and middleware chains for the
// product store service.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"productstore/internal/handlers"
	"productstore/internal/middleware"
	"productstore/web"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(products *handlers.Products) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics(routePattern))

	// The service fronts a browser UI, so the API is CORS-open.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{"Location", middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	// Health check and metrics, no dependencies on the store.
	r.Get("/health", handlers.Health)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	// Static index page.
	r.Get("/", indexHandler)

	// Product resource. The id segment is constrained to digits so
	// non-numeric ids 404 at the router, the same way an integer route
	// converter would.
	r.Route("/products", func(r chi.Router) {
		r.Post("/", products.Create)
		r.Get("/", products.List)
		r.Get("/{id:[0-9]+}", products.Get)
		r.Put("/{id:[0-9]+}", products.Update)
		r.Delete("/{id:[0-9]+}", products.Delete)
	})

	return r
}

// routePattern reports the matched chi route pattern for metrics labels,
// keeping label cardinality bounded regardless of raw request paths.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

// indexHandler serves the embedded static index page.
func indexHandler(w http.ResponseWriter, r *http.Request) {
	data, err := web.StaticFS.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}
