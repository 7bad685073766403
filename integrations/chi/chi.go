// Package chi provides thin adapters for using errhound with the chi router.
//
// Chi uses standard net/http handlers, so the Interceptor works directly.
// This package exists for discoverability and convenience.
package chi

import (
	"net/http"

	"github.com/blackwell-systems/errhound"
)

// Intercept returns middleware that renders panics raised by downstream
// handlers.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(Trace, Intercept(i))
func Intercept(i *errhound.Interceptor) func(http.Handler) http.Handler {
	return i.Middleware
}

// Handler adapts an error-returning handler for chi routes.
//
// Example:
//
//	r.Get("/users/{id}", Handler(i, func(w http.ResponseWriter, r *http.Request) error {
//	    return errhound.NotFound("user " + chi.URLParam(r, "id") + " not found")
//	}))
func Handler(i *errhound.Interceptor, fn errhound.HandlerFunc) http.HandlerFunc {
	return i.Wrap(fn).ServeHTTP
}

// NotFound returns a handler for chi's r.NotFound that renders a NOT_FOUND error.
func NotFound(i *errhound.Interceptor) http.HandlerFunc {
	return Handler(i, func(_ http.ResponseWriter, r *http.Request) error {
		return errhound.NotFound("no route for " + r.URL.Path)
	})
}

// MethodNotAllowed returns a handler for chi's r.MethodNotAllowed.
// There is no built-in kind for 405, so it renders a BAD_REQUEST error.
func MethodNotAllowed(i *errhound.Interceptor) http.HandlerFunc {
	return Handler(i, func(_ http.ResponseWriter, r *http.Request) error {
		return errhound.BadRequest("method " + r.Method + " not allowed for " + r.URL.Path)
	})
}

// Trace is a convenience wrapper around errhound.TraceMiddleware
// that returns a standard net/http middleware for chi.
func Trace(next http.Handler) http.Handler {
	return errhound.TraceMiddleware(next)
}
