// Package echo provides adapters for using errhound with the Echo framework.
package echo

import (
	"errors"
	"net/http"

	echofw "github.com/labstack/echo/v4"

	"github.com/blackwell-systems/errhound"
)

// Intercept adapts an Interceptor to Echo's middleware interface.
//
// Errors returned by handlers are rendered by the Interceptor, so Echo's own
// HTTPErrorHandler never sees them. *echo.HTTPError values whose status
// matches a built-in kind are translated to that kind.
//
// Example:
//
//	e := echo.New()
//	e.Use(Intercept(i))
//	e.GET("/user", func(c echo.Context) error {
//	    return errhound.Unauthorized("missing token")
//	})
func Intercept(i *errhound.Interceptor) echofw.MiddlewareFunc {
	return func(next echofw.HandlerFunc) echofw.HandlerFunc {
		return func(c echofw.Context) error {
			w := &response{Response: c.Response()}
			i.Intercept(w, c.Request(), func(http.ResponseWriter) error {
				return translate(next(c))
			})
			return nil
		}
	}
}

// translate maps Echo's HTTP errors onto built-in kinds.
func translate(err error) error {
	var he *echofw.HTTPError
	if !errors.As(err, &he) {
		return err
	}
	details := he.Message
	if s, ok := he.Message.(string); ok && s == http.StatusText(he.Code) {
		details = nil
	}
	if e := errhound.FromStatus(he.Code, details); e != nil {
		return e.WithCause(err)
	}
	return err
}

// response lets the Interceptor see whether Echo already committed the response.
type response struct {
	*echofw.Response
}

func (r *response) Written() bool { return r.Committed }

// Trace adapts errhound trace middleware to Echo's middleware interface.
//
// This generates or propagates trace IDs and makes them available via
// errhound.TraceIDFromRequest(c.Request()).
func Trace(next echofw.HandlerFunc) echofw.HandlerFunc {
	return func(c echofw.Context) error {
		var err error
		// Wrap with errhound trace middleware
		handler := errhound.TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Update context with traced request
			c.SetRequest(r)
			err = next(c)
		}))

		handler.ServeHTTP(c.Response().Writer, c.Request())
		return err
	}
}
