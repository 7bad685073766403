// Package gin provides adapters for using errhound with the Gin framework.
package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blackwell-systems/errhound"
)

// Intercept wires an Interceptor into Gin's middleware chain.
//
// Handlers raise faults with Abort (or c.Error followed by c.Abort) or by
// panicking. The last error recorded on the context is the one rendered.
//
// Example:
//
//	r := gin.New()
//	r.Use(Trace(), Intercept(i))
//	r.GET("/users/:id", func(c *gin.Context) {
//	    Abort(c, errhound.NotFound("user "+c.Param("id")+" not found"))
//	})
func Intercept(i *errhound.Interceptor) gin.HandlerFunc {
	return func(c *gin.Context) {
		i.Intercept(c.Writer, c.Request, func(http.ResponseWriter) error {
			c.Next()
			if last := c.Errors.Last(); last != nil {
				return last.Err
			}
			return nil
		})
	}
}

// Abort records err on the context and stops the remaining handlers.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// Trace wires errhound trace ID middleware into Gin's middleware chain.
//
// This generates or propagates trace IDs and makes them available via
// errhound.TraceIDFromRequest(c.Request).
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Wrap remaining chain with errhound trace middleware
		handler := errhound.TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Update context with traced request
			c.Request = r
			c.Next()
		}))

		handler.ServeHTTP(c.Writer, c.Request)
	}
}
