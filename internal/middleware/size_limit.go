package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// multipartOverhead pads the cap for multipart boundaries and part headers.
var multipartOverhead = int64(8 * 1024)

// SizeLimit caps the request body for upload routes. Reading past the cap
// yields http.MaxBytesError, which gin surfaces as 413 request entity too
// large.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes+multipartOverhead)
		c.Next()
	}
}
