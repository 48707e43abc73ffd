package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
)

// RequestLogger prints one line per inbound request for debugging the admin
// front-end against this API.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		log.Printf("Request Method: %s, URL: %s", c.Request.Method, c.Request.URL.Path)
		c.Next()
	}
}
