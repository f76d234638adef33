package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	corsAllowMethods = "GET, POST, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type"
	corsMaxAge       = "600"
)

// corsMiddleware lets the closet frontend call the API. An empty list or "*" allows any
// origin; otherwise only listed origins are echoed back.
func corsMiddleware(allowed []string) gin.HandlerFunc {
	wildcard := len(allowed) == 0
	origins := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		o = strings.ToLower(strings.TrimRight(strings.TrimSpace(o), "/"))
		if o == "*" {
			wildcard = true
		}
		origins[o] = struct{}{}
	}

	return func(c *gin.Context) {
		headers := c.Writer.Header()
		origin := c.GetHeader("Origin")
		switch {
		case wildcard:
			headers.Set("Access-Control-Allow-Origin", "*")
		case origin != "":
			headers.Add("Vary", "Origin")
			if _, ok := origins[strings.ToLower(origin)]; ok {
				headers.Set("Access-Control-Allow-Origin", origin)
			}
		}
		headers.Set("Access-Control-Allow-Methods", corsAllowMethods)
		headers.Set("Access-Control-Allow-Headers", corsAllowHeaders)

		if c.Request.Method == http.MethodOptions {
			headers.Set("Access-Control-Max-Age", corsMaxAge)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
