package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Always allowed outside release mode so the site can be developed locally
var devOrigins = []string{
	"http://localhost:8888", // netlify dev
	"http://localhost:8080",
	"http://127.0.0.1:8080",
	"http://localhost:3000",
}

// CORSMiddleware adds CORS headers for cross-origin requests.
// Same-origin requests (no Origin header) always pass; other origins must be
// listed in allowed, or be a dev origin when not in release mode.
func CORSMiddleware(allowed []string, release bool) gin.HandlerFunc {
	origins := make(map[string]bool, len(allowed)+len(devOrigins))
	for _, o := range allowed {
		origins[o] = true
	}
	if !release {
		for _, o := range devOrigins {
			origins[o] = true
		}
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		isAllowed := origin == "" || origins[origin]

		if isAllowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, X-Request-ID, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			if isAllowed {
				c.AbortWithStatus(http.StatusNoContent)
			} else {
				c.AbortWithStatus(http.StatusForbidden)
			}
			return
		}

		c.Next()
	}
}
