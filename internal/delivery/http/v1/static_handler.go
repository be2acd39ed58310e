package v1

import (
	"net/http"

	"portfolio-contact/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// NewStaticHandler serves the portfolio site from dir for any GET/HEAD that no
// API route matched. With an empty dir every unmatched request is a JSON 404.
func NewStaticHandler(r *gin.Engine, dir string) {
	var site http.FileSystem
	if dir != "" {
		site = gin.Dir(dir, false)
	}

	r.NoRoute(func(c *gin.Context) {
		method := c.Request.Method
		if site == nil || (method != http.MethodGet && method != http.MethodHead) {
			c.Error(apperror.NotFound("Not Found"))
			return
		}
		c.FileFromFS(c.Request.URL.Path, site)
	})
}
