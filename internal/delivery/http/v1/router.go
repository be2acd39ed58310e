package v1

import (
	"net/http"

	"portfolio-contact/config"
	"portfolio-contact/internal/delivery/http/middleware"
	"portfolio-contact/internal/delivery/http/response"
	"portfolio-contact/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	HealthUC  domain.HealthUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins, deps.Config.GinMode == gin.ReleaseMode)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	v1.GET("/health", healthCheck(deps.HealthUC))

	// Public routes
	NewContactHandler(v1, r.Group("/.netlify/functions"), deps.ContactUC)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Portfolio site (optional)
	NewStaticHandler(r, deps.Config.StaticDir)

	return r
}

// healthCheck godoc
// @Summary      Health Check
// @Description  Liveness plus whether the mail provider has credentials.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /v1/health [get]
func healthCheck(uc domain.HealthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.JSON(c, http.StatusOK, uc.Check(c.Request.Context()))
	}
}
