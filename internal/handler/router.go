package handler

import (
	"net/http"

	"geocache/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter builds the HTTP router with the health check, the versioned API and
// the Swagger UI.
func NewRouter(reverseGeocodeHandler *ReverseGeocodeHandler) *gin.Engine {
	r := gin.New()
	r.Use(logger.RequestLogger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api/v0")
	reverseGeocodeHandler.RegisterRoutes(api)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
