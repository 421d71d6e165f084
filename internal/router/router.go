package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"skema/internal/handler"
	"skema/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	extractH *handler.ExtractHandler,
	schemaH *handler.SchemaHandler,
	chatH *handler.ChatHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Extraction
	v1.POST("/extract", extractH.Extract)

	// Schema catalog
	schemas := v1.Group("/schemas")
	schemas.POST("", schemaH.Create)
	schemas.GET("", schemaH.List)
	schemas.GET("/:name", schemaH.GetByName)
	schemas.DELETE("/:name", schemaH.Delete)
	schemas.POST("/:name/extract", extractH.ExtractWithSchema)

	// Chat sessions
	v1.POST("/chat", chatH.Send)
	sessions := v1.Group("/sessions")
	sessions.GET("/:id", chatH.History)
	sessions.DELETE("/:id", chatH.Reset)

	return r
}
