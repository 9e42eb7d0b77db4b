package api

import (
	"harmonizer/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SetupRouter builds the gin engine, grouping the three analysis
// endpoints under /api/v1 and exposing /health at the root, grounded
// on the magda-api reference's router setup.
func SetupRouter(cfg *config.Config) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware())

	h := NewHandlers(cfg)

	r.GET("/health", h.HealthCheck)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/analyze_bassline", h.AnalyzeBassline)
		v1.POST("/realize_satb", h.RealizeSATB)
		v1.POST("/generate_ai_music", h.GenerateAIMusic)
	}

	return r
}

// requestIDMiddleware stamps every request with the caller's
// X-Request-ID or a new UUID, stores it on the gin context as
// "request_id" and echoes it in the X-Request-ID response header.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
