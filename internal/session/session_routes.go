package session

import (
	"go-jobtracker/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	sessions := r.Group("/session")
	sessions.Use(middleware.ContextLogger(logger))
	{
		// Resolution must work without a principal so it can route to LOGIN.
		sessions.POST("/resolve",
			middleware.OptionalAuthMiddleware(),
			middleware.RateLimitByIP(5, 20),
			handler.Resolve,
		)
	}

	prefs := r.Group("/preferences")
	prefs.Use(middleware.AuthMiddleware())
	prefs.Use(middleware.ContextLogger(logger))
	{
		prefs.GET("/sort",
			middleware.RateLimitByUser(5, 20),
			handler.GetSortPreference,
		)
		prefs.PUT("/sort",
			middleware.RateLimitByUser(1, 5),
			handler.SaveSortPreference,
		)
	}
}
