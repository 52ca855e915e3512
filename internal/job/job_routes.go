package job

import (
	"go-jobtracker/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	jobs.Use(middleware.ContextLogger(logger))
	{
		jobs.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.List,
		)

		// cloud (owner) writes
		jobs.POST("",
			middleware.RateLimitByUser(0.5, 2),
			handler.Create,
		)
		jobs.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			handler.Update,
		)
		jobs.POST("/:id/done",
			middleware.RateLimitByUser(1, 5),
			handler.MarkDone,
		)

		// local (independent) lifecycle
		jobs.POST("/local",
			middleware.RateLimitByUser(1, 5),
			handler.CreateLocal,
		)
		jobs.PUT("/local/:id",
			middleware.RateLimitByUser(1, 5),
			handler.UpdateLocal,
		)
		jobs.POST("/local/:id/done",
			middleware.RateLimitByUser(1, 5),
			handler.MarkDoneLocal,
		)
		jobs.DELETE("/local/:id",
			middleware.RateLimitByUser(1, 5),
			handler.DeleteLocal,
		)
		jobs.GET("/trash",
			middleware.RateLimitByUser(3, 10),
			handler.ListTrash,
		)
		jobs.POST("/trash/:id/restore",
			middleware.RateLimitByUser(1, 5),
			handler.RestoreLocal,
		)
		jobs.DELETE("/trash/:id",
			middleware.RateLimitByUser(0.5, 2),
			handler.PurgeLocal,
		)
	}
}
