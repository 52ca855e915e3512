package company

import (
	"go-jobtracker/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	companies := r.Group("/companies")
	companies.Use(middleware.AuthMiddleware())
	companies.Use(middleware.ContextLogger(logger))
	{
		companies.POST("",
			middleware.RateLimitByUser(0.1, 1),
			handler.Create,
		)
		companies.POST("/join",
			middleware.RateLimitByUser(0.5, 3),
			handler.Join,
		)
		companies.GET("/me",
			middleware.RateLimitByUser(3, 10),
			handler.GetMine,
		)
	}
}
