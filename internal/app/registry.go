package app

import (
	"go-jobtracker/internal/company"
	"go-jobtracker/internal/job"
	"go-jobtracker/internal/messaging/kafka"
	"go-jobtracker/internal/middleware"
	"go-jobtracker/internal/profile"
	"go-jobtracker/internal/rbac"
	"go-jobtracker/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories & Stores ---
	profileRepo := profile.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	jobStore := job.NewStore(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	sessionCache := session.NewRedisCache(rdb)
	localJobStore := job.NewRedisLocalStore(rdb)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Services ---
	sessionResolver := session.NewResolver(sessionCache, profileRepo)
	companyService := company.NewService(gormDB, companyRepo, profileRepo, sessionCache, outboxRepo)
	jobService := job.NewService(gormDB, jobStore, localJobStore, outboxRepo, rbacService)

	// --- Handlers ---
	sessionHandler := session.NewHandler(sessionResolver, sessionCache)
	companyHandler := company.NewHandler(companyService)
	jobHandler := job.NewHandler(jobService, sessionResolver)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		session.RegisterRoutes(api, sessionHandler, logger)
		company.RegisterRoutes(api, companyHandler, logger)
		job.RegisterRoutes(api, jobHandler, logger)
	}

	return nil
}
