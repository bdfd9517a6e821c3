package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bangalorejobs/job-board/internal/api/handler"
	"github.com/bangalorejobs/job-board/internal/api/middleware"
	"github.com/bangalorejobs/job-board/internal/core/domain"
	"github.com/bangalorejobs/job-board/internal/core/service"
	mongodb "github.com/bangalorejobs/job-board/internal/infrastructure/db/mongo"
	"github.com/bangalorejobs/job-board/internal/infrastructure/db/redis"
	"github.com/bangalorejobs/job-board/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *goredis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("jobboard"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	appRepo := mongodb.NewApplicationRepository(db)
	revocations := redis.NewRevocationStore(rdb, tokenTTL)

	authService := service.NewAuthService(userRepo, revocations, jwtSecret, tokenTTL, log)
	jobService := service.NewJobService(jobRepo, log)
	appService := service.NewApplicationService(appRepo, jobRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	appHandler := handler.NewApplicationHandler(appService)

	authMW := middleware.Auth(jwtSecret, revocations)
	employerOnly := middleware.RBAC(string(domain.RoleEmployer))
	jobSeekerOnly := middleware.RBAC(string(domain.RoleJobSeeker))
	anyRole := middleware.RBAC(string(domain.RoleEmployer), string(domain.RoleJobSeeker))

	// --- Auth routes ---
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)

	// --- User routes ---
	e.GET("/v1/users/profile", userHandler.GetProfile, authMW, anyRole)
	e.PUT("/v1/users/profile", userHandler.UpdateProfile, authMW, anyRole)
	e.PUT("/v1/users/change-password", userHandler.ChangePassword, authMW, anyRole)

	// --- Job routes (public listing + detail; employer-only management) ---
	e.GET("/v1/jobs", jobHandler.List)
	e.GET("/v1/jobs/employer/my-jobs", jobHandler.MyJobs, authMW, employerOnly)
	e.GET("/v1/jobs/:id", jobHandler.Get)
	e.POST("/v1/jobs", jobHandler.Create, authMW, employerOnly)
	e.PUT("/v1/jobs/:id", jobHandler.Update, authMW, employerOnly)
	e.DELETE("/v1/jobs/:id", jobHandler.Close, authMW, employerOnly)

	// --- Application routes ---
	e.POST("/v1/applications", appHandler.Apply, authMW, jobSeekerOnly)
	e.GET("/v1/applications/my-applications", appHandler.MyApplications, authMW, jobSeekerOnly)
	e.GET("/v1/applications/job/:jobId", appHandler.ForJob, authMW, employerOnly)
	e.PUT("/v1/applications/:id/status", appHandler.UpdateStatus, authMW, employerOnly)
	e.GET("/v1/applications/:id", appHandler.Get, authMW, anyRole)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
