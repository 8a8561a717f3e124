// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/hireswipe-backend/internal/config"
	"github.com/javajoker/hireswipe-backend/internal/handlers"
	"github.com/javajoker/hireswipe-backend/internal/i18n"
	"github.com/javajoker/hireswipe-backend/internal/metrics"
	"github.com/javajoker/hireswipe-backend/internal/middleware"
	"github.com/javajoker/hireswipe-backend/internal/models"
	"github.com/javajoker/hireswipe-backend/internal/repository"
	"github.com/javajoker/hireswipe-backend/internal/services"
	"github.com/javajoker/hireswipe-backend/internal/utils"
)

func Initialize(store repository.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	notificationService := services.NewNotificationService(store, store, cfg)

	authService := services.NewAuthService(store, cfg)
	userService := services.NewUserService(store)
	jobService := services.NewJobService(store)
	savedJobService := services.NewSavedJobService(store)
	applicationService := services.NewApplicationService(store, notificationService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	jobHandler := handlers.NewJobHandler(jobService)
	savedJobHandler := handlers.NewSavedJobHandler(savedJobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())
	if cfg.Metrics.Enabled {
		r.Use(metrics.Middleware())
	}
	r.Use(middleware.GeneralRateLimit(cfg.RateLimit))
	r.Use(middleware.AuditLogMiddleware(store))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"version":   "1.0.0",
			"languages": i18n.GetSupportedLanguages(),
		})
	})

	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit(cfg.RateLimit))
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
		}

		// User routes
		users := v1.Group("/users")
		users.Use(middleware.AuthRequired())
		{
			users.GET("/me", userHandler.GetMe)
		}

		// Job routes
		jobs := v1.Group("/jobs")
		{
			jobs.GET("", jobHandler.GetJobs)

			// Authenticated routes
			protected := jobs.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", middleware.RoleRequired(models.RoleRecruiter), jobHandler.CreateJob)
				protected.GET("/my-jobs", jobHandler.GetMyJobs)
				protected.GET("/held-applicants", applicationHandler.GetHeldApplicants)
				protected.GET("/accepted-applicants", applicationHandler.GetAcceptedApplicants)
			}

			jobs.GET("/:id", jobHandler.GetJob)
		}

		// Saved job routes
		savedJobs := v1.Group("/saved-jobs")
		savedJobs.Use(middleware.AuthRequired())
		{
			savedJobs.POST("", savedJobHandler.SaveJob)
			savedJobs.GET("", savedJobHandler.GetSavedJobs)
			savedJobs.DELETE("/:jobId", savedJobHandler.RemoveSavedJob)
		}

		// Application routes
		applications := v1.Group("/applications")
		applications.Use(middleware.AuthRequired())
		{
			applications.POST("", applicationHandler.Apply)
			applications.GET("", applicationHandler.GetMyApplications)
			applications.GET("/my-interviews", applicationHandler.GetMyInterviews)
			applications.GET("/recruiter", applicationHandler.GetRecruiterApplications)
			applications.PATCH("/:id/status", applicationHandler.UpdateStatus)
			applications.PUT("/:id/interview", applicationHandler.ScheduleInterview)
			applications.DELETE("/:id/interview", applicationHandler.CancelInterview)
			applications.DELETE("/:id", applicationHandler.Withdraw)
		}
	}

	return r
}
