package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/avasquez/rentium-api/docs" // Swagger docs
	"github.com/avasquez/rentium-api/internal/config"
	"github.com/avasquez/rentium-api/internal/database"
	"github.com/avasquez/rentium-api/internal/handlers"
	"github.com/avasquez/rentium-api/internal/jobs"
	"github.com/avasquez/rentium-api/internal/middleware"
	"github.com/avasquez/rentium-api/internal/models"
	"github.com/avasquez/rentium-api/internal/repository"
	"github.com/avasquez/rentium-api/internal/services"
	"github.com/avasquez/rentium-api/internal/storage"
	"github.com/avasquez/rentium-api/pkg/logger"
)

// @title Rentium API
// @version 1.0
// @description REST API for Rentium Property Management System

// @contact.name API Support
// @contact.email support@rentium.app

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Setup(cfg.Environment)

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	if cfg.ResendAPIKey == "" || cfg.FromEmail == "" {
		logger.Warn("Resend email disabled: RESEND_API_KEY or FROM_EMAIL not set")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	logger.Info("Initialized local storage")

	repos := repository.NewRepositories(db)

	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	svcs := services.NewServices(repos, store, cfg, db)

	scheduleJobs(worker, svcs)

	h := handlers.NewHandlers(svcs)

	router := setupRouter(h, cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	worker.Shutdown()
	logger.Info("Background worker stopped")

	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		// Health check (public)
		v1.GET("/health", h.Health.Index)

		// Authentication (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
			auth.POST("/forgot-password", h.Auth.ForgotPassword)
			auth.POST("/reset-password", h.Auth.ResetPassword)
		}

		// Protected routes (requires authentication)
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTSecret))
		{
			protected.POST("/auth/logout", h.Auth.Logout)

			protected.GET("/users/me", h.User.Me)
			protected.PUT("/users/me/password", h.User.ChangePassword)

			// Admin-only routes
			admin := protected.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				// User management
				admin.GET("/users", h.User.Index)
				admin.POST("/users", h.User.Create)
				admin.GET("/users/:user_id", h.User.Show)
				admin.PUT("/users/:user_id", h.User.Update)
				admin.DELETE("/users/:user_id", h.User.Delete)

				// Property management
				admin.POST("/properties", h.Property.Create)
				admin.PUT("/properties/:property_id", h.Property.Update)
				admin.POST("/properties/:property_id/unassign", h.Property.Unassign)
				admin.DELETE("/properties/:property_id", h.Property.Delete)

				// Unit management
				admin.POST("/locals", h.Local.Create)
				admin.PUT("/locals/:local_id", h.Local.Update)
				admin.DELETE("/locals/:local_id", h.Local.Delete)

				// Tenant management
				admin.POST("/tenants", h.Tenant.Create)
				admin.PUT("/tenants/:tenant_id", h.Tenant.Update)
				admin.DELETE("/tenants/:tenant_id", h.Tenant.Delete)

				// Lease lifecycle
				admin.POST("/leases", h.Lease.Create)
				admin.PUT("/leases/:lease_id", h.Lease.Update)
				admin.POST("/leases/:lease_id/activate", h.Lease.Activate)
				admin.POST("/leases/:lease_id/end", h.Lease.End)
				admin.POST("/leases/:lease_id/terminate", h.Lease.Terminate)
				admin.DELETE("/leases/:lease_id", h.Lease.Delete)

				// Payments and expenses
				admin.POST("/payments", h.Payment.Create)
				admin.POST("/payments/:payment_id/receipt", h.Payment.UploadReceipt)
				admin.DELETE("/payments/:payment_id", h.Payment.Delete)
				admin.POST("/expenses", h.Expense.Create)
				admin.PUT("/expenses/:expense_id", h.Expense.Update)
				admin.POST("/expenses/:expense_id/pay", h.Expense.MarkPaid)
				admin.DELETE("/expenses/:expense_id", h.Expense.Delete)

				// Portfolio-wide reports
				reports := admin.Group("/reports")
				{
					reports.GET("/financials", h.Report.FinancialSummary)
					reports.GET("/occupancy", h.Report.Occupancy)
					reports.GET("/rent-roll", h.Report.RentRoll)
					reports.GET("/rent-roll/pdf", h.Report.RentRollPDF)
					reports.GET("/arrears", h.Report.Arrears)
					reports.GET("/arrears/pdf", h.Report.ArrearsPDF)
					reports.GET("/lease-expirations", h.Report.LeaseExpirations)
					reports.GET("/vacancy", h.Report.Vacancies)
					reports.GET("/export", h.Report.Export)
				}
			}

			// Admin and manager routes
			staff := protected.Group("")
			staff.Use(middleware.RequireRole(models.RoleAdmin, models.RoleManager))
			{
				staff.GET("/properties", h.Property.Index)
				staff.GET("/properties/:property_id", h.Property.Show)
				staff.GET("/properties/:property_id/locals", h.Property.Locals)
				staff.GET("/locals/:local_id", h.Local.Show)
				staff.GET("/tenants", h.Tenant.Index)
				staff.GET("/tenants/:tenant_id", h.Tenant.Show)
				staff.GET("/leases", h.Lease.Index)
				staff.GET("/leases/:lease_id", h.Lease.Show)
				staff.GET("/payments", h.Payment.Index)
				staff.GET("/payments/:payment_id", h.Payment.Show)
				staff.GET("/payments/:payment_id/receipt", h.Payment.DownloadReceipt)
				staff.GET("/expenses", h.Expense.Index)
				staff.GET("/expenses/:expense_id", h.Expense.Show)

				// Scoped reports: managers see only their own portfolio
				managerReports := staff.Group("/manager/reports")
				{
					managerReports.GET("/financials", h.Report.FinancialSummary)
					managerReports.GET("/occupancy", h.Report.Occupancy)
					managerReports.GET("/rent-roll", h.Report.RentRoll)
					managerReports.GET("/rent-roll/pdf", h.Report.RentRollPDF)
					managerReports.GET("/arrears", h.Report.Arrears)
					managerReports.GET("/arrears/pdf", h.Report.ArrearsPDF)
					managerReports.GET("/lease-expirations", h.Report.LeaseExpirations)
					managerReports.GET("/vacancy", h.Report.Vacancies)
					managerReports.GET("/export", h.Report.Export)
				}
			}
		}
	}

	return router
}

func scheduleJobs(worker *jobs.Worker, svcs *services.Services) {
	// Daily at 08:00: email managers whose active leases have no payment
	// covering the current month
	worker.ScheduleDaily(8, func(ctx context.Context) error {
		logger.Info("[Job] Sending arrears notices...")
		return svcs.Notification.SendArrearsNotices(ctx)
	})

	// Purge expired refresh tokens every 6 hours
	worker.ScheduleEvery(6*time.Hour, func(ctx context.Context) error {
		logger.Info("[Job] Cleaning up expired refresh tokens...")
		return svcs.Notification.CleanupExpiredTokens(ctx)
	})

	logger.Info("Scheduled recurring jobs")
}
