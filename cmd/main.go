package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"propertyhub/internal/caching"
	"propertyhub/internal/common"
	"propertyhub/internal/config"
	"propertyhub/internal/handlers"
	"propertyhub/internal/jobs/background"
	"propertyhub/internal/middleware"
	"propertyhub/internal/repositories"
	"propertyhub/internal/services"
	"propertyhub/pkg/database"
	"propertyhub/pkg/policy"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	cacheSvc := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	storageSvc, err := services.NewMinioStorageService(cfg.MinioEndpoint, cfg.MinioAccessKey,
		cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}
	if err := storageSvc.EnsureBucket(context.Background()); err != nil {
		log.Printf("WARN: could not ensure attachment bucket: %v", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	buildingRepo := repositories.NewBuildingRepository(pool)
	unitRepo := repositories.NewUnitRepository(pool)
	tenancyRepo := repositories.NewTenancyRepository(pool)
	maintenanceRepo := repositories.NewMaintenanceRepository(pool)
	attachmentRepo := repositories.NewAttachmentRepository(pool)

	// Services
	authSvc := services.NewAuthService(userRepo, cacheSvc, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	userSvc := services.NewUserService(userRepo)
	buildingSvc := services.NewBuildingService(buildingRepo, userRepo, cacheSvc)
	unitSvc := services.NewUnitService(unitRepo, buildingRepo, tenancyRepo, cacheSvc)
	tenancySvc := services.NewTenancyService(tenancyRepo, unitRepo, userRepo, cacheSvc)
	maintenanceSvc := services.NewMaintenanceService(maintenanceRepo, attachmentRepo, tenancyRepo, unitRepo, storageSvc)

	// Handlers
	authHandlers := handlers.NewAuthHandlers(authSvc, userSvc)
	userHandlers := handlers.NewUserHandlers(userSvc)
	buildingHandlers := handlers.NewBuildingHandlers(buildingSvc)
	unitHandlers := handlers.NewUnitHandlers(unitSvc)
	tenancyHandlers := handlers.NewTenancyHandlers(tenancySvc)
	maintenanceHandlers := handlers.NewMaintenanceHandlers(maintenanceSvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)

	// Background jobs
	scheduler := background.NewJobScheduler(tenancyRepo, unitRepo, cacheSvc)
	if err := scheduler.Start(); err != nil {
		log.Printf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()

	e := echo.New()
	e.HideBanner = true
	e.Validator = common.NewRequestValidator()
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/live", healthHandlers.LivenessCheck)

	api := e.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	auth.POST("/login", authHandlers.Login)
	auth.POST("/refresh", authHandlers.Refresh)

	// Everything below requires a valid token.
	protected := api.Group("")
	protected.Use(middleware.JWT(cfg.JWTSecret))
	protected.Use(middleware.AttachIdentity(authSvc))

	protected.POST("/auth/logout", authHandlers.Logout)
	protected.GET("/auth/me", authHandlers.Me)
	protected.POST("/auth/change-password", authHandlers.ChangePassword)

	users := protected.Group("/users")
	users.GET("/profile", userHandlers.GetProfile)
	users.PUT("/profile", userHandlers.UpdateProfile)
	users.GET("", userHandlers.List, middleware.RequirePermission(policy.ResourceUsers, policy.ActionList))
	users.POST("", userHandlers.Create, middleware.RequirePermission(policy.ResourceUsers, policy.ActionCreate))
	users.GET("/:id", userHandlers.Get, middleware.RequirePermission(policy.ResourceUsers, policy.ActionRead))
	users.PUT("/:id", userHandlers.Update, middleware.RequirePermission(policy.ResourceUsers, policy.ActionUpdate))
	users.DELETE("/:id", userHandlers.Delete, middleware.RequirePermission(policy.ResourceUsers, policy.ActionDelete))
	users.PATCH("/:id/activate", userHandlers.Activate, middleware.RequirePermission(policy.ResourceUsers, policy.ActionActivate))
	users.PATCH("/:id/deactivate", userHandlers.Deactivate, middleware.RequirePermission(policy.ResourceUsers, policy.ActionActivate))

	buildings := protected.Group("/buildings")
	buildings.GET("", buildingHandlers.List, middleware.RequirePermission(policy.ResourceBuildings, policy.ActionList))
	buildings.POST("", buildingHandlers.Create, middleware.RequirePermission(policy.ResourceBuildings, policy.ActionCreate))
	buildings.GET("/:id", buildingHandlers.Get, middleware.RequirePermission(policy.ResourceBuildings, policy.ActionRead))
	buildings.PUT("/:id", buildingHandlers.Update, middleware.RequirePermission(policy.ResourceBuildings, policy.ActionUpdate))
	buildings.DELETE("/:id", buildingHandlers.Delete, middleware.RequirePermission(policy.ResourceBuildings, policy.ActionDelete))

	units := protected.Group("/units")
	units.GET("", unitHandlers.List, middleware.RequirePermission(policy.ResourceUnits, policy.ActionList))
	units.POST("", unitHandlers.Create, middleware.RequirePermission(policy.ResourceUnits, policy.ActionCreate))
	units.GET("/:id", unitHandlers.Get, middleware.RequirePermission(policy.ResourceUnits, policy.ActionRead))
	units.PUT("/:id", unitHandlers.Update, middleware.RequirePermission(policy.ResourceUnits, policy.ActionUpdate))
	units.DELETE("/:id", unitHandlers.Delete, middleware.RequirePermission(policy.ResourceUnits, policy.ActionDelete))

	tenancies := protected.Group("/tenancies")
	tenancies.GET("", tenancyHandlers.List, middleware.RequirePermission(policy.ResourceTenancies, policy.ActionList))
	tenancies.GET("/my-tenancies", tenancyHandlers.MyTenancies, middleware.RequirePermission(policy.ResourceTenancies, policy.ActionList))
	tenancies.POST("", tenancyHandlers.Create, middleware.RequirePermission(policy.ResourceTenancies, policy.ActionCreate))
	tenancies.GET("/:id", tenancyHandlers.Get, middleware.RequirePermission(policy.ResourceTenancies, policy.ActionRead))
	tenancies.PUT("/:id", tenancyHandlers.Update, middleware.RequirePermission(policy.ResourceTenancies, policy.ActionUpdate))
	tenancies.PATCH("/:id/end", tenancyHandlers.End, middleware.RequirePermission(policy.ResourceTenancies, policy.ActionEnd))
	tenancies.DELETE("/:id", tenancyHandlers.Delete, middleware.RequirePermission(policy.ResourceTenancies, policy.ActionDelete))

	maintenance := protected.Group("/maintenance")
	maintenance.GET("", maintenanceHandlers.List, middleware.RequirePermission(policy.ResourceMaintenance, policy.ActionList))
	maintenance.GET("/my-units", maintenanceHandlers.MyUnits, middleware.RequirePermission(policy.ResourceMaintenance, policy.ActionCreate))
	maintenance.POST("", maintenanceHandlers.Create, middleware.RequirePermission(policy.ResourceMaintenance, policy.ActionCreate))
	maintenance.GET("/:id", maintenanceHandlers.Get, middleware.RequirePermission(policy.ResourceMaintenance, policy.ActionRead))
	maintenance.PUT("/:id", maintenanceHandlers.Update, middleware.RequirePermission(policy.ResourceMaintenance, policy.ActionUpdate))
	maintenance.PATCH("/:id/cancel", maintenanceHandlers.Cancel, middleware.RequirePermission(policy.ResourceMaintenance, policy.ActionCancel))
	maintenance.DELETE("/:id", maintenanceHandlers.Delete, middleware.RequirePermission(policy.ResourceMaintenance, policy.ActionDelete))
	maintenance.POST("/:id/attachments", maintenanceHandlers.UploadAttachment, middleware.RequirePermission(policy.ResourceMaintenance, policy.ActionCreate))
	maintenance.GET("/:id/attachments", maintenanceHandlers.ListAttachments, middleware.RequirePermission(policy.ResourceMaintenance, policy.ActionRead))
	maintenance.DELETE("/:id/attachments/:attachmentId", maintenanceHandlers.DeleteAttachment, middleware.RequirePermission(policy.ResourceMaintenance, policy.ActionUpdate))

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
