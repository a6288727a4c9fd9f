package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/frrrancoelgori-ui/joyeria/config"
	"github.com/frrrancoelgori-ui/joyeria/controllers"
	"github.com/frrrancoelgori-ui/joyeria/logger"
	"github.com/frrrancoelgori-ui/joyeria/middleware"
	"github.com/frrrancoelgori-ui/joyeria/repository"
	"github.com/frrrancoelgori-ui/joyeria/routes"
	"github.com/frrrancoelgori-ui/joyeria/seed"
	"github.com/frrrancoelgori-ui/joyeria/services"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Stores
	branchRepo := repository.NewBranchRepository()
	categoryRepo := repository.NewCategoryRepository()
	catalogRepo := repository.NewCatalogRepository()
	cartRepo := repository.NewCartRepository()
	salesRepo := repository.NewSalesRepository()

	// Services
	analyticsSvc := services.NewAnalyticsService(salesRepo, cartRepo, cfg.MetricsRefreshInterval, logger.Log)
	inventorySvc := services.NewInventoryService(cfg.LowStockThreshold, cfg.OverstockThreshold, logger.Log)
	customerSvc := services.NewCustomerService(cfg.GuestEmail, logger.Log)
	branchSvc := services.NewBranchService(branchRepo, catalogRepo, cfg.LowStockThreshold, logger.Log)
	reportSvc := services.NewReportService(cfg.LowStockThreshold, logger.Log)
	catalogSvc := services.NewCatalogService(catalogRepo, categoryRepo, branchRepo, cartRepo, analyticsSvc, branchSvc, logger.Log)
	cartSvc := services.NewCartService(cartRepo, catalogRepo, salesRepo, analyticsSvc, inventorySvc, customerSvc, branchSvc, cfg.WhatsAppPhone, logger.Log)
	authSvc, err := services.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret, cfg.TokenTTL, logger.Log)
	if err != nil {
		logger.Log.Fatal("failed to initialize auth service", zap.Error(err))
	}

	seed.Load(branchRepo, categoryRepo, catalogRepo, branchSvc, logger.Log)

	// Background metrics refresher, stopped on shutdown.
	runCtx, cancelRun := context.WithCancel(context.Background())
	defer cancelRun()
	go analyticsSvc.Run(runCtx)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit(50, 100))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	validator := controllers.NewRequestValidator()
	routes.Register(router, routes.Controllers{
		Auth:      controllers.NewAuthController(authSvc),
		Products:  controllers.NewProductController(catalogSvc, validator),
		Category:  controllers.NewCategoryController(catalogSvc, validator),
		Branches:  controllers.NewBranchController(branchSvc, catalogRepo, salesRepo, validator),
		Cart:      controllers.NewCartController(cartSvc),
		Analytics: controllers.NewAnalyticsController(analyticsSvc, inventorySvc, customerSvc, catalogRepo),
		Reports:   controllers.NewReportController(reportSvc, customerSvc, cartSvc, catalogRepo, salesRepo),
	}, cfg.JWTSecret)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Log.Info("server listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Log.Info("shutting down")
	cancelRun()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal("shutdown error", zap.Error(err))
	}
	logger.Log.Info("server shutdown complete")
}
