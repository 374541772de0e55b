package main

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/config"
	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/handler"
	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/middleware"
	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/repository"
	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/internal/shop"
	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/pkg/database"
	"github.com/Tarun-code1/VISHWAKARMA-MOBILE-STORE/pkg/logger"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Logger
	zlog, err := logger.New(cfg.Server.Mode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	jwtSecret := cfg.Auth.JWTSecret
	if jwtSecret == "" {
		// Ephemeral secret: unlock tokens stop working after a restart.
		jwtSecret = randomSecret()
		zlog.Warn("JWT_SECRET not set, generated an ephemeral secret")
	}

	// 3. Open the local store
	db, err := database.Connect(cfg.Database.Path, cfg.Database.LogMode)
	if err != nil {
		zlog.Fatal("Failed to open database", zap.Error(err))
	}
	st := database.NewDocumentStore(db)

	repo := repository.New(st)
	if err := repo.Load(); err != nil {
		zlog.Fatal("Failed to load store data", zap.Error(err))
	}
	shopSvc := shop.NewService(repo)

	// 4. Router
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(zlog))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "online"})
	})

	// 5. Routes
	authHandler := &handler.AuthHandler{Repo: repo, JWTSecret: jwtSecret, ExpireHours: cfg.Auth.JWTExpirationHours}
	authRoutes := r.Group("/api/v1/auth")
	{
		authRoutes.GET("/status", authHandler.Status)
		authRoutes.POST("/pin", authHandler.SetPin)
		authRoutes.POST("/unlock", authHandler.Unlock)
	}

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(repo, jwtSecret))
	{
		api.PUT("/auth/pin", authHandler.ChangePin)

		stockHandler := &handler.StockHandler{Repo: repo, Shop: shopSvc}
		api.GET("/stock", stockHandler.ListStock)
		api.POST("/stock", stockHandler.AddProduct)
		api.PUT("/stock/:id", stockHandler.UpdateProduct)
		api.DELETE("/stock/:id", stockHandler.DeleteProduct)
		api.POST("/stock/:id/sell", stockHandler.SellCash)
		api.POST("/stock/:id/sell-credit", stockHandler.SellCredit)

		salesHandler := &handler.SalesHandler{Repo: repo}
		api.GET("/sales", salesHandler.ListSales)
		api.GET("/sales/summary", salesHandler.Summary)

		khataHandler := &handler.KhataHandler{Repo: repo, Shop: shopSvc}
		api.GET("/customers", khataHandler.ListCustomers)
		api.POST("/customers", khataHandler.CreateCustomer)
		api.PUT("/customers/:id", khataHandler.UpdateCustomer)
		api.DELETE("/customers/:id", khataHandler.DeleteCustomer)
		api.GET("/customers/:id/khata", khataHandler.CustomerKhata)
		api.POST("/customers/:id/khata", khataHandler.AddEntry)
		api.GET("/khata/summary", khataHandler.Summary)

		settingsHandler := &handler.SettingsHandler{Repo: repo}
		api.GET("/settings", settingsHandler.Get)
		api.PUT("/settings", settingsHandler.Update)
		api.GET("/backup", settingsHandler.Backup)
		api.POST("/reset", settingsHandler.Reset)

		exportHandler := &handler.ExportHandler{Repo: repo}
		api.GET("/export/sales.xlsx", exportHandler.SalesXLSX)
		api.GET("/export/khata.csv", exportHandler.KhataCSV)
	}

	// 6. Start Server
	zlog.Info("Server starting", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		zlog.Fatal("Server failed to start", zap.Error(err))
	}
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("Failed to generate secret: %v", err)
	}
	return hex.EncodeToString(buf)
}
