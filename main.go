package main

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ducanh0310/phu-hung-galaxy/config"
	"github.com/ducanh0310/phu-hung-galaxy/logger"
	"github.com/ducanh0310/phu-hung-galaxy/models"
	"github.com/ducanh0310/phu-hung-galaxy/routes"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	// token issuance and validation read JWT_SECRET from the environment;
	// refuse to boot without it rather than sign with an empty key
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	db := initDatabase(cfg, log)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Category{},
		&models.Subcategory{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(logger.RequestLogger(log), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// uploaded product and category images
	r.Static("/uploads", cfg.UploadDir)

	routes.SetupRoutes(r, db, cfg.UploadDir)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.AppEnv))
	if err := r.Run(addr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

// initDatabase opens the GORM connection to Postgres.
func initDatabase(cfg config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("db connection failed", zap.Error(err))
	}
	return db
}
