package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "bnbhub/docs" // swagger docs

	"bnbhub/internal/cache"
	"bnbhub/internal/config"
	"bnbhub/internal/db"
	"bnbhub/internal/handler"
	"bnbhub/internal/media"
	"bnbhub/internal/model"
	"bnbhub/internal/repository"
	"bnbhub/internal/router"
	"bnbhub/internal/service"
)

// @title BnbHub API
// @version 1.0
// @description Short-term property rental listing service: owner accounts, ownership-gated listings, image uploads, and a contact-message inbox.
// @host localhost:5000
// @BasePath /api
// @schemes http
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Message{},
			&model.Listing{},
			&model.Owner{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Owner{},
		&model.Listing{},
		&model.Message{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	ownerRepo := repository.NewOwnerRepository(gormDB)
	listingRepo := repository.NewListingRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)

	// Initialize the upload provider client
	uploader := media.NewCloudinaryUploader(cfg.CloudName, cfg.CloudAPIKey, cfg.CloudAPISecret, cfg.UploadFolder)

	// Initialize services
	ownerService := service.NewOwnerService(ownerRepo, cacheClient)
	listingService := service.NewListingService(listingRepo, ownerRepo, cacheClient)
	messageService := service.NewMessageService(messageRepo)

	// Initialize handlers
	ownerHandler := handler.NewOwnerHandler(ownerService)
	listingHandler := handler.NewListingHandler(listingService, uploader)
	messageHandler := handler.NewMessageHandler(messageService)

	// Register routes
	router.Register(
		e,
		cfg,
		ownerHandler,
		listingHandler,
		messageHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
