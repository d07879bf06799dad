package main

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"cafeyak/docs"
	"cafeyak/internal/cache"
	"cafeyak/internal/config"
	"cafeyak/internal/db"
	"cafeyak/internal/handler"
	"cafeyak/internal/model"
	"cafeyak/internal/repository"
	"cafeyak/internal/router"
	"cafeyak/internal/service"
)

// @title Cafe Yakjaaah API
// @version 1.0
// @description REST backend for the Cafe Yakjaaah ordering application: accounts, menu, favorites, orders with loyalty points, reservations and reviews.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

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
			&model.Order{},
			&model.Reservation{},
			&model.Review{},
			&model.Special{},
			&model.Announcement{},
			&model.MenuItem{},
			&model.User{},
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
		&model.User{},
		&model.MenuItem{},
		&model.Order{},
		&model.Reservation{},
		&model.Review{},
		&model.Announcement{},
		&model.Special{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	menuRepo := repository.NewMenuItemRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	reservationRepo := repository.NewReservationRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	announcementRepo := repository.NewAnnouncementRepository(gormDB)
	specialRepo := repository.NewSpecialRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	catalogService := service.NewCatalogService(menuRepo, specialRepo, announcementRepo, cacheClient)
	favoriteService := service.NewFavoriteService(userRepo)
	orderService := service.NewOrderService(orderRepo, userRepo)
	reservationService := service.NewReservationService(reservationRepo)
	reviewService := service.NewReviewService(reviewRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	orderHandler := handler.NewOrderHandler(orderService)
	reservationHandler := handler.NewReservationHandler(reservationService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	infoHandler := handler.NewInfoHandler(gormDB, cfg)

	// Register routes
	router.Register(
		e,
		authHandler,
		catalogHandler,
		favoriteHandler,
		orderHandler,
		reservationHandler,
		reviewHandler,
		infoHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
