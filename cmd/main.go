package main

import (
	"database/sql"
	"log"
	"path/filepath"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"ecommerce-backend/internal/api"
	"ecommerce-backend/internal/auth"
	"ecommerce-backend/internal/config"
	"ecommerce-backend/internal/invoice"
	"ecommerce-backend/internal/repository"
	"ecommerce-backend/internal/service"
	"ecommerce-backend/migrations"
)

func connectDB(dsn string) (*sql.DB, error) {
	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("Connected to DB")
				return db, nil
			}
		}
		log.Printf("Retry %d: failed to connect to DB: %v", i+1, err)
		time.Sleep(3 * time.Second)
	}
	return nil, err
}

func main() {
	cfg := config.Load()
	if cfg.SecretKey == "" {
		log.Fatal("SECRET_KEY must be set")
	}

	db, err := connectDB(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	if err := migrations.AutoMigrate(db, 3); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	kafkaWriter := config.NewKafkaWriter(cfg.KafkaBrokers, "order-events")

	secret := []byte(cfg.SecretKey)
	tokens := auth.NewTokenService(secret, cfg.TokenTTL)
	hasher := auth.BcryptHasher{}

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	generator := invoice.NewGenerator(filepath.Join(cfg.StaticDir, "invoices"))

	userService := service.NewUserService(userRepo, hasher, tokens)
	productService := service.NewProductService(productRepo, rdb)
	invoiceService := service.NewInvoiceService(orderRepo, productRepo, generator)
	orderService := service.NewOrderService(orderRepo, productService, invoiceService, kafkaWriter)
	wishlistService := service.NewWishlistService(wishlistRepo, productService)
	notificationService := service.NewNotificationService(notificationRepo)

	handlers := api.Handlers{
		Admin:    api.NewAdminHandler(userService, orderService, cfg.StaticDir),
		Customer: api.NewCustomerHandler(userService, orderService, wishlistService, invoiceService, cfg.StaticDir),
		Provider: api.NewProviderHandler(userService, orderService, productService, notificationService),
	}

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(20),
				Burst:     60,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	api.RegisterRoutes(e, handlers, secret)

	e.Static("/static", cfg.StaticDir)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": cfg.ServiceName,
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	e.Logger.Fatal(e.Start(cfg.HTTPAddr))
}
