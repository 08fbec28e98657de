package main

import (
	"log"
	"os"
	"time"

	"storefront-service/internal/controllers/http"
	mmysql "storefront-service/internal/infra/mysql"
	"storefront-service/internal/infra/rabbitmq"
	"storefront-service/internal/infra/storage"
	mysqlrepo "storefront-service/internal/repository/mysql"
	"storefront-service/internal/services"
	"storefront-service/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	productRepo := mysqlrepo.NewProductRepository(db)
	orderRepo := mysqlrepo.NewOrderRepository(db)
	reviewRepo := mysqlrepo.NewReviewRepository(db)
	roleRepo := mysqlrepo.NewRoleRepository(db)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST") + ":6379",
		DB:           0,
		PoolSize:     100,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "shop.exchange")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	objectStore := storage.NewSupabaseStore(
		os.Getenv("STORAGE_URL"),
		os.Getenv("STORAGE_API_KEY"),
		10*time.Second,
	)

	slots := store.NewSlots(redisClient)

	catalog := services.NewCatalogService(productRepo)
	catalog.SetRedisClient(redisClient)
	cart := services.NewCartService(slots)
	orders := services.NewOrderService(orderRepo, publisher)
	checkout := services.NewCheckoutService(orderRepo, cart, objectStore, publisher)
	reviews := services.NewReviewService(reviewRepo, orderRepo)
	dashboard := services.NewDashboardService(orderRepo, productRepo)

	handler := http.NewHandler(catalog, cart, checkout, orders, reviews)
	adminHandler := http.NewAdminHandler(orders, catalog, dashboard, objectStore)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)
	adminHandler.RegisterRoutes(r, roleRepo)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting storefront service on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
