package main

import (
	"log"
	"time"

	"payment-service/internal/config"
	"payment-service/internal/controllers/http"
	"payment-service/internal/infra"
	mmysql "payment-service/internal/infra/mysql"
	"payment-service/internal/infra/rabbitmq"
	mysqlrepo "payment-service/internal/repository/mysql"
	"payment-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := mmysql.NewMySQL(cfg.MySQL)
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	repo := mysqlrepo.NewOrderRepository(db)

	gateway := infra.NewGatewayClient(cfg.Gateway.BaseURL, cfg.Gateway.KeyID, cfg.Gateway.KeySecret, 10*time.Second)

	publisher, err := rabbitmq.NewPublisher(cfg.AMQPURL, "payment.exchange")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	s := services.NewPaymentService(repo, gateway, publisher, cfg.Gateway.KeySecret, cfg.Gateway.Currency, cfg.DefaultAmount)

	if cfg.RedisHost != "" {
		s.SetRedisClient(redis.NewClient(&redis.Options{
			Addr:         cfg.RedisHost + ":6379",
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		}))
	}

	handler := http.NewHandler(s)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	log.Printf("Starting payment service on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
