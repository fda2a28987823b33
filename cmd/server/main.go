package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ecomstack/order_service/internal/config"
	"github.com/ecomstack/order_service/internal/db"
	"github.com/ecomstack/order_service/internal/es"
	"github.com/ecomstack/order_service/internal/gateway"
	"github.com/ecomstack/order_service/internal/httpserver"
	"github.com/ecomstack/order_service/internal/logging"
	loggingmw "github.com/ecomstack/order_service/internal/middleware/logging"
	"github.com/ecomstack/order_service/internal/mykafka"
	"github.com/ecomstack/order_service/internal/repo"
	"github.com/ecomstack/order_service/internal/service"
	"github.com/ecomstack/order_service/internal/service/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")
	config.MustNonEmptyBytes(cfg.RefreshSecret, "REFRESH_SECRET")

	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()

	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	var prod *mykafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		prod, err = mykafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			log.Fatalf("kafka init error: %v", err)
		}
	}

	gormRepo := &repo.GormRepo{DB: database}

	orderSvc := &service.OrderService{
		Repo:     gormRepo,
		Producer: prod,
		ESIndex:  search.IndexName(cfg.ServiceName),
	}
	if cfg.ESURL != "" {
		esClient, err := es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		orderSvc.ES = esClient
	}

	paymentSvc := &service.PaymentService{
		Repo:     gormRepo,
		Gateways: gateway.NewManager(nil),
		Producer: prod,
	}

	authSvc := &service.AuthService{
		Repo:          gormRepo,
		JWTSecret:     cfg.JWTSecret,
		RefreshSecret: cfg.RefreshSecret,
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		OrderHandler:   &httpserver.OrderHTTP{Svc: orderSvc},
		PaymentHandler: &httpserver.PaymentHTTP{Svc: paymentSvc},
		AuthHandler:    &httpserver.AuthHTTP{Svc: authSvc},
		JWTSecret:      cfg.JWTSecret,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
