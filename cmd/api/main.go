package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "buffrlend-backend/internal/adapter/http"
	"buffrlend-backend/internal/adapter/repository/gormstore"
	"buffrlend-backend/internal/adapter/session"
	"buffrlend-backend/internal/config"
	"buffrlend-backend/internal/infrastructure/cache"
	"buffrlend-backend/internal/infrastructure/db"
	"buffrlend-backend/internal/infrastructure/logger"
	"buffrlend-backend/internal/usecase/application"
	"buffrlend-backend/internal/usecase/auth"
	"buffrlend-backend/internal/usecase/payment"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	gdb, err := db.OpenGorm(cfg.DatabaseURL, logger.GormLevel(cfg.LogLevel), zl)
	if err != nil {
		zl.Fatal("database unavailable", zap.Error(err))
	}
	if cfg.AutoMigrate {
		if err := gormstore.Migrate(gdb); err != nil {
			zl.Fatal("migration failed", zap.Error(err))
		}
	}

	rdb, err := cache.OpenRedis(cfg.RedisURL)
	if err != nil {
		zl.Fatal("redis unavailable", zap.Error(err))
	}
	defer func() { _ = rdb.Close() }()

	loans := gormstore.NewLoanRepository(gdb)
	tx := gormstore.NewGormUoW(gdb)
	authUC := auth.NewUsecase(session.NewRedisStore(rdb), cfg.SessionTTL(), zl)
	appUC := application.NewUsecase(loans, tx, zl)
	payUC := payment.NewUsecase(loans, gormstore.NewPaymentRepository(gdb), tx, zl)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.HTTPErrorHandler = httpadp.ErrorHandler(zl)
	e.Use(middleware.RequestID(), logger.RequestLogger(zl), middleware.Recover())

	httpadp.Routes{
		Health:         httpadp.NewHandler(cfg.AppVersion),
		Auth:           httpadp.NewAuthHandler(authUC),
		Loans:          httpadp.NewLoanHandler(appUC, payUC),
		Payments:       httpadp.NewPaymentHandler(payUC),
		Authenticator:  authUC,
		Redis:          rdb,
		IdempotencyTTL: cfg.IdempotencyTTL(),
	}.Register(e, zl)

	go func() {
		zl.Info("listening", zap.String("addr", cfg.Addr()), zap.String("version", cfg.AppVersion))
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server stopped", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		zl.Error("shutdown", zap.Error(err))
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
