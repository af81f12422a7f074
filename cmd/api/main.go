package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-erp/internal/audit"
	"github.com/BruksfildServices01/salon-erp/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-erp/internal/db"
	"github.com/BruksfildServices01/salon-erp/internal/infra/cache"
	"github.com/BruksfildServices01/salon-erp/internal/infra/payment"
	"github.com/BruksfildServices01/salon-erp/internal/infra/storage"
	"github.com/BruksfildServices01/salon-erp/internal/logging"
	"github.com/BruksfildServices01/salon-erp/internal/middleware"
	"github.com/BruksfildServices01/salon-erp/internal/routes"
	"github.com/BruksfildServices01/salon-erp/internal/timezone"
)

func main() {
	cfg := config.Load()

	logger, err := logging.Init(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	timezone.Configure(cfg.Timezone)

	db := dbpkg.NewDB(cfg)
	if err := dbpkg.EnsureAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Fatal("failed to bootstrap admin", zap.Error(err))
	}

	dispatcher := audit.NewDispatcher(audit.New(db))
	defer dispatcher.Close()

	deps := routes.Deps{
		DB:     db,
		Config: cfg,
		Audit:  dispatcher,
	}

	// ------------------------------
	// Optional integrations
	// ------------------------------
	if cfg.RedisAddr != "" {
		rc := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, time.Duration(cfg.CacheTTLSecs)*time.Second)
		if err := rc.Ping(context.Background()); err != nil {
			logger.Warn("redis unreachable, cache disabled", zap.Error(err))
		} else {
			deps.Cache = rc
			defer rc.Close()
		}
	}

	if cfg.S3Bucket != "" {
		store, err := storage.NewS3(storage.Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			PathStyle:       cfg.S3PathStyle,
		})
		if err != nil {
			logger.Fatal("failed to configure s3", zap.Error(err))
		}
		deps.Store = store
	}

	if cfg.MercadoPagoToken != "" {
		mp, err := payment.NewMercadoPago(cfg.MercadoPagoToken)
		if err != nil {
			logger.Fatal("failed to configure mercado pago", zap.Error(err))
		}
		deps.Payments = mp
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
