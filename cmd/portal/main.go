package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/openhms/hospital-portal/internal/api/router"
	appconfig "github.com/openhms/hospital-portal/internal/config"
	"github.com/openhms/hospital-portal/internal/gateway"
	"github.com/openhms/hospital-portal/internal/http/handlers"
	"github.com/openhms/hospital-portal/internal/observability/metrics"
	"github.com/openhms/hospital-portal/internal/session"
	"github.com/openhms/hospital-portal/pkg/logging"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting hospital portal",
		"env", cfg.Env,
		"port", cfg.Port,
		"api_base_url", cfg.APIBaseURL,
	)

	redisOpts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()

	sessionStore := session.NewStore(rdb, cfg.SessionTTL)

	gwMetrics := metrics.NewGatewayMetrics(prometheus.DefaultRegisterer)

	gw := gateway.NewClient(cfg.APIBaseURL, logger,
		gateway.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		gateway.WithMetrics(gwMetrics),
	)

	routerCfg := &router.Config{
		Logger:         logger,
		AdminHandler:   handlers.NewAdminHandler(gw, logger, cfg.PageSize, cfg.SearchPageSize),
		DoctorHandler:  handlers.NewDoctorHandler(gw, logger, cfg.PageSize, cfg.SearchPageSize),
		PatientHandler: handlers.NewPatientHandler(gw, logger, cfg.PageSize, cfg.SearchPageSize),
		LookupHandler:  handlers.NewLookupHandler(),
		SessionHandler: handlers.NewSessionHandler(sessionStore, logger),
		MetricsHandler: promhttp.Handler(),
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
