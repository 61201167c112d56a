package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"example.com/order-management/internal/infra/security"
	apihttp "example.com/order-management/internal/interface/http"
	"example.com/order-management/internal/metrics"
	itemuc "example.com/order-management/internal/usecase/item"
	orderuc "example.com/order-management/internal/usecase/order"
)

// Run serves the API until ctx is cancelled or the listener fails.
func Run(ctx context.Context, cfg Config, logger logrus.FieldLogger) error {
	lis, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		return err
	}
	return Serve(ctx, lis, cfg, logger)
}

// Serve is Run on an existing listener.
func Serve(ctx context.Context, lis net.Listener, cfg Config, logger logrus.FieldLogger) error {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger = logger.WithField("component", "app")

	storage, err := OpenStorage(ctx, cfg)
	if err != nil {
		_ = lis.Close()
		return err
	}
	defer func() {
		if err := storage.Close(); err != nil {
			logger.WithError(err).Warn("close storage failed")
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	storeMetrics := metrics.NewStoreMetricsWithRegisterer(registry)

	deps := apihttp.Dependencies{
		OrderService:   orderuc.NewService(storage.Orders, logger, storeMetrics),
		ItemService:    itemuc.NewService(storage.Items, logger, storeMetrics),
		Store:          storage,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Logger:         logger,
	}
	if cfg.JWTSecret != "" {
		deps.TokenService = security.NewJWTService(cfg.JWTSecret, time.Hour)
	} else {
		logger.Warn("JWT_SECRET not set, mutating routes are unauthenticated")
	}

	srv := &http.Server{
		Handler:           apihttp.NewAPI(deps).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{"addr": lis.Addr().String(), "driver": cfg.DBDriver}).Info("http server listening")
		errCh <- srv.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down http server")
		shutdownHTTP(srv, cfg.ShutdownTimeout, logger)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func shutdownHTTP(srv *http.Server, timeout time.Duration, logger logrus.FieldLogger) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("http shutdown with error")
	}
}
