// Package app собирает зависимости сервиса и управляет его жизненным циклом.
package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/jcavendish/shop/internal/domain"
	healthcheck "github.com/jcavendish/shop/internal/health"
	"github.com/jcavendish/shop/internal/service/customers"
	httpsvc "github.com/jcavendish/shop/internal/service/http"
	"github.com/jcavendish/shop/internal/service/orders"
	"github.com/jcavendish/shop/internal/service/products"
	"github.com/jcavendish/shop/internal/version"
)

// Config описывает настройки запуска приложения.
type Config struct {
	HTTPAddr            string
	MetricsAddr         string
	StorageDriver       string
	PostgresDSN         string
	PostgresAutoMigrate bool
	KafkaBrokers        string
}

// DefaultConfig возвращает базовые настройки: HTTP API, метрики, память.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:            ":8080",
		MetricsAddr:         ":9090",
		StorageDriver:       StorageDriverMemory,
		PostgresAutoMigrate: true,
	}
}

// Run запускает сервис и блокируется до отмены контекста или фатальной ошибки.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	deps, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	kafkaProducer, err := initKafkaProducer(cfg.KafkaBrokers, logger)
	if err != nil {
		// Сервис работает и без брокера, события просто не публикуются.
		kafkaProducer = nil
	}
	defer closeKafka(kafkaProducer, logger)

	var (
		orderPublisher   domain.OrderEventPublisher
		catalogPublisher domain.CatalogEventPublisher
	)
	if kafkaProducer != nil {
		orderPublisher = kafkaProducer
		catalogPublisher = kafkaProducer
	}

	customersSvc := customers.NewService(deps.Customers, catalogPublisher, logger.WithField("layer", "customers"))
	productsSvc := products.NewService(deps.Products, catalogPublisher, logger.WithField("layer", "products"))
	ordersSvc := orders.NewService(deps.Customers, deps.Products, deps.Orders, orderPublisher, logger.WithField("layer", "orders"))

	handler := httpsvc.NewHandler(customersSvc, productsSvc, ordersSvc, logger.WithField("layer", "http"))

	healthHandler := healthcheck.NewHandler(version.GetVersion())
	if deps.Store != nil {
		healthHandler.RegisterChecker("postgres", healthcheck.NewPingChecker("postgres", 2*time.Second, deps.Store.Ping))
	}

	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)

	apiSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP API слушает %s", cfg.HTTPAddr)
		errCh <- apiSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем HTTP сервер")
		shutdownHTTP(apiSrv, logger)
		shutdownHTTP(metricsSrv, logger)
		return ctx.Err()
	case err := <-errCh:
		shutdownHTTP(metricsSrv, logger)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// startMetricsServer запускает технический HTTP-сервер: метрики и health-пробы.
func startMetricsServer(ctx context.Context, addr string, logger *log.Entry, healthHandler *healthcheck.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/livez", healthcheck.LivenessHandler)
	mux.HandleFunc("/readyz", healthHandler.ReadinessHandler)

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.Infof("метрики доступны по адресу %s/metrics", addr)
		logger.Infof("health checks: %s/healthz, %s/livez, %s/readyz", addr, addr, addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("metrics server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownHTTP(srv, logger)
	}()

	return srv
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("http shutdown with error")
	}
}
