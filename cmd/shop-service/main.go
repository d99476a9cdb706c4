package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/jcavendish/shop/internal/app"
	"github.com/jcavendish/shop/internal/version"
)

// Имена переменных окружения, которыми переопределяется конфигурация.
const (
	envHTTPAddr            = "SHOP_HTTP_ADDR"
	envMetricsAddr         = "SHOP_METRICS_ADDR"
	envStorageDriver       = "SHOP_STORAGE_DRIVER"
	envPostgresDSN         = "SHOP_POSTGRES_DSN"
	envPostgresAutoMigrate = "SHOP_POSTGRES_AUTO_MIGRATE"
	envKafkaBrokers        = "SHOP_KAFKA_BROKERS"
)

type envLookup func(key string) (string, bool)

// setupLogger настраивает формат и уровень логирования для сервиса.
func setupLogger() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)
}

// readConfigFromEnv формирует конфигурацию приложения из окружения.
// Некорректные значения не прерывают запуск: остаётся значение по умолчанию,
// а проблема возвращается как warning.
func readConfigFromEnv(lookup envLookup) (app.Config, []string) {
	cfg := app.DefaultConfig()
	var warnings []string

	if v, ok := lookup(envHTTPAddr); ok && strings.TrimSpace(v) != "" {
		cfg.HTTPAddr = strings.TrimSpace(v)
	}
	if v, ok := lookup(envMetricsAddr); ok && strings.TrimSpace(v) != "" {
		cfg.MetricsAddr = strings.TrimSpace(v)
	}
	if v, ok := lookup(envStorageDriver); ok && strings.TrimSpace(v) != "" {
		cfg.StorageDriver = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(envPostgresDSN); ok && strings.TrimSpace(v) != "" {
		cfg.PostgresDSN = strings.TrimSpace(v)
	}
	if v, ok := lookup(envPostgresAutoMigrate); ok {
		parsed, err := parseBool(v)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", envPostgresAutoMigrate, err))
		} else {
			cfg.PostgresAutoMigrate = parsed
		}
	}
	if v, ok := lookup(envKafkaBrokers); ok && strings.TrimSpace(v) != "" {
		cfg.KafkaBrokers = strings.TrimSpace(v)
	}

	return cfg, warnings
}

// parseBool принимает расширенный набор булевых значений: true/false,
// yes/no, on/off, 1/0 без учёта регистра.
func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value: %q", value)
	}
}

func main() {
	setupLogger()

	// .env удобен для локальной разработки; в проде его просто нет.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("failed to load .env file")
	}

	cfg, warnings := readConfigFromEnv(os.LookupEnv)
	for _, warning := range warnings {
		log.Warn(warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"http_addr":    cfg.HTTPAddr,
		"metrics_addr": cfg.MetricsAddr,
		"storage":      cfg.StorageDriver,
		"version":      version.String(),
	}).Info("запускаем shop-service")

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("приложение завершилось с ошибкой")
	}

	log.Info("shop-service остановлен")
}
