package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parcelflow/cmd"
	apihttp "parcelflow/internal/adapters/in/http"
	"parcelflow/internal/adapters/out/lognotify"
	"parcelflow/internal/adapters/out/postgres/demandrepo"
	"parcelflow/internal/adapters/out/postgres/driverrepo"
	"parcelflow/internal/adapters/out/postgres/missionrepo"
	"parcelflow/internal/adapters/out/postgres/parcelrepo"
	"parcelflow/internal/adapters/out/postgres/trackingrepo"
	"parcelflow/internal/adapters/out/rabbitmq"
	"parcelflow/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	config := getConfig()

	gormDB, err := gorm.Open(postgres.Open(config.DatabaseDSN()), &gorm.Config{})
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := migrate(gormDB); err != nil {
		logger.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	notifier, closeNotifier := buildNotifier(config, logger)
	defer closeNotifier()

	root := cmd.NewCompositionRoot(config, gormDB, notifier, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Error("job startup failed", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.ERROR)
	e.Use(middleware.Recover())
	e.Use(apihttp.RequestTimeout(config.RequestTimeout))
	root.CreateHTTPServer().RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil {
			logger.Info("http server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
}

func getConfig() cmd.Config {
	// A missing .env file is fine, the environment may be set directly.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:         envOrDefault("HTTP_PORT", "8080"),
		DBHost:           envOrDefault("DB_HOST", "localhost"),
		DBPort:           envOrDefault("DB_PORT", "5432"),
		DBUser:           envOrDefault("DB_USER", "postgres"),
		DBPassword:       envOrDefault("DB_PASSWORD", "postgres"),
		DBName:           envOrDefault("DB_NAME", "parcelflow"),
		DBSslMode:        envOrDefault("DB_SSLMODE", "disable"),
		AmqpURL:          os.Getenv("AMQP_URL"),
		ReminderCronSpec: envOrDefault("REMINDER_CRON_SPEC", "*/5 * * * *"),
		RequestTimeout:   durationOrDefault("REQUEST_TIMEOUT", 10*time.Second),
	}
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// buildNotifier prefers RabbitMQ and falls back to log-only notifications
// when no broker is configured.
func buildNotifier(config cmd.Config, logger *slog.Logger) (ports.Notifier, func()) {
	if config.AmqpURL == "" {
		logger.Info("AMQP_URL not set, notifications are log only")
		return lognotify.NewNotifier(logger), func() {}
	}

	client, err := rabbitmq.Dial(config.AmqpURL)
	if err != nil {
		logger.Warn("rabbitmq connection failed, notifications are log only", "error", err)
		return lognotify.NewNotifier(logger), func() {}
	}

	return rabbitmq.NewNotifier(client), client.Close
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&demandrepo.DemandDTO{},
		&demandrepo.DemandParcelDTO{},
		&missionrepo.MissionDTO{},
		&missionrepo.MissionDemandDTO{},
		&missionrepo.MissionParcelDTO{},
		&trackingrepo.EntryDTO{},
		&driverrepo.DriverDTO{},
	)
}
