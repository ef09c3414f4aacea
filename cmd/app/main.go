package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"fulfillment/cmd"
	httpserver "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/clientrepo"
	"fulfillment/internal/adapters/out/postgres/deliveryrepo"
	"fulfillment/internal/adapters/out/postgres/ledgerrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/quoterepo"
	"fulfillment/internal/adapters/out/postgres/reservationrepo"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	config := getConfigs()

	db, err := connectDB(config)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err = migrateDB(db); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(config, db)

	reserveSlotHandler, err := root.CreateReserveSlotCommandHandler()
	if err != nil {
		logger.Error("Failed to create reservation handler", "error", err)
		os.Exit(1)
	}

	server := httpserver.NewServer(
		root.CreateConfirmDeliveryCommandHandler(),
		root.CreateCancelDeliveryCommandHandler(),
		reserveSlotHandler,
		root.CreateCancelReservationCommandHandler(),
		root.CreateMarkNoShowCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateRebuildBalanceCommandHandler(),
		root.CreateSweepExpirationsCommandHandler(),
		root.CreateGetOrderFulfillmentQueryHandler(),
		root.CreateGetSlotAvailabilityQueryHandler(),
		root.CreateGetClientBalanceQueryHandler(),
	)

	jobManager := jobs.NewJobManager(
		root.CreateSweepExpirationsCommandHandler(),
		root.CreateRebuildBalanceCommandHandler(),
		root.CreateGetClientsQueryHandler(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	server.RegisterRoutes(e)

	go func() {
		if startErr := e.Start("0.0.0.0:" + config.HTTPPort); startErr != nil {
			logger.Info("HTTP server stopped", "reason", startErr)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}

func getConfigs() cmd.Config {
	// A missing .env file is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:           envOrDefault("HTTP_PORT", "8080"),
		DBHost:             envOrDefault("DB_HOST", "localhost"),
		DBPort:             envOrDefault("DB_PORT", "5432"),
		DBUser:             envOrDefault("DB_USER", "postgres"),
		DBPassword:         envOrDefault("DB_PASSWORD", "postgres"),
		DBName:             envOrDefault("DB_NAME", "fulfillment"),
		DBSslMode:          envOrDefault("DB_SSLMODE", "disable"),
		PenaltyWindowDays:  envIntOrDefault("PENALTY_WINDOW_DAYS", 7),
		ReserveMaxAttempts: envIntOrDefault("RESERVE_MAX_ATTEMPTS", 3),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func connectDB(config cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)
	return gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
}

func migrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.SaleOrderDTO{}, &orderrepo.SaleItemDTO{},
		&deliveryrepo.DeliveryDTO{}, &deliveryrepo.DeliveryItemDTO{},
		&reservationrepo.ReservationDTO{}, &reservationrepo.SlotDTO{},
		&quoterepo.QuoteDTO{},
		&ledgerrepo.EntryDTO{},
		&clientrepo.ClientDTO{},
	)
}
