package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-payledger/internal/events"
	"go-payledger/internal/messaging/kafka/consumer"
	"go-payledger/internal/report"
	"go-payledger/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer subscribes to salary calculation events and keeps the monthly
// report cache warm.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	reportRepo := report.NewRepository(gormDB)
	reportService := report.NewService(reportRepo, rdb)

	reader := connection.NewKafkaReader(kafkaBroker, "go-payledger-report", events.SalaryCalculatedTopic)
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeSalaryCalculated(ctx, reader, reportService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
