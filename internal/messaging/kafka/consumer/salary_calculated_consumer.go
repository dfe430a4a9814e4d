package consumer

import (
	"context"
	"encoding/json"

	"go-payledger/internal/events"
	"go-payledger/internal/report"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeSalaryCalculated rebuilds the cached monthly report whenever a
// salary is calculated, so dashboards do not wait out the cache TTL.
// Refreshing twice for a redelivered message is harmless, so the handler
// leans on at-least-once delivery rather than tracking processed offsets.
func ConsumeSalaryCalculated(
	ctx context.Context,
	reader *kafkago.Reader,
	reportService report.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.salary_calculated")
	log.Info("salary calculated consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("salary calculated consumer stopped")
				return
			}
			log.Error("fetch salary calculated message failed", zap.Error(err))
			continue
		}

		var event events.SalaryCalculatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode salary calculated event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := reportService.RefreshMonth(ctx, event.BusinessID, event.Month, event.Year); err != nil {
			log.Error("refresh monthly report failed",
				zap.String("business_id", event.BusinessID),
				zap.Int("month", event.Month),
				zap.Int("year", event.Year),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit salary calculated message failed", zap.Error(err))
			continue
		}

		log.Info("monthly report refreshed from salary calculated event",
			zap.String("business_id", event.BusinessID),
			zap.Int("month", event.Month),
			zap.Int("year", event.Year),
		)
	}
}
