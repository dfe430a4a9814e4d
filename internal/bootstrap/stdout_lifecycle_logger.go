package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type StdoutLifecycleLogger struct{}

func NewStdoutLifecycleLogger() *StdoutLifecycleLogger {
	return &StdoutLifecycleLogger{}
}

func (l *StdoutLifecycleLogger) Log(ctx context.Context, event LifecycleEvent) {
	zap.L().Named("lifecycle").Info("lifecycle event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", event.Action),
		zap.String("message", event.Message),
		zap.Any("meta", event.Meta),
	)
}
