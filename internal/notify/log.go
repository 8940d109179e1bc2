package notify

import (
	"context"

	"go.uber.org/zap"

	"jobmate/placement-service/internal/lifecycle"
)

// LogSink writes notifications to the log. Used for local runs.
type LogSink struct {
	log *zap.SugaredLogger
}

func NewLogSink(log *zap.SugaredLogger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Notify(_ context.Context, n lifecycle.Notification) error {
	s.log.Infow("notification",
		"type", n.Type, "recipientId", n.RecipientID, "recipientRole", n.RecipientRole,
		"title", n.Title, "data", n.Data)
	return nil
}
