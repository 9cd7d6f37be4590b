package notify

import (
	"context"

	"crmdesk/pkg/logger"
)

// LogNotifier writes events to the application log. Used in development
// and as the fallback when no broker is configured.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(ctx context.Context, event Event) {
	logger.Info(ctx, "activity event",
		"type", event.Type,
		"entity", event.Entity,
		"record_id", event.RecordID,
		"message", event.Message,
	)
}

// Close implements Notifier.
func (n *LogNotifier) Close() error {
	return nil
}
