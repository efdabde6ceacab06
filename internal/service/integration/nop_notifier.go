package integration

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/thewondry/job-service/internal/models"
)

// NopNotifier stands in when RabbitMQ is unavailable: transitions still
// apply, the would-be notification is only logged.
func NopNotifier(logger zerolog.Logger) Notifier {
	return &nopNotifier{logger: logger}
}

type nopNotifier struct {
	logger zerolog.Logger
}

func (n *nopNotifier) PublishStatusChanged(_ context.Context, event *models.JobStatusChangedEvent) error {
	n.logger.Warn().
		Str("job_id", event.JobID).
		Str("new_status", event.NewStatus).
		Msg("Notifier disabled; status change notification dropped")
	return nil
}

func (n *nopNotifier) Close() error {
	return nil
}
