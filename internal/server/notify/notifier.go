// Package notify tells recipients about new messages. Delivery is best
// effort: failures are logged and never reach the sender.
package notify

import (
	"context"

	"github.com/dmitrijs2005/messagely/internal/logging"
	"github.com/dmitrijs2005/messagely/internal/server/models"
)

// Notifier delivers one receipt to whatever channel the recipient listens on.
type Notifier interface {
	Notify(ctx context.Context, receipt *models.MessageReceipt) error
}

// LogNotifier writes a log line per receipt. The body is not logged.
type LogNotifier struct {
	log logging.Logger
}

func NewLogNotifier(log logging.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, r *models.MessageReceipt) error {
	n.log.Info(ctx, "new message",
		"id", r.ID,
		"from", r.FromUsername,
		"to", r.ToUsername,
		"sent_at", r.SentAt,
	)
	return nil
}
