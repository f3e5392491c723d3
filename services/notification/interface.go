package notification

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"medistay/models"
	"medistay/services/tasks"
	"medistay/utils"
)

// Notifier sends best-effort booking emails. Every method is fire-and-forget
// from the caller's perspective: persistence never waits on, or fails with,
// a notification. Returned errors exist for logging only.
type Notifier interface {
	BookingConfirmation(ctx context.Context, b *models.Booking) error
	AdminAlert(ctx context.Context, b *models.Booking) error
	StatusChange(ctx context.Context, b *models.Booking, oldStatus string) error
	SyncSummary(ctx context.Context, rep *models.SyncReport) error
}

// DefaultNotifier composes the emails and hands them to the queue when one is
// configured, falling back to inline delivery otherwise. Queued dispatch keeps
// the booking path free of any dependency on the mail provider's latency.
type DefaultNotifier struct {
	Mailer     Mailer
	Queue      *asynq.Client
	AdminEmail string
}

func (n *DefaultNotifier) dispatch(ctx context.Context, p models.EmailPayload) error {
	if p.To == "" {
		return nil
	}
	if n.Queue != nil {
		task, err := tasks.NewEmailTask(p)
		if err != nil {
			return err
		}
		if _, err := n.Queue.EnqueueContext(ctx, task); err == nil {
			return nil
		}
		utils.GetLogger().Warn("notification enqueue failed, sending inline", zap.String("subject", p.Subject))
	}
	if n.Mailer == nil {
		return fmt.Errorf("notification: no mailer configured")
	}
	return n.Mailer.Send(ctx, p)
}

func (n *DefaultNotifier) BookingConfirmation(ctx context.Context, b *models.Booking) error {
	return n.dispatch(ctx, confirmationEmail(b))
}

func (n *DefaultNotifier) AdminAlert(ctx context.Context, b *models.Booking) error {
	return n.dispatch(ctx, adminAlertEmail(n.AdminEmail, b))
}

func (n *DefaultNotifier) StatusChange(ctx context.Context, b *models.Booking, oldStatus string) error {
	return n.dispatch(ctx, statusChangeEmail(b, oldStatus))
}

func (n *DefaultNotifier) SyncSummary(ctx context.Context, rep *models.SyncReport) error {
	return n.dispatch(ctx, syncSummaryEmail(n.AdminEmail, rep))
}
