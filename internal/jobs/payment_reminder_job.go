package jobs

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// PaymentReminderJob periodically finds payment tracks that have been
// awaiting confirmation past the reminder threshold and publishes a reminder
// for each. Confirming the payment is what stops the reminders: the query
// only matches tracks still in Pending or Submitted.
type PaymentReminderJob struct {
	handler   queries.GetOrdersAwaitingPaymentQueryHandler
	publisher ports.ReminderPublisher
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPaymentReminderJob creates a job that reminds customers about payments
// older than the given threshold.
func NewPaymentReminderJob(
	handler queries.GetOrdersAwaitingPaymentQueryHandler,
	publisher ports.ReminderPublisher,
	threshold time.Duration,
	logger *slog.Logger,
) *PaymentReminderJob {
	return &PaymentReminderJob{
		handler:   handler,
		publisher: publisher,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "payment_reminder_job"),
	}
}

// Start begins the payment reminder job to run every minute.
func (j *PaymentReminderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetOrdersAwaitingPaymentQuery(j.threshold)
		if err != nil {
			j.logger.ErrorContext(ctx, "Payment reminder query construction failed", "error", err)
			return
		}

		awaiting, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Payment reminder job failed", "error", err)
			return
		}

		for _, entry := range awaiting {
			reminder := ports.PaymentReminder{
				OrderID:    entry.OrderID,
				CustomerID: entry.CustomerID,
				Track:      entry.Track,
				Since:      entry.Since,
			}

			if err := j.publisher.PublishReminder(ctx, reminder); err != nil {
				j.logger.WarnContext(ctx, "Failed to publish payment reminder",
					"order_id", entry.OrderID.String(),
					"track", entry.Track.String(),
					"error", err,
				)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment reminder job started (running every minute)")
	return nil
}

// Stop stops the payment reminder job.
func (j *PaymentReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment reminder job stopped")
}
