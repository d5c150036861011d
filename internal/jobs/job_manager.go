package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	paymentReminderJob *PaymentReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the query handler and publisher as dependencies to wire up job execution.
func NewJobManager(
	awaitingPaymentHandler queries.GetOrdersAwaitingPaymentQueryHandler,
	reminderPublisher ports.ReminderPublisher,
	reminderThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		paymentReminderJob: NewPaymentReminderJob(awaitingPaymentHandler, reminderPublisher, reminderThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.paymentReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start payment reminder job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.paymentReminderJob.Stop()
}
