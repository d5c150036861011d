// Package jobs provides scheduled background tasks for the laundry platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order workflow.
//
// # Available Jobs
//
// 1. PaymentReminderJob - Runs every minute to find payment tracks that have
// been awaiting confirmation past the reminder threshold and publish a
// reminder for each.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(awaitingPaymentHandler, reminderPublisher, 30*time.Minute, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Query failures abort the run and are logged; the next tick retries
// - A failed reminder publish is logged per order and never aborts the batch
package jobs
