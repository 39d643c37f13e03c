package jobs

import (
	"context"
	"time"

	"verdata-backend/internal/logger"
)

// SendPendingReminders mails the administrator a digest of verification
// requests that have been waiting longer than the configured threshold.
func (jr *JobRunner) SendPendingReminders() {
	jr.runWithRecovery("SendPendingReminders", func() {
		ctx := context.Background()

		age := time.Duration(jr.config.Scheduler.PendingReminderAgeDays) * 24 * time.Hour
		cutoff := time.Now().Add(-age)

		pending, err := jr.repo.ListPendingOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list stale pending requests", "error", err)
			return
		}
		if len(pending) == 0 {
			logger.Info("No stale pending requests")
			return
		}

		if jr.config.Email.AdminEmail == "" {
			logger.Warn("No admin email configured, skipping pending reminder", "stale_count", len(pending))
			return
		}

		if err := jr.emailSvc.SendPendingReminder(ctx, jr.config.Email.AdminEmail, pending); err != nil {
			logger.Error("Failed to send pending reminder", "error", err)
			return
		}
		logger.Info("Sent pending reminder", "stale_count", len(pending))
	})
}
