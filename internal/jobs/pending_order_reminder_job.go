package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"ricemarket/internal/core/application/usecases/commands"
)

// PendingOrderReminderJob periodically reminds producers about orders that
// have sat in pending confirmation for longer than the configured age.
type PendingOrderReminderJob struct {
	handler     commands.RemindPendingOrdersCommandHandler
	cron        *cron.Cron
	schedule    string
	reminderAge time.Duration
	logger      *slog.Logger
}

// NewPendingOrderReminderJob creates a new reminder job. The schedule is a
// standard five-field cron expression, and reminderAge is how long an order
// may stay pending before its producer is nudged.
// A nil logger falls back to slog.Default().
func NewPendingOrderReminderJob(
	handler commands.RemindPendingOrdersCommandHandler,
	schedule string,
	reminderAge time.Duration,
	logger *slog.Logger,
) *PendingOrderReminderJob {
	if logger == nil {
		logger = slog.Default()
	}

	return &PendingOrderReminderJob{
		handler:     handler,
		cron:        cron.New(),
		schedule:    schedule,
		reminderAge: reminderAge,
		logger:      logger.With("component", "pending_order_reminder_job"),
	}
}

// Start begins the reminder job on its configured schedule.
func (j *PendingOrderReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewRemindPendingOrdersCommand(j.reminderAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Invalid reminder configuration", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Pending order reminder job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order reminder job started",
		"schedule", j.schedule, "reminder_age", j.reminderAge)
	return nil
}

// Stop stops the reminder job.
func (j *PendingOrderReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending order reminder job stopped")
}
