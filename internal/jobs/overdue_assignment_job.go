package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// overdueAfter is how long an assignment may stay in flight before the
// watchdog reports it.
const overdueAfter = 2 * time.Hour

// OverdueAssignmentJob watches for orders that have been assigned or out for
// delivery longer than expected. Runs every minute and logs each overdue
// assignment so operators can reassign or follow up.
type OverdueAssignmentJob struct {
	handler queries.GetActiveAssignmentsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueAssignmentJob creates a new watchdog for stale assignments.
func NewOverdueAssignmentJob(
	handler queries.GetActiveAssignmentsQueryHandler,
	logger *slog.Logger,
) *OverdueAssignmentJob {
	return &OverdueAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_assignment_job"),
	}
}

// Start begins the overdue assignment job to run every minute.
func (j *OverdueAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		assignments, err := j.handler.Handle(ctx, queries.NewGetActiveAssignmentsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue assignment job failed", "error", err)
			return
		}

		cutoff := time.Now().Add(-overdueAfter)
		for _, assignment := range assignments {
			if assignment.AssignedAt.Before(cutoff) {
				j.logger.WarnContext(ctx, "Assignment overdue",
					"orderId", assignment.OrderID.String(),
					"orderNumber", assignment.OrderNumber,
					"status", assignment.Status.String(),
					"deliveryPersonId", assignment.DeliveryPersonID.String(),
					"assignedAt", assignment.AssignedAt,
				)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue assignment job started (running every minute)")
	return nil
}

// Stop stops the overdue assignment job.
func (j *OverdueAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue assignment job stopped")
}
