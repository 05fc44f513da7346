package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statsRefreshJob      *StatsRefreshJob
	overdueAssignmentJob *OverdueAssignmentJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	projection *queries.StatsProjection,
	assignmentsHandler queries.GetActiveAssignmentsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statsRefreshJob:      NewStatsRefreshJob(projection, logger),
		overdueAssignmentJob: NewOverdueAssignmentJob(assignmentsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statsRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start stats refresh job: %w", err)
	}

	if err := jm.overdueAssignmentJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.statsRefreshJob.Stop()
		return fmt.Errorf("failed to start overdue assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statsRefreshJob.Stop()
	jm.overdueAssignmentJob.Stop()
}
