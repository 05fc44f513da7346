package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StatsRefreshJob rebuilds the cached statistics snapshot on a schedule.
// Runs every 30 seconds so reporting surfaces stay close to the live figures.
type StatsRefreshJob struct {
	projection *queries.StatsProjection
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStatsRefreshJob creates a new job that refreshes the statistics
// projection every 30 seconds.
func NewStatsRefreshJob(projection *queries.StatsProjection, logger *slog.Logger) *StatsRefreshJob {
	return &StatsRefreshJob{
		projection: projection,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "stats_refresh_job"),
	}
}

// Start begins the statistics refresh job.
func (j *StatsRefreshJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		if err := j.projection.Refresh(ctx); err != nil {
			// the projection keeps its previous snapshot on failure
			j.logger.ErrorContext(ctx, "Statistics refresh job failed", "error", err)
			return
		}

		overall := j.projection.Overall()
		j.logger.InfoContext(ctx, "Statistics snapshot refreshed",
			"totalAssigned", overall.TotalAssigned,
			"totalDelivered", overall.TotalDelivered,
			"totalCompleted", overall.TotalCompleted,
			"deliveryRate", overall.DeliveryRate,
			"averageDeliveryTime", overall.AverageDeliveryTime,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Statistics refresh job started (running every 30 seconds)")
	return nil
}

// Stop stops the statistics refresh job.
func (j *StatsRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Statistics refresh job stopped")
}
