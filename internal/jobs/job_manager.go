package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	expirationSweepJob *ExpirationSweepJob
	balanceAuditJob    *BalanceAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command and query handlers as dependencies to wire up job execution.
func NewJobManager(
	sweepHandler commands.SweepExpirationsCommandHandler,
	rebuildHandler commands.RebuildBalanceCommandHandler,
	getClientsHandler queries.GetClientsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		expirationSweepJob: NewExpirationSweepJob(sweepHandler, logger),
		balanceAuditJob:    NewBalanceAuditJob(rebuildHandler, getClientsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.expirationSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start expiration sweep job: %w", err)
	}

	if err := jm.balanceAuditJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.expirationSweepJob.Stop()
		return fmt.Errorf("failed to start balance audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.expirationSweepJob.Stop()
	jm.balanceAuditJob.Stop()
}
