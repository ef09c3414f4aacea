package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/ledger"

	"github.com/robfig/cron/v3"
)

// BalanceAuditJob replays every client's ledger once a night in dry-run mode
// and logs any drift between cached and rebuilt balances. It never writes;
// correcting drift stays an explicit operator action.
type BalanceAuditJob struct {
	rebuildHandler    commands.RebuildBalanceCommandHandler
	getClientsHandler queries.GetClientsQueryHandler
	cron              *cron.Cron
	logger            *slog.Logger
}

// NewBalanceAuditJob creates a job that audits all client balances nightly.
func NewBalanceAuditJob(
	rebuildHandler commands.RebuildBalanceCommandHandler,
	getClientsHandler queries.GetClientsQueryHandler,
	logger *slog.Logger,
) *BalanceAuditJob {
	return &BalanceAuditJob{
		rebuildHandler:    rebuildHandler,
		getClientsHandler: getClientsHandler,
		cron:              cron.New(),
		logger:            logger.With("component", "balance_audit_job"),
	}
}

// Start begins the balance audit job, running at 03:00 every night.
func (j *BalanceAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 3 * * *", func() {
		j.runAudit(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Balance audit job started (running nightly at 03:00)")
	return nil
}

// Stop stops the balance audit job.
func (j *BalanceAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Balance audit job stopped")
}

func (j *BalanceAuditJob) runAudit(ctx context.Context) {
	clients, err := j.getClientsHandler.Handle(ctx, queries.NewGetClientsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Balance audit failed to list clients", "error", err)
		return
	}

	var drifted int
	for _, c := range clients {
		cmd, cmdErr := commands.NewRebuildBalanceCommand(c.ID, ledger.ModeAll, true)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Balance audit skipped client",
				"client_id", c.ID.String(), "error", cmdErr)
			continue
		}

		result, handleErr := j.rebuildHandler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Balance audit failed for client",
				"client_id", c.ID.String(), "error", handleErr)
			continue
		}

		if result.HasDrift() {
			drifted++
			j.logger.WarnContext(ctx, "Cached balance drifted from ledger",
				"client_id", c.ID.String(),
				"cached", result.Previous.String(),
				"rebuilt", result.Rebuilt.String(),
				"difference", result.Difference.String(),
				"entries", result.EntriesProcessed)
		}
	}

	j.logger.InfoContext(ctx, "Balance audit finished",
		"clients", len(clients), "drifted", drifted)
}
