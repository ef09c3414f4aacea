package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ExpirationSweepJob periodically applies the quote expiration policy. Runs
// every minute so a quote is never in play for long past its validity date.
type ExpirationSweepJob struct {
	handler commands.SweepExpirationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewExpirationSweepJob creates a job that sweeps expired quotes every minute.
func NewExpirationSweepJob(handler commands.SweepExpirationsCommandHandler, logger *slog.Logger) *ExpirationSweepJob {
	return &ExpirationSweepJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "expiration_sweep_job"),
	}
}

// Start begins the expiration sweep job.
func (j *ExpirationSweepJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSweepExpirationsCommand()

		swept, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Expiration sweep failed", "error", handleErr)
			return
		}
		if swept > 0 {
			j.logger.InfoContext(ctx, "Expiration sweep finished", "swept", swept)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expiration sweep job started (running every minute)")
	return nil
}

// Stop stops the expiration sweep job.
func (j *ExpirationSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Expiration sweep job stopped")
}
