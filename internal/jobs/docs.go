// Package jobs provides scheduled background tasks for the fulfillment engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic maintenance the engine requires.
//
// # Available Jobs
//
// 1. ExpirationSweepJob - Runs every minute to force quotes past their validity date into their expired state
// 2. BalanceAuditJob - Runs nightly to replay every client's ledger in dry-run mode and log balance drift
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(sweepHandler, rebuildHandler, getClientsHandler, logger)
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
//   - The sweep job logs failures and tries again on the next tick; the sweep is
//     idempotent so a missed run is caught up automatically.
//   - The audit job never writes: drift is logged for operators, and the rebuild
//     endpoint corrects it on demand.
//   - Failed job starts will stop any already running jobs.
package jobs
