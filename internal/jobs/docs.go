// Package jobs provides scheduled background tasks for the platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path does not cover.
//
// # Available Jobs
//
// 1. RewardReconciliationJob - Runs every minute to credit delivered orders
// that are missing their reward ledger entry
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcileRewardsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The reconciliation job uses the cron expression "0 * * * * *", running at
// the top of every minute. The sweep is idempotent: credits already applied
// are skipped, so overlapping or repeated runs cannot double-credit.
//
// # Error Handling
//
// - Reconciliation failures are logged and retried on the next tick
// - A sweep that repairs anything logs a warning, since the request path
// should have credited already
package jobs
