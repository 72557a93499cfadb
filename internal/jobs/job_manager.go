package jobs

import (
	"fmt"
	"log/slog"

	"grabee/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	rewardReconciliationJob *RewardReconciliationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	reconcileRewardsHandler commands.ReconcileRewardsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		rewardReconciliationJob: NewRewardReconciliationJob(reconcileRewardsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.rewardReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start reward reconciliation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.rewardReconciliationJob.Stop()
}
