package jobs

import (
	"context"
	"log/slog"

	"grabee/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RewardReconciliationJob periodically sweeps for delivered orders that have
// no reward credit and applies the missing points. The delivery transition
// credits atomically, so the sweep normally finds nothing; it exists to heal
// ledgers touched by incidents or manual data fixes.
type RewardReconciliationJob struct {
	handler commands.ReconcileRewardsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRewardReconciliationJob creates a job that runs the reward
// reconciliation sweep every minute.
func NewRewardReconciliationJob(
	handler commands.ReconcileRewardsCommandHandler,
	logger *slog.Logger,
) *RewardReconciliationJob {
	return &RewardReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "reward_reconciliation_job"),
	}
}

// Start begins the reconciliation job to run at the top of every minute.
func (j *RewardReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewReconcileRewardsCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Reward reconciliation command creation failed", "error", cmdErr)
			return
		}

		applied, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Reward reconciliation job failed", "error", handleErr)
			return
		}

		if applied > 0 {
			j.logger.WarnContext(ctx, "Reward reconciliation repaired missing credits", "applied", applied)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reward reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *RewardReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reward reconciliation job stopped")
}
