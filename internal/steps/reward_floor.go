package steps

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/similigh/bounty-hunter/internal/core/pipeline"
)

// RewardFloor drops issues whose USD reward is below the operator's floor.
type RewardFloor struct {
	minUSD float64
	logger *zap.Logger
}

// NewRewardFloor creates a new reward floor step.
func NewRewardFloor(deps *pipeline.Dependencies) *RewardFloor {
	var minUSD float64
	if deps != nil {
		minUSD = deps.MinUSD
	}
	return &RewardFloor{
		minUSD: minUSD,
		logger: loggerFrom(deps, "reward_floor"),
	}
}

// Name returns the step name.
func (s *RewardFloor) Name() string {
	return "reward_floor"
}

// Run skips the rest of the pipeline when the reward is too small.
func (s *RewardFloor) Run(ctx *pipeline.Context) error {
	if ctx.Result.Reward.USD < s.minUSD {
		ctx.Result.SkipReason = fmt.Sprintf("reward $%.2f below floor $%.2f", ctx.Result.Reward.USD, s.minUSD)
		s.logger.Debug("skipping issue", zap.Int("issue", ctx.Issue.Number), zap.String("reason", ctx.Result.SkipReason))
		return pipeline.ErrSkipPipeline
	}
	return nil
}
