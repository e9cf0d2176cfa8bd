package steps

import (
	"go.uber.org/zap"

	"github.com/similigh/bounty-hunter/internal/core/pipeline"
	"github.com/similigh/bounty-hunter/internal/triage"
)

// DifficultyEstimator assigns an effort tier from issue keywords.
type DifficultyEstimator struct {
	logger *zap.Logger
}

// NewDifficultyEstimator creates a new difficulty estimator step.
func NewDifficultyEstimator(deps *pipeline.Dependencies) *DifficultyEstimator {
	return &DifficultyEstimator{logger: loggerFrom(deps, "difficulty_estimator")}
}

// Name returns the step name.
func (s *DifficultyEstimator) Name() string {
	return "difficulty_estimator"
}

// Run estimates the difficulty.
func (s *DifficultyEstimator) Run(ctx *pipeline.Context) error {
	ctx.Result.Difficulty = triage.EstimateDifficulty(ctx.Issue.Title, ctx.Issue.Body)
	s.logger.Debug("estimated difficulty",
		zap.Int("issue", ctx.Issue.Number),
		zap.String("difficulty", string(ctx.Result.Difficulty)))
	return nil
}
