package steps

import (
	"go.uber.org/zap"

	"github.com/similigh/bounty-hunter/internal/core/pipeline"
	"github.com/similigh/bounty-hunter/internal/triage"
)

// RankScorer combines reward, difficulty and fit into the ranking score.
type RankScorer struct {
	logger *zap.Logger
}

// NewRankScorer creates a new rank scorer step.
func NewRankScorer(deps *pipeline.Dependencies) *RankScorer {
	return &RankScorer{logger: loggerFrom(deps, "rank_scorer")}
}

// Name returns the step name.
func (s *RankScorer) Name() string {
	return "rank_scorer"
}

// Run computes the score.
func (s *RankScorer) Run(ctx *pipeline.Context) error {
	r := ctx.Result
	r.Score = triage.RankScore(r.Reward.USD, r.Difficulty, r.CapabilityFit)
	s.logger.Debug("scored issue", zap.Int("issue", ctx.Issue.Number), zap.Float64("score", r.Score))
	return nil
}
