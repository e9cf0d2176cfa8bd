// Package steps contains the scoring pipeline steps.
// Each step implements the pipeline.Step interface.
package steps

import (
	"go.uber.org/zap"

	"github.com/similigh/bounty-hunter/internal/core/pipeline"
	"github.com/similigh/bounty-hunter/internal/triage"
)

// RegisterAll registers all built-in steps with the registry.
func RegisterAll(r *pipeline.Registry) {
	r.Register("reward_extractor", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewRewardExtractor(deps), nil
	})

	r.Register("reward_floor", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewRewardFloor(deps), nil
	})

	r.Register("difficulty_estimator", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewDifficultyEstimator(deps), nil
	})

	r.Register("capability_fit", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewCapabilityFit(deps), nil
	})

	r.Register("rank_scorer", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewRankScorer(deps), nil
	})
}

func loggerFrom(deps *pipeline.Dependencies, step string) *zap.Logger {
	if deps == nil || deps.Logger == nil {
		return zap.NewNop()
	}
	return deps.Logger.Named(step)
}

// parserFrom returns the injected parser, or nil to use the rate from the
// run's config.
func parserFrom(deps *pipeline.Dependencies) *triage.RewardParser {
	if deps == nil {
		return nil
	}
	return deps.RewardParser
}
