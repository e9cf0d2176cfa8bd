package steps

import (
	"go.uber.org/zap"

	"github.com/similigh/bounty-hunter/internal/core/pipeline"
	"github.com/similigh/bounty-hunter/internal/triage"
)

// RewardExtractor estimates the issue's reward from its title and body.
type RewardExtractor struct {
	parser *triage.RewardParser
	logger *zap.Logger
}

// NewRewardExtractor creates a new reward extractor step.
func NewRewardExtractor(deps *pipeline.Dependencies) *RewardExtractor {
	return &RewardExtractor{
		parser: parserFrom(deps),
		logger: loggerFrom(deps, "reward_extractor"),
	}
}

// Name returns the step name.
func (s *RewardExtractor) Name() string {
	return "reward_extractor"
}

// Run parses the reward. Without an injected parser the conversion rate
// comes from the config's reward section.
func (s *RewardExtractor) Run(ctx *pipeline.Context) error {
	parser := s.parser
	if parser == nil {
		var rate float64
		if ctx.Config != nil {
			rate = ctx.Config.Reward.RTCUSDRate
		}
		parser = triage.NewRewardParser(rate)
	}
	ctx.Result.Reward = parser.Parse(ctx.Issue.Body, ctx.Issue.Title)

	s.logger.Debug("extracted reward",
		zap.Int("issue", ctx.Issue.Number),
		zap.Float64("rtc", ctx.Result.Reward.RTC),
		zap.Float64("usd", ctx.Result.Reward.USD))
	return nil
}
