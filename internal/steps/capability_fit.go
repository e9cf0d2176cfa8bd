package steps

import (
	"go.uber.org/zap"

	"github.com/similigh/bounty-hunter/internal/core/pipeline"
	"github.com/similigh/bounty-hunter/internal/triage"
)

// CapabilityFit scores how well the issue matches the operator's skills.
type CapabilityFit struct {
	logger *zap.Logger
}

// NewCapabilityFit creates a new capability fit step.
func NewCapabilityFit(deps *pipeline.Dependencies) *CapabilityFit {
	return &CapabilityFit{logger: loggerFrom(deps, "capability_fit")}
}

// Name returns the step name.
func (s *CapabilityFit) Name() string {
	return "capability_fit"
}

// Run computes the fit score.
func (s *CapabilityFit) Run(ctx *pipeline.Context) error {
	ctx.Result.CapabilityFit = triage.CapabilityFit(ctx.Issue.Title, ctx.Issue.Body)
	s.logger.Debug("scored capability fit",
		zap.Int("issue", ctx.Issue.Number),
		zap.Float64("fit", ctx.Result.CapabilityFit))
	return nil
}
