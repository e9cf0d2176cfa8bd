// Package pipeline provides the scoring pipeline engine.
// It defines the Step interface and Context structure used by all scoring steps.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/similigh/bounty-hunter/internal/core/config"
	"github.com/similigh/bounty-hunter/internal/triage"
)

// ErrSkipPipeline indicates that the pipeline should stop gracefully.
// This is not an error condition, just an early exit (e.g., reward below the floor).
var ErrSkipPipeline = errors.New("skip remaining pipeline steps")

// Step defines the interface that all pipeline steps must implement.
type Step interface {
	// Name returns the unique identifier for this step.
	Name() string

	// Run executes the step's logic.
	// It should return ErrSkipPipeline to stop the pipeline gracefully,
	// or any other error to indicate failure.
	Run(ctx *Context) error
}

// Result holds the signals accumulated while scoring one issue.
type Result struct {
	IssueNumber   int
	Skipped       bool
	SkipReason    string
	Reward        triage.Reward
	Difficulty    triage.Difficulty
	CapabilityFit float64
	Score         float64
}

// Lead builds the ranked lead for the issue from the accumulated signals.
func (r *Result) Lead(issue *triage.Issue) triage.Lead {
	return triage.NewLead(*issue, r.Reward, r.Difficulty, r.CapabilityFit, r.Score)
}

// Context carries data through the pipeline steps.
type Context struct {
	// Ctx is the Go context for cancellation and timeouts.
	Ctx context.Context

	// Issue is the issue being scored.
	Issue *triage.Issue

	// Config is the loaded configuration.
	Config *config.Config

	// Result accumulates the scoring results.
	Result *Result
}

// NewContext creates a new pipeline context for an issue.
func NewContext(ctx context.Context, issue *triage.Issue, cfg *config.Config) *Context {
	return &Context{
		Ctx:    ctx,
		Issue:  issue,
		Config: cfg,
		Result: &Result{IssueNumber: issue.Number, Difficulty: triage.DifficultyLow},
	}
}

// Pipeline executes a sequence of steps.
type Pipeline struct {
	steps []Step
}

// New creates a new pipeline with the given steps.
func New(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Run executes all steps in order.
// Stops on the first error (unless it's ErrSkipPipeline, which is graceful)
// and before any step once the Go context is done.
func (p *Pipeline) Run(ctx *Context) error {
	for _, step := range p.steps {
		if ctx.Ctx != nil {
			if err := ctx.Ctx.Err(); err != nil {
				return fmt.Errorf("pipeline canceled before step '%s': %w", step.Name(), err)
			}
		}
		if err := step.Run(ctx); err != nil {
			if errors.Is(err, ErrSkipPipeline) {
				ctx.Result.Skipped = true
				return nil
			}
			return fmt.Errorf("step '%s' failed: %w", step.Name(), err)
		}
	}
	return nil
}

// Steps returns the list of steps (for introspection).
func (p *Pipeline) Steps() []Step {
	return p.steps
}
