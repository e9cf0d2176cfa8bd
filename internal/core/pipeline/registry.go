package pipeline

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/similigh/bounty-hunter/internal/triage"
)

// Registry holds registered step factories.
// Step factories create Step instances, allowing for dependency injection.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]StepFactory
}

// StepFactory is a function that creates a Step.
type StepFactory func(deps *Dependencies) (Step, error)

// Dependencies holds the dependencies that can be injected into steps.
type Dependencies struct {
	Logger *zap.Logger

	// RewardParser extracts rewards with the configured conversion rate.
	RewardParser *triage.RewardParser

	// MinUSD is the reward floor below which issues are discarded.
	MinUSD float64
}

// NewRegistry creates a new step registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]StepFactory),
	}
}

// Register adds a step factory to the registry.
func (r *Registry) Register(name string, factory StepFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get retrieves a step factory by name.
func (r *Registry) Get(name string) (StepFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[name]
	return factory, ok
}

// BuildFromNames creates a pipeline from a list of step names.
func (r *Registry) BuildFromNames(names []string, deps *Dependencies) (*Pipeline, error) {
	var steps []Step
	for _, name := range names {
		factory, ok := r.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown step: %s", name)
		}
		step, err := factory(deps)
		if err != nil {
			return nil, fmt.Errorf("failed to create step '%s': %w", name, err)
		}
		steps = append(steps, step)
	}
	return New(steps...), nil
}

// DefaultWorkflow is used when neither steps nor a known workflow is configured.
const DefaultWorkflow = "lead-scoring"

// Presets defines the built-in workflow presets.
var Presets = map[string][]string{
	// lead-scoring: full scoring with the reward floor applied
	"lead-scoring": {
		"reward_extractor",
		"reward_floor",
		"difficulty_estimator",
		"capability_fit",
		"rank_scorer",
	},

	// unfiltered: score every issue regardless of reward
	"unfiltered": {
		"reward_extractor",
		"difficulty_estimator",
		"capability_fit",
		"rank_scorer",
	},
}

// GetPreset returns the step names for a preset workflow.
func GetPreset(name string) ([]string, bool) {
	steps, ok := Presets[name]
	return steps, ok
}

// ResolveSteps determines the steps to use based on config.
// Priority: explicit steps > workflow preset > default
func ResolveSteps(explicitSteps []string, workflow string) []string {
	if len(explicitSteps) > 0 {
		return explicitSteps
	}
	if workflow != "" {
		if preset, ok := GetPreset(workflow); ok {
			return preset
		}
	}
	return Presets[DefaultWorkflow]
}
