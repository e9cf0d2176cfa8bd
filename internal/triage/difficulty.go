package triage

import (
	"strings"

	"github.com/similigh/bounty-hunter/internal/utils/text"
)

// Difficulty is a coarse effort tier.
type Difficulty string

const (
	DifficultyLow    Difficulty = "low"
	DifficultyMedium Difficulty = "medium"
	DifficultyHigh   Difficulty = "high"
)

// difficultyRule maps a keyword set to a tier.
type difficultyRule struct {
	terms  []string
	result Difficulty
}

// difficultyRules are evaluated in order; the first rule with a matching
// term decides the tier.
var difficultyRules = []difficultyRule{
	{
		terms:  []string{"critical", "security", "red team", "hardening", "consensus", "major", "1000", "$1000"},
		result: DifficultyHigh,
	},
	{
		terms:  []string{"standard", "dashboard", "tool", "api", "integration", "export"},
		result: DifficultyMedium,
	},
}

// EstimateDifficulty classifies an issue by keyword presence.
func EstimateDifficulty(title, body string) Difficulty {
	lower := strings.ToLower(text.CombinedText(title, body))
	for _, rule := range difficultyRules {
		if text.ContainsAny(lower, rule.terms) {
			return rule.result
		}
	}
	return DifficultyLow
}
