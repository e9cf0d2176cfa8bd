package triage

import (
	"strings"

	"github.com/similigh/bounty-hunter/internal/utils/text"
)

const (
	fitBase     = 0.5
	fitBonus    = 0.06
	fitPenalty  = 0.08
	fitMinScore = 0.0
	fitMaxScore = 1.0
)

// fitPlusTerms describe work the operator is good at.
var fitPlusTerms = []string{
	"documentation",
	"docs",
	"readme",
	"seo",
	"tutorial",
	"python",
	"script",
	"bot",
	"audit",
	"review",
	"markdown",
}

// fitMinusTerms describe work the operator cannot do well.
var fitMinusTerms = []string{
	"real hardware",
	"3d",
	"webgl",
	"dos",
	"sparc",
	"windows 3.1",
	"physical",
}

// CapabilityFit scores how well an issue matches the operator's skills.
// Every matching term counts, so the result is monotonic in the number of
// matches and clamped to [0, 1].
func CapabilityFit(title, body string) float64 {
	lower := strings.ToLower(text.CombinedText(title, body))

	score := fitBase
	for _, term := range fitPlusTerms {
		if strings.Contains(lower, term) {
			score += fitBonus
		}
	}
	for _, term := range fitMinusTerms {
		if strings.Contains(lower, term) {
			score -= fitPenalty
		}
	}
	return clamp(score, fitMinScore, fitMaxScore)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
