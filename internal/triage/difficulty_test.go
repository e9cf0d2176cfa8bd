package triage

import "testing"

func TestEstimateDifficulty(t *testing.T) {
	tests := []struct {
		name  string
		title string
		body  string
		want  Difficulty
	}{
		{"security hardening is high", "critical security hardening", "", DifficultyHigh},
		{"tooling api integration is medium", "tooling bot", "api integration", DifficultyMedium},
		{"plain docs is low", "Fix typo in README", "small change", DifficultyLow},
		{"high wins over medium", "Dashboard for consensus metrics", "", DifficultyHigh},
		{"large dollar mention is high", "Write guide", "Reward: $1000", DifficultyHigh},
		{"case insensitive", "SECURITY review", "", DifficultyHigh},
		{"keyword in body only", "Task", "export results to csv", DifficultyMedium},
		{"empty input", "", "", DifficultyLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateDifficulty(tt.title, tt.body); got != tt.want {
				t.Errorf("Expected %q for %q/%q, got %q", tt.want, tt.title, tt.body, got)
			}
		})
	}
}
