package triage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilityFit(t *testing.T) {
	tests := []struct {
		name  string
		title string
		body  string
		want  float64
	}{
		{"no keywords stays at base", "Something", "else", 0.5},
		{"one plus term", "Improve tutorial", "", 0.56},
		{"one minus term", "Port to SPARC", "", 0.42},
		{"plus and minus", "webgl tutorial", "", 0.48},
		{"docs and documentation both count", "docs documentation", "", 0.62},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CapabilityFit(tt.title, tt.body), 1e-9)
		})
	}
}

func TestCapabilityFit_Bounds(t *testing.T) {
	inputs := [][2]string{
		{"Documentation update", "python script and markdown"},
		{"documentation docs readme seo tutorial python script bot audit review markdown", ""},
		{"real hardware 3d webgl dos sparc windows 3.1 physical", ""},
		{"", ""},
		{strings.Repeat("docs ", 100), strings.Repeat("physical ", 100)},
	}
	for _, in := range inputs {
		score := CapabilityFit(in[0], in[1])
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}

	assert.Equal(t, 1.0, CapabilityFit(inputs[1][0], ""))
	assert.Equal(t, 0.0, CapabilityFit(inputs[2][0], ""))
}

func TestCapabilityFit_Monotonic(t *testing.T) {
	one := CapabilityFit("docs", "")
	two := CapabilityFit("docs python", "")
	three := CapabilityFit("docs python bot", "")
	assert.Less(t, one, two)
	assert.Less(t, two, three)
}
