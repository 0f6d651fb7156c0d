package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForLabel(t *testing.T) {
	tests := []struct {
		label string
		want  float64
	}{
		{LabelLeft, -1.0},
		{LabelCenter, 0.0},
		{LabelRight, 1.0},
		{"foo", 0.0},
		{"", 0.0},
		{"LEFT", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ForLabel(tt.label))
		})
	}
}

func TestNewResult(t *testing.T) {
	r := NewResult(LabelRight)
	assert.Equal(t, 1.0, r.Score)
	assert.Equal(t, LabelRight, r.Label)

	// unrecognized labels are echoed back with the neutral score
	r = NewResult("anything-else")
	assert.Equal(t, 0.0, r.Score)
	assert.Equal(t, "anything-else", r.Label)
}
