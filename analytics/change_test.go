package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentageChange(t *testing.T) {
	tests := []struct {
		name         string
		current      float64
		previous     float64
		wantValue    float64
		wantPositive bool
	}{
		{"fifty percent up", 150, 100, 50, true},
		{"fifty percent down", 50, 100, 50, false},
		{"unchanged counts as positive", 100, 100, 0, true},
		{"zero previous with zero current", 0, 0, 0, true},
		{"zero previous with nonzero current", 42, 0, 0, true},
		{"zero previous with negative current", -5, 0, 0, true},
		{"down to zero", 0, 80, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentageChange(tt.current, tt.previous)
			assert.InDelta(t, tt.wantValue, got.Value, 1e-9)
			assert.Equal(t, tt.wantPositive, got.IsPositive)
		})
	}
}
