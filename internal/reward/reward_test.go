package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointsFor_KnownLabels(t *testing.T) {
	tests := []struct {
		label  string
		points int
	}{
		{"plastik", 20},
		{"kertas", 15},
		{"kardus", 10},
		{"kaca", 25},
		{"logam", 30},
		{"residu", 5},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.points, PointsFor(tt.label))
		})
	}
}

func TestPointsFor_UnknownLabel(t *testing.T) {
	assert.Zero(t, PointsFor("unknown"))
	assert.Zero(t, PointsFor(""))
	// lookups are case-sensitive
	assert.Zero(t, PointsFor("Plastik"))
}
