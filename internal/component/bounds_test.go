package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsContains(t *testing.T) {
	b := Bounds{Width: 600, Height: 600}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"Center", 300, 300, true},
		{"Origin", 0, 0, true},
		{"Right edge", 600, 300, false},
		{"Bottom edge", 300, 600, false},
		{"Negative x", -0.1, 300, false},
		{"Negative y", 300, -5, false},
		{"Past right", 601, 300, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Contains(tt.x, tt.y))
		})
	}
}

func TestProjectileStateString(t *testing.T) {
	assert.Equal(t, "attached", Attached.String())
	assert.Equal(t, "launched", Launched.String())
	assert.Equal(t, "unknown", ProjectileState(9).String())
}
