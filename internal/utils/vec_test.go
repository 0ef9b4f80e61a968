package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
		ok   bool
	}{
		{"axis", Vec2{X: -200, Y: 0}, Vec2{X: -1, Y: 0}, true},
		{"diagonal", Vec2{X: 3, Y: 4}, Vec2{X: 0.6, Y: 0.8}, true},
		{"zero", Vec2{}, Vec2{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.in.Normalize()
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want.X, got.X, eps)
			assert.InDelta(t, tt.want.Y, got.Y, eps)
			if ok {
				assert.InDelta(t, 1.0, got.Len(), eps)
			}
		})
	}
}

func TestRotate(t *testing.T) {
	v := Vec2{X: 1, Y: 0}

	quarter := v.Rotate(math.Pi / 2)
	assert.InDelta(t, 0, quarter.X, eps)
	assert.InDelta(t, 1, quarter.Y, eps)

	half := v.Rotate(math.Pi)
	assert.InDelta(t, -1, half.X, eps)
	assert.InDelta(t, 0, half.Y, eps)

	back := Vec2{X: 3, Y: -7}.Rotate(1.234).Rotate(-1.234)
	assert.InDelta(t, 3, back.X, eps)
	assert.InDelta(t, -7, back.Y, eps)
}

func TestPolar(t *testing.T) {
	p := Polar(200, 0)
	assert.InDelta(t, 200, p.X, eps)
	assert.InDelta(t, 0, p.Y, eps)

	p = Polar(200, math.Pi)
	assert.InDelta(t, -200, p.X, eps)
	assert.InDelta(t, 0, p.Y, 1e-6)
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0, NormalizeAngle(4*math.Pi), eps)
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), eps)
	assert.InDelta(t, math.Pi/2, NormalizeAngle(-3*math.Pi/2), eps)
	assert.InDelta(t, 1, NormalizeAngle(1), eps)
}

func TestLerp(t *testing.T) {
	assert.InDelta(t, 5, Lerp(0, 10, 0.5), eps)
	assert.InDelta(t, 0.25, InverseLerp(-2, 2, -1), eps)
	assert.InDelta(t, 1, InverseLerp(-2, 2, 9), eps)
	assert.InDelta(t, 0, InverseLerp(3, 3, 3), eps)
}
