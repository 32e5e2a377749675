package entities

import (
	"math"
	"testing"

	"github.com/decker502/badge/pkg/config"
	"github.com/decker502/badge/pkg/utils"
)

func TestNewConfettiBurst(t *testing.T) {
	origins := config.ConfettiOrigins()

	for i, origin := range origins {
		burst := NewConfettiBurst(origin, BurstSize, utils.NewSampler(uint64(i+1)))
		if len(burst) != BurstSize {
			t.Fatalf("origin %d: expected %d confetti, got=%d", i, BurstSize, len(burst))
		}

		for j, c := range burst {
			if c.Y != origin.Y {
				t.Errorf("confetti %d: expected Y=%.1f, got=%.1f", j, origin.Y, c.Y)
			}
			if c.X < origin.X-ConfettiSpreadX || c.X > origin.X+ConfettiSpreadX {
				t.Errorf("confetti %d: X=%.2f outside origin ±%.0f", j, c.X, ConfettiSpreadX)
			}
			// 发射角在上半平面，初速度不会向下
			if c.VY > 0 {
				t.Errorf("confetti %d: expected VY <= 0, got=%.3f", j, c.VY)
			}
			speed := math.Hypot(c.VX, c.VY)
			if speed < ConfettiMinSpeed-1e-9 || speed > ConfettiMaxSpeed+1e-9 {
				t.Errorf("confetti %d: speed %.3f outside [%.0f, %.0f]", j, speed, ConfettiMinSpeed, ConfettiMaxSpeed)
			}
			if c.Size < ConfettiMinSize || c.Size > ConfettiMaxSize {
				t.Errorf("confetti %d: size %d outside [%d, %d]", j, c.Size, ConfettiMinSize, ConfettiMaxSize)
			}
			if c.Lifetime != 0 {
				t.Errorf("confetti %d: expected Lifetime=0, got=%d", j, c.Lifetime)
			}

			found := false
			for _, p := range config.ConfettiPalette {
				if p == c.Color {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("confetti %d: color %v not in confetti palette", j, c.Color)
			}
		}
	}
}

// scriptedSampler 按顺序返回固定的浮点值
type scriptedSampler struct {
	floats []float64
	n      int
}

func (s *scriptedSampler) Float64() float64 {
	v := s.floats[s.n%len(s.floats)]
	s.n++
	return v
}

func (s *scriptedSampler) IntN(n int) int { return 0 }

// TestNewConfettiBurst_AngleMapping 验证角度方向：-90° 竖直向上，-180° 向左
func TestNewConfettiBurst_AngleMapping(t *testing.T) {
	tests := []struct {
		name      string
		angleDraw float64 // 映射到 [-180, 0)
		expectVX  float64
		expectVY  float64
	}{
		{"straight up", 0.5, 0, -2},
		{"leftward", 0.0, -2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 抽样顺序：水平偏移、角度、速度
			rng := &scriptedSampler{floats: []float64{0.5, tt.angleDraw, 0.0}}
			burst := NewConfettiBurst(config.Point{X: 80, Y: 110}, 1, rng)
			c := burst[0]

			if c.X != 80 {
				t.Errorf("expected X=80 for centered spread draw, got=%.3f", c.X)
			}
			if math.Abs(c.VX-tt.expectVX) > 1e-9 || math.Abs(c.VY-tt.expectVY) > 1e-9 {
				t.Errorf("expected velocity (%.1f, %.1f), got (%.6f, %.6f)", tt.expectVX, tt.expectVY, c.VX, c.VY)
			}
		})
	}
}
