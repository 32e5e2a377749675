package systems

import (
	"math"
	"testing"

	"github.com/decker502/badge/pkg/components"
	"github.com/decker502/badge/pkg/config"
	"github.com/decker502/badge/pkg/entities"
	"github.com/decker502/badge/pkg/utils"
)

// TestUpdateBlock_FallDelay 延迟期间位置不变，延迟耗尽后开始下落
func TestUpdateBlock_FallDelay(t *testing.T) {
	b := components.Block{X: 30, Y: 40, StartY: 40, Velocity: 2.0, FallDelay: 3}

	for i := 0; i < 3; i++ {
		UpdateBlock(&b)
		if b.Y != 40 {
			t.Fatalf("tick %d: expected Y unchanged during delay, got=%.2f", i, b.Y)
		}
		if b.Falling {
			t.Fatalf("tick %d: expected Falling=false during delay", i)
		}
	}
	if b.FallDelay != 0 {
		t.Errorf("Expected FallDelay=0 after 3 ticks, got=%d", b.FallDelay)
	}

	UpdateBlock(&b)
	if !b.Falling {
		t.Error("Expected Falling=true once delay is exhausted")
	}
	if b.Y != 42 {
		t.Errorf("Expected Y=42 after first falling tick, got=%.2f", b.Y)
	}
}

// TestUpdateBlock_VelocityIncrements 下落中每帧速度恰好增加 0.1
func TestUpdateBlock_VelocityIncrements(t *testing.T) {
	b := components.Block{Y: 0, Velocity: 1.5}

	prevY := b.Y
	prevV := b.Velocity
	for i := 0; i < 50; i++ {
		UpdateBlock(&b)
		if math.Abs(b.Y-(prevY+prevV)) > 1e-9 {
			t.Fatalf("tick %d: expected Y=%.4f, got=%.4f", i, prevY+prevV, b.Y)
		}
		if math.Abs(b.Velocity-prevV-BlockGravity) > 1e-9 {
			t.Fatalf("tick %d: expected velocity increment %.2f, got=%.6f", i, BlockGravity, b.Velocity-prevV)
		}
		prevY, prevV = b.Y, b.Velocity
	}
}

func TestIsBlockOffscreen(t *testing.T) {
	tests := []struct {
		name     string
		y        float64
		expected bool
	}{
		{"top of screen", 0, false},
		{"bottom row", 110, false},
		{"just below screen", 125, false},
		{"at boundary", config.ScreenHeight + config.BlockSize, false},
		{"past boundary", config.ScreenHeight + config.BlockSize + 0.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := components.Block{Y: tt.y}
			if got := IsBlockOffscreen(&b); got != tt.expected {
				t.Errorf("Y=%.1f: expected offscreen=%v, got=%v", tt.y, tt.expected, got)
			}
		})
	}
}

// TestUpdateConfetti_VYStrictlyIncreasing 彩纸 VY 从非正值开始并严格递增
func TestUpdateConfetti_VYStrictlyIncreasing(t *testing.T) {
	burst := entities.NewConfettiBurst(config.Point{X: 80, Y: 110}, entities.BurstSize, utils.NewSampler(3))

	for i := range burst {
		c := &burst[i]
		if c.VY > 0 {
			t.Fatalf("confetti %d: expected initial VY <= 0, got=%.3f", i, c.VY)
		}
		for tick := 0; tick < 30; tick++ {
			prevVY := c.VY
			prevX := c.X
			UpdateConfetti(c)
			if c.VY <= prevVY {
				t.Fatalf("confetti %d tick %d: VY not strictly increasing (%.3f -> %.3f)", i, tick, prevVY, c.VY)
			}
			if math.Abs(c.X-(prevX+c.VX)) > 1e-9 {
				t.Fatalf("confetti %d tick %d: X did not advance by VX", i, tick)
			}
		}
		if c.Lifetime != 30 {
			t.Errorf("confetti %d: expected Lifetime=30, got=%d", i, c.Lifetime)
		}
	}
}

func TestIsConfettiOffscreen(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"center", 80, 60, false},
		{"above screen", 80, -30, false},
		{"left margin", -5, 60, false},
		{"past left margin", -10.5, 60, true},
		{"past right margin", 170.5, 60, true},
		{"below screen", 80, 121, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := components.Confetti{X: tt.x, Y: tt.y}
			if got := IsConfettiOffscreen(&c); got != tt.expected {
				t.Errorf("(%.1f, %.1f): expected offscreen=%v, got=%v", tt.x, tt.y, tt.expected, got)
			}
		})
	}
}

func TestUpdateBlocks_AllOffscreen(t *testing.T) {
	if !UpdateBlocks(nil) {
		t.Error("Expected empty batch to report all offscreen")
	}

	blocks := []components.Block{
		{Y: 200, Velocity: 1},
		{Y: 0, Velocity: 1, FallDelay: 5},
	}
	if UpdateBlocks(blocks) {
		t.Error("Expected batch with an onscreen block to report not offscreen")
	}
	if blocks[1].FallDelay != 4 {
		t.Errorf("Expected second block delay decremented to 4, got=%d", blocks[1].FallDelay)
	}
}
