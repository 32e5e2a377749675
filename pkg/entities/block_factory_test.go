package entities

import (
	"testing"

	"github.com/decker502/badge/pkg/config"
	"github.com/decker502/badge/pkg/utils"
)

func testPositions() []config.GridPosition {
	return []config.GridPosition{
		{X: 30, Y: 40}, {X: 40, Y: 40}, {X: 50, Y: 40},
		{X: 30, Y: 50}, {X: 50, Y: 50}, {X: 120, Y: 70},
	}
}


// TestNewBlockBatch_PreservesPositions 每个坐标恰好生成一个方块，无丢失无重复
func TestNewBlockBatch_PreservesPositions(t *testing.T) {
	positions := testPositions()
	blocks := NewBlockBatch(positions, utils.NewSampler(1))

	if len(blocks) != len(positions) {
		t.Fatalf("Expected %d blocks, got=%d", len(positions), len(blocks))
	}

	for i, p := range positions {
		b := blocks[i]
		if b.X != float64(p.X) || b.Y != float64(p.Y) {
			t.Errorf("block %d: expected position (%d, %d), got (%.1f, %.1f)", i, p.X, p.Y, b.X, b.Y)
		}
		if b.StartY != b.Y {
			t.Errorf("block %d: expected StartY=%.1f, got=%.1f", i, b.Y, b.StartY)
		}
		if b.Falling {
			t.Errorf("block %d: expected Falling=false on creation", i)
		}
	}
}

func TestNewBlockBatch_RandomRanges(t *testing.T) {
	rng := utils.NewSampler(7)
	positions := make([]config.GridPosition, 0, 192)
	for y := 0; y < config.ScreenHeight; y += config.BlockSize {
		for x := 0; x < config.ScreenWidth; x += config.BlockSize {
			positions = append(positions, config.GridPosition{X: x, Y: y})
		}
	}

	blocks := NewBlockBatch(positions, rng)
	for i, b := range blocks {
		if b.Velocity < BlockMinVelocity || b.Velocity > BlockMaxVelocity {
			t.Errorf("block %d: velocity %.3f outside [%.1f, %.1f]", i, b.Velocity, BlockMinVelocity, BlockMaxVelocity)
		}
		if b.FallDelay < 0 || b.FallDelay > BlockMaxFallDelay {
			t.Errorf("block %d: fall delay %d outside [0, %d]", i, b.FallDelay, BlockMaxFallDelay)
		}

		found := false
		for _, c := range config.BlockPalette {
			if c == b.Color {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("block %d: color %v not in block palette", i, b.Color)
		}
	}
}

func TestNewBlockBatch_Empty(t *testing.T) {
	blocks := NewBlockBatch(nil, utils.NewSampler(1))
	if len(blocks) != 0 {
		t.Errorf("Expected empty batch, got=%d", len(blocks))
	}
}

// TestNewBlockBatch_SeedReproducible 相同种子产生相同批次
func TestNewBlockBatch_SeedReproducible(t *testing.T) {
	a := NewBlockBatch(testPositions(), utils.NewSampler(99))
	b := NewBlockBatch(testPositions(), utils.NewSampler(99))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("block %d differs between runs with the same seed: %+v vs %+v", i, a[i], b[i])
		}
	}
}
