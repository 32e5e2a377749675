package entities

import (
	"github.com/decker502/badge/pkg/components"
	"github.com/decker502/badge/pkg/config"
	"github.com/decker502/badge/pkg/utils"
)

// 方块初始参数范围
const (
	BlockMinVelocity  = 1.5 // 初始下落速度下界（像素/帧）
	BlockMaxVelocity  = 3.5 // 初始下落速度上界（像素/帧）
	BlockMaxFallDelay = 20  // 最大下落延迟（帧，含）
)

// NewBlockBatch 将预计算的网格坐标转换为一批下落方块
//
// 每个坐标生成且仅生成一个方块，顺序与输入一致。
// 颜色、初速度和下落延迟分别独立随机。
//
// 参数:
//   - positions: 网格单元坐标（来自位置描述文件）
//   - rng: 随机数来源
//
// 返回:
//   - []components.Block: 与 positions 等长的方块批次
func NewBlockBatch(positions []config.GridPosition, rng utils.Sampler) []components.Block {
	blocks := make([]components.Block, 0, len(positions))
	for _, p := range positions {
		x, y := float64(p.X), float64(p.Y)
		blocks = append(blocks, components.Block{
			X:         x,
			Y:         y,
			StartY:    y,
			Color:     utils.RandomChoice(rng, config.BlockPalette),
			Velocity:  utils.RandomInRange(rng, BlockMinVelocity, BlockMaxVelocity),
			FallDelay: utils.RandomIntInclusive(rng, 0, BlockMaxFallDelay),
		})
	}
	return blocks
}
