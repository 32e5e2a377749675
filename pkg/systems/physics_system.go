package systems

import (
	"github.com/decker502/badge/pkg/components"
	"github.com/decker502/badge/pkg/config"
)

// 物理常量（每帧）
const (
	// BlockGravity 方块每帧的速度增量（像素/帧²），没有终端速度
	BlockGravity = 0.1
	// ConfettiGravity 彩纸每帧的垂直速度增量
	ConfettiGravity = 0.15
	// ConfettiMargin 彩纸水平方向允许超出屏幕的距离
	ConfettiMargin = 10.0
)

// UpdateBlock 推进单个方块一帧
//
// 下落延迟未耗尽时只递减延迟，位置保持不变；
// 延迟耗尽后进入下落状态：先按当前速度位移，再施加重力。
func UpdateBlock(b *components.Block) {
	if b.FallDelay > 0 {
		b.FallDelay--
		return
	}
	b.Falling = true
	b.Y += b.Velocity
	b.Velocity += BlockGravity
}

// IsBlockOffscreen 方块是否已完全落出屏幕底部
func IsBlockOffscreen(b *components.Block) bool {
	return b.Y > config.ScreenHeight+config.BlockSize
}

// UpdateConfetti 推进单个彩纸一帧
func UpdateConfetti(c *components.Confetti) {
	c.X += c.VX
	c.Y += c.VY
	c.VY += ConfettiGravity
	c.Lifetime++
}

// IsConfettiOffscreen 彩纸是否已离开可见区域（底部或左右两侧）
func IsConfettiOffscreen(c *components.Confetti) bool {
	return c.Y > config.ScreenHeight || c.X < -ConfettiMargin || c.X > config.ScreenWidth+ConfettiMargin
}

// UpdateBlocks 顺序推进整批方块
// 返回 true 表示批次中所有方块都已落出屏幕（空批次视为全部落出）
func UpdateBlocks(blocks []components.Block) bool {
	allOffscreen := true
	for i := range blocks {
		UpdateBlock(&blocks[i])
		if !IsBlockOffscreen(&blocks[i]) {
			allOffscreen = false
		}
	}
	return allOffscreen
}

// UpdateConfettiBatch 顺序推进整批彩纸
// 离开屏幕的彩纸继续积分但不再绘制，随阶段结束整体清空
func UpdateConfettiBatch(confetti []components.Confetti) {
	for i := range confetti {
		UpdateConfetti(&confetti[i])
	}
}
