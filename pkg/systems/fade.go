package systems

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// 常用的 alpha 端点
const (
	AlphaTransparent uint8 = 0
	AlphaOpaque      uint8 = 255
)

// FadeAlpha 计算线性淡入/淡出曲线在第 frame 帧的 alpha 值
//
// 结果向下取整并钳制到 [0, 255]；frame 超出 [0, duration] 时由 tween 钳制到端点。
// duration <= 0 的退化淡化直接返回终点值。
//
// 参数:
//   - from: 起始 alpha
//   - to: 结束 alpha
//   - frame: 当前阶段内的帧号
//   - duration: 淡化时长（帧）
func FadeAlpha(from, to uint8, frame, duration int) uint8 {
	if duration <= 0 {
		return to
	}

	tween := gween.New(float32(from), float32(to), float32(duration), ease.Linear)
	value, _ := tween.Set(float32(frame))

	v := math.Floor(float64(value))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// FadeIn 0 -> 255
func FadeIn(frame, duration int) uint8 {
	return FadeAlpha(AlphaTransparent, AlphaOpaque, frame, duration)
}

// FadeOut 255 -> 0
func FadeOut(frame, duration int) uint8 {
	return FadeAlpha(AlphaOpaque, AlphaTransparent, frame, duration)
}
