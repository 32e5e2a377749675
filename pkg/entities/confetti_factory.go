package entities

import (
	"math"

	"github.com/decker502/badge/pkg/components"
	"github.com/decker502/badge/pkg/config"
	"github.com/decker502/badge/pkg/utils"
)

// 彩纸爆发参数
const (
	// BurstSize 每次爆发的彩纸数量
	BurstSize = 50

	ConfettiSpreadX  = 20.0   // 发射点水平随机偏移范围 ±20px
	ConfettiMinAngle = -180.0 // 发射角下界（度），-180 向左
	ConfettiMaxAngle = 0.0    // 发射角上界（度），0 向右，-90 竖直向上
	ConfettiMinSpeed = 2.0
	ConfettiMaxSpeed = 5.0
	ConfettiMinSize  = 2
	ConfettiMaxSize  = 4
)

// NewConfettiBurst 从指定发射点生成一次彩纸爆发
//
// 发射角限定在上半平面 [-180°, 0°]，因此所有彩纸的初始 VY <= 0。
//
// 参数:
//   - origin: 发射点（屏幕坐标）
//   - count: 彩纸数量（通常为 BurstSize）
//   - rng: 随机数来源
func NewConfettiBurst(origin config.Point, count int, rng utils.Sampler) []components.Confetti {
	burst := make([]components.Confetti, 0, count)
	for i := 0; i < count; i++ {
		x := origin.X + utils.RandomInRange(rng, -ConfettiSpreadX, ConfettiSpreadX)
		angle := utils.RandomInRange(rng, ConfettiMinAngle, ConfettiMaxAngle) * math.Pi / 180
		speed := utils.RandomInRange(rng, ConfettiMinSpeed, ConfettiMaxSpeed)

		burst = append(burst, components.Confetti{
			X:     x,
			Y:     origin.Y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Color: utils.RandomChoice(rng, config.ConfettiPalette),
			Size:  utils.RandomIntInclusive(rng, ConfettiMinSize, ConfettiMaxSize),
		})
	}
	return burst
}
