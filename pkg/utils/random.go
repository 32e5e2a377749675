package utils

import (
	"math/rand/v2"
	"time"
)

// Sampler 伪随机数来源
//
// 工厂函数通过参数显式接收 Sampler，不依赖全局随机状态，
// 测试中使用固定种子即可复现同一批方块和彩纸。
// *rand.Rand 满足此接口。
type Sampler interface {
	// Float64 返回 [0, 1) 内的均匀随机数
	Float64() float64
	// IntN 返回 [0, n) 内的均匀随机整数，n 必须 > 0
	IntN(n int) int
}

// NewSampler 创建基于 PCG 的可复现随机数来源
// seed 为 0 时使用当前时间作为种子
func NewSampler(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomInRange 返回 [min, max) 内的均匀随机数
// min >= max 时直接返回 min
func RandomInRange(s Sampler, min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + s.Float64()*(max-min)
}

// RandomIntInclusive 返回 [min, max] 内的均匀随机整数（含两端）
func RandomIntInclusive(s Sampler, min, max int) int {
	if min >= max {
		return min
	}
	return min + s.IntN(max-min+1)
}

// RandomChoice 从非空切片中均匀选取一个元素
func RandomChoice[T any](s Sampler, items []T) T {
	return items[s.IntN(len(items))]
}
