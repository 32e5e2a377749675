package components

import "strings"

// Phase 庆祝动画阶段
//
// 阶段按固定顺序循环：
//
//	LOGO -> TRANSFORM -> RAIN -> AWARD -> CONFETTI -> HOLD -> FADEOUT -> LOGO
//
// 任意时刻只有一个阶段处于激活状态。
type Phase int

const (
	// PhaseLogo logo 淡入并停留
	PhaseLogo Phase = iota
	// PhaseTransform logo 淡出，方块淡入（交叉淡化）
	PhaseTransform
	// PhaseRain 方块受重力下落，全部落出屏幕后结束
	PhaseRain
	// PhaseAward 奖项文字淡入
	PhaseAward
	// PhaseConfetti 奖项文字 + 多次彩纸爆发
	PhaseConfetti
	// PhaseHold 奖项文字静止停留
	PhaseHold
	// PhaseFadeOut 奖项文字淡出，之后回到 LOGO
	PhaseFadeOut
)

var phaseNames = [...]string{
	PhaseLogo:      "LOGO",
	PhaseTransform: "TRANSFORM",
	PhaseRain:      "RAIN",
	PhaseAward:     "AWARD",
	PhaseConfetti:  "CONFETTI",
	PhaseHold:      "HOLD",
	PhaseFadeOut:   "FADEOUT",
}

// String 返回阶段的大写名称
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "UNKNOWN"
	}
	return phaseNames[p]
}

// Next 返回循环顺序中的下一个阶段
func (p Phase) Next() Phase {
	return (p + 1) % Phase(len(phaseNames))
}

// ParsePhase 按名称（不区分大小写）查找阶段
func ParsePhase(name string) (Phase, bool) {
	for i, n := range phaseNames {
		if strings.EqualFold(n, name) {
			return Phase(i), true
		}
	}
	return PhaseLogo, false
}

// PhaseClock 阶段帧计时器
//
// 进入阶段时 Frame 归零，阶段激活期间每个 tick 恰好加 1，
// Frame >= Duration 时触发阶段切换。
type PhaseClock struct {
	Frame    int // 当前阶段内已经过的帧数
	Duration int // 当前阶段的时长（帧）
}

// Reset 进入新阶段时调用
func (c *PhaseClock) Reset(duration int) {
	c.Frame = 0
	c.Duration = duration
}

// Advance 前进一帧
func (c *PhaseClock) Advance() {
	c.Frame++
}

// Expired 阶段时长是否已耗尽
func (c *PhaseClock) Expired() bool {
	return c.Frame >= c.Duration
}

// Progress 阶段进度，范围 [0, 1]
// Duration 为 0 的退化阶段视为已完成，返回 1
func (c *PhaseClock) Progress() float64 {
	if c.Duration <= 0 {
		return 1
	}
	p := float64(c.Frame) / float64(c.Duration)
	if p > 1 {
		return 1
	}
	return p
}
