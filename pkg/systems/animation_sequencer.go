package systems

import (
	"log"
	"slices"
	"strings"

	"github.com/decker502/badge/pkg/components"
	"github.com/decker502/badge/pkg/config"
	"github.com/decker502/badge/pkg/entities"
	"github.com/decker502/badge/pkg/game"
	"github.com/decker502/badge/pkg/utils"
)

// TickResult 单帧推进结果
type TickResult int

const (
	// TickContinue 动画继续，下一帧再次调用 Tick
	TickContinue TickResult = iota
	// TickExit 用户按键取消，调用方应退出动画
	TickExit
)

// SequencerOptions 动画序列器构造参数
type SequencerOptions struct {
	// Config 阶段时长与彩纸参数
	Config config.AnimationConfig
	// Positions logo 网格单元坐标（来自位置描述文件）
	Positions []config.GridPosition
	// Logo logo 图像，为 nil 时只绘制淡化遮罩
	Logo game.Image
	// Sampler 随机数来源，为 nil 时按 Config.Seed 创建
	Sampler utils.Sampler
}

// SequencerState 序列器状态快照（深拷贝）
type SequencerState struct {
	Phase      components.Phase
	Clock      components.PhaseClock
	BurstCount int
	Blocks     []components.Block
	Confetti   []components.Confetti
}

// AnimationSequencer 庆祝动画序列器
//
// 确定性的阶段状态机，按固定帧推进：
//
//	LOGO -> TRANSFORM -> RAIN -> AWARD -> CONFETTI -> HOLD -> FADEOUT -> LOGO
//
// 每个 Tick 先清屏为黑色，再按当前阶段绘制，然后帧计数加 1，
// 最后检查阶段切换条件。Tick 是唯一修改状态的入口，不阻塞、不并发。
type AnimationSequencer struct {
	cfg       config.AnimationConfig
	positions []config.GridPosition
	rng       utils.Sampler

	logo         game.Image
	logoX, logoY int

	phase      components.Phase
	clock      components.PhaseClock
	burstCount int
	blocks     []components.Block
	confetti   []components.Confetti

	onPhaseChange func(from, to components.Phase)
	onBurst       func(index int, origin config.Point)
}

// NewAnimationSequencer 创建动画序列器，初始处于 LOGO 阶段第 0 帧
func NewAnimationSequencer(opts SequencerOptions) *AnimationSequencer {
	rng := opts.Sampler
	if rng == nil {
		rng = utils.NewSampler(opts.Config.Seed)
	}

	s := &AnimationSequencer{
		cfg:       opts.Config,
		positions: opts.Positions,
		rng:       rng,
		logo:      opts.Logo,
		phase:     components.PhaseLogo,
	}

	// logo 居中
	if s.logo != nil {
		b := s.logo.Bounds()
		s.logoX = (config.ScreenWidth - b.Dx()) / 2
		s.logoY = (config.ScreenHeight - b.Dy()) / 2
	}

	s.clock.Reset(s.durationFor(components.PhaseLogo))
	return s
}

// SetPhaseCallback 设置阶段切换回调
func (s *AnimationSequencer) SetPhaseCallback(callback func(from, to components.Phase)) {
	s.onPhaseChange = callback
}

// SetBurstCallback 设置彩纸爆发回调，index 从 0 开始
func (s *AnimationSequencer) SetBurstCallback(callback func(index int, origin config.Point)) {
	s.onBurst = callback
}

// Phase 当前阶段
func (s *AnimationSequencer) Phase() components.Phase {
	return s.phase
}

// Frame 当前阶段内的帧号
func (s *AnimationSequencer) Frame() int {
	return s.clock.Frame
}

// BurstCount 本次 CONFETTI 阶段已完成的爆发次数
func (s *AnimationSequencer) BurstCount() int {
	return s.burstCount
}

// State 返回当前状态的深拷贝
func (s *AnimationSequencer) State() SequencerState {
	return SequencerState{
		Phase:      s.phase,
		Clock:      s.clock,
		BurstCount: s.burstCount,
		Blocks:     slices.Clone(s.blocks),
		Confetti:   slices.Clone(s.confetti),
	}
}

// JumpTo 丢弃当前批次，直接进入指定阶段（执行该阶段的进入动作）
//
// 用于调试启动参数和验证程序：TRANSFORM / RAIN 会重新生成方块，
// CONFETTI 从第一次爆发开始。
func (s *AnimationSequencer) JumpTo(phase components.Phase) {
	s.blocks = nil
	s.confetti = nil
	s.burstCount = 0
	s.enter(phase)
}

// Tick 推进动画一帧并把画面绘制到 canvas
//
// 任何按键都会在修改状态之前取消本帧：状态保持不变，返回 TickExit。
func (s *AnimationSequencer) Tick(input game.InputSource, canvas game.Canvas) TickResult {
	if input != nil && input.Pressed().Any() {
		log.Printf("[Sequencer] 按键取消，阶段=%s 帧=%d", s.phase, s.clock.Frame)
		return TickExit
	}

	// 清屏
	canvas.SetColor(config.Black)
	canvas.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight)

	switch s.phase {
	case components.PhaseLogo:
		s.tickLogo(canvas)
	case components.PhaseTransform:
		s.tickTransform(canvas)
	case components.PhaseRain:
		s.tickRain(canvas)
	case components.PhaseAward:
		s.tickAward(canvas)
	case components.PhaseConfetti:
		s.tickConfetti(canvas)
	case components.PhaseHold:
		s.tickHold(canvas)
	case components.PhaseFadeOut:
		s.tickFadeOut(canvas)
	}

	return TickContinue
}

func (s *AnimationSequencer) tickLogo(canvas game.Canvas) {
	// 淡入结束后 FadeIn 钳制为 255，保持不透明直到阶段结束
	s.drawLogo(canvas, FadeIn(s.clock.Frame, s.cfg.Timing.LogoFadeIn))

	s.clock.Advance()
	if s.clock.Expired() {
		s.enter(components.PhaseTransform)
	}
}

func (s *AnimationSequencer) tickTransform(canvas game.Canvas) {
	frame, duration := s.clock.Frame, s.clock.Duration

	// 先画淡出的 logo，再把淡入的方块叠在上面
	s.drawLogo(canvas, FadeOut(frame, duration))
	s.drawBlocks(canvas, FadeIn(frame, duration))

	s.clock.Advance()
	if s.clock.Expired() {
		s.enter(components.PhaseRain)
	}
}

func (s *AnimationSequencer) tickRain(canvas game.Canvas) {
	allOffscreen := UpdateBlocks(s.blocks)
	s.drawBlocks(canvas, AlphaOpaque)

	s.clock.Advance()

	// 没有时长限制，所有方块落出屏幕才结束
	if allOffscreen {
		s.enter(components.PhaseAward)
	}
}

func (s *AnimationSequencer) tickAward(canvas game.Canvas) {
	s.drawAwardText(canvas, FadeIn(s.clock.Frame, s.clock.Duration))

	s.clock.Advance()
	if s.clock.Expired() {
		s.enter(components.PhaseConfetti)
	}
}

func (s *AnimationSequencer) tickConfetti(canvas game.Canvas) {
	s.drawAwardText(canvas, AlphaOpaque)

	UpdateConfettiBatch(s.confetti)
	s.drawConfetti(canvas)

	s.clock.Advance()
	if !s.clock.Expired() {
		return
	}

	s.burstCount++
	if s.burstCount >= s.cfg.Confetti.Bursts {
		s.enter(components.PhaseHold)
		return
	}

	s.clock.Reset(s.cfg.Timing.ConfettiBurst)
	s.spawnBurst(s.burstCount)
}

func (s *AnimationSequencer) tickHold(canvas game.Canvas) {
	s.drawAwardText(canvas, AlphaOpaque)

	s.clock.Advance()
	if s.clock.Expired() {
		s.enter(components.PhaseFadeOut)
	}
}

func (s *AnimationSequencer) tickFadeOut(canvas game.Canvas) {
	s.drawAwardText(canvas, FadeOut(s.clock.Frame, s.clock.Duration))

	s.clock.Advance()
	if s.clock.Expired() {
		s.enter(components.PhaseLogo)
	}
}

// enter 切换到 next 阶段并执行进入动作
func (s *AnimationSequencer) enter(next components.Phase) {
	prev := s.phase
	s.phase = next
	s.clock.Reset(s.durationFor(next))

	switch next {
	case components.PhaseLogo:
		// 新一轮循环，完全重置
		s.blocks = nil
		s.confetti = nil
		s.burstCount = 0

	case components.PhaseTransform:
		s.blocks = entities.NewBlockBatch(s.positions, s.rng)

	case components.PhaseRain:
		// 正常流程沿用 TRANSFORM 的批次
		if s.blocks == nil {
			s.blocks = entities.NewBlockBatch(s.positions, s.rng)
		}

	case components.PhaseAward:
		s.blocks = nil

	case components.PhaseConfetti:
		s.burstCount = 0
		s.spawnBurst(0)

	case components.PhaseHold:
		s.confetti = nil
	}

	log.Printf("[Sequencer] 阶段切换: %s -> %s (时长=%d, 方块=%d)", prev, next, s.clock.Duration, len(s.blocks))

	if s.onPhaseChange != nil {
		s.onPhaseChange(prev, next)
	}
}

// spawnBurst 用第 index 次爆发替换当前彩纸批次
func (s *AnimationSequencer) spawnBurst(index int) {
	origins := config.ConfettiOrigins()
	origin := origins[index%len(origins)]

	s.confetti = entities.NewConfettiBurst(origin, s.cfg.Confetti.BurstSize, s.rng)
	log.Printf("[Sequencer] 彩纸爆发 #%d 发射点=(%.0f, %.0f) 数量=%d", index+1, origin.X, origin.Y, len(s.confetti))

	if s.onBurst != nil {
		s.onBurst(index, origin)
	}
}

func (s *AnimationSequencer) durationFor(phase components.Phase) int {
	t := s.cfg.Timing
	switch phase {
	case components.PhaseLogo:
		return t.LogoDuration()
	case components.PhaseTransform:
		return t.Transform
	case components.PhaseAward:
		return t.Award
	case components.PhaseConfetti:
		return t.ConfettiBurst
	case components.PhaseHold:
		return t.Hold
	case components.PhaseFadeOut:
		return t.FadeOut
	default:
		// RAIN 由方块状态决定结束
		return 0
	}
}

// drawLogo 贴 logo，再用反向 alpha 的黑色遮罩实现淡化
func (s *AnimationSequencer) drawLogo(canvas game.Canvas, alpha uint8) {
	if s.logo != nil {
		canvas.BlitImage(s.logo, s.logoX, s.logoY)
	}
	if alpha < AlphaOpaque {
		canvas.SetColor(config.WithAlpha(config.Black, AlphaOpaque-alpha))
		canvas.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight)
	}
}

func (s *AnimationSequencer) drawBlocks(canvas game.Canvas, alpha uint8) {
	for i := range s.blocks {
		b := &s.blocks[i]
		if b.Y >= config.ScreenHeight+config.BlockSize {
			continue
		}
		canvas.SetColor(config.WithAlpha(b.Color, alpha))
		canvas.FillRect(int(b.X), int(b.Y), config.BlockSize-1, config.BlockSize-1)
	}
}

func (s *AnimationSequencer) drawConfetti(canvas game.Canvas) {
	for i := range s.confetti {
		c := &s.confetti[i]
		if c.X < 0 || c.X >= config.ScreenWidth || c.Y < 0 || c.Y >= config.ScreenHeight {
			continue
		}
		canvas.SetColor(config.WithAlpha(c.Color, AlphaOpaque))
		canvas.FillRect(int(c.X), int(c.Y), c.Size, c.Size)
	}
}

// drawAwardText 绘制居中的奖项文字，** 包围的行使用粗体
func (s *AnimationSequencer) drawAwardText(canvas game.Canvas, alpha uint8) {
	canvas.SetColor(config.WithAlpha(config.BrandColor, alpha))

	for i, line := range config.AwardLines {
		label, bold := ParseAwardLine(line)
		if label == "" {
			continue
		}

		if bold {
			canvas.SetFont(game.FontBold)
		} else {
			canvas.SetFont(game.FontRegular)
		}

		w, _ := canvas.MeasureText(label)
		x := (config.ScreenWidth - w) / 2
		y := config.AwardTextTop + i*config.AwardLineHeight
		canvas.DrawText(label, x, y)
	}
}

// ParseAwardLine 去掉行首尾的 ** 标记，返回文字和是否粗体
func ParseAwardLine(line string) (string, bool) {
	if len(line) >= 4 && strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") {
		return line[2 : len(line)-2], true
	}
	return line, false
}
