package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/decker502/badge/pkg/game"
	"github.com/decker502/badge/pkg/systems"
)

// BadgeScene 徽章庆祝动画场景
//
// Update 中驱动序列器推进一帧，并把绘图命令记录到显示列表；
// Draw 中把显示列表回放到屏幕上。
type BadgeScene struct {
	sequencer *systems.AnimationSequencer
	canvas    *game.DisplayList
	input     game.InputSource
	fonts     *game.FontSet

	// showDebug 在画面左上角叠加阶段、帧号和实体数量
	showDebug bool
}

// NewBadgeScene 创建动画场景
//
// 参数:
//   - sequencer: 动画序列器（由调用方创建并持有配置）
//   - input: 按键输入来源，任意按键退出动画
//   - fonts: 奖项文字字体
func NewBadgeScene(sequencer *systems.AnimationSequencer, input game.InputSource, fonts *game.FontSet) *BadgeScene {
	var measurer game.TextMeasurer
	if fonts != nil {
		measurer = fonts
	}
	return &BadgeScene{
		sequencer: sequencer,
		canvas:    game.NewDisplayList(measurer),
		input:     input,
		fonts:     fonts,
	}
}

// SetShowDebug 开关调试信息叠加层
func (s *BadgeScene) SetShowDebug(show bool) {
	s.showDebug = show
}

// Sequencer 返回场景持有的序列器
func (s *BadgeScene) Sequencer() *systems.AnimationSequencer {
	return s.sequencer
}

// Update 推进动画一帧
// 用户按键取消时返回 ebiten.Termination
func (s *BadgeScene) Update() error {
	s.canvas.Reset()
	if s.sequencer.Tick(s.input, s.canvas) == systems.TickExit {
		log.Printf("[BadgeScene] 用户按键，退出动画")
		return ebiten.Termination
	}
	return nil
}

// Draw 回放本帧记录的绘图命令
func (s *BadgeScene) Draw(screen *ebiten.Image) {
	s.canvas.Replay(screen, s.fonts)

	if s.showDebug {
		ebitenutil.DebugPrintAt(screen, s.DebugText(), 0, 0)
	}
}

// DebugText 调试叠加层文字
func (s *BadgeScene) DebugText() string {
	st := s.sequencer.State()
	return fmt.Sprintf("%s %d/%d\nB:%d C:%d #%d",
		s.sequencer.Phase(), s.sequencer.Frame(), st.Clock.Duration,
		len(st.Blocks), len(st.Confetti), s.sequencer.BurstCount())
}

var _ game.Scene = (*BadgeScene)(nil)
