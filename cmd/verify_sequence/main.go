// Package main 动画序列验证程序
//
// 从指定阶段启动动画，叠加阶段 / 帧号 / 实体数量，用于逐阶段检查画面。
// 与正式程序不同，按键不会退出动画，而是用于跳转阶段。
//
// Usage:
//
//	go run ./cmd/verify_sequence [flags]    # run from the repository root
//
// Flags:
//
//	--phase <name>   Start phase (default logo)
//	--seed <n>       Random seed (default 1)
//	--scale <n>      Window scale factor (default 4)
//	--verbose        Enable verbose logging
//
// Controls:
//
//	Right / N   - Jump to next phase
//	R           - Restart from LOGO
//	P           - Toggle pause
//	S           - Single step while paused
//	Q / Escape  - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/badge/pkg/components"
	"github.com/decker502/badge/pkg/config"
	"github.com/decker502/badge/pkg/embedded"
	"github.com/decker502/badge/pkg/game"
	"github.com/decker502/badge/pkg/systems"
	"github.com/decker502/badge/pkg/utils"
)

var (
	phaseFlag   = flag.String("phase", "logo", "Start phase name")
	seedFlag    = flag.Uint64("seed", 1, "Random seed")
	scaleFlag   = flag.Int("scale", config.DefaultWindowScale, "Window scale factor")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

// VerifySequenceGame 动画序列验证程序
type VerifySequenceGame struct {
	sequencer *systems.AnimationSequencer
	canvas    *game.DisplayList
	fonts     *game.FontSet

	paused      bool
	step        bool
	transitions int
	bursts      int
}

// NewVerifySequenceGame 加载资源并创建验证程序
func NewVerifySequenceGame(start components.Phase, seed uint64) (*VerifySequenceGame, error) {
	animCfg, err := config.LoadAnimationConfig(config.AnimationConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load animation config: %w", err)
	}
	desc, err := config.LoadBlockDescriptor(config.BlockPositionsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load block positions: %w", err)
	}

	rm := game.NewResourceManager()
	logo, err := rm.LoadImage(config.LogoImagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load logo: %w", err)
	}
	fonts, err := rm.LoadFonts(game.DefaultFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load fonts: %w", err)
	}

	g := &VerifySequenceGame{
		sequencer: systems.NewAnimationSequencer(systems.SequencerOptions{
			Config:    *animCfg,
			Positions: desc.Positions,
			Logo:      logo,
			Sampler:   utils.NewSampler(seed),
		}),
		canvas: game.NewDisplayList(fonts),
		fonts:  fonts,
	}

	g.sequencer.SetPhaseCallback(func(from, to components.Phase) {
		g.transitions++
		log.Printf("[VerifySequence] %s -> %s", from, to)
	})
	g.sequencer.SetBurstCallback(func(index int, origin config.Point) {
		g.bursts++
	})

	if start != components.PhaseLogo {
		g.sequencer.JumpTo(start)
	}
	return g, nil
}

func (g *VerifySequenceGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sequencer.JumpTo(g.sequencer.Phase().Next())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sequencer.JumpTo(components.PhaseLogo)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.step = true
	}

	if g.paused && !g.step {
		return nil
	}
	g.step = false

	// 验证程序不把按键传给序列器，动画不会被取消
	g.canvas.Reset()
	g.sequencer.Tick(nil, g.canvas)
	return nil
}

func (g *VerifySequenceGame) Draw(screen *ebiten.Image) {
	g.canvas.Replay(screen, g.fonts)

	st := g.sequencer.State()
	status := fmt.Sprintf("%s %d/%d %.0f%%\nB:%d C:%d\nT:%d #%d",
		st.Phase, st.Clock.Frame, st.Clock.Duration, st.Clock.Progress()*100,
		len(st.Blocks), len(st.Confetti), g.transitions, g.bursts)
	if g.paused {
		status += "\nPAUSED"
	}
	ebitenutil.DebugPrintAt(screen, status, 0, 0)
}

func (g *VerifySequenceGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	flag.Parse()

	start, ok := components.ParsePhase(*phaseFlag)
	if !ok {
		log.Fatalf("unknown phase %q", *phaseFlag)
	}

	// 验证程序在仓库根目录运行，直接读取工作目录下的 assets/ 和 data/
	root := os.DirFS(".")
	embedded.Init(root, root)

	g, err := NewVerifySequenceGame(start, *seedFlag)
	if err != nil {
		log.Fatalf("Failed to create verify game: %v", err)
	}

	// 初始化成功后才关闭日志，加载错误总能看到
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	scale := *scaleFlag
	ebiten.SetWindowSize(config.ScreenWidth*scale, config.ScreenHeight*scale)
	ebiten.SetWindowTitle("Animation Sequence Verification")
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "verify game failed: %v\n", err)
		os.Exit(1)
	}
}
