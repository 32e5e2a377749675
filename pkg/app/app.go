// Package app 提供徽章动画应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/badge/pkg/components"
	"github.com/decker502/badge/pkg/config"
	"github.com/decker502/badge/pkg/game"
	"github.com/decker502/badge/pkg/scenes"
	"github.com/decker502/badge/pkg/systems"
	"github.com/decker502/badge/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子，非 0 时覆盖 data/animation.yaml 中的 seed
	Seed uint64
	// Scale 窗口放大倍数，<= 0 时使用默认值
	Scale int
	// StartPhase 启动时直接进入的阶段名（如 "rain"），为空则从 LOGO 开始
	StartPhase string
	// ShowDebug 叠加阶段 / 帧号调试信息
	ShowDebug bool
}

// App 是徽章动画的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	scale        int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 任何资源（动画配置、方块位置、logo、字体）加载失败都是致命错误。
// 非 verbose 模式下日志被丢弃，但初始化失败时会恢复原来的日志输出，
// 保证调用方能把错误报告出来。
func NewApp(cfg Config) (*App, error) {
	prevOutput, prevFlags := log.Writer(), log.Flags()

	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	a, err := newApp(cfg)
	if err != nil {
		log.SetOutput(prevOutput)
		log.SetFlags(prevFlags)
		return nil, err
	}
	return a, nil
}

func newApp(cfg Config) (*App, error) {
	animCfg, err := config.LoadAnimationConfig(config.AnimationConfigPath)
	if err != nil {
		return nil, fmt.Errorf("动画配置加载失败: %w", err)
	}
	if cfg.Seed != 0 {
		animCfg.Seed = cfg.Seed
	}
	log.Printf("[Config] 动画配置: %+v", animCfg.Timing)

	desc, err := config.LoadBlockDescriptor(config.BlockPositionsPath)
	if err != nil {
		return nil, fmt.Errorf("方块位置加载失败: %w", err)
	}
	log.Printf("[Config] 加载 %d 个方块位置", len(desc.Positions))

	resourceManager := game.NewResourceManager()
	logo, err := resourceManager.LoadImage(config.LogoImagePath)
	if err != nil {
		return nil, fmt.Errorf("logo 加载失败: %w", err)
	}
	fonts, err := resourceManager.LoadFonts(game.DefaultFontSize)
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	sequencer := systems.NewAnimationSequencer(systems.SequencerOptions{
		Config:    *animCfg,
		Positions: desc.Positions,
		Logo:      logo,
		Sampler:   utils.NewSampler(animCfg.Seed),
	})

	if cfg.StartPhase != "" {
		phase, ok := components.ParsePhase(cfg.StartPhase)
		if !ok {
			return nil, fmt.Errorf("unknown start phase %q", cfg.StartPhase)
		}
		if phase != components.PhaseLogo {
			log.Printf("[App] 从阶段 %s 开始", phase)
			sequencer.JumpTo(phase)
		}
	}

	scene := scenes.NewBadgeScene(sequencer, game.NewKeyboardInput(), fonts)
	scene.SetShowDebug(cfg.ShowDebug)

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	scale := cfg.Scale
	if scale <= 0 {
		scale = config.DefaultWindowScale
	}

	return &App{
		sceneManager: sceneManager,
		scale:        scale,
	}, nil
}

// Update 推进动画一帧
// 每个 tick 调用一次（config.TicksPerSecond 次/秒）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.WindowSize()
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端没有窗口）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		return nil
	}

	return a.sceneManager.Update()
}

// Draw 绘制当前帧
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 像素屏放大使用最近邻滤波，保持方块边缘锐利
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回徽章屏幕的逻辑尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// WindowSize 返回桌面窗口尺寸（逻辑尺寸 × 放大倍数）
func (a *App) WindowSize() (int, int) {
	return config.ScreenWidth * a.scale, config.ScreenHeight * a.scale
}
