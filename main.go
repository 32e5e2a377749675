// Package main 是徽章庆祝动画的桌面端入口
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose          Enable verbose logging
//	--scale <n>        Window scale factor (default 4)
//	--seed <n>         Random seed, 0 = seed from config / current time
//	--phase <name>     Start from a phase (logo, transform, rain, award, confetti, hold, fadeout)
//	--debug            Overlay phase / frame / entity counts
//
// Controls:
//
//	Any badge key (A/B/C/Up/Down, Space, Enter, Escape, mouse, touch) - Exit
//	F11                                                               - Toggle fullscreen
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/badge/pkg/app"
	"github.com/decker502/badge/pkg/config"
	"github.com/decker502/badge/pkg/embedded"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	scaleFlag   = flag.Int("scale", config.DefaultWindowScale, "Window scale factor")
	seedFlag    = flag.Uint64("seed", 0, "Random seed (0 = use config / current time)")
	phaseFlag   = flag.String("phase", "", "Start phase name (debugging aid)")
	debugFlag   = flag.Bool("debug", false, "Overlay phase and frame counters")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（assetsFS 和 dataFS 在 embed.go 中声明）
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		Seed:       *seedFlag,
		Scale:      *scaleFlag,
		StartPhase: *phaseFlag,
		ShowDebug:  *debugFlag,
	})
	if err != nil {
		// 非 verbose 模式下 log 输出被丢弃，致命错误直接写 stderr
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	w, h := gameApp.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Xebia - GitHub Partner of the Year")
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", err)
		os.Exit(1)
	}
}
