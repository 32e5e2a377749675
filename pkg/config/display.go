package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// 徽章屏幕常量
//
// 徽章屏幕是固定分辨率的像素屏，所有坐标都以像素为单位，
// 原点在左上角，Y 轴向下。
const (
	// ScreenWidth 屏幕宽度（像素）
	ScreenWidth = 160
	// ScreenHeight 屏幕高度（像素）
	ScreenHeight = 120
	// BlockSize 网格单元边长（像素），方块以 BlockSize-1 的正方形绘制，留出 1px 缝隙
	BlockSize = 10

	// TicksPerSecond 动画刷新率，所有时长都按此帧率计
	TicksPerSecond = 30
	// DefaultWindowScale 桌面窗口相对逻辑分辨率的默认放大倍数
	DefaultWindowScale = 4
)

// 资源路径
const (
	AnimationConfigPath = "data/animation.yaml"
	BlockPositionsPath  = "data/block_positions.yaml"
	LogoImagePath       = "assets/images/xebia-logo.png"
)

// 奖项文字排版
const (
	// AwardTextTop 第一行文字的 Y 坐标
	AwardTextTop = 25
	// AwardLineHeight 行距（像素）
	AwardLineHeight = 15
)

// AwardLines 奖项文字，被 ** 包围的行使用粗体绘制
var AwardLines = []string{
	"GitHub overall",
	"partner of the year",
	"",
	"**2024**",
	"**2025**",
}

// Point represents a 2D coordinate point in display space.
type Point struct {
	X float64
	Y float64
}

// 调色板
//
// 颜色以十六进制声明，启动时通过 go-colorful 解析一次，之后只读。
var (
	// BlockPalette GitHub 贡献图风格的四种绿色（由暗到亮）
	BlockPalette = mustPalette("#0e4429", "#006d32", "#26a641", "#39d353")

	// ConfettiPalette 彩纸使用的七种亮色：红、橙、黄、绿、蓝、紫、粉
	ConfettiPalette = mustPalette("#ff0000", "#ffa500", "#ffff00", "#00ff00", "#007fff", "#9400d3", "#ff1493")

	// BrandColor 奖项文字使用的品牌紫色
	BrandColor = mustColor("#9c27b0")

	// Black 背景色
	Black = color.NRGBA{A: 255}
)

// WithAlpha 返回替换了 alpha 通道的颜色副本
func WithAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = alpha
	return c
}

func mustPalette(hexes ...string) []color.NRGBA {
	palette := make([]color.NRGBA, 0, len(hexes))
	for _, h := range hexes {
		palette = append(palette, mustColor(h))
	}
	return palette
}

func mustColor(hex string) color.NRGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("invalid palette color %q: %v", hex, err))
	}
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
