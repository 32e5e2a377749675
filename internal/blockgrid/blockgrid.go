// Package blockgrid 分析 logo 图片，计算庆祝动画中方块所在的网格单元
//
// 算法：
//  1. logo 在屏幕上居中，得到偏移量
//  2. 逐像素判断是否为"紫色"（不透明，红或蓝分量足够高，且红 + 蓝 > 2 × 绿）
//  3. 按屏幕网格单元统计紫色像素数量
//  4. 保留覆盖率达到阈值且位于屏幕内的单元，按 (x, y) 升序排列
package blockgrid

import (
	"cmp"
	"image"
	"image/color"
	"slices"

	"github.com/decker502/badge/pkg/config"
)

// 默认分析参数
const (
	DefaultMinAlpha  = 200 // alpha 必须大于此值
	DefaultMinPurple = 100 // 红或蓝分量必须大于此值
	DefaultCoverage  = 0.7 // 单元内紫色像素的最低占比
)

// Options 分析参数
type Options struct {
	ScreenWidth  int
	ScreenHeight int
	BlockSize    int
	MinAlpha     uint8
	MinPurple    uint8
	Coverage     float64
}

// DefaultOptions 返回与徽章屏幕一致的默认参数
func DefaultOptions() Options {
	return Options{
		ScreenWidth:  config.ScreenWidth,
		ScreenHeight: config.ScreenHeight,
		BlockSize:    config.BlockSize,
		MinAlpha:     DefaultMinAlpha,
		MinPurple:    DefaultMinPurple,
		Coverage:     DefaultCoverage,
	}
}

// Result 分析结果
type Result struct {
	Positions    []config.GridPosition
	ImageSize    [2]int
	Offset       [2]int
	PurplePixels int // 紫色像素总数
	CellsTouched int // 含有紫色像素的单元数
	MinPixels    int // 单元入选所需的最少紫色像素数
}

// Descriptor 转换为位置描述文件结构
func (r Result) Descriptor(blockSize int) config.BlockDescriptor {
	return config.BlockDescriptor{
		BlockSize: blockSize,
		Positions: r.Positions,
		ImageSize: r.ImageSize,
		Offset:    r.Offset,
	}
}

// IsPurple 判断像素是否属于 logo 的紫色部分
func IsPurple(c color.NRGBA, opts Options) bool {
	r, g, b := int(c.R), int(c.G), int(c.B)
	return c.A > opts.MinAlpha &&
		(c.R > opts.MinPurple || c.B > opts.MinPurple) &&
		r+b > g*2
}

// Analyze 计算 logo 覆盖的网格单元
func Analyze(img image.Image, opts Options) Result {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	offsetX := floorDiv(opts.ScreenWidth-w, 2)
	offsetY := floorDiv(opts.ScreenHeight-h, 2)

	counts := make(map[config.GridPosition]int)
	purple := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			if !IsPurple(c, opts) {
				continue
			}
			purple++

			cell := config.GridPosition{
				X: floorDiv(offsetX+x, opts.BlockSize) * opts.BlockSize,
				Y: floorDiv(offsetY+y, opts.BlockSize) * opts.BlockSize,
			}
			counts[cell]++
		}
	}

	minPixels := int(float64(opts.BlockSize*opts.BlockSize) * opts.Coverage)

	positions := make([]config.GridPosition, 0, len(counts))
	for cell, n := range counts {
		if n < minPixels {
			continue
		}
		if cell.X < 0 || cell.X >= opts.ScreenWidth || cell.Y < 0 || cell.Y >= opts.ScreenHeight {
			continue
		}
		positions = append(positions, cell)
	}

	slices.SortFunc(positions, func(a, b config.GridPosition) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})

	return Result{
		Positions:    positions,
		ImageSize:    [2]int{w, h},
		Offset:       [2]int{offsetX, offsetY},
		PurplePixels: purple,
		CellsTouched: len(counts),
		MinPixels:    minPixels,
	}
}

// floorDiv 向负无穷取整的整数除法（logo 大于屏幕时偏移为负）
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
