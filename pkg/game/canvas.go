package game

import (
	"image"
	"image/color"
)

// FontStyle 文字字重
type FontStyle int

const (
	// FontRegular 常规字重
	FontRegular FontStyle = iota
	// FontBold 粗体
	FontBold
)

// Image 可以被 Canvas 贴图的图像
// *ebiten.Image 满足此接口
type Image interface {
	Bounds() image.Rectangle
}

// Canvas 像素屏绘图接口
//
// 所有绘制都使用最近一次 SetColor 设置的颜色，alpha 由颜色本身携带，
// 调用方每次绘制前都应显式设置颜色，不依赖默认值。
// 坐标单位为像素，原点在左上角。
type Canvas interface {
	// SetColor 设置后续 FillRect / DrawText 使用的颜色（非预乘 alpha）
	SetColor(c color.NRGBA)
	// FillRect 以当前颜色填充矩形
	FillRect(x, y, w, h int)
	// BlitImage 以不透明方式将图像贴到 (x, y)
	BlitImage(img Image, x, y int)
	// SetFont 设置后续 DrawText / MeasureText 使用的字重
	SetFont(style FontStyle)
	// DrawText 以当前颜色和字重绘制文字，(x, y) 为文字框左上角
	DrawText(s string, x, y int)
	// MeasureText 测量文字在当前字重下的像素尺寸
	MeasureText(s string) (w, h int)
}

// TextMeasurer 文字测量接口，由 FontSet 实现
type TextMeasurer interface {
	Measure(style FontStyle, s string) (w, h int)
}
