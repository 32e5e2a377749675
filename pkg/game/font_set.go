package game

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize 徽章屏幕上的文字大小（像素）
const DefaultFontSize = 10

// FontSet 常规 / 粗体两种字重的字体
//
// 字体数据来自 Go 字体（golang.org/x/image/font/gofont），编译进二进制，不需要外部资源。
type FontSet struct {
	regular *text.GoTextFace
	bold    *text.GoTextFace
}

// NewFontSet 加载常规和粗体字体
//
// 参数:
//   - size: 字号（像素）
//
// 返回:
//   - error: 字体数据解析失败时返回错误（致命）
func NewFontSet(size float64) (*FontSet, error) {
	regularSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}

	return &FontSet{
		regular: &text.GoTextFace{Source: regularSource, Size: size},
		bold:    &text.GoTextFace{Source: boldSource, Size: size},
	}, nil
}

// Face 返回指定字重的字体
func (f *FontSet) Face(style FontStyle) text.Face {
	if style == FontBold {
		return f.bold
	}
	return f.regular
}

// Measure 测量单行文字的像素尺寸（向上取整）
func (f *FontSet) Measure(style FontStyle, s string) (w, h int) {
	face := f.Face(style)
	fw, fh := text.Measure(s, face, 0)
	return int(math.Ceil(fw)), int(math.Ceil(fh))
}
