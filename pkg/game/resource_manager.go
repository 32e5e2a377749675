package game

import (
	"fmt"
	"image"
	_ "image/png" // PNG 解码器
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/badge/pkg/embedded"
)

// ResourceManager 负责从嵌入资源加载图像并缓存
//
// 同一路径只解码一次，之后从缓存返回。
type ResourceManager struct {
	imageCache map[string]*ebiten.Image
	fonts      *FontSet
}

// NewResourceManager 创建资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache: make(map[string]*ebiten.Image),
	}
}

// LoadImage 加载并缓存图像
//
// 参数:
//   - path: 嵌入资源路径（如 "assets/images/logo.png"）
//
// 返回:
//   - *ebiten.Image: 加载后的图像
//   - error: 文件不存在或解码失败时返回错误
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cached, exists := rm.imageCache[path]; exists {
		return cached, nil
	}

	img, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	b := img.Bounds()
	log.Printf("[ResourceManager] 加载图像 %s (%dx%d)", path, b.Dx(), b.Dy())
	return ebitenImg, nil
}

// GetImage 返回已缓存的图像，未加载时返回 nil
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadFonts 加载常规 / 粗体字体，重复调用返回同一个 FontSet
func (rm *ResourceManager) LoadFonts(size float64) (*FontSet, error) {
	if rm.fonts != nil {
		return rm.fonts, nil
	}
	fonts, err := NewFontSet(size)
	if err != nil {
		return nil, err
	}
	rm.fonts = fonts
	return fonts, nil
}

// DecodeImage 从嵌入资源解码图像（不创建 GPU 纹理）
func DecodeImage(path string) (image.Image, error) {
	file, err := embedded.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}
