package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Button 徽章上的物理按键
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonC
	ButtonUp
	ButtonDown
)

// ButtonSet 本帧新按下的按键集合（位图）
type ButtonSet uint8

// With 返回加入了 b 的集合
func (s ButtonSet) With(b Button) ButtonSet {
	return s | 1<<b
}

// Has 集合是否包含 b
func (s ButtonSet) Has(b Button) bool {
	return s&(1<<b) != 0
}

// Any 是否有任意按键按下
func (s ButtonSet) Any() bool {
	return s != 0
}

// InputSource 按键输入来源
type InputSource interface {
	// Pressed 返回本帧新按下的按键，空集合表示无输入
	Pressed() ButtonSet
}

// 键盘到徽章按键的映射
var keyBindings = map[ebiten.Key]Button{
	ebiten.KeyA:         ButtonA,
	ebiten.KeyZ:         ButtonA,
	ebiten.KeySpace:     ButtonA,
	ebiten.KeyEnter:     ButtonA,
	ebiten.KeyB:         ButtonB,
	ebiten.KeyX:         ButtonB,
	ebiten.KeyEscape:    ButtonB,
	ebiten.KeyC:         ButtonC,
	ebiten.KeyArrowUp:   ButtonUp,
	ebiten.KeyArrowDown: ButtonDown,
}

// KeyboardInput 基于 Ebitengine 的输入来源
//
// 键盘按键按 keyBindings 映射；鼠标左键和触摸视为 A 键。
// 必须在 Ebitengine 的 Update 中调用 Pressed（inpututil 按帧记录状态）。
type KeyboardInput struct {
	touchIDs []ebiten.TouchID
}

// NewKeyboardInput 创建输入来源
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// Pressed 返回本帧新按下的按键
func (k *KeyboardInput) Pressed() ButtonSet {
	var set ButtonSet
	for key, button := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			set = set.With(button)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		set = set.With(ButtonA)
	}

	k.touchIDs = inpututil.AppendJustPressedTouchIDs(k.touchIDs[:0])
	if len(k.touchIDs) > 0 {
		set = set.With(ButtonA)
	}

	return set
}
