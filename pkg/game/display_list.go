package game

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CommandKind 绘图命令类型
type CommandKind int

const (
	CommandFillRect CommandKind = iota
	CommandBlit
	CommandText
)

// DrawCommand 一条已记录的绘图命令
type DrawCommand struct {
	Kind  CommandKind
	X, Y  int
	W, H  int // 仅 CommandFillRect 使用
	Color color.NRGBA
	Image Image     // 仅 CommandBlit 使用
	Text  string    // 仅 CommandText 使用
	Font  FontStyle // 仅 CommandText 使用
}

// DisplayList 记录式画布
//
// Ebitengine 在 Update 中推进逻辑、在 Draw 中拿到屏幕，
// 动画逻辑在 Update 中把一帧的绘图命令记录到 DisplayList，
// Draw 时再通过 Replay 回放到屏幕上。每个 tick 开始前调用 Reset。
type DisplayList struct {
	measurer TextMeasurer
	commands []DrawCommand

	color color.NRGBA
	font  FontStyle
}

// NewDisplayList 创建记录式画布
// measurer 用于在记录阶段测量文字（居中排版需要），可以为 nil
func NewDisplayList(measurer TextMeasurer) *DisplayList {
	return &DisplayList{
		measurer: measurer,
		commands: make([]DrawCommand, 0, 256),
		color:    color.NRGBA{A: 255},
	}
}

// Reset 清空已记录的命令，保留底层切片容量
func (d *DisplayList) Reset() {
	d.commands = d.commands[:0]
}

// Commands 返回已记录的命令（只读视图）
func (d *DisplayList) Commands() []DrawCommand {
	return d.commands
}

// Len 已记录命令数量
func (d *DisplayList) Len() int {
	return len(d.commands)
}

func (d *DisplayList) SetColor(c color.NRGBA) {
	d.color = c
}

func (d *DisplayList) FillRect(x, y, w, h int) {
	d.commands = append(d.commands, DrawCommand{Kind: CommandFillRect, X: x, Y: y, W: w, H: h, Color: d.color})
}

func (d *DisplayList) BlitImage(img Image, x, y int) {
	d.commands = append(d.commands, DrawCommand{Kind: CommandBlit, X: x, Y: y, Image: img})
}

func (d *DisplayList) SetFont(style FontStyle) {
	d.font = style
}

func (d *DisplayList) DrawText(s string, x, y int) {
	d.commands = append(d.commands, DrawCommand{Kind: CommandText, X: x, Y: y, Color: d.color, Text: s, Font: d.font})
}

func (d *DisplayList) MeasureText(s string) (w, h int) {
	if d.measurer == nil {
		return 0, 0
	}
	return d.measurer.Measure(d.font, s)
}

// Replay 将记录的命令回放到 Ebitengine 图像上
//
// 非 *ebiten.Image 的贴图源会被跳过（测试替身）。
func (d *DisplayList) Replay(dst *ebiten.Image, fonts *FontSet) {
	for i := range d.commands {
		cmd := &d.commands[i]
		switch cmd.Kind {
		case CommandFillRect:
			fillRect(dst, cmd.X, cmd.Y, cmd.W, cmd.H, cmd.Color)

		case CommandBlit:
			src, ok := cmd.Image.(*ebiten.Image)
			if !ok {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(cmd.X), float64(cmd.Y))
			dst.DrawImage(src, op)

		case CommandText:
			if fonts == nil || cmd.Color.A == 0 {
				continue
			}
			op := &text.DrawOptions{}
			op.GeoM.Translate(float64(cmd.X), float64(cmd.Y))
			op.ColorScale.ScaleWithColor(cmd.Color)
			text.Draw(dst, cmd.Text, fonts.Face(cmd.Font), op)

		default:
			log.Printf("[DisplayList] 未知的绘图命令类型: %d", cmd.Kind)
		}
	}
}

// fillRect 填充纯色矩形，关闭抗锯齿保持像素边缘锐利
func fillRect(dst *ebiten.Image, x, y, w, h int, c color.NRGBA) {
	if w <= 0 || h <= 0 || c.A == 0 {
		return
	}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}
