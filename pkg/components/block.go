package components

import "image/color"

// Block 下落方块
//
// 由 logo 网格单元生成，TRANSFORM 阶段淡入，RAIN 阶段受重力下落。
// 方块没有独立 ID，只存在于动画序列器持有的批次切片中。
type Block struct {
	X, Y      float64     // 左上角位置（像素）
	StartY    float64     // 初始 Y 坐标
	Color     color.NRGBA // 四种绿色之一
	Velocity  float64     // 垂直速度（像素/帧），初始 [1.5, 3.5]
	FallDelay int         // 开始下落前的等待帧数，初始 [0, 20]
	Falling   bool        // 是否已开始下落
}
