package components

import "image/color"

// Confetti 彩纸粒子
//
// 每次爆发从同一个发射点生成一批，向上半平面随机方向射出后受重力回落。
type Confetti struct {
	X, Y     float64     // 位置（像素）
	VX, VY   float64     // 速度（像素/帧），VY 为负表示向上
	Color    color.NRGBA // 七种亮色之一
	Size     int         // 边长 [2, 4]
	Lifetime int         // 自创建以来经过的帧数
}
