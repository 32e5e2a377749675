package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/decker502/badge/pkg/embedded"
)

// GridPosition 网格单元左上角的屏幕坐标（像素，已对齐到 BlockSize）
type GridPosition struct {
	X int
	Y int
}

// UnmarshalYAML 接受 [x, y] 形式的二元序列
func (p *GridPosition) UnmarshalYAML(node *yaml.Node) error {
	var pair []int
	if err := node.Decode(&pair); err != nil {
		return fmt.Errorf("line %d: grid position must be [x, y]: %w", node.Line, err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("line %d: grid position must have 2 elements, got %d", node.Line, len(pair))
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}

// MarshalYAML 以 [x, y] 流式序列输出
func (p GridPosition) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []int{p.X, p.Y} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: fmt.Sprintf("%d", v),
		})
	}
	return node, nil
}

// BlockDescriptor 预计算的方块位置描述
//
// 由离线工具（cmd/genpositions）从 logo 图片生成，启动时加载。
// 旧版工具输出的 JSON 也是合法的 YAML，可以直接加载。
//
// 配置文件位置: data/block_positions.yaml
type BlockDescriptor struct {
	// BlockSize 网格单元边长（像素）
	BlockSize int `yaml:"block_size"`

	// Positions 网格单元坐标，按 (x, y) 升序排列
	Positions []GridPosition `yaml:"positions"`

	// ImageSize 源图片尺寸 [宽, 高]
	ImageSize [2]int `yaml:"image_size,flow"`

	// Offset 图片在屏幕上居中时的偏移 [x, y]
	Offset [2]int `yaml:"offset,flow"`
}

// ParseBlockDescriptor 解析方块位置描述
func ParseBlockDescriptor(data []byte) (*BlockDescriptor, error) {
	var desc BlockDescriptor
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("failed to parse block descriptor: %w", err)
	}

	if err := desc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid block descriptor: %w", err)
	}

	return &desc, nil
}

// LoadBlockDescriptor 从嵌入资源加载方块位置描述
//
// 加载失败是致命错误：没有位置数据就无法构造方块。
func LoadBlockDescriptor(path string) (*BlockDescriptor, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read block descriptor: %w", err)
	}
	return ParseBlockDescriptor(data)
}

// Validate 验证描述有效性
//
// 检查：
//   - block_size 与屏幕网格一致
//   - 每个坐标都对齐到网格且位于屏幕内
//   - 坐标不重复
func (d *BlockDescriptor) Validate() error {
	if d.BlockSize != BlockSize {
		return fmt.Errorf("block_size must be %d, got %d", BlockSize, d.BlockSize)
	}

	seen := make(map[GridPosition]struct{}, len(d.Positions))
	for i, p := range d.Positions {
		if p.X%d.BlockSize != 0 || p.Y%d.BlockSize != 0 {
			return fmt.Errorf("position %d (%d, %d) is not aligned to the %dpx grid", i, p.X, p.Y, d.BlockSize)
		}
		if p.X < 0 || p.X >= ScreenWidth || p.Y < 0 || p.Y >= ScreenHeight {
			return fmt.Errorf("position %d (%d, %d) is outside the %dx%d screen", i, p.X, p.Y, ScreenWidth, ScreenHeight)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("position %d (%d, %d) is duplicated", i, p.X, p.Y)
		}
		seen[p] = struct{}{}
	}

	return nil
}
