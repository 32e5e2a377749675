package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/decker502/badge/pkg/embedded"
)

// AnimationConfig 庆祝动画配置
//
// 所有时长以帧为单位（固定帧率，约 30 帧/秒的徽章刷新节奏）。
// RAIN 阶段没有时长字段：它在所有方块落出屏幕后才结束。
//
// 配置文件位置: data/animation.yaml
type AnimationConfig struct {
	// Timing 各阶段时长
	Timing TimingConfig `yaml:"timing"`

	// Confetti 彩纸爆发参数
	Confetti ConfettiConfig `yaml:"confetti"`

	// Seed 随机种子，0 表示使用启动时间
	Seed uint64 `yaml:"seed"`
}

// TimingConfig 阶段时长（帧）
//
// 时长为 0 是合法的退化配置：该阶段只渲染一帧最终状态后立即切换。
type TimingConfig struct {
	LogoFadeIn    int `yaml:"logoFadeIn"`
	LogoHold      int `yaml:"logoHold"`
	Transform     int `yaml:"transform"`
	Award         int `yaml:"award"`
	ConfettiBurst int `yaml:"confettiBurst"`
	Hold          int `yaml:"hold"`
	FadeOut       int `yaml:"fadeOut"`
}

// ConfettiConfig 彩纸爆发配置
type ConfettiConfig struct {
	// Bursts 每次 CONFETTI 阶段的爆发次数
	Bursts int `yaml:"bursts"`
	// BurstSize 每次爆发的彩纸数量
	BurstSize int `yaml:"burstSize"`
}

// DefaultAnimationConfig 返回与参考动画一致的默认配置
func DefaultAnimationConfig() AnimationConfig {
	return AnimationConfig{
		Timing: TimingConfig{
			LogoFadeIn:    30,
			LogoHold:      90,
			Transform:     40,
			Award:         30,
			ConfettiBurst: 60,
			Hold:          60,
			FadeOut:       30,
		},
		Confetti: ConfettiConfig{
			Bursts:    3,
			BurstSize: 50,
		},
	}
}

// ParseAnimationConfig 解析 YAML 格式的动画配置
//
// 未出现在 YAML 中的字段保留默认值。
func ParseAnimationConfig(data []byte) (*AnimationConfig, error) {
	cfg := DefaultAnimationConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse animation config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid animation config: %w", err)
	}

	return &cfg, nil
}

// LoadAnimationConfig 从嵌入资源加载动画配置
//
// 参数:
//   - path: 配置文件路径（如 "data/animation.yaml"）
func LoadAnimationConfig(path string) (*AnimationConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read animation config: %w", err)
	}
	return ParseAnimationConfig(data)
}

// Validate 验证配置有效性
//
// 时长不能为负；爆发次数必须至少 1 次（CONFETTI -> HOLD 依赖计数到达上限），
// 且爆发次数不能超过预设发射点数量。
func (c *AnimationConfig) Validate() error {
	durations := []struct {
		name  string
		value int
	}{
		{"logoFadeIn", c.Timing.LogoFadeIn},
		{"logoHold", c.Timing.LogoHold},
		{"transform", c.Timing.Transform},
		{"award", c.Timing.Award},
		{"confettiBurst", c.Timing.ConfettiBurst},
		{"hold", c.Timing.Hold},
		{"fadeOut", c.Timing.FadeOut},
	}
	for _, d := range durations {
		if d.value < 0 {
			return fmt.Errorf("timing.%s must be >= 0, got %d", d.name, d.value)
		}
	}

	if c.Confetti.Bursts < 1 {
		return fmt.Errorf("confetti.bursts must be >= 1, got %d", c.Confetti.Bursts)
	}
	if c.Confetti.Bursts > len(ConfettiOrigins()) {
		return fmt.Errorf("confetti.bursts must be <= %d, got %d", len(ConfettiOrigins()), c.Confetti.Bursts)
	}
	if c.Confetti.BurstSize < 0 {
		return fmt.Errorf("confetti.burstSize must be >= 0, got %d", c.Confetti.BurstSize)
	}

	return nil
}

// LogoDuration LOGO 阶段总时长（淡入 + 停留）
func (t TimingConfig) LogoDuration() int {
	return t.LogoFadeIn + t.LogoHold
}

// ConfettiOrigins 返回各次彩纸爆发的发射点：左下、右下、底部中央
func ConfettiOrigins() []Point {
	return []Point{
		{X: 10, Y: ScreenHeight - 10},
		{X: ScreenWidth - 10, Y: ScreenHeight - 10},
		{X: ScreenWidth / 2, Y: ScreenHeight - 10},
	}
}
