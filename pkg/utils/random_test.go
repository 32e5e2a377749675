package utils

import "testing"

// fixedSampler 按顺序返回预设值，用于精确控制随机结果
type fixedSampler struct {
	floats []float64
	ints   []int
}

func (f *fixedSampler) Float64() float64 {
	v := f.floats[0]
	f.floats = f.floats[1:]
	return v
}

func (f *fixedSampler) IntN(n int) int {
	v := f.ints[0] % n
	f.ints = f.ints[1:]
	return v
}

func TestRandomInRange(t *testing.T) {
	tests := []struct {
		name     string
		draw     float64
		min, max float64
		expected float64
	}{
		{"下界", 0.0, 1.5, 3.5, 1.5},
		{"中点", 0.5, 1.5, 3.5, 2.5},
		{"负区间", 0.25, -180, 0, -135},
		{"空区间", 0.9, 2, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &fixedSampler{floats: []float64{tt.draw}}
			got := RandomInRange(s, tt.min, tt.max)
			if got != tt.expected {
				t.Errorf("RandomInRange(%v, %v) with draw %v = %v, 期望 %v", tt.min, tt.max, tt.draw, got, tt.expected)
			}
		})
	}
}

func TestRandomIntInclusive_Bounds(t *testing.T) {
	s := NewSampler(1)
	seenMin, seenMax := false, false
	for i := 0; i < 2000; i++ {
		v := RandomIntInclusive(s, 0, 20)
		if v < 0 || v > 20 {
			t.Fatalf("value %d outside [0, 20]", v)
		}
		seenMin = seenMin || v == 0
		seenMax = seenMax || v == 20
	}
	if !seenMin || !seenMax {
		t.Errorf("expected both bounds to be reachable, seen min=%v max=%v", seenMin, seenMax)
	}
}

func TestNewSampler_Deterministic(t *testing.T) {
	a := NewSampler(42)
	b := NewSampler(42)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("samplers with same seed diverged at draw %d", i)
		}
	}
}

func TestRandomChoice(t *testing.T) {
	s := &fixedSampler{ints: []int{2}}
	got := RandomChoice(s, []string{"a", "b", "c"})
	if got != "c" {
		t.Errorf("expected c, got %s", got)
	}
}
