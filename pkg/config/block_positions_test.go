package config

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseBlockDescriptor(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantErr     bool
		errContains string
		wantCount   int
	}{
		{
			name: "yaml descriptor",
			content: `
block_size: 10
positions:
  - [30, 40]
  - [40, 40]
image_size: [100, 50]
offset: [30, 35]
`,
			wantCount: 2,
		},
		{
			// 旧版工具输出 JSON，JSON 是 YAML 的子集
			name:      "json descriptor",
			content:   `{"block_size": 10, "positions": [[30, 40], [40, 40], [50, 50]], "image_size": [100, 50], "offset": [30, 35]}`,
			wantCount: 3,
		},
		{
			name:      "empty positions",
			content:   `{"block_size": 10, "positions": [], "image_size": [0, 0], "offset": [80, 60]}`,
			wantCount: 0,
		},
		{
			name:        "position with three elements",
			content:     `{"block_size": 10, "positions": [[30, 40, 1]]}`,
			wantErr:     true,
			errContains: "2 elements",
		},
		{
			name:        "unaligned position",
			content:     `{"block_size": 10, "positions": [[31, 40]]}`,
			wantErr:     true,
			errContains: "not aligned",
		},
		{
			name:        "offscreen position",
			content:     `{"block_size": 10, "positions": [[160, 40]]}`,
			wantErr:     true,
			errContains: "outside",
		},
		{
			name:        "duplicate position",
			content:     `{"block_size": 10, "positions": [[30, 40], [30, 40]]}`,
			wantErr:     true,
			errContains: "duplicated",
		},
		{
			name:        "wrong block size",
			content:     `{"block_size": 8, "positions": []}`,
			wantErr:     true,
			errContains: "block_size",
		},
		{
			name:        "malformed",
			content:     `{"block_size": 10, "positions": [[30, 40]`,
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := ParseBlockDescriptor([]byte(tt.content))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(desc.Positions) != tt.wantCount {
				t.Errorf("expected %d positions, got %d", tt.wantCount, len(desc.Positions))
			}
		})
	}
}

func TestParseBlockDescriptor_PreservesOrder(t *testing.T) {
	desc, err := ParseBlockDescriptor([]byte(`{"block_size": 10, "positions": [[50, 50], [30, 40], [40, 40]], "image_size": [100, 50], "offset": [30, 35]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []GridPosition{{50, 50}, {30, 40}, {40, 40}}
	for i, p := range expected {
		if desc.Positions[i] != p {
			t.Errorf("position %d: expected %+v, got %+v", i, p, desc.Positions[i])
		}
	}
	if desc.ImageSize != [2]int{100, 50} {
		t.Errorf("expected image size [100 50], got %v", desc.ImageSize)
	}
	if desc.Offset != [2]int{30, 35} {
		t.Errorf("expected offset [30 35], got %v", desc.Offset)
	}
}

// TestBlockDescriptor_MarshalRoundTrip 生成工具写出的 YAML 必须能被加载器读回
func TestBlockDescriptor_MarshalRoundTrip(t *testing.T) {
	in := BlockDescriptor{
		BlockSize: BlockSize,
		Positions: []GridPosition{{30, 40}, {40, 40}},
		ImageSize: [2]int{100, 50},
		Offset:    [2]int{30, 35},
	}

	data, err := yaml.Marshal(&in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "[30, 40]") {
		t.Errorf("expected flow-style positions, got:\n%s", data)
	}

	out, err := ParseBlockDescriptor(data)
	if err != nil {
		t.Fatalf("parse failed: %v\n%s", err, data)
	}
	if len(out.Positions) != 2 || out.Positions[1] != (GridPosition{40, 40}) {
		t.Errorf("unexpected positions after round trip: %+v", out.Positions)
	}
}
