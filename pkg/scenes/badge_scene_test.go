package scenes

import (
	"errors"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/badge/pkg/components"
	"github.com/decker502/badge/pkg/config"
	"github.com/decker502/badge/pkg/game"
	"github.com/decker502/badge/pkg/systems"
	"github.com/decker502/badge/pkg/utils"
)

type scriptedInput struct {
	pressed []game.ButtonSet
	n       int
}

func (s *scriptedInput) Pressed() game.ButtonSet {
	if s.n >= len(s.pressed) {
		return 0
	}
	p := s.pressed[s.n]
	s.n++
	return p
}

func newTestScene(input game.InputSource) *BadgeScene {
	seq := systems.NewAnimationSequencer(systems.SequencerOptions{
		Config:  config.DefaultAnimationConfig(),
		Sampler: utils.NewSampler(1),
	})
	return NewBadgeScene(seq, input, nil)
}

func TestBadgeScene_UpdateAdvancesSequencer(t *testing.T) {
	scene := newTestScene(&scriptedInput{})

	for i := 0; i < 5; i++ {
		if err := scene.Update(); err != nil {
			t.Fatalf("tick %d: unexpected error %v", i, err)
		}
	}
	if scene.Sequencer().Frame() != 5 {
		t.Errorf("Expected frame 5, got=%d", scene.Sequencer().Frame())
	}
	if scene.canvas.Len() == 0 {
		t.Error("Expected draw commands recorded during Update")
	}
}

func TestBadgeScene_ButtonTerminates(t *testing.T) {
	input := &scriptedInput{pressed: []game.ButtonSet{0, 0, game.ButtonSet(0).With(game.ButtonA)}}
	scene := newTestScene(input)

	_ = scene.Update()
	_ = scene.Update()
	err := scene.Update()
	if !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Expected ebiten.Termination, got=%v", err)
	}
	if scene.Sequencer().Frame() != 2 {
		t.Errorf("Expected cancelled tick to leave frame at 2, got=%d", scene.Sequencer().Frame())
	}
}

func TestBadgeScene_DebugText(t *testing.T) {
	scene := newTestScene(&scriptedInput{})
	scene.Sequencer().JumpTo(components.PhaseConfetti)

	text := scene.DebugText()
	if !strings.HasPrefix(text, "CONFETTI 0/60") {
		t.Errorf("Expected debug text to start with phase and clock, got=%q", text)
	}
	if !strings.Contains(text, "C:50") {
		t.Errorf("Expected confetti count in debug text, got=%q", text)
	}
	if !strings.HasSuffix(text, "#0") {
		t.Errorf("Expected burst count 0 in debug text, got=%q", text)
	}

	// 第一次爆发结束后计数加 1
	for i := 0; i < 60; i++ {
		if err := scene.Update(); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}
	if text := scene.DebugText(); !strings.HasSuffix(text, "#1") {
		t.Errorf("Expected burst count 1 after the first burst, got=%q", text)
	}
}
