package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the badge (e.g., the celebration animation, a debug overlay).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by exactly one frame.
	// Returning ebiten.Termination asks the run loop to exit cleanly.
	Update() error

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}
