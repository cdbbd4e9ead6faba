package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Screen is one page of the viewer.
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Disposer is implemented by screens owning replay surfaces.
type Disposer interface {
	Dispose()
}

// Game implements ebiten.Game around a single current screen.
type Game struct {
	width, height int
	currentScreen Screen
}

// NewGame creates a viewer showing the given screen.
func NewGame(width, height int, screen Screen) *Game {
	return &Game{width: width, height: height, currentScreen: screen}
}

// SetScreen swaps the current screen, disposing the old one's replay
// surfaces so no orphaned playback keeps consuming frames.
func (g *Game) SetScreen(screen Screen) {
	if d, ok := g.currentScreen.(Disposer); ok {
		d.Dispose()
	}
	g.currentScreen = screen
}

// Update proceeds the current screen's state. Update is called every
// tick (1/60 [s] by default).
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw draws the current screen. Draw is called every frame (typically
// 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}
