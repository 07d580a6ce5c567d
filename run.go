package sway

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Resizable lets the user resize the window; the camera aspect follows.
	Resizable bool
	// TPS sets the update rate. Zero keeps Ebitengine's default of 60.
	TPS int
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	fps   *fpsWidget
}

func (g *game) Update() error {
	if g.fps != nil {
		g.fps.update(1.0/float64(ebiten.TPS()), g.scene.PresentedFrame())
	}
	return g.scene.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout forwards the outside size to the camera so the projection follows
// window resizes.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.camera.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens a window and runs scene until the window closes or the update
// func returns an error. ebiten.Termination ends the loop without an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	scene.camera.Resize(cfg.Width, cfg.Height)

	g := &game{scene: scene}
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}
	return ebiten.RunGame(g)
}
