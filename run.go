package presskit

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures a desktop window for Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Pointer, when set, is updated from the mouse every tick before the
	// scene.
	Pointer *PointerHand
}

type game struct {
	scene *Scene
	cfg   RunConfig
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if g.cfg.Pointer != nil {
		g.cfg.Pointer.Update(dt)
	}
	g.scene.Update(dt)
	if g.scene.updateFunc != nil {
		return g.scene.updateFunc()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nframe: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.scene.Frame().Index))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// SetUpdateFunc sets a callback run by Run after every scene update.
// Returning an error stops the loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Run opens a window and drives s at ebiten's tick rate until the window is
// closed or the update func returns an error.
func Run(s *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if err := ebiten.RunGame(&game{scene: s, cfg: cfg}); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
