package ui

import (
	"time"

	"apple-snake/game"
	"apple-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window is the raylib frontend. It owns the window for the duration of Run.
type Window struct {
	CellSize int32
	FPS      int32
	Pilot    game.Autopilot // optional
}

// Run opens the window and drives g until the player exits or closes the
// window. The window is closed before Run returns.
func (w *Window) Run(g *game.Game) error {
	rl.InitWindow(int32(g.Grid.Width)*w.CellSize, int32(g.Grid.Height)*w.CellSize, g.Status())
	defer rl.CloseWindow()

	rl.SetTargetFPS(w.FPS)

	renderer := NewRenderer(w.CellSize)
	lastUpdate := time.Now()
	caption := ""

	for !rl.WindowShouldClose() {
		if QuitPressed() {
			return nil
		}

		switch g.State() {
		case game.Running:
			if dir := ReadDirection(); dir != types.None {
				g.SetDirection(dir)
			}
			if time.Since(lastUpdate) >= g.TickInterval() {
				if w.Pilot != nil {
					g.SetDirection(w.Pilot.Steer(g.Snapshot()))
				}
				g.Update()
				lastUpdate = time.Now()
			}
		case game.GameOver:
			switch renderer.MenuClick() {
			case MenuRestart:
				g.Restart()
				lastUpdate = time.Now()
			case MenuExit:
				return nil
			}
		}

		if status := g.Status(); status != caption {
			rl.SetWindowTitle(status)
			caption = status
		}
		renderer.Draw(g.Snapshot())
	}
	return nil
}
