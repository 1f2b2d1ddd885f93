package ui

import (
	"apple-snake/game"
	"apple-snake/game/entity"
	"apple-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	backgroundColor   = rl.Black
	borderColor       = rl.Color{R: 93, G: 216, B: 228, A: 255}
	snakeBodyColor    = rl.Color{R: 0, G: 255, B: 0, A: 255}
	snakeHeadColor    = rl.Color{R: 0, G: 100, B: 0, A: 255}
	gameOverTextColor = rl.Color{R: 255, G: 0, B: 0, A: 255}
	buttonColor       = rl.Color{R: 200, G: 200, B: 200, A: 255}
	buttonHoverColor  = rl.Color{R: 230, G: 230, B: 230, A: 255}
	buttonTextColor   = rl.Black
)

var itemColors = map[entity.ItemKind]rl.Color{
	entity.Good:   {R: 255, G: 0, B: 0, A: 255},
	entity.Bad:    {R: 120, G: 120, B: 0, A: 255},
	entity.Hazard: {R: 128, G: 128, B: 128, A: 255},
}

const (
	titleFontSize  = 40
	buttonFontSize = 30
	buttonPadX     = 10 // grows each side of a button label
	buttonPadY     = 5
)

// MenuAction is what the player picked on the game-over screen
type MenuAction int

const (
	MenuNone MenuAction = iota
	MenuRestart
	MenuExit
)

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	restartRect  rl.Rectangle
	exitRect     rl.Rectangle
}

func NewRenderer(cellSize int32) *Renderer {
	r := &Renderer{cellSize: cellSize}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions re-reads the window size and lays out the menu buttons.
func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	r.restartRect = r.buttonRect("Restart", r.screenHeight/2)
	r.exitRect = r.buttonRect("Exit", r.screenHeight/2+60)
}

func (r *Renderer) buttonRect(label string, centerY int32) rl.Rectangle {
	w := rl.MeasureText(label, buttonFontSize) + 2*buttonPadX
	h := int32(buttonFontSize) + 2*buttonPadY
	return rl.NewRectangle(
		float32(r.screenWidth/2-w/2),
		float32(centerY-h/2),
		float32(w),
		float32(h),
	)
}

func (r *Renderer) Draw(v game.View) {
	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	if v.State == game.GameOver {
		r.drawGameOver(v)
		rl.EndDrawing()
		return
	}

	for i := len(v.Body) - 1; i >= 1; i-- {
		r.drawCell(v.Body[i], snakeBodyColor)
	}
	for _, item := range v.Items {
		r.drawCell(item.Position, itemColors[item.Kind])
	}
	// head last so it stays visible on top of anything it overlaps
	r.drawCell(v.Head(), snakeHeadColor)

	rl.EndDrawing()
}

func (r *Renderer) drawCell(p types.Point, fill rl.Color) {
	x := int32(p.X) * r.cellSize
	y := int32(p.Y) * r.cellSize
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, fill)
	rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, borderColor)
}

func (r *Renderer) drawGameOver(v game.View) {
	title := "Game Over"
	titleWidth := rl.MeasureText(title, titleFontSize)
	rl.DrawText(title, r.screenWidth/2-titleWidth/2, r.screenHeight/3-titleFontSize/2, titleFontSize, gameOverTextColor)

	cause := v.Cause.String()
	causeWidth := rl.MeasureText(cause, buttonFontSize/2)
	rl.DrawText(cause, r.screenWidth/2-causeWidth/2, r.screenHeight/3+titleFontSize/2+4, buttonFontSize/2, gameOverTextColor)

	r.drawButton("Restart", r.restartRect)
	r.drawButton("Exit", r.exitRect)
}

func (r *Renderer) drawButton(label string, rect rl.Rectangle) {
	color := buttonColor
	if rl.CheckCollisionPointRec(rl.GetMousePosition(), rect) {
		color = buttonHoverColor
	}
	rl.DrawRectangleRec(rect, color)
	rl.DrawText(label, int32(rect.X)+buttonPadX, int32(rect.Y)+buttonPadY, buttonFontSize, buttonTextColor)
}

// MenuClick reports which game-over button was clicked this frame.
func (r *Renderer) MenuClick() MenuAction {
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return MenuNone
	}
	pos := rl.GetMousePosition()
	switch {
	case rl.CheckCollisionPointRec(pos, r.restartRect):
		return MenuRestart
	case rl.CheckCollisionPointRec(pos, r.exitRect):
		return MenuExit
	}
	return MenuNone
}
