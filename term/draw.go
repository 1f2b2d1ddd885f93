package term

import (
	"apple-snake/game"
	"apple-snake/game/entity"
	"apple-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

const (
	cellWidth = 2 // terminal columns per grid cell, keeps cells roughly square
	boardTop  = 1 // row 0 holds the status line
)

var (
	styleDefault  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleStatus   = tcell.StyleDefault.Background(tcell.ColorDarkCyan).Foreground(tcell.ColorBlack)
	styleBody     = tcell.StyleDefault.Background(tcell.ColorLime)
	styleHead     = tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	styleGameOver = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorRed).Bold(true)
	styleButton   = tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorBlack)
)

var itemStyles = map[entity.ItemKind]tcell.Style{
	entity.Good:   tcell.StyleDefault.Background(tcell.ColorRed),
	entity.Bad:    tcell.StyleDefault.Background(tcell.ColorOlive),
	entity.Hazard: tcell.StyleDefault.Background(tcell.ColorGray),
}

// button is a clickable label on the game-over screen.
type button struct {
	label string
	x, y  int
}

func (b button) contains(x, y int) bool {
	return y == b.y && x >= b.x && x < b.x+len(b.label)
}

// menu lays out the game-over screen for a grid.
type menu struct {
	titleY  int
	restart button
	exit    button
}

func newMenu(grid types.Grid) menu {
	width := grid.Width * cellWidth
	height := grid.Height
	centered := func(label string, y int) button {
		return button{label: label, x: width/2 - len(label)/2, y: y}
	}
	return menu{
		titleY:  boardTop + height/3,
		restart: centered("[ Restart ]", boardTop+height/2),
		exit:    centered("[ Exit ]", boardTop+height/2+3),
	}
}

// hit returns the menu action for a click at (x, y).
func (m menu) hit(x, y int) action {
	switch {
	case m.restart.contains(x, y):
		return actionRestart
	case m.exit.contains(x, y):
		return actionQuit
	}
	return actionNone
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}

func drawCentered(s tcell.Screen, width, y int, text string, st tcell.Style) {
	drawText(s, width/2-len([]rune(text))/2, y, text, st)
}

func drawCell(s tcell.Screen, p types.Point, st tcell.Style) {
	for i := 0; i < cellWidth; i++ {
		s.SetContent(p.X*cellWidth+i, boardTop+p.Y, ' ', nil, st)
	}
}

// draw renders one frame of v.
func draw(s tcell.Screen, v game.View, m menu) {
	s.SetStyle(styleDefault)
	s.Clear()

	width := v.Grid.Width * cellWidth
	status := v.Status
	for len(status) < width {
		status += " "
	}
	drawText(s, 0, 0, status, styleStatus)

	if v.State == game.GameOver {
		drawCentered(s, width, m.titleY, "Game Over", styleGameOver)
		drawCentered(s, width, m.titleY+1, v.Cause.String(), styleDefault)
		drawText(s, m.restart.x, m.restart.y, m.restart.label, styleButton)
		drawText(s, m.exit.x, m.exit.y, m.exit.label, styleButton)
		s.Show()
		return
	}

	for i := len(v.Body) - 1; i >= 1; i-- {
		drawCell(s, v.Body[i], styleBody)
	}
	for _, item := range v.Items {
		drawCell(s, item.Position, itemStyles[item.Kind])
	}
	drawCell(s, v.Head(), styleHead)
	s.Show()
}
