package game

import (
	"apple-snake/game/entity"
	"apple-snake/game/types"
)

// View is a read-only copy of everything a frontend draws in one frame.
type View struct {
	Grid      types.Grid
	Body      []types.Point // Body[0] is the head
	Direction types.Direction
	Items     []entity.Item
	Length    int
	Speed     int
	State     State
	Cause     Cause
	Status    string
}

func (g *Game) Snapshot() View {
	body := make([]types.Point, len(g.snake.Positions))
	copy(body, g.snake.Positions)
	items := make([]entity.Item, len(g.foodMgr.Items()))
	copy(items, g.foodMgr.Items())

	return View{
		Grid:      g.Grid,
		Body:      body,
		Direction: g.snake.Direction,
		Items:     items,
		Length:    g.snake.Length,
		Speed:     g.speed,
		State:     g.state,
		Cause:     g.cause,
		Status:    g.Status(),
	}
}

// Head returns the head cell of the view's snake.
func (v View) Head() types.Point {
	return v.Body[0]
}

// Item returns the item of the given kind.
func (v View) Item(kind entity.ItemKind) (entity.Item, bool) {
	for _, it := range v.Items {
		if it.Kind == kind {
			return it, true
		}
	}
	return entity.Item{}, false
}

// Autopilot chooses a direction for the next tick from what is on screen.
// A None result leaves the snake's heading alone.
type Autopilot interface {
	Steer(v View) types.Direction
}
