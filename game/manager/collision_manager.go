package manager

import (
	"apple-snake/game/entity"
	"apple-snake/game/types"
)

// CollisionType represents what the snake's head ran into
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
	ItemCollision
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckSelfCollision checks the head against the rest of the body. A snake
// of length one or two can never hit itself: after the trim there is no body
// cell behind the head that the head could have moved onto.
func (cm *CollisionManager) CheckSelfCollision(snake *entity.Snake) CollisionType {
	if snake.SelfCollision() {
		return SelfCollision
	}
	return NoCollision
}

// CheckItemCollision returns the first item, in the given order, sitting on pos.
func (cm *CollisionManager) CheckItemCollision(pos types.Point, items []entity.Item) (entity.Item, bool) {
	for _, item := range items {
		if item.Position == pos {
			return item, true
		}
	}
	return entity.Item{}, false
}

// NextHead returns the cell the head would move to heading dir.
func (cm *CollisionManager) NextHead(snake *entity.Snake, dir types.Direction) types.Point {
	return cm.grid.Step(snake.Head(), dir)
}

// IsFatal reports whether stepping the snake onto pos would end the game.
// Body cells that vacate on this move (the tail, when the snake is not
// growing) are not counted.
func (cm *CollisionManager) IsFatal(pos types.Point, snake *entity.Snake, items []entity.Item) bool {
	body := snake.Positions
	// the body is trimmed to Length after the new head is pushed
	keep := snake.Length - 1
	if keep > len(body) {
		keep = len(body)
	}
	for _, p := range body[:keep] {
		if p == pos {
			return true
		}
	}

	item, hit := cm.CheckItemCollision(pos, items)
	if !hit {
		return false
	}
	switch item.Kind {
	case entity.Hazard:
		return true
	case entity.Bad:
		return snake.Length == 1
	}
	return false
}
