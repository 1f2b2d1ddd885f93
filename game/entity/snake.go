package entity

import (
	"apple-snake/game/types"
)

// Snake is the player's body on the grid. Positions[0] is the head.
//
// Length is the size the body is heading towards, Positions is what it
// occupies right now. Move trims Positions down to Length after pushing the
// new head, so raising Length before a move keeps the old tail for that tick
// and the body catches up one tick later. Lowering it drops the extra tail
// cells on the next move.
type Snake struct {
	Length    int
	Positions []types.Point
	Direction types.Direction

	next types.Direction
}

func NewSnake(startPos types.Point, dir types.Direction) *Snake {
	s := &Snake{}
	s.Reset(startPos, dir)
	return s
}

// SetPendingDirection latches dir for the next tick. A reversal of the
// current direction is ignored.
func (s *Snake) SetPendingDirection(dir types.Direction) {
	if dir == types.None || dir == s.Direction.Opposite() {
		return
	}
	s.next = dir
}

// PendingDirection returns the latched direction, None if there is none.
func (s *Snake) PendingDirection() types.Direction {
	return s.next
}

// AdvanceDirection makes the pending direction current and clears it.
func (s *Snake) AdvanceDirection() {
	if s.next != types.None {
		s.Direction = s.next
		s.next = types.None
	}
}

// Move pushes a new head one cell ahead, wrapping at the grid edges, and
// trims the tail until the body is Length cells long.
func (s *Snake) Move(grid types.Grid) {
	newHead := grid.Step(s.Head(), s.Direction)
	s.Positions = append([]types.Point{newHead}, s.Positions...)
	if len(s.Positions) > s.Length {
		s.Positions = s.Positions[:s.Length]
	}
}

func (s *Snake) Head() types.Point {
	return s.Positions[0]
}

// SelfCollision reports whether the head sits on another body cell.
func (s *Snake) SelfCollision() bool {
	return s.Occupies(s.Head(), 1)
}

// Occupies reports whether p is one of the body cells from index from onwards.
func (s *Snake) Occupies(p types.Point, from int) bool {
	for i := from; i < len(s.Positions); i++ {
		if s.Positions[i] == p {
			return true
		}
	}
	return false
}

// Reset shrinks the snake back to a single cell at startPos heading dir.
func (s *Snake) Reset(startPos types.Point, dir types.Direction) {
	s.Length = 1
	s.Positions = []types.Point{startPos}
	s.Direction = dir
	s.next = types.None
}
