package entity

import (
	"testing"

	"apple-snake/game/types"
)

var grid = types.Grid{Width: 32, Height: 24}

func TestPendingDirectionRejectsReversal(t *testing.T) {
	for _, current := range types.Directions {
		for _, requested := range types.Directions {
			s := NewSnake(grid.Center(), current)
			s.SetPendingDirection(requested)
			s.AdvanceDirection()

			want := requested
			if requested == current.Opposite() {
				want = current
			}
			if s.Direction != want {
				t.Errorf("current %s, requested %s: expected %s, got %s", current, requested, want, s.Direction)
			}
		}
	}
}

func TestAdvanceDirectionClearsPending(t *testing.T) {
	s := NewSnake(grid.Center(), types.Right)
	s.SetPendingDirection(types.Up)
	s.AdvanceDirection()

	if s.PendingDirection() != types.None {
		t.Errorf("Expected pending direction cleared, got %s", s.PendingDirection())
	}

	// nothing latched: heading is kept
	s.AdvanceDirection()
	if s.Direction != types.Up {
		t.Errorf("Expected direction up, got %s", s.Direction)
	}
}

func TestMoveKeepsBodyAtLength(t *testing.T) {
	s := NewSnake(grid.Center(), types.Right)

	for tick := 0; tick < 10; tick++ {
		if tick%3 == 0 {
			s.Length++
		}
		s.Move(grid)
		if len(s.Positions) != s.Length {
			t.Fatalf("tick %d: expected %d positions, got %d", tick, s.Length, len(s.Positions))
		}
	}

	s.Length--
	s.Move(grid)
	if len(s.Positions) != s.Length {
		t.Errorf("after shrink: expected %d positions, got %d", s.Length, len(s.Positions))
	}
}

func TestGrowthKeepsOldTail(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Right)
	s.Length = 2
	s.Move(grid)

	want := []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}}
	for i, p := range want {
		if s.Positions[i] != p {
			t.Errorf("position %d: expected %v, got %v", i, p, s.Positions[i])
		}
	}
}

func TestMoveWrapsAroundGrid(t *testing.T) {
	s := NewSnake(types.Point{X: 31, Y: 0}, types.Right)
	s.Move(grid)
	if s.Head() != (types.Point{X: 0, Y: 0}) {
		t.Errorf("Expected head at (0,0), got %v", s.Head())
	}

	s.SetPendingDirection(types.Up)
	s.AdvanceDirection()
	s.Move(grid)
	if s.Head() != (types.Point{X: 0, Y: 23}) {
		t.Errorf("Expected head at (0,23), got %v", s.Head())
	}
}

func TestSelfCollision(t *testing.T) {
	// head at (5,5) heading down into its own body
	s := &Snake{
		Length:    5,
		Direction: types.Down,
		Positions: []types.Point{
			{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6},
		},
	}
	s.Move(grid)
	if !s.SelfCollision() {
		t.Errorf("Expected self collision at %v", s.Head())
	}
}

func TestShortSnakeCannotCollide(t *testing.T) {
	for _, length := range []int{1, 2} {
		for _, dir := range types.Directions {
			for _, turn := range types.Directions {
				s := NewSnake(grid.Center(), dir)
				s.Length = length
				s.Move(grid)
				s.SetPendingDirection(turn)
				s.AdvanceDirection()
				s.Move(grid)
				if s.SelfCollision() {
					t.Errorf("length %d heading %s then %s: unexpected self collision", length, dir, turn)
				}
			}
		}
	}
}

func TestReset(t *testing.T) {
	s := NewSnake(grid.Center(), types.Right)
	s.Length = 7
	for i := 0; i < 7; i++ {
		s.Move(grid)
	}
	s.SetPendingDirection(types.Up)

	s.Reset(grid.Center(), types.Left)
	if s.Length != 1 || len(s.Positions) != 1 || s.Head() != grid.Center() {
		t.Errorf("Expected single cell at center, got length %d positions %v", s.Length, s.Positions)
	}
	if s.Direction != types.Left {
		t.Errorf("Expected direction left, got %s", s.Direction)
	}
	if s.PendingDirection() != types.None {
		t.Errorf("Expected pending cleared, got %s", s.PendingDirection())
	}
}
