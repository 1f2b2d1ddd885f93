package types

import "testing"

func TestWrapAtEveryEdge(t *testing.T) {
	grid := Grid{Width: 32, Height: 24}

	tests := []struct {
		name string
		from Point
		dir  Direction
		want Point
	}{
		{"right edge", Point{X: 31, Y: 5}, Right, Point{X: 0, Y: 5}},
		{"left edge", Point{X: 0, Y: 5}, Left, Point{X: 31, Y: 5}},
		{"top edge", Point{X: 7, Y: 0}, Up, Point{X: 7, Y: 23}},
		{"bottom edge", Point{X: 7, Y: 23}, Down, Point{X: 7, Y: 0}},
		{"inside", Point{X: 10, Y: 10}, Right, Point{X: 11, Y: 10}},
	}

	for _, tc := range tests {
		if got := grid.Step(tc.from, tc.dir); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestWrapFarOutside(t *testing.T) {
	grid := Grid{Width: 20, Height: 18}

	if got := grid.Wrap(Point{X: -3, Y: -2}); got != (Point{X: 17, Y: 16}) {
		t.Errorf("Expected (17,16), got %v", got)
	}
	if got := grid.Wrap(Point{X: 45, Y: 36}); got != (Point{X: 5, Y: 0}) {
		t.Errorf("Expected (5,0), got %v", got)
	}
}

func TestOpposite(t *testing.T) {
	pairs := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left, None: None}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("Opposite(%s): expected %s, got %s", d, want, got)
		}
	}
}

func TestTurnsAreQuarterTurns(t *testing.T) {
	for _, d := range Directions {
		if d.TurnLeft().TurnRight() != d {
			t.Errorf("left then right from %s should return to %s", d, d)
		}
		if d.TurnLeft() == d.Opposite() || d.TurnRight() == d.Opposite() {
			t.Errorf("a turn from %s must not reverse it", d)
		}
	}
}

func TestDistanceWraps(t *testing.T) {
	grid := Grid{Width: 32, Height: 24}

	if got := grid.Distance(Point{X: 0, Y: 0}, Point{X: 31, Y: 0}); got != 1 {
		t.Errorf("Expected wrapped distance 1, got %d", got)
	}
	if got := grid.Distance(Point{X: 2, Y: 3}, Point{X: 5, Y: 7}); got != 7 {
		t.Errorf("Expected distance 7, got %d", got)
	}
}

func TestCenter(t *testing.T) {
	if got := DefaultGrid.Center(); got != (Point{X: 16, Y: 12}) {
		t.Errorf("Expected center (16,12), got %v", got)
	}
}
