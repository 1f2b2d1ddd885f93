package entity

import "apple-snake/game/types"

// ItemKind tags what happens when the snake's head reaches an item.
type ItemKind int

const (
	Good   ItemKind = iota // apple: grow by one
	Bad                    // wrong apple: shrink by one, fatal at length 1
	Hazard                 // rock: always fatal
)

// ItemKinds is the order items are created, checked and placed in.
var ItemKinds = [3]ItemKind{Good, Bad, Hazard}

func (k ItemKind) String() string {
	switch k {
	case Good:
		return "good"
	case Bad:
		return "bad"
	case Hazard:
		return "hazard"
	default:
		return "unknown"
	}
}

type Item struct {
	Kind     ItemKind
	Position types.Point
}
