package manager

import (
	"apple-snake/game/entity"
	"apple-snake/game/types"

	"golang.org/x/exp/rand"
)

// Occupied is a set of grid cells that placement must avoid.
type Occupied map[types.Point]struct{}

// NewOccupied builds an Occupied set from the given cells.
func NewOccupied(cells ...types.Point) Occupied {
	occ := make(Occupied, len(cells))
	for _, c := range cells {
		occ[c] = struct{}{}
	}
	return occ
}

func (o Occupied) Add(p types.Point) {
	o[p] = struct{}{}
}

func (o Occupied) Has(p types.Point) bool {
	_, ok := o[p]
	return ok
}

// FoodManager places items on free cells and keeps them.
type FoodManager struct {
	grid  types.Grid
	rng   *rand.Rand
	items []entity.Item
}

// NewFoodManager creates one item of each kind. Positions are assigned by
// the first call to Reposition.
func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	items := make([]entity.Item, len(entity.ItemKinds))
	for i, kind := range entity.ItemKinds {
		items[i] = entity.Item{Kind: kind}
	}
	return &FoodManager{
		grid:  grid,
		rng:   rng,
		items: items,
	}
}

// Place returns a uniformly random cell not in occupied. It does not add the
// cell to occupied. The grid must have at least one free cell.
func (fm *FoodManager) Place(occupied Occupied) types.Point {
	for {
		p := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}

		if !occupied.Has(p) {
			return p
		}
	}
}

// PlaceAll places n cells in one pass. Each placed cell is added to occupied
// before the next one is chosen, so the results are pairwise distinct.
func (fm *FoodManager) PlaceAll(occupied Occupied, n int) []types.Point {
	placed := make([]types.Point, 0, n)
	for i := 0; i < n; i++ {
		p := fm.Place(occupied)
		occupied.Add(p)
		placed = append(placed, p)
	}
	return placed
}

// Reposition moves every item to a fresh cell off the snake's body and off
// each other.
func (fm *FoodManager) Reposition(snake *entity.Snake) {
	occupied := NewOccupied(snake.Positions...)
	for i, p := range fm.PlaceAll(occupied, len(fm.items)) {
		fm.items[i].Position = p
	}
}

// Items returns the items in their fixed Good, Bad, Hazard order.
func (fm *FoodManager) Items() []entity.Item {
	return fm.items
}

// SetPosition moves the item of the given kind. Used to stage a board.
func (fm *FoodManager) SetPosition(kind entity.ItemKind, p types.Point) {
	for i := range fm.items {
		if fm.items[i].Kind == kind {
			fm.items[i].Position = p
			return
		}
	}
}
