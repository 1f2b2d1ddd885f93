package ai

import (
	"apple-snake/game"
	"apple-snake/game/entity"
	"apple-snake/game/manager"
	"apple-snake/game/types"

	"golang.org/x/exp/rand"
)

// Action is a move relative to the snake's current heading
type Action int

const (
	Straight Action = iota
	TurnLeft
	TurnRight
)

// Actions in tie-break order: keep going straight when nothing is better.
var Actions = [3]Action{Straight, TurnLeft, TurnRight}

// Apply converts a relative action into an absolute direction.
func (a Action) Apply(dir types.Direction) types.Direction {
	switch a {
	case TurnLeft:
		return dir.TurnLeft()
	case TurnRight:
		return dir.TurnRight()
	default:
		return dir
	}
}

// Pilot steers the snake on its own. It scores the three reachable cells
// and picks the best one, with an occasional random safe move.
type Pilot struct {
	Epsilon float64 // chance of a random non-fatal move

	rng *rand.Rand
}

func NewPilot(epsilon float64, seed uint64) *Pilot {
	return &Pilot{
		Epsilon: epsilon,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Steer returns the direction to request for the next tick.
func (p *Pilot) Steer(v game.View) types.Direction {
	if v.State != game.Running || len(v.Body) == 0 {
		return types.None
	}

	snake := &entity.Snake{Length: v.Length, Positions: v.Body, Direction: v.Direction}
	cm := manager.NewCollisionManager(v.Grid)

	var safe []Action
	best := Straight
	bestValue := -2.0
	for _, a := range Actions {
		value := p.evaluate(v, snake, cm, a.Apply(v.Direction))
		if value > -1 {
			safe = append(safe, a)
		}
		if value > bestValue {
			best, bestValue = a, value
		}
	}

	if len(safe) > 1 && p.Epsilon > 0 && p.rng.Float64() < p.Epsilon {
		best = safe[p.rng.Intn(len(safe))]
	}
	return best.Apply(v.Direction)
}

// evaluate scores a heading between -1 (certain death) and 1 (good item).
func (p *Pilot) evaluate(v game.View, snake *entity.Snake, cm *manager.CollisionManager, dir types.Direction) float64 {
	head := snake.Head()
	next := cm.NextHead(snake, dir)

	if cm.IsFatal(next, snake, v.Items) {
		return -1.0
	}
	if item, hit := cm.CheckItemCollision(next, v.Items); hit {
		switch item.Kind {
		case entity.Good:
			return 1.0
		case entity.Bad:
			return -0.5
		}
	}

	food, ok := v.Item(entity.Good)
	if !ok {
		return 0
	}
	foodDist := v.Grid.Distance(next, food.Position)
	currentDist := v.Grid.Distance(head, food.Position)
	switch {
	case foodDist < currentDist:
		return 0.5
	case foodDist > currentDist:
		return -0.3
	}
	return 0
}
