package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"apple-snake/game/entity"
	"apple-snake/game/manager"
	"apple-snake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

const (
	DefaultSpeed = 4 // ticks per second at the start of every life
	SpeedOffset  = 3 // subtracted from the tick rate for the displayed speed
	SpeedUpEvery = 5 // a length multiple of this after eating adds one tick per second

	historySize = 50
)

// ErrGridTooSmall is returned when the grid cannot hold the snake and every item.
var ErrGridTooSmall = errors.New("grid too small")

// State of the game's state machine
type State int

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game over"
	}
	return "running"
}

// Cause records why the last life ended
type Cause int

const (
	NoCause Cause = iota
	SelfCollision
	HazardContact
	Starved // bad item eaten at length one
)

func (c Cause) String() string {
	switch c {
	case SelfCollision:
		return "self collision"
	case HazardContact:
		return "hazard"
	case Starved:
		return "starved"
	default:
		return "none"
	}
}

type Config struct {
	Grid   types.Grid
	Speed  int    // tick rate a life starts at
	Seed   uint64 // 0 seeds from the clock
	Logger *log.Logger
}

func DefaultConfig() Config {
	return Config{
		Grid:  types.DefaultGrid,
		Speed: DefaultSpeed,
	}
}

type Game struct {
	ID        string
	Grid      types.Grid
	StartTime time.Time
	Steps     int

	snake        *entity.Snake
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager
	rng          *rand.Rand
	logger       *log.Logger

	defaultSpeed int
	speed        int
	state        State
	cause        Cause
}

// NewGame sets up a running game: the snake sits on the centre cell heading
// right and the items are placed on free cells.
func NewGame(cfg Config) (*Game, error) {
	if cfg.Grid.Width <= 0 || cfg.Grid.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridTooSmall, cfg.Grid.Width, cfg.Grid.Height)
	}
	// the snake's start cell plus one cell per item
	if cfg.Grid.Cells() < 1+len(entity.ItemKinds) {
		return nil, fmt.Errorf("%w: %d cells", ErrGridTooSmall, cfg.Grid.Cells())
	}
	if cfg.Speed <= 0 {
		cfg.Speed = DefaultSpeed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	g := &Game{
		ID:           uuid.New().String(),
		Grid:         cfg.Grid,
		StartTime:    time.Now(),
		snake:        entity.NewSnake(cfg.Grid.Center(), types.Right),
		foodMgr:      manager.NewFoodManager(cfg.Grid, rng),
		collisionMgr: manager.NewCollisionManager(cfg.Grid),
		stateMgr:     manager.NewStateManager(historySize),
		rng:          rng,
		logger:       cfg.Logger,
		defaultSpeed: cfg.Speed,
		speed:        cfg.Speed,
		state:        Running,
	}
	g.foodMgr.Reposition(g.snake)

	g.logger.Printf("game %s started on %dx%d grid (seed %d)", g.ID, g.Grid.Width, g.Grid.Height, cfg.Seed)
	return g, nil
}

// SetDirection forwards a direction request to the snake. Requests made
// while the game is over are dropped.
func (g *Game) SetDirection(dir types.Direction) {
	if g.state != Running {
		return
	}
	g.snake.SetPendingDirection(dir)
}

// Update advances the game by one tick. It does nothing while the game is over.
func (g *Game) Update() {
	if g.state != Running {
		return
	}
	g.Steps++

	g.snake.AdvanceDirection()
	g.snake.Move(g.Grid)

	if g.collisionMgr.CheckSelfCollision(g.snake) != manager.NoCollision {
		g.gameOver(SelfCollision)
		return
	}

	// Only the head interacts with items. Items never share a cell after a
	// reposition, so the fixed Good, Bad, Hazard order decides at most one hit.
	item, hit := g.collisionMgr.CheckItemCollision(g.snake.Head(), g.foodMgr.Items())
	if !hit {
		return
	}
	switch item.Kind {
	case entity.Hazard:
		g.gameOver(HazardContact)
	case entity.Bad:
		if g.snake.Length == 1 {
			g.gameOver(Starved)
			return
		}
		g.snake.Length--
		g.foodMgr.Reposition(g.snake)
	case entity.Good:
		g.snake.Length++
		if g.snake.Length%SpeedUpEvery == 0 {
			g.speed++
		}
		g.foodMgr.Reposition(g.snake)
	}
}

func (g *Game) gameOver(cause Cause) {
	g.state = GameOver
	g.cause = cause
	g.speed = g.defaultSpeed

	g.stateMgr.AddGame(manager.GameRecord{
		SessionID: g.ID,
		StartTime: g.StartTime,
		EndTime:   time.Now(),
		Length:    g.snake.Length,
		Cause:     cause.String(),
	})
	g.logger.Printf("game %s over: %s at length %d after %d steps", g.ID, cause, g.snake.Length, g.Steps)
}

// Restart leaves the game-over state: the snake shrinks back to the centre
// cell with a random heading and every item is moved off it.
func (g *Game) Restart() {
	if g.state != GameOver {
		return
	}
	g.snake.Reset(g.Grid.Center(), types.Directions[g.rng.Intn(len(types.Directions))])
	g.foodMgr.Reposition(g.snake)

	g.ID = uuid.New().String()
	g.StartTime = time.Now()
	g.Steps = 0
	g.state = Running
	g.cause = NoCause

	g.logger.Printf("game %s restarted heading %s", g.ID, g.snake.Direction)
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Cause() Cause {
	return g.cause
}

// Speed is the current tick rate in ticks per second.
func (g *Game) Speed() int {
	return g.speed
}

// TickInterval is the time between two updates at the current speed.
func (g *Game) TickInterval() time.Duration {
	return time.Second / time.Duration(g.speed)
}

func (g *Game) Length() int {
	return g.snake.Length
}

// Status is the one-line caption shown by the frontends.
func (g *Game) Status() string {
	return fmt.Sprintf("Snake | Length: %d | Speed: %d", g.snake.Length, g.speed-SpeedOffset)
}

// Stats returns games played, best length and the last cause of death.
func (g *Game) Stats() manager.Stats {
	return g.stateMgr.Stats()
}

func (g *Game) GetStateManager() *manager.StateManager {
	return g.stateMgr
}
