package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"apple-snake/ai"
	"apple-snake/game"
	"apple-snake/term"
	"apple-snake/ui"
)

// frontend shows a game and feeds it player input until the player quits.
type frontend interface {
	Run(g *game.Game) error
}

func main() {
	useTerm := flag.Bool("term", false, "Play in the terminal instead of a window")
	autopilot := flag.Bool("autopilot", false, "Let the computer steer")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	cellSize := flag.Int("cell", 20, "Cell size in pixels (window only)")
	fps := flag.Int("fps", 60, "Frames per second (window only)")
	logPath := flag.String("log", "", "Write log lines to this file")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	logger, closeLog, err := newLogger(*logPath, *useTerm)
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	defer closeLog()

	cfg := game.DefaultConfig()
	cfg.Seed = *seed
	cfg.Logger = logger
	g, err := game.NewGame(cfg)
	if err != nil {
		log.Fatalf("new game: %v", err)
	}

	var pilot game.Autopilot
	if *autopilot {
		pilot = ai.NewPilot(0.05, *seed+1)
	}

	var fe frontend
	if *useTerm {
		fe = &term.Terminal{Pilot: pilot}
	} else {
		fe = &ui.Window{CellSize: int32(*cellSize), FPS: int32(*fps), Pilot: pilot}
	}

	if err := fe.Run(g); err != nil {
		logger.Printf("frontend: %v", err)
		closeLog()
		log.Fatalf("frontend: %v", err)
	}
	st := g.Stats()
	logger.Printf("bye: best length %d over %d games", st.BestLength, st.Played)
}

// newLogger returns the logger handed to the game. The terminal frontend
// owns stderr's screen, so without a log file its lines are discarded.
func newLogger(path string, quiet bool) (*log.Logger, func(), error) {
	if path == "" {
		if quiet {
			return log.New(io.Discard, "", 0), func() {}, nil
		}
		return log.Default(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "", log.LstdFlags), func() { f.Close() }, nil
}
