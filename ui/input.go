package ui

import (
	"apple-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var directionKeys = []struct {
	keys []int32
	dir  types.Direction
}{
	{[]int32{rl.KeyUp, rl.KeyW}, types.Up},
	{[]int32{rl.KeyDown, rl.KeyS}, types.Down},
	{[]int32{rl.KeyLeft, rl.KeyA}, types.Left},
	{[]int32{rl.KeyRight, rl.KeyD}, types.Right},
}

// ReadDirection returns the direction key pressed this frame, None if there
// was none. When several were pressed the last one in Up, Down, Left, Right
// order wins, as a later key event would.
func ReadDirection() types.Direction {
	dir := types.None
	for _, dk := range directionKeys {
		for _, k := range dk.keys {
			if rl.IsKeyPressed(k) {
				dir = dk.dir
			}
		}
	}
	return dir
}

// QuitPressed reports a request to leave the game from the keyboard.
func QuitPressed() bool {
	return rl.IsKeyPressed(rl.KeyQ)
}
