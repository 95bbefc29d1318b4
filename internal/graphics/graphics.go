// Package graphics owns the raylib window and the frame loop, keeping the
// rendering surface separate from the simulation code.
package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens a window of the given size and loops until the user closes it.
// Each frame it calls update (clock tick + physics step), then clears the
// screen to white and calls draw. Frame pacing is the caller's business
// (see internal/clock); raylib's own FPS cap stays off so the simulation
// clock is the only thing deciding frame timing.
func Run(width, height int32, title string, update, draw func()) {
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.White)
		draw()
		rl.EndDrawing()
	}
}
