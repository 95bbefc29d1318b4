// Package debug draws simulation overlays: the frame rate derived from the
// actual frame dt and the body population counts.
package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	overlayFontSize   = 10
	overlayPadding    = 10
	overlayLineHeight = overlayFontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce
	// allocations from Sprintf.
	updateInterval = 30
)

// Debug holds the overlay toggles and the throttled text cache.
type Debug struct {
	ShowFPS    bool
	ShowBodies bool

	frameCount   uint32
	lastFpsText  string
	lastBodyText string
}

// New returns a Debug overlay showing only the FPS counter.
func New() *Debug {
	return &Debug{ShowFPS: true}
}

// Draw renders the enabled overlays at the top-left in red, under each
// other. dt is the frame's actual elapsed seconds; bodies and asleep are
// the population counts. Call after the scene in the draw loop.
func (d *Debug) Draw(dt float32, bodies, asleep int) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0 || d.lastFpsText == ""

	y := int32(overlayPadding)

	if d.ShowFPS {
		if update && dt > 0 {
			d.lastFpsText = fmt.Sprintf("FPS: %d", int(1/dt))
		}
		rl.DrawText(d.lastFpsText, overlayPadding, y, overlayFontSize, rl.Red)
		y += overlayLineHeight
	}

	if d.ShowBodies {
		if update || d.lastBodyText == "" {
			d.lastBodyText = fmt.Sprintf("bodies: %d (%d asleep)", bodies, asleep)
		}
		rl.DrawText(d.lastBodyText, overlayPadding, y, overlayFontSize, rl.Red)
	}
}
