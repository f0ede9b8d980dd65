package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"walkthrough/internal/nav"
)

const (
	// BarHeight is the height of the navigation bar at the bottom of the screen.
	BarHeight    = 48
	buttonHeight = 32
	buttonPadX   = 14
	buttonGap    = 10
	fontSize     = 20
)

var (
	// Reused every frame when drawing the bar to avoid per-frame color allocations.
	barColor         = rl.NewColor(32, 34, 40, 235)
	buttonColor      = rl.NewColor(56, 60, 70, 255)
	buttonHoverColor = rl.NewColor(76, 82, 96, 255)
	tourActiveColor  = rl.NewColor(180, 120, 40, 255)
	labelColor       = rl.NewColor(230, 230, 230, 255)
)

// tourButton marks the bar entry that starts/stops the guided tour instead of
// navigating to a view.
const tourButton = nav.ViewKey(-1)

// button is one bar entry with its label and the rectangle computed by layout.
type button struct {
	key    nav.ViewKey
	label  string
	bounds rl.Rectangle
}

// Bar is the navigation bar: one button per preset view plus the tour toggle. Clicks go
// straight to the coordinator; the tour button is highlighted while the tour runs.
type Bar struct {
	nav     *nav.Coordinator
	buttons []button
}

// NewBar returns the bar wired to the coordinator.
func NewBar(c *nav.Coordinator) *Bar {
	keys := []nav.ViewKey{
		nav.ViewDefault, nav.ViewTop, nav.ViewHall, nav.ViewBedroom, nav.ViewKitchen, nav.ViewWalk,
	}
	b := &Bar{nav: c}
	for _, k := range keys {
		b.buttons = append(b.buttons, button{key: k, label: k.Label()})
	}
	b.buttons = append(b.buttons, button{key: tourButton, label: "Start tour"})
	return b
}

// layoutRects centers a row of buttons with the given label widths in a bar of the
// given screen size. Pure so tests can check the geometry without a window.
func layoutRects(labelWidths []float32, screenW, screenH float32) []rl.Rectangle {
	total := buttonGap * float32(len(labelWidths)-1)
	for _, w := range labelWidths {
		total += w + 2*buttonPadX
	}
	x := (screenW - total) / 2
	y := screenH - BarHeight + (BarHeight-buttonHeight)/2

	rects := make([]rl.Rectangle, len(labelWidths))
	for i, w := range labelWidths {
		bw := w + 2*buttonPadX
		rects[i] = rl.NewRectangle(x, y, bw, buttonHeight)
		x += bw + buttonGap
	}
	return rects
}

// layout recomputes button rectangles for the current screen size.
func (b *Bar) layout() {
	widths := make([]float32, len(b.buttons))
	for i, btn := range b.buttons {
		widths[i] = float32(rl.MeasureText(btn.label, fontSize))
	}
	rects := layoutRects(widths, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	for i := range b.buttons {
		b.buttons[i].bounds = rects[i]
	}
}

// Contains reports whether a screen point lies within the bar area. The input adapter
// uses it so a click on the bar is never also treated as walk-forward movement.
func (b *Bar) Contains(pos rl.Vector2) bool {
	return pos.Y >= float32(rl.GetScreenHeight())-BarHeight
}

// Update handles clicks. Called once per frame before the navigation update so a click
// takes effect on the same frame's mode arbitration.
func (b *Bar) Update() {
	b.layout()
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}
	mouse := rl.GetMousePosition()
	for _, btn := range b.buttons {
		if !rl.CheckCollisionPointRec(mouse, btn.bounds) {
			continue
		}
		if btn.key == tourButton {
			if b.nav.TourActive() {
				b.nav.StopTour()
			} else {
				b.nav.StartTour()
			}
		} else {
			b.nav.NavigateTo(btn.key)
		}
		return
	}
}

// Draw renders the bar. Call after EndMode3D, before the debug overlay.
func (b *Bar) Draw() {
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())
	rl.DrawRectangleRec(rl.NewRectangle(0, screenH-BarHeight, screenW, BarHeight), barColor)

	mouse := rl.GetMousePosition()
	touring := b.nav.TourActive()
	for _, btn := range b.buttons {
		fill := buttonColor
		switch {
		case btn.key == tourButton && touring:
			fill = tourActiveColor
		case rl.CheckCollisionPointRec(mouse, btn.bounds):
			fill = buttonHoverColor
		}
		rl.DrawRectangleRec(btn.bounds, fill)

		label := btn.label
		if btn.key == tourButton && touring {
			label = "Stop tour"
		}
		tx := btn.bounds.X + (btn.bounds.Width-float32(rl.MeasureText(label, fontSize)))/2
		ty := btn.bounds.Y + (btn.bounds.Height-fontSize)/2
		rl.DrawText(label, int32(tx), int32(ty), fontSize, labelColor)
	}
}
