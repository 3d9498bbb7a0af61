package tilt

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tilt-arcade/internal/core"
	"github.com/vovakirdan/tilt-arcade/internal/placement"
)

// Visual characters for rendering
const (
	PlateChar  = '·'
	LowChar    = '░' // plate cells below the level line
	BallChar   = '●'
	PickupChar = '◆'
	HazardChar = '▲'
	HoleChar   = '█'
)

const (
	minScreenW = 30
	minScreenH = 14
	hudRows    = 2
	footerRows = 1
)

// view maps world XZ onto screen cells. Terminal cells are about twice as
// tall as they are wide, so X gets twice the cells per unit.
type view struct {
	cx, cy float64 // screen position of the world origin
	ux, uy float64 // cells per world unit
}

func (v view) project(p mgl64.Vec3) (int, int) {
	return int(math.Round(v.cx + p.X()*v.ux)), int(math.Round(v.cy - p.Z()*v.uy))
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		renderTooSmall(dst)
		return
	}

	v := g.view(w, h)
	g.renderPlate(dst, v)
	g.renderItems(dst, v)
	g.renderBall(dst, v)
	g.renderHUD(dst)
	g.renderFooter(dst)
	g.renderMessage(dst)
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorYellow)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

// view fits the plate into the area between the HUD and the footer, scaled
// by the opening zoom and offset by the camera shake.
func (g *Game) view(w, h int) view {
	areaH := float64(h - hudRows - footerRows - 1)
	areaW := float64(w - 2)
	side := 2 * g.plate.HalfSize

	uy := areaH / side
	if 2*uy*side > areaW {
		uy = areaW / (2 * side)
	}
	uy *= g.zoom.Scale()

	off := g.shake.Offset().Mul(g.cfg.Camera.ShakeScale)
	return view{
		cx: float64(w)/2 + off.X()*2,
		cy: float64(hudRows) + areaH/2 + off.Z(),
		ux: 2 * uy,
		uy: uy,
	}
}

func (g *Game) renderPlate(dst *core.Screen, v view) {
	half := g.plate.HalfSize
	x0, y0 := v.project(mgl64.Vec3{-half, 0, half})
	x1, y1 := v.project(mgl64.Vec3{half, 0, -half})

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			// Shade the half of the plate that is tilted down.
			wx := (float64(x) - v.cx) / v.ux
			wz := (v.cy - float64(y)) / v.uy
			ch, color := PlateChar, core.ColorPlate
			if top, ok := g.plate.TopAt(wx, wz); ok && top < -0.05 {
				ch, color = LowChar, core.ColorPlateLow
			}
			dst.SetColor(x, y, ch, color)
		}
	}
	dst.DrawBox(core.NewRect(x0-1, y0-1, x1-x0+3, y1-y0+3), core.ColorWhite)
}

func (g *Game) renderItems(dst *core.Screen, v view) {
	for _, ent := range g.items.All() {
		pos := g.items.WorldPos(ent)
		x, y := v.project(pos)
		switch ent.Item.Category {
		case placement.Collectible:
			dst.SetColor(x, y, PickupChar, core.ColorPickup)
		case placement.Hazard:
			dst.SetColor(x, y, HazardChar, core.ColorHazard)
		case placement.Hole:
			g.renderHole(dst, v, pos, ent.Item.Radius*holeCapture)
		}
	}
}

// renderHole fills the cells whose centers fall inside the capture radius.
func (g *Game) renderHole(dst *core.Screen, v view, center mgl64.Vec3, r float64) {
	cx, cy := v.project(center)
	rx := int(math.Ceil(r * v.ux))
	ry := int(math.Ceil(r * v.uy))
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			dx := float64(x-cx) / v.ux
			dz := float64(y-cy) / v.uy
			if dx*dx+dz*dz <= r*r {
				dst.SetColor(x, y, HoleChar, core.ColorHole)
			}
		}
	}
	dst.SetColor(cx, cy, HoleChar, core.ColorHole)
}

func (g *Game) renderBall(dst *core.Screen, v view) {
	if g.ball.Falling && g.ball.Pos.Y() < -g.cfg.Plate.Thickness {
		return
	}
	x, y := v.project(g.ball.Pos)
	color := core.ColorBall
	if g.manager.HazardLocked() {
		color = core.ColorLocked
	}
	dst.SetColor(x, y, BallChar, color)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, strings.Join(g.manager.HUD(), "   "), core.ColorBrightWhite)

	mode := fmt.Sprintf("Mode: %s [M]", g.mode)
	dst.DrawText(dst.Width()-utf8.RuneCountInString(mode)-1, 0, mode, core.ColorCyan)

	e := g.controller.Euler()
	tiltStr := fmt.Sprintf("Tilt %+5.1f° %+5.1f°", e.X(), e.Z())
	if g.paused {
		tiltStr += "   PAUSED"
	}
	dst.DrawText(1, 1, tiltStr, core.ColorGray)
}

func (g *Game) renderFooter(dst *core.Screen) {
	help := "WASD/Arrows: tilt  Shift: precision  R: restart  M: mode  P: pause  Q: quit"
	if utf8.RuneCountInString(help) > dst.Width() {
		help = "WASD tilt  R restart  M mode  Q quit"
	}
	dst.DrawTextCentered(dst.Height()-1, help, core.ColorDarkGray)
}

// renderMessage draws the intro or end-of-round panel.
func (g *Game) renderMessage(dst *core.Screen) {
	msg := g.manager.Message()
	if msg == "" {
		return
	}
	lines := strings.Split(msg, "\n")

	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	width = min(width+4, dst.Width())
	height := len(lines) + 2

	x := (dst.Width() - width) / 2
	y := (dst.Height() - height) / 2
	dst.DrawRect(core.NewRect(x, y, width, height), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(x, y, width, height), core.ColorBrightWhite)

	color := core.ColorBrightWhite
	switch {
	case g.manager.Won():
		color = core.ColorBrightGreen
	case g.manager.Ended():
		color = core.ColorBrightRed
	}
	for i, l := range lines {
		dst.DrawTextCentered(y+1+i, l, color)
	}
}
