//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"tweakpanel/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type bodyProvider interface {
	Body() (core.Body, bool)
}

type debugRayProvider interface {
	DebugRay() (from, to core.Vec3, ok bool)
}

// Overlay draws a top-down view of the simulation with optional debugging
// visuals.
type Overlay struct {
	sim       core.Sim
	width     int
	height    int
	scale     int
	showVel   bool
	showGrid  bool
	pixel     *ebiten.Image
	trail     []core.Vec3
	trailNext int
}

const (
	pixelsPerUnit = 4.0
	trailLength   = 90
)

// NewOverlay constructs a new overlay for a view of width×height logical
// pixels.
func NewOverlay(sim core.Sim, width, height, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, width: width, height: height, scale: scale, showVel: true, showGrid: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// HandleKeys toggles overlay layers.
func (o *Overlay) HandleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showVel = !o.showVel
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showGrid = !o.showGrid
	}
}

// Update samples the rider trail.
func (o *Overlay) Update() {
	provider, ok := o.sim.(bodyProvider)
	if !ok {
		return
	}
	sample, ok := provider.Body()
	if !ok {
		o.trail = o.trail[:0]
		o.trailNext = 0
		return
	}
	if len(o.trail) < trailLength {
		o.trail = append(o.trail, sample.Position)
		return
	}
	o.trail[o.trailNext] = sample.Position
	o.trailNext = (o.trailNext + 1) % trailLength
}

// Draw renders the view onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	w := float64(o.width * o.scale)
	h := float64(o.height * o.scale)
	if w <= 0 || h <= 0 {
		return
	}
	if o.showGrid {
		o.drawGrid(screen, w, h)
	}
	for _, p := range o.trail {
		x, y := o.project(p, w, h)
		o.drawPoint(screen, x, y, float64(o.scale), color.RGBA{R: 70, G: 90, B: 120, A: 160})
	}

	provider, ok := o.sim.(bodyProvider)
	if !ok {
		return
	}
	sample, ok := provider.Body()
	if !ok {
		return
	}
	x, y := o.project(sample.Position, w, h)
	size := float64(o.scale) * (3 + clamp(sample.Position.Y, 0, 6))
	body := color.RGBA{R: 240, G: 200, B: 80, A: 255}
	if sample.Airborne {
		body = color.RGBA{R: 120, G: 220, B: 250, A: 255}
	}
	o.drawPoint(screen, x, y, size, body)

	if o.showVel {
		speed := math.Hypot(sample.Velocity.X, sample.Velocity.Z)
		if speed > 0.05 {
			normalized := clamp01(speed / 12)
			o.drawArrow(screen, x, y, sample.Velocity.X/speed, sample.Velocity.Z/speed,
				float64(o.scale)*(6+18*normalized), interpolateColor(normalized))
		}
	}

	if rays, ok := o.sim.(debugRayProvider); ok {
		if from, to, ok := rays.DebugRay(); ok {
			fx, fy := o.project(from, w, h)
			tx, ty := o.project(to, w, h)
			if math.Hypot(tx-fx, ty-fy) < float64(o.scale) {
				// The ray points straight down in a top-down view.
				o.drawPoint(screen, fx, fy, float64(o.scale)*2, color.RGBA{R: 255, G: 80, B: 80, A: 220})
			} else {
				o.drawLine(screen, fx, fy, tx, ty, float64(o.scale), color.RGBA{R: 255, G: 80, B: 80, A: 220})
			}
		}
	}
}

// project maps world XZ onto the view, wrapping so the rider never leaves.
func (o *Overlay) project(p core.Vec3, w, h float64) (float64, float64) {
	span := pixelsPerUnit * float64(o.scale)
	x := math.Mod(w/2+p.X*span, w)
	if x < 0 {
		x += w
	}
	y := math.Mod(h/2-p.Z*span, h)
	if y < 0 {
		y += h
	}
	return x, y
}

func (o *Overlay) drawGrid(screen *ebiten.Image, w, h float64) {
	spacing := pixelsPerUnit * float64(o.scale) * 10
	col := color.RGBA{R: 30, G: 34, B: 42, A: 255}
	for x := math.Mod(w/2, spacing); x < w; x += spacing {
		o.drawLine(screen, x, 0, x, h, 1, col)
	}
	for y := math.Mod(h/2, spacing); y < h; y += spacing {
		o.drawLine(screen, 0, y, w, y, 1, col)
	}
}

func (o *Overlay) drawArrow(screen *ebiten.Image, x, y, nx, ny, length float64, col color.RGBA) {
	const headAngle = math.Pi / 6
	tipX := x + nx*length
	tipY := y - ny*length
	headLength := length * 0.3
	thickness := math.Max(1, float64(o.scale)*0.8)
	o.drawLine(screen, x, y, tipX, tipY, thickness, col)
	angle := math.Atan2(tipY-y, tipX-x)
	leftX := tipX - math.Cos(angle+headAngle)*headLength
	leftY := tipY - math.Sin(angle+headAngle)*headLength
	rightX := tipX - math.Cos(angle-headAngle)*headLength
	rightY := tipY - math.Sin(angle-headAngle)*headLength
	o.drawLine(screen, tipX, tipY, leftX, leftY, thickness*0.85, col)
	o.drawLine(screen, tipX, tipY, rightX, rightY, thickness*0.85, col)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func interpolateColor(t float64) color.RGBA {
	t = clamp01(t)
	r := uint8(math.Round(80 + 70*t))
	g := uint8(math.Round(170 + 70*t))
	b := uint8(math.Round(230 + 20*t))
	a := uint8(math.Round(150 + 90*t))
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
