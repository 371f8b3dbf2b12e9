//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"tweakpanel/internal/tweak"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the tweak panel to the right of the simulation view. It keeps
// no engine state: every frame it lays out the host's current views and maps
// clicks back onto the rows that produced them.
type HUD struct {
	host   Host
	width  int
	height int
	panel  *ebiten.Image
	pixel  *ebiten.Image

	panelOffsetX int
	scroll       int
	editing      bool

	items []hudItem
}

type hudItemKind uint8

const (
	itemText hudItemKind = iota
	itemButton
	itemField
)

type hudItem struct {
	kind    hudItemKind
	rect    image.Rectangle
	label   string
	color   color.Color
	enabled bool
	onClick func()
}

// NewHUD constructs a HUD for the provided host and panel size.
func NewHUD(host Host, width, height int) *HUD {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	h := &HUD{host: host, width: width, height: height}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Width reports the panel width.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Editing reports whether the step field has keyboard focus.
func (h *HUD) Editing() bool { return h != nil && h.editing }

// Update lays out the current views and handles HUD interactions.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.host == nil || h.width <= 0 {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.handleKeys()
	h.handleScroll()
	h.items = h.layout()
	h.handleClick()
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 || h.height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.panel.Bounds().Dy() != h.height {
		h.panel = ebiten.NewImage(h.width, h.height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	for _, it := range h.items {
		switch it.kind {
		case itemButton:
			h.drawButton(it.rect, it.label, it.enabled)
		case itemField:
			h.drawField(it.rect, it.label)
		default:
			text.Draw(h.panel, it.label, basicfont.Face7x13, it.rect.Min.X, it.rect.Max.Y-labelDescent, it.color)
		}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) handleKeys() {
	step := h.host.Step()
	if !h.editing || step == nil {
		return
	}
	buf := step.Text()
	for _, r := range ebiten.AppendInputChars(nil) {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' || r == 'e' || r == 'E' {
			buf += string(r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(buf) > 0 {
		buf = buf[:len(buf)-1]
	}
	step.SetText(buf)
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		step.Apply()
		h.editing = false
	}
}

func (h *HUD) handleScroll() {
	_, dy := ebiten.Wheel()
	if dy == 0 {
		return
	}
	mx, _ := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	h.scroll -= int(dy * lineHeight)
	if h.scroll < 0 {
		h.scroll = 0
	}
}

func (h *HUD) handleClick() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		h.editing = false
		return
	}
	px := mx - h.panelOffsetX
	for _, it := range h.items {
		if it.onClick == nil || !it.enabled {
			continue
		}
		if pointInRect(px, my, it.rect) {
			it.onClick()
			return
		}
	}
	h.editing = false
}

// layout flows the header, the step controls and every view into positioned
// items. Items below the header scroll.
func (h *HUD) layout() []hudItem {
	var items []hudItem
	l := &flow{h: h, y: panelPadding}

	openLabel := "Close"
	if !h.host.Open() {
		openLabel = "Open"
	}
	l.text("Tweak Panel", titleColor)
	items = append(items, l.flush()...)
	items = append(items, l.buttonAt(h.width-panelPadding, openLabel, true, h.host.ToggleOpen))
	l.newline()

	if !h.host.Open() {
		return items
	}

	if step := h.host.Step(); step != nil {
		l.text("Step", labelColor)
		field := hudItem{
			kind:    itemField,
			rect:    image.Rect(l.x, l.y, l.x+fieldWidth, l.y+buttonHeight),
			label:   step.Text(),
			enabled: true,
			onClick: func() { h.editing = true },
		}
		if h.editing {
			field.label += "_"
		}
		l.x += fieldWidth + buttonGap
		l.pending = append(l.pending, field)
		l.button("Apply", true, func() {
			step.Apply()
			h.editing = false
		})
		l.button("Reset", true, func() {
			step.Reset()
			h.editing = false
		})
		items = append(items, l.flush()...)
		l.newline()
	}
	scrollTop := l.y + sectionGap

	l.y = scrollTop - h.scroll
	for si, v := range h.host.Views() {
		l.y += sectionGap
		l.text(v.Title, titleColor)
		l.newline()
		if !v.Valid {
			l.indent(1)
			l.text(v.Missing, missingColor)
			l.newline()
			continue
		}
		for _, g := range v.Groups {
			depth := 1
			if g.Title != "" {
				l.indent(1)
				l.text(g.Title, groupColor)
				l.newline()
				depth = 2
			}
			if g.Missing != "" {
				l.indent(depth)
				l.text(g.Missing, missingColor)
				l.newline()
				continue
			}
			for _, r := range g.Rows {
				h.layoutRow(l, si, r, depth)
			}
		}
	}
	for _, it := range l.flush() {
		if it.rect.Min.Y < scrollTop || it.rect.Min.Y > h.height {
			continue
		}
		items = append(items, it)
	}
	return items
}

func (h *HUD) layoutRow(l *flow, section int, r tweak.Row, depth int) {
	l.indent(depth)
	value := r.Value
	col := labelColor
	if !r.Found {
		value = "--"
		col = missingColor
	}
	l.text(r.Label+":", col)
	l.x = max(l.x, panelPadding+valueColumn)
	l.text(value, col)
	if r.Kind == tweak.KindVector {
		l.newline()
		l.indent(depth + 1)
	} else {
		l.x = max(l.x, panelPadding+buttonColumn)
	}
	row := r.Index
	for _, b := range r.Buttons {
		action := b.Action
		l.button(b.Caption, b.Enabled && r.Found, func() {
			h.host.Apply(section, row, action)
		})
	}
	l.newline()
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fillRect(rect, bg)
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) drawField(rect image.Rectangle, label string) {
	bg := color.RGBA{R: 28, G: 30, B: 36, A: 255}
	if h.editing {
		bg = color.RGBA{R: 40, G: 44, B: 56, A: 255}
	}
	h.fillRect(rect, bg)
	text.Draw(h.panel, label, basicfont.Face7x13, rect.Min.X+4, rect.Max.Y-labelDescent, labelColor)
}

func (h *HUD) fillRect(rect image.Rectangle, c color.RGBA) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, float64(c.A)/255.0)
	h.panel.DrawImage(h.pixel, op)
}

// flow places items left to right, wrapping when a line is full.
type flow struct {
	h       *HUD
	x, y    int
	pending []hudItem
}

func (l *flow) indent(depth int) {
	if l.x < panelPadding+depth*indentWidth {
		l.x = panelPadding + depth*indentWidth
	}
}

func (l *flow) newline() {
	if l.x == 0 {
		return
	}
	l.x = 0
	l.y += lineHeight
}

func (l *flow) text(s string, c color.Color) {
	if l.x == 0 {
		l.x = panelPadding
	}
	w := text.BoundString(basicfont.Face7x13, s).Dx()
	l.pending = append(l.pending, hudItem{
		kind:  itemText,
		rect:  image.Rect(l.x, l.y, l.x+w, l.y+buttonHeight),
		label: s,
		color: c,
	})
	l.x += w + buttonGap
}

func (l *flow) button(label string, enabled bool, onClick func()) {
	w := text.BoundString(basicfont.Face7x13, label).Dx() + 2*buttonPad
	if l.x == 0 {
		l.x = panelPadding
	}
	if l.x+w > l.h.width-panelPadding && l.x > panelPadding+indentWidth {
		l.y += lineHeight
		l.x = panelPadding + 2*indentWidth
	}
	l.pending = append(l.pending, hudItem{
		kind:    itemButton,
		rect:    image.Rect(l.x, l.y, l.x+w, l.y+buttonHeight),
		label:   label,
		enabled: enabled,
		onClick: onClick,
	})
	l.x += w + buttonGap
}

// buttonAt places a button right-aligned at x on the current line.
func (l *flow) buttonAt(right int, label string, enabled bool, onClick func()) hudItem {
	w := text.BoundString(basicfont.Face7x13, label).Dx() + 2*buttonPad
	return hudItem{
		kind:    itemButton,
		rect:    image.Rect(right-w, l.y, right, l.y+buttonHeight),
		label:   label,
		enabled: enabled,
		onClick: onClick,
	}
}

func (l *flow) flush() []hudItem {
	out := l.pending
	l.pending = nil
	return out
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

var (
	titleColor   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor   = color.RGBA{R: 150, G: 180, B: 220, A: 255}
	labelColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	missingColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding = 12
	lineHeight   = 22
	buttonHeight = 18
	buttonGap    = 4
	buttonPad    = 5
	labelDescent = 4
	indentWidth  = 10
	valueColumn  = 170
	buttonColumn = 250
	fieldWidth   = 80
	sectionGap   = 8
)
