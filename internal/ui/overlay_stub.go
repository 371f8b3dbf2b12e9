//go:build !ebiten

package ui

import "tweakpanel/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Sim, int, int, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// HandleKeys is a no-op in the headless build.
func (o *Overlay) HandleKeys() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
