package overlay

import (
	"iter"

	"go.uber.org/zap"

	"github.com/Faultbox/hexterrain/internal/engine/mesh"
	"github.com/Faultbox/hexterrain/internal/logger"
	"github.com/Faultbox/hexterrain/pkg/hex"
)

// Overlay is the border mesh of one category for one viewer.
// Visibility changes never touch geometry.
type Overlay struct {
	Category Category
	Viewer   int
	Name     string
	Material string

	builder *mesh.Builder
	coords  hex.Set
	color   Color
	visible bool
}

func newOverlay(cat Category, viewer int, name, material string, cfg mesh.Config, color Color) *Overlay {
	return &Overlay{
		Category: cat,
		Viewer:   viewer,
		Name:     name,
		Material: material,
		builder:  mesh.New(cfg),
		coords:   make(hex.Set),
		color:    color,
	}
}

// Set replaces the displayed cells and rebuilds the geometry.
func (o *Overlay) Set(coords iter.Seq[hex.Coord]) {
	o.coords = hex.Collect(coords)
	o.builder.Set(o.coords.Sorted())
	logger.Debug("overlay set",
		zap.Stringer("category", o.Category),
		zap.Int("viewer", o.Viewer),
		zap.Int("cells", o.coords.Len()))
}

// Update refreshes the geometry of the given displayed cells.
// Cells that are not displayed are ignored. Returns the number refreshed.
func (o *Overlay) Update(coords ...hex.Coord) int {
	return o.builder.Update(coords...)
}

// UpdateAll refreshes the geometry of every displayed cell.
func (o *Overlay) UpdateAll() int {
	return o.builder.UpdateAll()
}

// Clear removes every displayed cell.
func (o *Overlay) Clear() {
	o.coords.Clear()
	o.builder.Clear()
}

// Show makes the overlay visible.
func (o *Overlay) Show() {
	o.visible = true
}

// Hide makes the overlay invisible.
func (o *Overlay) Hide() {
	o.visible = false
}

// Visible reports whether the overlay is shown.
func (o *Overlay) Visible() bool {
	return o.visible
}

// Color returns the display color.
func (o *Overlay) Color() Color {
	return o.color
}

// SetColor changes the display color of this viewer's overlay only.
func (o *Overlay) SetColor(c Color) {
	o.color = c
}

// Displays reports whether c is part of the displayed set.
func (o *Overlay) Displays(c hex.Coord) bool {
	return o.coords.Contains(c)
}

// Coords returns a copy of the displayed set.
func (o *Overlay) Coords() hex.Set {
	return o.coords.Clone()
}

// Mesh returns the overlay geometry.
func (o *Overlay) Mesh() *mesh.Builder {
	return o.builder
}
