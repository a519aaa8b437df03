// Package overlay manages per-viewer border meshes drawn over the terrain:
// outlines, highlights, selections and one overlay per terrain layer.
package overlay

import "fmt"

// Category identifies a kind of overlay.
type Category int

// Overlay categories.
const (
	Outline Category = iota
	Highlight
	Selection
	Pathfinding
	Editor
	Passable
	Buildable
	Obstacle
)

// Categories lists every category in declaration order.
var Categories = []Category{Outline, Highlight, Selection, Pathfinding, Editor, Passable, Buildable, Obstacle}

var categoryNames = [...]string{
	Outline:     "outline",
	Highlight:   "highlight",
	Selection:   "selection",
	Pathfinding: "pathfinding",
	Editor:      "editor",
	Passable:    "passable",
	Buildable:   "buildable",
	Obstacle:    "obstacle",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Color is an RGBA color with components in [0, 1].
type Color [4]float32

// White is the color of overlays registered without one.
var White = Color{1, 1, 1, 1}
