package terrain

import (
	"fmt"

	"github.com/Faultbox/hexterrain/internal/engine/overlay"
	"github.com/Faultbox/hexterrain/pkg/hex"
)

// Layer names a boolean property of board cells.
type Layer int

// Layers.
const (
	Passable Layer = iota
	Buildable
	Obstacle

	layerCount
)

// AllLayers lists every layer in declaration order.
var AllLayers = []Layer{Passable, Buildable, Obstacle}

func (l Layer) String() string {
	switch l {
	case Passable:
		return "passable"
	case Buildable:
		return "buildable"
	case Obstacle:
		return "obstacle"
	}
	return fmt.Sprintf("Layer(%d)", int(l))
}

// Overlay returns the overlay category that visualizes the layer.
func (l Layer) Overlay() overlay.Category {
	switch l {
	case Buildable:
		return overlay.Buildable
	case Obstacle:
		return overlay.Obstacle
	default:
		return overlay.Passable
	}
}

// LayerSet holds one coordinate set per layer. The zero value is ready to use.
type LayerSet struct {
	sets [layerCount]hex.Set
}

// Get returns the live set of l.
func (s *LayerSet) Get(l Layer) hex.Set {
	if s.sets[l] == nil {
		s.sets[l] = make(hex.Set)
	}
	return s.sets[l]
}

// Contains reports whether c is a member of l.
func (s *LayerSet) Contains(l Layer, c hex.Coord) bool {
	return s.sets[l].Contains(c)
}

// Retain drops every member that is not in coords.
func (s *LayerSet) Retain(coords hex.Set) {
	for _, set := range s.sets {
		for c := range set {
			if !coords.Contains(c) {
				delete(set, c)
			}
		}
	}
}
