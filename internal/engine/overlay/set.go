package overlay

import (
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/Faultbox/hexterrain/internal/engine/mesh"
	"github.com/Faultbox/hexterrain/internal/logger"
)

// template is a registered category; instances are created from it per viewer.
type template struct {
	name     string
	material string
	cfg      mesh.Config
	color    Color
	viewers  map[int]*Overlay
}

// Set is the registry of overlay categories and their per-viewer instances.
type Set struct {
	templates map[Category]*template
}

// NewSet creates an empty registry.
func NewSet() *Set {
	return &Set{templates: make(map[Category]*template)}
}

// Add registers a category. Registering a category again replaces it and
// drops its existing instances.
func (s *Set) Add(cat Category, name, material string, cfg mesh.Config, color Color) {
	s.templates[cat] = &template{
		name:     name,
		material: material,
		cfg:      cfg,
		color:    color,
		viewers:  make(map[int]*Overlay),
	}
	logger.Debug("overlay registered", zap.Stringer("category", cat), zap.String("name", name))
}

// Get returns the overlay of cat for viewer, creating an empty hidden one on
// first access. It reports false if cat was never registered.
func (s *Set) Get(cat Category, viewer int) (*Overlay, bool) {
	t, ok := s.templates[cat]
	if !ok {
		return nil, false
	}
	o, ok := t.viewers[viewer]
	if !ok {
		o = newOverlay(cat, viewer, t.name, t.material, t.cfg, t.color)
		t.viewers[viewer] = o
	}
	return o, true
}

// Lookup returns an existing overlay without creating one.
func (s *Set) Lookup(cat Category, viewer int) (*Overlay, bool) {
	t, ok := s.templates[cat]
	if !ok {
		return nil, false
	}
	o, ok := t.viewers[viewer]
	return o, ok
}

// Has reports whether cat is registered.
func (s *Set) Has(cat Category) bool {
	_, ok := s.templates[cat]
	return ok
}

// Viewers returns the viewers holding an instance of cat, in ascending order.
func (s *Set) Viewers(cat Category) []int {
	t, ok := s.templates[cat]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(t.viewers))
}

// RemoveViewer destroys every overlay instance of viewer.
func (s *Set) RemoveViewer(viewer int) {
	for _, t := range s.templates {
		delete(t.viewers, viewer)
	}
}

// UpdateAll refreshes the geometry of every instance, e.g. after the
// height surface changed. Returns the number of cells refreshed.
func (s *Set) UpdateAll() int {
	n := 0
	for _, t := range s.templates {
		for _, o := range t.viewers {
			n += o.UpdateAll()
		}
	}
	return n
}

// Clear drops every category and instance.
func (s *Set) Clear() {
	clear(s.templates)
}

// Len returns the number of registered categories.
func (s *Set) Len() int {
	return len(s.templates)
}
