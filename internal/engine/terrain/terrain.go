package terrain

import (
	"go.uber.org/zap"

	"github.com/Faultbox/hexterrain/internal/engine/mesh"
	"github.com/Faultbox/hexterrain/internal/engine/overlay"
	"github.com/Faultbox/hexterrain/internal/engine/picking"
	"github.com/Faultbox/hexterrain/internal/logger"
	"github.com/Faultbox/hexterrain/pkg/hex"
	"github.com/Faultbox/hexterrain/pkg/math"
)

// Options holds mesh and overlay settings.
type Options struct {
	FlatShaded     bool
	MaxVertices    int
	OutlineWidth   float32
	HighlightWidth float32
	Colors         map[overlay.Category]overlay.Color
}

// DefaultOptions returns the stock look.
func DefaultOptions() Options {
	return Options{
		FlatShaded:     true,
		MaxVertices:    mesh.DefaultMaxVertices,
		OutlineWidth:   0.02,
		HighlightWidth: 0.1,
		Colors: map[overlay.Category]overlay.Color{
			overlay.Outline:   {1, 0.92, 0.016, 1},
			overlay.Highlight: {1, 0, 0, 1},
			overlay.Editor:    {0, 1, 1, 1},
			overlay.Passable:  {0, 1, 0, 1},
			overlay.Buildable: {0, 0, 1, 1},
			overlay.Obstacle:  {1, 0, 0, 1},
		},
	}
}

// Terrain ties a Map to its ground mesh and overlays. One instance is
// created per level and handed to whoever needs picking or layer queries.
type Terrain struct {
	Map      *Map
	Mesh     *Mesh
	Overlays *overlay.Set

	opts    Options
	corners *corners
	log     *zap.Logger
}

// New builds the ground mesh and overlays for m.
func New(m *Map, opts Options) *Terrain {
	t := &Terrain{
		Map:      m,
		Overlays: overlay.NewSet(),
		opts:     opts,
		corners:  newCorners(m),
		log:      logger.Named("terrain"),
	}
	t.Mesh = NewMesh(mesh.Config{
		Factory:     t.corners.base,
		Triangles:   mesh.HexagonTriangles,
		FlatShaded:  opts.FlatShaded,
		MaxVertices: opts.MaxVertices,
	})
	t.rebuild()
	return t
}

// Init fills the Passable layer with the whole grid and the Buildable layer
// with the placement band.
func (t *Terrain) Init() {
	t.Map.Layers.Get(Passable).UnionWith(t.Map.Coords.All())
	t.Map.Layers.Get(Buildable).UnionWith(t.Map.WithinPlacementRange())
}

// Revision is the ground mesh revision.
func (t *Terrain) Revision() int {
	return t.Mesh.Revision()
}

// ApplyDimensions resizes the grid to the map's surface rectangle and
// rebuilds all geometry.
func (t *Terrain) ApplyDimensions() {
	t.Map.ApplyDimensions()
	t.rebuild()
}

// ApplyRadius resizes the grid to a hexagon of the given radius and
// rebuilds all geometry.
func (t *Terrain) ApplyRadius(radius int) {
	t.Map.ApplyRadius(radius)
	t.rebuild()
}

// BakeHeightMaps bakes the map's height maps and refreshes ground and
// overlay geometry in place.
func (t *Terrain) BakeHeightMaps() {
	for _, hm := range t.Map.HeightMaps {
		t.log.Info("baking height map", zap.String("name", hm.Name))
	}
	t.Map.BakeHeightMaps()
	t.Mesh.UpdateAll()
	t.Overlays.UpdateAll()
	t.log.Debug("height maps baked", zap.Int("revision", t.Revision()))
}

// Refresh recomputes all geometry in place after blending parameters changed.
func (t *Terrain) Refresh() {
	t.Mesh.UpdateAll()
	t.Overlays.UpdateAll()
}

func (t *Terrain) rebuild() {
	t.corners.refresh()
	t.Mesh.Set(t.Map.Coords.Sorted())
	t.BuildOverlays()
	t.log.Info("terrain built",
		zap.Int("width", t.Map.SurfaceWidth),
		zap.Int("height", t.Map.SurfaceHeight),
		zap.String("mesh", t.Mesh.Builder.Summary()))
}

// BuildOverlays registers every overlay category from scratch and shows the
// placement outline.
func (t *Terrain) BuildOverlays() {
	t.Overlays.Clear()

	add := func(cat overlay.Category, name string, width float32) {
		color, ok := t.opts.Colors[cat]
		if !ok {
			color = overlay.White
		}
		t.Overlays.Add(cat, name, "Standard", mesh.Config{
			Factory:     t.corners.outline(width),
			Triangles:   mesh.BorderTriangles,
			MaxVertices: t.opts.MaxVertices,
		}, color)
	}

	add(overlay.Outline, "TerrainOutline", t.opts.OutlineWidth)
	add(overlay.Highlight, "TerrainHighlight", t.opts.HighlightWidth)
	add(overlay.Selection, "TerrainSelection", t.opts.HighlightWidth)
	add(overlay.Pathfinding, "TerrainPathfinding", t.opts.HighlightWidth)
	add(overlay.Editor, "TerrainEditor", t.opts.HighlightWidth)
	add(overlay.Passable, "TerrainPassable", t.Map.DetailWidth)
	add(overlay.Buildable, "TerrainBuildable", t.Map.DetailWidth)
	add(overlay.Obstacle, "TerrainObstacle", t.Map.DetailWidth)

	t.BuildOutlines()
}

// Overlay returns the overlay of cat for viewer, creating it on first use.
func (t *Terrain) Overlay(cat overlay.Category, viewer int) (*overlay.Overlay, bool) {
	return t.Overlays.Get(cat, viewer)
}

// shared returns the viewer-independent instance of cat.
// Every category is registered by BuildOverlays.
func (t *Terrain) shared(cat overlay.Category) *overlay.Overlay {
	o, ok := t.Overlays.Get(cat, 0)
	if !ok {
		panic("terrain: overlay category " + cat.String() + " not registered")
	}
	return o
}

// BuildOutlines outlines the placement band.
func (t *Terrain) BuildOutlines() {
	o := t.shared(overlay.Outline)
	o.Set(t.Map.WithinPlacementRange())
	o.Show()
}

// UpdateOutlines refreshes the outline geometry of coords, or of every
// outlined cell when none are given.
func (t *Terrain) UpdateOutlines(coords ...hex.Coord) {
	o := t.shared(overlay.Outline)
	if len(coords) == 0 {
		o.UpdateAll()
		return
	}
	o.Update(coords...)
}

// BuildLayers pushes every layer into its overlay.
func (t *Terrain) BuildLayers() {
	for _, l := range AllLayers {
		t.BuildLayer(l)
	}
}

// BuildLayer pushes the members of l into its overlay and shows it.
func (t *Terrain) BuildLayer(l Layer) {
	o := t.shared(l.Overlay())
	o.Set(t.Map.Layers.Get(l).All())
	o.Show()
}

// UpdateLayer resynchronizes the overlay of l. Geometry is refreshed in
// place when membership is unchanged, and rebuilt otherwise.
func (t *Terrain) UpdateLayer(l Layer) {
	o := t.shared(l.Overlay())
	members := t.Map.Layers.Get(l)
	if o.Coords().Equal(members) {
		o.UpdateAll()
		return
	}
	o.Set(members.All())
}

// ShowLayers shows every layer overlay.
func (t *Terrain) ShowLayers() {
	for _, l := range AllLayers {
		t.ShowLayer(l)
	}
}

// ShowLayer shows the overlay of l.
func (t *Terrain) ShowLayer(l Layer) {
	t.shared(l.Overlay()).Show()
}

// HideLayers hides every layer overlay.
func (t *Terrain) HideLayers() {
	for _, l := range AllLayers {
		t.HideLayer(l)
	}
}

// HideLayer hides the overlay of l.
func (t *Terrain) HideLayer(l Layer) {
	t.shared(l.Overlay()).Hide()
}

// IsPassable reports whether units may move through c.
func (t *Terrain) IsPassable(c hex.Coord) bool {
	return t.Map.IsPassable(c)
}

// IsBuildable reports whether a structure may be placed on c.
func (t *Terrain) IsBuildable(c hex.Coord) bool {
	return t.Map.IsBuildable(c)
}

// IntersectRay picks the cell under a world-space ray.
func (t *Terrain) IntersectRay(r picking.Ray) (Hit, bool) {
	return t.Mesh.IntersectRay(r)
}

// IntersectPosition places pos on the ground, offset vertically.
func (t *Terrain) IntersectPosition(pos math.Vec3, offset float32) math.Vec3 {
	return t.Mesh.IntersectPosition(pos, offset)
}
