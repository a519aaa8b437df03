package main

import (
	"fmt"
	"path/filepath"

	"github.com/Faultbox/hexterrain/internal/assets"
	"github.com/Faultbox/hexterrain/internal/config"
	"github.com/Faultbox/hexterrain/internal/engine/overlay"
	"github.com/Faultbox/hexterrain/internal/engine/terrain"
)

// build turns a config into a sized terrain with initialized layers.
// Height maps are baked only when bake is set.
func build(cfg *config.Config, bake bool) (*terrain.Terrain, error) {
	m, err := newMap(cfg)
	if err != nil {
		return nil, err
	}

	t := terrain.New(m, newOptions(cfg))
	t.ApplyDimensions()
	t.Init()
	if bake {
		t.BakeHeightMaps()
	}
	t.BuildLayers()
	return t, nil
}

func newMap(cfg *config.Config) (*terrain.Map, error) {
	style, err := terrain.ParseStatistic(cfg.Map.NeighborStyle)
	if err != nil {
		return nil, err
	}

	m := terrain.NewMap()
	m.SurfaceWidth = cfg.Map.SurfaceWidth
	m.SurfaceHeight = cfg.Map.SurfaceHeight
	m.FacilityRadius = cfg.Map.FacilityRadius
	m.PeripheralRadius = cfg.Map.PeripheralRadius
	m.DetailWidth = cfg.Map.DetailWidth
	m.NeighborStyle = style
	m.NeighborStyleInterpolation = cfg.Map.NeighborStyleInterpolation

	mgr := assets.NewManager()
	defer mgr.Close()
	if path := config.ConfigPath(); path != "" {
		if err := mgr.AddDir(filepath.Dir(path)); err != nil {
			return nil, err
		}
	}

	for _, hc := range cfg.HeightMaps {
		var src terrain.HeightSource
		switch hc.Kind {
		case "image":
			img, err := mgr.LoadHeightMap(hc.Path)
			if err != nil {
				return nil, fmt.Errorf("height map %s: %w", hc.Name, err)
			}
			src = terrain.NewImageSource(img)
		case "noise":
			src = terrain.NewNoiseSource(hc.Seed, hc.Frequency, hc.Octaves, hc.Persistence)
		default:
			return nil, fmt.Errorf("height map %s: unknown kind %q", hc.Name, hc.Kind)
		}
		m.HeightMaps = append(m.HeightMaps, terrain.HeightMap{
			Name:   hc.Name,
			Source: src,
			Scale:  hc.Scale,
			Offset: hc.Offset,
		})
	}
	return m, nil
}

func newOptions(cfg *config.Config) terrain.Options {
	c := cfg.Overlays
	return terrain.Options{
		FlatShaded:     cfg.Terrain.FlatShaded,
		MaxVertices:    cfg.Terrain.MaxVertices,
		OutlineWidth:   cfg.Terrain.OutlineWidth,
		HighlightWidth: cfg.Terrain.HighlightWidth,
		Colors: map[overlay.Category]overlay.Color{
			overlay.Outline:     overlay.Color(c.Outline),
			overlay.Highlight:   overlay.Color(c.Highlight),
			overlay.Selection:   overlay.Color(c.Selection),
			overlay.Pathfinding: overlay.Color(c.Pathfinding),
			overlay.Editor:      overlay.Color(c.Editor),
			overlay.Passable:    overlay.Color(c.Passable),
			overlay.Buildable:   overlay.Color(c.Buildable),
			overlay.Obstacle:    overlay.Color(c.Obstacle),
		},
	}
}
