// Package config handles terrain configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrInvalidDimensions    = errors.New("map dimensions must be positive")
	ErrInvalidRadius        = errors.New("invalid placement radius")
	ErrInvalidInterpolation = errors.New("neighbor style interpolation must be within [0, 1]")
	ErrInvalidNeighborStyle = errors.New("unknown neighbor style")
	ErrInvalidHeightMap     = errors.New("invalid height map")
)

// Color is an RGBA color with components in [0, 1].
type Color [4]float32

// Config holds all terrain settings.
type Config struct {
	Map        MapConfig         `yaml:"map"`
	Terrain    TerrainConfig     `yaml:"terrain"`
	Overlays   OverlayConfig     `yaml:"overlays"`
	HeightMaps []HeightMapConfig `yaml:"height_maps"`
	Export     ExportConfig      `yaml:"export"`
	Logging    LoggingConfig     `yaml:"logging"`
}

// MapConfig holds grid dimensions and surface blending.
type MapConfig struct {
	SurfaceWidth               int     `yaml:"surface_width"`
	SurfaceHeight              int     `yaml:"surface_height"`
	FacilityRadius             int     `yaml:"facility_radius"`
	PeripheralRadius           int     `yaml:"peripheral_radius"`
	DetailWidth                float32 `yaml:"detail_width"`
	NeighborStyle              string  `yaml:"neighbor_style"` // average, median, min, max
	NeighborStyleInterpolation float32 `yaml:"neighbor_style_interpolation"`
}

// TerrainConfig holds mesh generation settings.
type TerrainConfig struct {
	FlatShaded     bool    `yaml:"flat_shaded"`
	MaxVertices    int     `yaml:"max_vertices"`
	OutlineWidth   float32 `yaml:"outline_width"`
	HighlightWidth float32 `yaml:"highlight_width"`
}

// OverlayConfig holds the display color of each overlay category.
type OverlayConfig struct {
	Outline     Color `yaml:"outline,flow"`
	Highlight   Color `yaml:"highlight,flow"`
	Selection   Color `yaml:"selection,flow"`
	Pathfinding Color `yaml:"pathfinding,flow"`
	Editor      Color `yaml:"editor,flow"`
	Passable    Color `yaml:"passable,flow"`
	Buildable   Color `yaml:"buildable,flow"`
	Obstacle    Color `yaml:"obstacle,flow"`
}

// HeightMapConfig describes one height-map layer.
// Kind "image" reads a grayscale texture from Path; kind "noise" generates simplex noise.
type HeightMapConfig struct {
	Name        string  `yaml:"name"`
	Kind        string  `yaml:"kind"`
	Path        string  `yaml:"path,omitempty"`
	Seed        int64   `yaml:"seed,omitempty"`
	Frequency   float64 `yaml:"frequency,omitempty"`
	Octaves     int     `yaml:"octaves,omitempty"`
	Persistence float64 `yaml:"persistence,omitempty"`
	Scale       float32 `yaml:"scale"`
	Offset      float32 `yaml:"offset"`
}

// ExportConfig holds mesh export settings.
type ExportConfig struct {
	Compress bool `yaml:"compress"` // zstd-compress exported meshes
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Map: MapConfig{
			SurfaceWidth:               21,
			SurfaceHeight:              21,
			FacilityRadius:             1,
			PeripheralRadius:           6,
			DetailWidth:                0.1,
			NeighborStyle:              "average",
			NeighborStyleInterpolation: 1,
		},
		Terrain: TerrainConfig{
			FlatShaded:     true,
			MaxVertices:    65000,
			OutlineWidth:   0.02,
			HighlightWidth: 0.1,
		},
		Overlays: OverlayConfig{
			Outline:     Color{1, 0.92, 0.016, 1},
			Highlight:   Color{1, 0, 0, 1},
			Selection:   Color{1, 1, 1, 1},
			Pathfinding: Color{1, 1, 1, 1},
			Editor:      Color{0, 1, 1, 1},
			Passable:    Color{0, 1, 0, 1},
			Buildable:   Color{0, 0, 1, 1},
			Obstacle:    Color{1, 0, 0, 1},
		},
		HeightMaps: []HeightMapConfig{
			{
				Name:        "base",
				Kind:        "noise",
				Seed:        1,
				Frequency:   0.08,
				Octaves:     4,
				Persistence: 0.5,
				Scale:       1.5,
			},
		},
		Export: ExportConfig{
			Compress: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values the terrain engine relies on.
func (c *Config) Validate() error {
	m := c.Map
	if m.SurfaceWidth <= 0 || m.SurfaceHeight <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, m.SurfaceWidth, m.SurfaceHeight)
	}
	if m.FacilityRadius < 0 || m.PeripheralRadius < m.FacilityRadius {
		return fmt.Errorf("%w: facility %d, peripheral %d", ErrInvalidRadius, m.FacilityRadius, m.PeripheralRadius)
	}
	if m.NeighborStyleInterpolation < 0 || m.NeighborStyleInterpolation > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidInterpolation, m.NeighborStyleInterpolation)
	}
	switch m.NeighborStyle {
	case "average", "median", "min", "max":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidNeighborStyle, m.NeighborStyle)
	}
	for i, hm := range c.HeightMaps {
		switch hm.Kind {
		case "image":
			if hm.Path == "" {
				return fmt.Errorf("%w: height map %d (%s) has no path", ErrInvalidHeightMap, i, hm.Name)
			}
		case "noise":
		default:
			return fmt.Errorf("%w: height map %d (%s) has kind %q", ErrInvalidHeightMap, i, hm.Name, hm.Kind)
		}
	}
	return nil
}
