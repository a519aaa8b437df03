package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/hexterrain/internal/config"
	"github.com/Faultbox/hexterrain/internal/engine/camera"
	"github.com/Faultbox/hexterrain/internal/engine/overlay"
	"github.com/Faultbox/hexterrain/internal/engine/terrain"
	"github.com/Faultbox/hexterrain/pkg/hex"
)

func TestBuildFromDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Map.SurfaceWidth, cfg.Map.SurfaceHeight = 9, 9

	tr, err := build(cfg, true)
	require.NoError(t, err)

	assert.True(t, tr.Map.Contains(hex.Origin))
	assert.Equal(t, tr.Map.Coords.Len(), tr.Mesh.Builder.Len())
	assert.Len(t, tr.Map.Surface, tr.Map.Coords.Len())
	assert.True(t, tr.Map.Layers.Get(terrain.Passable).Equal(tr.Map.Coords))

	o, ok := tr.Overlays.Lookup(overlay.Buildable, 0)
	require.True(t, ok)
	assert.True(t, o.Visible())
	assert.Equal(t, overlay.Color(cfg.Overlays.Buildable), o.Color())
}

func TestBuildWithImageHeightMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ridge.png")
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := range 8 {
		for x := range 8 {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	cfg := config.Default()
	cfg.Map.SurfaceWidth, cfg.Map.SurfaceHeight = 5, 5
	cfg.HeightMaps = []config.HeightMapConfig{{Name: "ridge", Kind: "image", Path: path, Scale: 3, Offset: 1}}

	tr, err := build(cfg, true)
	require.NoError(t, err)
	assert.InDelta(t, 4, tr.Mesh.SampleZ(hex.Origin, terrain.Average), 1e-4)
}

func TestBuildRejectsMissingImage(t *testing.T) {
	cfg := config.Default()
	cfg.HeightMaps = []config.HeightMapConfig{{Name: "gone", Kind: "image", Path: filepath.Join(t.TempDir(), "gone.png")}}

	_, err := build(cfg, true)
	assert.Error(t, err)
}

func TestBuildRejectsUnknownStyle(t *testing.T) {
	cfg := config.Default()
	cfg.Map.NeighborStyle = "mode"

	_, err := build(cfg, false)
	assert.Error(t, err)
}

func TestParseViewport(t *testing.T) {
	w, h, err := parseViewport("800x600")
	require.NoError(t, err)
	assert.Equal(t, float32(800), w)
	assert.Equal(t, float32(600), h)

	for _, bad := range []string{"800", "ax600", "800xb", "0x600", "800x-1"} {
		_, _, err := parseViewport(bad)
		assert.Error(t, err, bad)
	}
}

func TestScreenPickHitsCenterCell(t *testing.T) {
	cfg := config.Default()
	tr, err := build(cfg, false)
	require.NoError(t, err)

	cam := camera.NewOrbitCamera()
	cam.FitToBounds(tr.Mesh.Bounds())
	cam.Far = 100

	hit, ok := tr.IntersectRay(cam.ScreenRay(400, 300, 800, 600))
	require.True(t, ok)
	assert.Equal(t, hex.Origin, hit.Coord)
}
