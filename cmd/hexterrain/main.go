// hexterrain builds hexagonal terrain from a config file and inspects or exports it.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/hexterrain/internal/config"
	"github.com/Faultbox/hexterrain/internal/engine/camera"
	"github.com/Faultbox/hexterrain/internal/engine/picking"
	"github.com/Faultbox/hexterrain/internal/engine/terrain"
	"github.com/Faultbox/hexterrain/internal/export"
	"github.com/Faultbox/hexterrain/internal/logger"
	"github.com/Faultbox/hexterrain/pkg/hex"
	"github.com/Faultbox/hexterrain/pkg/math"
)

func main() {
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	if command == "init" {
		cmdInit(args)
		return
	}
	if command == "help" {
		printUsage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	logger.Sugar.Debugf("Config: %+v", cfg)

	switch command {
	case "info":
		err = cmdInfo(cfg)
	case "bake":
		err = cmdBake(cfg)
	case "pick":
		err = cmdPick(cfg, args)
	case "export":
		err = cmdExport(cfg, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`hexterrain - hexagonal terrain builder

Usage:
  hexterrain [flags] <command> [options]

Commands:
  init [path]              Write a default config file
  info                     Show grid and mesh information (no height bake)
  bake                     Bake height maps and show height statistics
  pick [-screen WxH] <x> <y>
                           Cast a ray straight down at (x, y), or through pixel
                           (x, y) of a camera fitted to the terrain, and report the cell
  export [-flat] <out.obj> Write the terrain mesh as OBJ (.zst compresses)

Flags:
  -config <path>  Config file (default: ./hexterrain.yaml, then the user config dir)
  -debug          Enable debug logging
  -width, -height Surface size in cells
  -seed           Seed for noise height maps

Examples:
  hexterrain init
  hexterrain -width 31 -height 17 info
  hexterrain -seed 42 pick 3.5 -2
  hexterrain pick -screen 800x600 400 300
  hexterrain export terrain.obj.zst`)
}

func cmdInit(args []string) {
	path := config.FileName
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", path)
		os.Exit(1)
	}
	if err := config.Default().SaveTo(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}

func cmdInfo(cfg *config.Config) error {
	t, err := build(cfg, false)
	if err != nil {
		return err
	}

	m := t.Map
	band := 0
	for range m.WithinPlacementRange() {
		band++
	}

	fmt.Printf("Surface:    %dx%d\n", m.SurfaceWidth, m.SurfaceHeight)
	fmt.Printf("Cells:      %d\n", m.Coords.Len())
	fmt.Printf("Placement:  %d cells (radius %d < d <= %d)\n", band, m.FacilityRadius, m.PeripheralRadius)
	fmt.Printf("Blending:   %s x %.2f\n", m.NeighborStyle, m.NeighborStyleInterpolation)
	fmt.Printf("Mesh:       %s\n", t.Mesh.Builder.Summary())
	fmt.Printf("Overlays:   %d categories\n", t.Overlays.Len())
	for _, l := range terrain.AllLayers {
		fmt.Printf("  %-10s %d cells\n", l, m.Layers.Get(l).Len())
	}
	return nil
}

func cmdBake(cfg *config.Config) error {
	t, err := build(cfg, true)
	if err != nil {
		return err
	}

	var lo, hi, sum float32
	first := true
	for c := range t.Map.Coords.All() {
		z := t.Mesh.SampleZ(c, terrain.Average)
		if first {
			lo, hi, first = z, z, false
		}
		lo, hi = min(lo, z), max(hi, z)
		sum += z
	}

	fmt.Printf("Height maps: %d\n", len(t.Map.HeightMaps))
	for _, hm := range t.Map.HeightMaps {
		fmt.Printf("  %s (scale %.2f, offset %.2f)\n", hm.Name, hm.Scale, hm.Offset)
	}
	if n := t.Map.Coords.Len(); n > 0 {
		fmt.Printf("Cell heights: min %.3f, max %.3f, mean %.3f\n", lo, hi, sum/float32(n))
	}
	box := t.Mesh.Bounds()
	fmt.Printf("Bounds:      %v - %v\n", box.Min, box.Max)
	fmt.Printf("Revision:    %d\n", t.Revision())
	return nil
}

func cmdPick(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("pick", flag.ExitOnError)
	screen := fs.String("screen", "", "Treat x y as pixels of a WxH viewport fitted to the terrain")
	fs.Parse(args)

	if fs.NArg() < 2 {
		return fmt.Errorf("usage: hexterrain pick [-screen WxH] <x> <y>")
	}
	x, err := strconv.ParseFloat(fs.Arg(0), 32)
	if err != nil {
		return fmt.Errorf("parsing x: %w", err)
	}
	y, err := strconv.ParseFloat(fs.Arg(1), 32)
	if err != nil {
		return fmt.Errorf("parsing y: %w", err)
	}

	t, err := build(cfg, true)
	if err != nil {
		return err
	}

	var ray picking.Ray
	if *screen != "" {
		w, h, err := parseViewport(*screen)
		if err != nil {
			return err
		}
		cam := camera.NewOrbitCamera()
		cam.FitToBounds(t.Mesh.Bounds())
		ray = cam.ScreenRay(float32(x), float32(y), w, h)
	} else {
		top := t.Mesh.Bounds().Max.Z + 10
		ray = picking.NewRay(math.Vec3{X: float32(x), Y: float32(y), Z: top}, math.Vec3{Z: -1})
	}

	hit, ok := t.IntersectRay(ray)
	if !ok {
		fmt.Printf("(%.2f, %.2f) misses the terrain\n", x, y)
		if p, ok := ray.IntersectPlaneZ(0); ok {
			fmt.Printf("Nearest cell on the ground plane: %v\n", hex.AtPosition(p.XY()))
		}
		return nil
	}

	fmt.Printf("Cell:      %v\n", hit.Coord)
	fmt.Printf("Point:     %v\n", hit.Point)
	fmt.Printf("Distance:  %d from origin\n", hex.Distance(hex.Origin, hit.Coord))
	fmt.Printf("Passable:  %v\n", t.IsPassable(hit.Coord))
	fmt.Printf("Buildable: %v\n", t.IsBuildable(hit.Coord))
	fmt.Printf("Sample:    %v\n", t.Mesh.Sample(hit.Coord, terrain.Average, terrain.Average, terrain.Max))
	return nil
}

// parseViewport parses "WxH" into positive viewport dimensions.
func parseViewport(s string) (w, h float32, err error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("viewport %q: want WxH", s)
	}
	wf, err := strconv.ParseFloat(ws, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("viewport width: %w", err)
	}
	hf, err := strconv.ParseFloat(hs, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("viewport height: %w", err)
	}
	if wf <= 0 || hf <= 0 {
		return 0, 0, fmt.Errorf("viewport %q: dimensions must be positive", s)
	}
	return float32(wf), float32(hf), nil
}

func cmdExport(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	flat := fs.Bool("flat", false, "Skip the height bake")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: hexterrain export [-flat] <out.obj>")
	}
	out := fs.Arg(0)
	compress := cfg.Export.Compress || strings.HasSuffix(out, ".zst")

	t, err := build(cfg, !*flat)
	if err != nil {
		return err
	}

	w, err := export.Create(out, compress)
	if err != nil {
		return err
	}
	name := strings.TrimSuffix(strings.TrimSuffix(filepath.Base(out), ".zst"), ".obj")
	if err := export.WriteOBJ(w, name, t.Mesh.Builder.Batches()); err != nil {
		w.Close()
		return fmt.Errorf("writing %s: %w", out, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", out, err)
	}

	logger.Info("terrain exported", zap.String("path", out), zap.Bool("compressed", compress))
	fmt.Printf("Exported %s (%s)\n", out, t.Mesh.Builder.Summary())
	return nil
}
