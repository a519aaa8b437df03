package terrain

import (
	"image"
	"image/color"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/Faultbox/hexterrain/pkg/hex"
	"github.com/Faultbox/hexterrain/pkg/math"
)

// HeightSource yields a normalized elevation for a point on the grid plane.
// world is the cartesian position, uv the same point normalized to the grid extent.
type HeightSource interface {
	HeightAt(world, uv math.Vec2) float32
}

// ImageSource samples a grayscale texture stretched over the grid.
// UV (0,0) is the lower-left pixel, (1,1) the upper-right.
type ImageSource struct {
	Width  int
	Height int
	Values []float32 // row-major from the top row, each in [0, 1]
}

// NewImageSource converts img to luminance values.
func NewImageSource(img image.Image) *ImageSource {
	bounds := img.Bounds()
	src := &ImageSource{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Values: make([]float32, bounds.Dx()*bounds.Dy()),
	}
	for y := range src.Height {
		for x := range src.Width {
			g := color.Gray16Model.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray16)
			src.Values[y*src.Width+x] = float32(g.Y) / 0xffff
		}
	}
	return src
}

// HeightAt interpolates bilinearly between the four nearest pixels.
func (s *ImageSource) HeightAt(_, uv math.Vec2) float32 {
	if s.Width == 0 || s.Height == 0 {
		return 0
	}

	fx := clampf(uv.X, 0, 1) * float32(s.Width-1)
	fy := (1 - clampf(uv.Y, 0, 1)) * float32(s.Height-1)

	x0, y0 := int(fx), int(fy)
	x1, y1 := min(x0+1, s.Width-1), min(y0+1, s.Height-1)
	tx, ty := fx-float32(x0), fy-float32(y0)

	top := math.Lerpf(s.at(x0, y0), s.at(x1, y0), tx)
	bottom := math.Lerpf(s.at(x0, y1), s.at(x1, y1), tx)
	return math.Lerpf(top, bottom, ty)
}

func (s *ImageSource) at(x, y int) float32 {
	return s.Values[y*s.Width+x]
}

// NoiseSource layers octaves of simplex noise over world positions.
type NoiseSource struct {
	noise       opensimplex.Noise
	Frequency   float64
	Octaves     int
	Persistence float64
}

// NewNoiseSource creates a deterministic noise source for seed.
func NewNoiseSource(seed int64, frequency float64, octaves int, persistence float64) *NoiseSource {
	return &NoiseSource{
		noise:       opensimplex.NewNormalized(seed),
		Frequency:   frequency,
		Octaves:     max(octaves, 1),
		Persistence: persistence,
	}
}

// HeightAt returns fractal noise in [0, 1].
func (s *NoiseSource) HeightAt(world, _ math.Vec2) float32 {
	x, y := float64(world.X), float64(world.Y)

	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	frequency := s.Frequency

	for range s.Octaves {
		total += s.noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= s.Persistence
		frequency *= 2
	}

	return float32(total / maxVal)
}

// HeightMap is one source of elevation with its vertical mapping.
type HeightMap struct {
	Name   string
	Source HeightSource
	Scale  float32
	Offset float32
}

// Build samples the source for every cell of coords: once at the center and once
// per corner direction at radius 1-sampleWidth.
func (h HeightMap) Build(coords hex.Set, uv UVScaler, sampleWidth float32) map[hex.Coord]CellSurface {
	radius := hex.Radius * (1 - sampleWidth)
	if radius <= 0 {
		radius = hex.Radius
	}

	surfaces := make(map[hex.Coord]CellSurface, coords.Len())
	for c := range coords {
		center := c.Position()
		s := CellSurface{
			Center:       h.sample(center, uv),
			SampleRadius: radius,
		}
		for i := range s.Corners {
			s.Corners[i] = h.sample(center.Add(hex.CornerVector(i).Scale(radius)), uv)
		}
		surfaces[c] = s
	}
	return surfaces
}

func (h HeightMap) sample(p math.Vec2, uv UVScaler) float32 {
	return h.Source.HeightAt(p, uv.UV(p))*h.Scale + h.Offset
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
