// Package terrain builds the hexagonal ground: per-cell height surfaces baked
// from height maps, the Map that owns the grid and its layers, the boundary
// blending node factories, and the pickable TerrainMesh.
package terrain

import (
	"fmt"
	"slices"
	"strings"
)

// Statistic reduces a handful of samples to one value.
// It selects both the neighbor blending style and the Sample algorithm.
type Statistic int

// Statistics.
const (
	Average Statistic = iota
	Median
	Min
	Max
)

var statisticNames = [...]string{
	Average: "average",
	Median:  "median",
	Min:     "min",
	Max:     "max",
}

// String returns the lowercase name used in configuration files.
func (s Statistic) String() string {
	if s < 0 || int(s) >= len(statisticNames) {
		return fmt.Sprintf("Statistic(%d)", int(s))
	}
	return statisticNames[s]
}

// ParseStatistic parses a configuration name, ignoring case.
func ParseStatistic(name string) (Statistic, error) {
	for i, n := range statisticNames {
		if strings.EqualFold(n, name) {
			return Statistic(i), nil
		}
	}
	return Average, fmt.Errorf("unknown statistic %q", name)
}

// Reduce applies the statistic to samples. An empty slice reduces to 0.
// The median of an even count is the mean of the two middle values.
func (s Statistic) Reduce(samples ...float32) float32 {
	if len(samples) == 0 {
		return 0
	}

	switch s {
	case Median:
		sorted := slices.Clone(samples)
		slices.Sort(sorted)
		mid := len(sorted) / 2
		if len(sorted)%2 == 1 {
			return sorted[mid]
		}
		return (sorted[mid-1] + sorted[mid]) / 2
	case Min:
		return slices.Min(samples)
	case Max:
		return slices.Max(samples)
	default:
		var sum float32
		for _, v := range samples {
			sum += v
		}
		return sum / float32(len(samples))
	}
}
