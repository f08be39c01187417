package config

import (
	"fmt"

	"voxel-mesher/internal/world"
)

// WorldGen describes the spawned chunk range and the terrain height field.
type WorldGen struct {
	Seed      int64    `yaml:"seed"`
	Min       [3]int   `yaml:"min"` // inclusive chunk-grid corner
	Max       [3]int   `yaml:"max"` // inclusive chunk-grid corner
	MinHeight int      `yaml:"min_height"`
	MaxHeight int      `yaml:"max_height"`
	Noise     NoiseGen `yaml:"noise"`
}

// NoiseGen shapes the octave value noise.
type NoiseGen struct {
	Scale       float64 `yaml:"scale"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
}

func defaultWorldGen() WorldGen {
	return WorldGen{
		Seed:      420,
		Min:       [3]int{0, 0, 0},
		Max:       [3]int{15, 7, 15},
		MinHeight: 8,
		MaxHeight: 64,
		Noise: NoiseGen{
			Scale:       1.0 / 64.0,
			Octaves:     4,
			Persistence: 0.5,
			Lacunarity:  2.0,
		},
	}
}

func (g WorldGen) validate() error {
	for axis := range 3 {
		if g.Min[axis] > g.Max[axis] {
			return fmt.Errorf("world.min %v exceeds world.max %v", g.Min, g.Max)
		}
	}
	if g.MinHeight > g.MaxHeight {
		return fmt.Errorf("world.min_height %d exceeds world.max_height %d", g.MinHeight, g.MaxHeight)
	}
	if g.Noise.Octaves <= 0 {
		return fmt.Errorf("world.noise.octaves must be positive, got %d", g.Noise.Octaves)
	}
	if g.Noise.Scale <= 0 {
		return fmt.Errorf("world.noise.scale must be positive, got %v", g.Noise.Scale)
	}
	if g.Noise.Persistence <= 0 {
		return fmt.Errorf("world.noise.persistence must be positive, got %v", g.Noise.Persistence)
	}
	if g.Noise.Lacunarity <= 0 {
		return fmt.Errorf("world.noise.lacunarity must be positive, got %v", g.Noise.Lacunarity)
	}
	return nil
}

// From and To return the chunk range handed to the spawn loop.
func (g WorldGen) From() world.ChunkCoord { return world.ChunkCoord{X: g.Min[0], Y: g.Min[1], Z: g.Min[2]} }

func (g WorldGen) To() world.ChunkCoord { return world.ChunkCoord{X: g.Max[0], Y: g.Max[1], Z: g.Max[2]} }

// ChunkCount is the number of chunks in the spawn range.
func (g WorldGen) ChunkCount() int {
	n := 1
	for axis := range 3 {
		n *= g.Max[axis] - g.Min[axis] + 1
	}
	return n
}

// Heights builds the noise height field for the configured band.
func (g WorldGen) Heights() *world.NoiseHeight {
	return &world.NoiseHeight{
		Seed:        g.Seed,
		Scale:       g.Noise.Scale,
		Octaves:     g.Noise.Octaves,
		Persistence: g.Noise.Persistence,
		Lacunarity:  g.Noise.Lacunarity,
		Min:         g.MinHeight,
		Max:         g.MaxHeight,
	}
}
