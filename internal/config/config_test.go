package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"voxel-mesher/internal/world"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "world.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.ChunkSize != 16 || cfg.World.ChunkCount() != 16*8*16 || cfg.World.Seed != 420 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ChunkSize != Default().ChunkSize {
		t.Errorf("ChunkSize = %d", cfg.ChunkSize)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
chunk_size: 8
world:
  seed: 7
  min: [-1, 0, -1]
  max: [1, 0, 1]
mesh:
  workers: 3
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ChunkSize != 8 || cfg.World.Seed != 7 || cfg.Mesh.Workers != 3 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.World.From() != (world.ChunkCoord{X: -1, Y: 0, Z: -1}) || cfg.World.ChunkCount() != 9 {
		t.Errorf("range = %v..%v (%d chunks)", cfg.World.From(), cfg.World.To(), cfg.World.ChunkCount())
	}
	// Untouched keys keep defaults.
	if cfg.World.MaxHeight != 64 || cfg.World.Noise.Octaves != 4 || cfg.Mesh.QueueSize != 256 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"oversized chunk": "chunk_size: 100000\n",
		"inverted range":  "world:\n  min: [2, 0, 0]\n  max: [1, 0, 0]\n",
		"inverted height": "world:\n  min_height: 10\n  max_height: 2\n",
		"no workers":      "mesh:\n  workers: 0\n",
		"persistence":     "world:\n  noise:\n    persistence: -0.5\n",
		"lacunarity":      "world:\n  noise:\n    lacunarity: 0\n",
	}
	for name, body := range cases {
		if _, err := Load(writeConfig(t, body)); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: err = %v, want ErrInvalid", name, err)
		}
	}
	if _, err := Load(writeConfig(t, "chunk_size: [oops\n")); err == nil {
		t.Errorf("malformed yaml accepted")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v", err)
	}
}

func TestHeightsUsesBand(t *testing.T) {
	cfg := Default()
	cfg.World.MinHeight, cfg.World.MaxHeight = 3, 4
	h := cfg.World.Heights()
	for x := 0; x < 64; x += 5 {
		if v := h.HeightAt(x, -x); v < 3 || v > 4 {
			t.Fatalf("HeightAt = %d outside [3,4]", v)
		}
	}
}

func TestRepositoryConfigLoads(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "world.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.World.Noise.Scale != 1.0/64.0 {
		t.Errorf("noise scale = %v", cfg.World.Noise.Scale)
	}
}
