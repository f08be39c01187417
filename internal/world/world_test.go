package world

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFloorDivMod(t *testing.T) {
	cases := []struct{ a, b, div, mod int }{
		{0, 32, 0, 0},
		{31, 32, 0, 31},
		{32, 32, 1, 0},
		{-1, 32, -1, 31},
		{-32, 32, -1, 0},
		{-33, 32, -2, 31},
		{-5, 2, -3, 1},
	}
	for _, c := range cases {
		if got := FloorDiv(c.a, c.b); got != c.div {
			t.Errorf("FloorDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.div)
		}
		if got := Mod(c.a, c.b); got != c.mod {
			t.Errorf("Mod(%d,%d) = %d, want %d", c.a, c.b, got, c.mod)
		}
		// a == div*b + mod must always hold
		if FloorDiv(c.a, c.b)*c.b+Mod(c.a, c.b) != c.a {
			t.Errorf("identity broken for %d/%d", c.a, c.b)
		}
	}
}

func TestSplitGlobalNegative(t *testing.T) {
	cc, local := SplitGlobal(BlockPos{-1, 0, 0}, 32)
	if cc != (ChunkCoord{-1, 0, 0}) || local != (BlockPos{31, 0, 0}) {
		t.Errorf("SplitGlobal(-1,0,0) = %v %v", cc, local)
	}
}

func TestNewWorldRejectsBadChunkSize(t *testing.T) {
	if _, err := New(MaxChunkSize + 1); !errors.Is(err, ErrChunkSizeTooLarge) {
		t.Errorf("New(oversize) err = %v", err)
	}
	if _, err := New(-3); !errors.Is(err, ErrChunkSizeInvalid) {
		t.Errorf("New(-3) err = %v", err)
	}
}

func TestWorldBlockMatchesChunk(t *testing.T) {
	const size = 4
	w, err := New(size)
	if err != nil {
		t.Fatal(err)
	}
	coords := []ChunkCoord{{0, 0, 0}, {-1, 0, 0}, {-1, -1, -1}, {2, 0, -3}}
	for i, cc := range coords {
		c := w.NewChunk(cc)
		for x := range size {
			for y := range size {
				for z := range size {
					if (x+y+z+i)%2 == 0 {
						c.SetBlock(BlockPos{x, y, z}, NewSolid(mgl32.Vec4{float32(i), float32(x), float32(y), float32(z)}))
					}
				}
			}
		}
		if !w.AddChunk(c) {
			t.Fatalf("AddChunk(%v) refused", cc)
		}
	}

	for gx := -8; gx < 12; gx++ {
		for gy := -6; gy < 6; gy++ {
			for gz := -14; gz < 6; gz++ {
				g := BlockPos{gx, gy, gz}
				got, ok := w.Block(g)
				cc := ChunkCoord{FloorDiv(gx, size), FloorDiv(gy, size), FloorDiv(gz, size)}
				chunk := w.GetChunk(cc)
				if chunk == nil {
					if ok {
						t.Fatalf("Block(%v) present without a chunk", g)
					}
					continue
				}
				want, wantOK := chunk.GetBlock(BlockPos{Mod(gx, size), Mod(gy, size), Mod(gz, size)})
				if ok != wantOK || got != want {
					t.Fatalf("Block(%v) = %+v,%v want %+v,%v", g, got, ok, want, wantOK)
				}
			}
		}
	}
}

func TestWorldNegativeBoundary(t *testing.T) {
	w, _ := New(32)
	c := w.NewChunk(ChunkCoord{-1, 0, 0})
	marker := NewSolid(mgl32.Vec4{0.25, 0.5, 0.75, 1})
	c.SetBlock(BlockPos{31, 0, 0}, marker)
	w.AddChunk(c)

	got, ok := w.Block(BlockPos{-1, 0, 0})
	if !ok || got != marker {
		t.Errorf("Block(-1,0,0) = %+v,%v want the marker at chunk (-1,0,0) local (31,0,0)", got, ok)
	}
	if _, ok := w.Block(BlockPos{0, 0, 0}); ok {
		t.Errorf("Block(0,0,0) should be absent, chunk (0,0,0) is not registered")
	}
}

func TestAddChunkUnique(t *testing.T) {
	w, _ := New(2)
	if !w.AddChunk(w.NewChunk(ChunkCoord{1, 1, 1})) {
		t.Fatalf("first AddChunk refused")
	}
	if w.AddChunk(w.NewChunk(ChunkCoord{1, 1, 1})) {
		t.Errorf("duplicate coordinate accepted")
	}
	if w.AddChunk(NewChunk(ChunkCoord{5, 5, 5}, 3)) {
		t.Errorf("chunk of foreign size accepted")
	}
	if w.Store().Len() != 1 {
		t.Errorf("Len = %d, want 1", w.Store().Len())
	}
}

func TestSetBlockMarksBorderNeighbours(t *testing.T) {
	w, _ := New(4)
	for _, cc := range []ChunkCoord{{0, 0, 0}, {-1, 0, 0}, {1, 0, 0}, {0, 1, 0}} {
		c := w.NewChunk(cc)
		c.MarkMeshed(0)
		w.AddChunk(c)
	}

	// Interior write touches only its own chunk.
	w.SetBlock(BlockPos{1, 1, 1}, NewSolid(DefaultBlockColor))
	if got := len(w.Store().ChunksNeedingMesh()); got != 1 {
		t.Fatalf("interior write marked %d chunks, want 1", got)
	}

	// Write on the -X face also dirties chunk (-1,0,0) only.
	w.GetChunk(ChunkCoord{}).MarkMeshed(1)
	w.SetBlock(BlockPos{0, 1, 1}, NewSolid(DefaultBlockColor))
	if !w.GetChunk(ChunkCoord{-1, 0, 0}).NeedsMesh() {
		t.Errorf("-X neighbour not marked")
	}
	if w.GetChunk(ChunkCoord{1, 0, 0}).NeedsMesh() || w.GetChunk(ChunkCoord{0, 1, 0}).NeedsMesh() {
		t.Errorf("unrelated neighbour marked")
	}

	if w.SetBlock(BlockPos{100, 0, 0}, Air) {
		t.Errorf("SetBlock outside every chunk should report false")
	}
}

func TestStoreChunksOrdered(t *testing.T) {
	w, _ := New(2)
	for _, cc := range []ChunkCoord{{1, 0, 0}, {0, 0, 1}, {0, 1, 0}, {-1, 5, 5}} {
		w.AddChunk(w.NewChunk(cc))
	}
	want := []ChunkCoord{{-1, 5, 5}, {0, 0, 1}, {0, 1, 0}, {1, 0, 0}}
	got := w.Store().Chunks()
	for i := range want {
		if got[i].Coord() != want[i] {
			t.Errorf("Chunks()[%d] = %v, want %v", i, got[i].Coord(), want[i])
		}
	}
}
