package meshing

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"sync"
	"testing"
	"time"

	"voxel-mesher/internal/world"
)

func generatedWorld(t testing.TB) *world.World {
	t.Helper()
	w := newWorld(t, 4)
	g := world.NewGenerator(world.NewNoiseHeight(420, -2, 9))
	w.Generate(g, world.ChunkCoord{X: -2, Y: -1, Z: -2}, world.ChunkCoord{X: 1, Y: 2, Z: 1}, 420)
	return w
}

func TestRemeshDirtyParallelMatchesSequential(t *testing.T) {
	seqWorld := generatedWorld(t)
	seq := &recordingSink{}
	want := RemeshDirty(seqWorld, seq)

	parWorld := generatedWorld(t)
	par := &recordingSink{}
	pool := NewWorkerPool(4, 2) // queue smaller than the job count
	defer pool.Shutdown()

	got, err := RemeshDirtyParallel(context.Background(), pool, parWorld, par)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("parallel meshed %d chunks, sequential %d", got, want)
	}
	for coord, sm := range seq.meshes {
		pm := par.meshes[coord]
		if pm == nil {
			t.Fatalf("chunk %v missing from parallel run", coord)
		}
		if pm.VertexCount() != sm.VertexCount() || pm.IndexCount() != sm.IndexCount() {
			t.Errorf("chunk %v: parallel %d/%d, sequential %d/%d", coord,
				pm.VertexCount(), pm.IndexCount(), sm.VertexCount(), sm.IndexCount())
		}
	}
	if n := len(parWorld.Store().ChunksNeedingMesh()); n != 0 {
		t.Errorf("%d chunks still marked after the parallel pass", n)
	}
}

func TestWorkerPoolJob(t *testing.T) {
	w := newWorld(t, 2)
	c := w.NewChunk(world.ChunkCoord{X: 3})
	fillChunk(c, solid())
	w.AddChunk(c)

	pool := NewWorkerPool(1, 1)
	defer pool.Shutdown()
	if pool.Workers() != 1 {
		t.Errorf("Workers() = %d, want 1", pool.Workers())
	}

	results := make(chan MeshResult, 1)
	if !pool.SubmitJob(MeshJob{Source: w, Chunk: c, ResultChan: results}) {
		t.Fatalf("SubmitJob refused on an empty queue")
	}
	select {
	case res := <-results:
		if res.Err != nil {
			t.Fatal(res.Err)
		}
		if res.Coord != c.Coord() || res.Mesh.FaceCount() != 24 {
			t.Errorf("result %v with %d faces", res.Coord, res.Mesh.FaceCount())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for mesh result")
	}
}

func TestWorkerPoolShutdown(t *testing.T) {
	pool := NewWorkerPool(2, 1)
	pool.Shutdown()
	pool.Shutdown()

	if pool.SubmitJob(MeshJob{}) {
		t.Errorf("SubmitJob accepted a job after Shutdown")
	}
	w := generatedWorld(t)
	if _, err := RemeshDirtyParallel(context.Background(), pool, w, &recordingSink{}); !errors.Is(err, context.Canceled) {
		t.Errorf("remesh on a stopped pool: err = %v", err)
	}
}

func TestRemeshDirtyParallelWithConcurrentEdits(t *testing.T) {
	w := generatedWorld(t)
	sink := &recordingSink{}
	pool := NewWorkerPool(4, 4)
	defer pool.Shutdown()

	done := make(chan struct{})
	go func() {
		defer close(done)

		stop := make(chan struct{})
		var writers sync.WaitGroup
		for i := range 4 {
			writers.Add(1)
			go func(seed int64) {
				defer writers.Done()
				rng := rand.New(rand.NewSource(seed))
				solid := world.NewSolid(testColor)
				for {
					select {
					case <-stop:
						return
					default:
					}
					// x = 4k-1 and 4k sit on either side of a chunk border
					pos := world.BlockPos{X: 4*(rng.Intn(4)-2) - rng.Intn(2), Y: rng.Intn(16) - 4, Z: rng.Intn(16) - 8}
					if rng.Intn(2) == 0 {
						w.SetBlock(pos, world.Air)
					} else {
						w.SetBlock(pos, solid)
					}
				}
			}(int64(i))
		}

		for range 20 {
			if _, err := RemeshDirtyParallel(context.Background(), pool, w, sink); err != nil {
				t.Error(err)
			}
		}
		close(stop)
		writers.Wait()

		// Edits made during a build must leave the chunk marked.
		for range 10 {
			n, err := RemeshDirtyParallel(context.Background(), pool, w, sink)
			if err != nil {
				t.Error(err)
			}
			if n == 0 {
				break
			}
		}
	}()

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("remesh with concurrent edits did not finish")
	}

	if n := len(w.Store().ChunksNeedingMesh()); n != 0 {
		t.Fatalf("%d chunks still marked after the edits stopped", n)
	}
	for _, c := range w.Store().Chunks() {
		if got, want := sink.meshes[c.Coord()], BuildChunkMesh(c, w); !reflect.DeepEqual(got, want) {
			t.Errorf("chunk %v: last delivered mesh is stale (%d faces, want %d)", c.Coord(), got.FaceCount(), want.FaceCount())
		}
	}
}
