// Command meshdump generates a world, meshes every chunk on a worker pool
// and writes the result to a compressed mesh file.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"voxel-mesher/internal/config"
	"voxel-mesher/internal/meshing"
	"voxel-mesher/internal/meshio"
	"voxel-mesher/internal/profiling"
	"voxel-mesher/internal/world"

	"github.com/xlab/closer"
)

func main() {
	configPath := flag.String("config", "", "world config (YAML); defaults when empty")
	out := flag.String("out", "world.mesh.zst", "output mesh file")
	workers := flag.Int("workers", 0, "mesh workers; overrides the config when > 0")
	flag.Parse()

	defer closer.Close()

	cfg, err := config.Load(*configPath)
	if err != nil {
		closer.Fatalln(err)
	}
	if *workers > 0 {
		cfg.Mesh.Workers = *workers
	}

	stats, err := run(context.Background(), cfg, *out)
	if err != nil {
		closer.Fatalln(err)
	}
	log.Printf("meshed %d/%d chunks: %d faces, %d vertices, %d indices in %v",
		stats.meshed, stats.chunks, stats.faces, stats.vertices, stats.indices, stats.elapsed.Round(time.Millisecond))
	log.Printf("wrote %s", *out)
	log.Printf("profile: %s", profiling.TopN(6))
}

type dumpStats struct {
	chunks, meshed           int
	faces, vertices, indices int
	elapsed                  time.Duration
}

func run(ctx context.Context, cfg config.Config, out string) (dumpStats, error) {
	var stats dumpStats
	start := time.Now()

	w, err := world.New(cfg.ChunkSize)
	if err != nil {
		return stats, err
	}
	gen := world.NewGenerator(cfg.World.Heights())
	stats.chunks = w.Generate(gen, cfg.World.From(), cfg.World.To(), cfg.World.Seed)
	log.Printf("generated %d chunks of %d^3 (seed %d)", stats.chunks, cfg.ChunkSize, cfg.World.Seed)

	pool := meshing.NewWorkerPool(cfg.Mesh.Workers, cfg.Mesh.QueueSize)
	closer.Bind(pool.Shutdown)
	defer pool.Shutdown()
	log.Printf("meshing on %d workers (queue %d)", pool.Workers(), cfg.Mesh.QueueSize)

	var meshes []meshio.ChunkMesh
	sink := meshing.SinkFunc(func(coord world.ChunkCoord, m *meshing.MeshData) {
		meshes = append(meshes, meshio.ChunkMesh{Coord: coord, Mesh: m})
		stats.faces += m.FaceCount()
		stats.vertices += m.VertexCount()
		stats.indices += m.IndexCount()
	})
	stats.meshed, err = meshing.RemeshDirtyParallel(ctx, pool, w, sink)
	if err != nil {
		return stats, err
	}
	stats.elapsed = time.Since(start)

	if err := meshio.WriteMeshes(out, w.ChunkSize(), meshes); err != nil {
		return stats, err
	}
	return stats, nil
}
