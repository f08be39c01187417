package meshing

import (
	"context"
	"fmt"
	"sync"

	"voxel-mesher/internal/profiling"
	"voxel-mesher/internal/world"
)

// MeshJob represents a meshing job request
type MeshJob struct {
	Source BlockSource
	Chunk  *world.Chunk
	// Result channel - will be sent the result when done
	ResultChan chan MeshResult
}

// MeshResult contains the result of a meshing operation
type MeshResult struct {
	Coord   world.ChunkCoord
	Mesh    *MeshData
	Version uint64 // chunk version the mesh was built from
	Err     error
}

// WorkerPool builds chunk meshes on a fixed set of goroutines. Independent
// chunks never write to each other, so jobs need no coordination beyond
// the per-chunk read locks taken by the builder.
type WorkerPool struct {
	jobQueue chan MeshJob
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	once     sync.Once
}

// NewWorkerPool creates a new mesh worker pool
func NewWorkerPool(workers int, queueSize int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())

	pool := &WorkerPool{
		jobQueue: make(chan MeshJob, queueSize),
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := range workers {
		pool.wg.Add(1)
		go pool.worker(i)
	}

	return pool
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool) Workers() int { return p.workers }

// SubmitJob submits a mesh generation job to the pool
// Returns true if job was submitted successfully, false if queue is full
func (p *WorkerPool) SubmitJob(job MeshJob) bool {
	select {
	case <-p.ctx.Done():
		return false
	default:
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false // Queue is full
	}
}

// SubmitJobBlocking queues a job, waiting for room. It fails if ctx is
// cancelled or the pool is shut down first.
func (p *WorkerPool) SubmitJobBlocking(ctx context.Context, job MeshJob) error {
	if p.ctx.Err() != nil {
		return context.Canceled
	}
	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ctx.Done():
		return context.Canceled
	}
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			result := runJob(job)
			select {
			case job.ResultChan <- result:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

func runJob(job MeshJob) MeshResult {
	defer profiling.Track("meshing.WorkerPool.job")()

	mesh, version := buildChunkMesh(job.Chunk, job.Source)
	result := MeshResult{
		Coord:   job.Chunk.Coord(),
		Mesh:    mesh,
		Version: version,
	}
	if err := mesh.Validate(); err != nil {
		result.Err = fmt.Errorf("chunk %v: %w", result.Coord, err)
	}
	return result
}

// Shutdown stops the workers and waits for them to exit. Queued jobs that
// were not picked up are dropped. Safe to call more than once.
func (p *WorkerPool) Shutdown() {
	p.once.Do(func() {
		p.cancel()
		p.wg.Wait()
	})
}

// QueueLength returns the current number of jobs in the queue
func (p *WorkerPool) QueueLength() int {
	return len(p.jobQueue)
}

// RemeshDirtyParallel is RemeshDirty spread over pool. Meshes are handed to
// sink on the calling goroutine, so sink needs no locking of its own.
// It returns the number of chunks delivered and the first job error.
func RemeshDirtyParallel(ctx context.Context, pool *WorkerPool, w *world.World, sink Sink) (int, error) {
	defer profiling.Track("meshing.RemeshDirtyParallel")()

	chunks := w.Store().ChunksNeedingMesh()
	if len(chunks) == 0 {
		return 0, nil
	}

	byCoord := make(map[world.ChunkCoord]*world.Chunk, len(chunks))
	results := make(chan MeshResult, len(chunks))

	submitted := 0
	var firstErr error
	for _, c := range chunks {
		byCoord[c.Coord()] = c
		if err := pool.SubmitJobBlocking(ctx, MeshJob{Source: w, Chunk: c, ResultChan: results}); err != nil {
			firstErr = err
			break
		}
		submitted++
	}

	delivered := 0
	for range submitted {
		var res MeshResult
		select {
		case res = <-results:
		case <-ctx.Done():
			if firstErr == nil {
				firstErr = ctx.Err()
			}
			return delivered, firstErr
		case <-pool.ctx.Done():
			if firstErr == nil {
				firstErr = context.Canceled
			}
			return delivered, firstErr
		}

		if res.Err != nil {
			if firstErr == nil {
				firstErr = res.Err
			}
			continue
		}
		sink.UploadChunkMesh(res.Coord, res.Mesh)
		byCoord[res.Coord].MarkMeshed(res.Version)
		delivered++
	}
	return delivered, firstErr
}
