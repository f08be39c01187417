package meshio

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"voxel-mesher/internal/meshing"
	"voxel-mesher/internal/world"

	"github.com/klauspost/compress/zstd"
)

// Version of the export layout.
const Version = 1

var ErrVersion = errors.New("unsupported mesh export version")

// Header is written as a JSON line ahead of the gob body so a dump can be
// identified with zstdcat | head -1.
type Header struct {
	Version   int `json:"version"`
	ChunkSize int `json:"chunk_size"`
	Chunks    int `json:"chunks"`
	Vertices  int `json:"vertices"`
	Indices   int `json:"indices"`
}

// ChunkMesh is one exported chunk mesh. Positions are chunk-local; add
// Coord's origin to place it in the world.
type ChunkMesh struct {
	Coord world.ChunkCoord
	Mesh  *meshing.MeshData
}

type body struct {
	Header Header
	Meshes []ChunkMesh
}

// WriteMeshes writes meshes to path as a zstd frame holding a JSON header
// line and a gob body. Meshes are stored in coordinate order whatever order
// they arrive in; nil meshes are stored empty.
func WriteMeshes(path string, chunkSize int, meshes []ChunkMesh) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}

	sorted := make([]ChunkMesh, len(meshes))
	copy(sorted, meshes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Coord.Less(sorted[j].Coord) })

	b := body{
		Header: Header{Version: Version, ChunkSize: chunkSize, Chunks: len(sorted)},
		Meshes: sorted,
	}
	for i := range sorted {
		if sorted[i].Mesh == nil {
			sorted[i].Mesh = &meshing.MeshData{}
		}
		b.Header.Vertices += sorted[i].Mesh.VertexCount()
		b.Header.Indices += sorted[i].Mesh.IndexCount()
	}

	bw := bufio.NewWriterSize(enc, 256*1024)
	hb, _ := json.Marshal(b.Header)
	if _, err := bw.Write(hb); err != nil {
		enc.Close()
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		enc.Close()
		return err
	}
	if err := gob.NewEncoder(bw).Encode(&b); err != nil {
		enc.Close()
		return fmt.Errorf("gob encode: %w", err)
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return f.Close()
}

// ReadMeshes reads a file written by WriteMeshes and validates every mesh.
func ReadMeshes(path string) (Header, []ChunkMesh, error) {
	var b body
	f, err := os.Open(path)
	if err != nil {
		return b.Header, nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return b.Header, nil, err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 256*1024)

	line, err := br.ReadBytes('\n')
	if err != nil {
		return b.Header, nil, fmt.Errorf("read header: %w", err)
	}
	var hdr Header
	if err := json.Unmarshal(line, &hdr); err != nil {
		return hdr, nil, fmt.Errorf("decode header: %w", err)
	}
	if hdr.Version != Version {
		return hdr, nil, fmt.Errorf("%w: %d", ErrVersion, hdr.Version)
	}

	if err := gob.NewDecoder(br).Decode(&b); err != nil {
		return hdr, nil, fmt.Errorf("gob decode: %w", err)
	}
	for i := range b.Meshes {
		// gob drops empty meshes down to nil
		if b.Meshes[i].Mesh == nil {
			b.Meshes[i].Mesh = &meshing.MeshData{}
		}
		if err := b.Meshes[i].Mesh.Validate(); err != nil {
			return b.Header, nil, fmt.Errorf("chunk %v: %w", b.Meshes[i].Coord, err)
		}
	}
	return b.Header, b.Meshes, nil
}
