package world

import (
	"testing"
)

// Benchmark generating a fresh 4x2x4 region each iteration
func BenchmarkGenerate(b *testing.B) {
	g := NewGenerator(NewNoiseHeight(1, 0, 31))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w, _ := New(16)
		w.Generate(g, ChunkCoord{X: -2, Z: -2}, ChunkCoord{X: 1, Y: 1, Z: 1}, int64(i))
	}
}

// Benchmark global lookups that cross chunk borders, negative side included
func BenchmarkWorldBlock(b *testing.B) {
	w, _ := New(16)
	w.Generate(NewGenerator(FlatHeight(8)), ChunkCoord{X: -1, Z: -1}, ChunkCoord{X: 0, Z: 0}, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = w.Block(BlockPos{X: i%32 - 16, Y: 8, Z: (i/32)%32 - 16})
	}
}
