package ops_test

import (
	"testing"

	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/ops"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/primitives"
)

func BenchmarkExtrudeUndo(b *testing.B) {
	m, err := primitives.Grid(10, 10, 10, 10)
	if err != nil {
		b.Fatal(err)
	}
	targets := m.FaceIDs()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cmd := ops.NewExtrudeFaces(m, targets, 0.1)
		if err := cmd.Execute(); err != nil {
			b.Fatal(err)
		}
		if err := cmd.Undo(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTranslateUndo(b *testing.B) {
	m, err := primitives.Grid(10, 10, 20, 20)
	if err != nil {
		b.Fatal(err)
	}
	ids := m.VertexIDs()
	delta := geometry.NewVector3(0.01, 0, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cmd := ops.NewTranslateVertices(m, ids, delta)
		if err := cmd.Execute(); err != nil {
			b.Fatal(err)
		}
		if err := cmd.Undo(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLoopInsertUndo(b *testing.B) {
	m, err := primitives.Cube(1)
	if err != nil {
		b.Fatal(err)
	}
	seed := m.EdgeKeys()[0]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cmd := ops.NewLoopInsert(m, seed, 0.5)
		if err := cmd.Execute(); err != nil {
			b.Fatal(err)
		}
		if err := cmd.Undo(); err != nil {
			b.Fatal(err)
		}
	}
}
