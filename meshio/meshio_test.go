package meshio_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/meshio"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/primitives"
)

func buildSample(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, err := primitives.Cube(2)
	require.NoError(t, err)

	mat := m.AddMaterial("steel",
		mesh.WithBaseColor(mesh.Color{R: 0.6, G: 0.6, B: 0.65}),
		mesh.WithMetallic(0.9),
		mesh.WithRoughness(0.3),
		mesh.WithTexture(0, "steel_albedo.png"),
	)
	for _, id := range m.FaceIDs() {
		f, _ := m.Face(id)
		f.Material = mat
	}

	return m
}

func TestSnapshotBuildRoundTrip(t *testing.T) {
	m := buildSample(t)

	first := meshio.Snapshot(m)
	rebuilt, err := first.Build()
	require.NoError(t, err)
	second := meshio.Snapshot(rebuilt)

	require.Equal(t, first, second)
	require.Empty(t, rebuilt.CheckIntegrity())
	require.Equal(t, m.EdgeCount(), rebuilt.EdgeCount())
}

func TestBuildAdvancesCounters(t *testing.T) {
	m := buildSample(t)

	rebuilt, err := meshio.Snapshot(m).Build()
	require.NoError(t, err)

	fresh := rebuilt.AddVertex(geometry.NewVector3(9, 9, 9))
	for _, id := range m.VertexIDs() {
		require.NotEqual(t, id, fresh)
	}
}

func TestEncodeDecode(t *testing.T) {
	m := buildSample(t)

	var buf bytes.Buffer
	require.NoError(t, meshio.Encode(&buf, m))

	rebuilt, err := meshio.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, m.VertexCount(), rebuilt.VertexCount())
	require.Equal(t, m.FaceCount(), rebuilt.FaceCount())
	require.Equal(t, m.MaterialCount(), rebuilt.MaterialCount())

	mat, ok := rebuilt.Material(1)
	require.True(t, ok)
	require.Equal(t, "steel", mat.Name)
	require.Equal(t, "steel_albedo.png", mat.Textures[0])
}

func TestDecode_Garbage(t *testing.T) {
	_, err := meshio.Decode(bytes.NewBufferString("{not json"))
	require.ErrorIs(t, err, meshio.ErrBadData)
}

func TestBuild_BadReferences(t *testing.T) {
	tests := []struct {
		name string
		data meshio.MeshData
	}{
		{
			name: "face references unknown vertex",
			data: meshio.MeshData{
				Vertices: []meshio.VertexData{{ID: 1}, {ID: 2}, {ID: 3}},
				Faces:    []meshio.FaceData{{ID: 1, Vertices: []uint64{1, 2, 9}}},
			},
		},
		{
			name: "duplicate vertex id",
			data: meshio.MeshData{
				Vertices: []meshio.VertexData{{ID: 1}, {ID: 1}},
			},
		},
		{
			name: "degenerate winding",
			data: meshio.MeshData{
				Vertices: []meshio.VertexData{{ID: 1}, {ID: 2}},
				Faces:    []meshio.FaceData{{ID: 1, Vertices: []uint64{1, 2}}},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.data.Build()
			require.ErrorIs(t, err, meshio.ErrBadData)
		})
	}
}

func TestSnapshot_DeterministicOrder(t *testing.T) {
	m := buildSample(t)

	a := meshio.Snapshot(m)
	b := meshio.Snapshot(m)
	require.Equal(t, a, b)

	for i := 1; i < len(a.Vertices); i++ {
		require.Less(t, a.Vertices[i-1].ID, a.Vertices[i].ID)
	}
	for i := 1; i < len(a.Faces); i++ {
		require.Less(t, a.Faces[i-1].ID, a.Faces[i].ID)
	}
}
