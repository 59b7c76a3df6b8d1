package ops_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/meshio"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/ops"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/primitives"
)

// requireUndoExact executes cmd, undoes it, and demands the mesh come back
// structurally identical, ids included.
func requireUndoExact(t *testing.T, m *mesh.Mesh, cmd ops.Command) {
	t.Helper()
	before := meshio.Snapshot(m)
	edges := m.EdgeCount()

	require.NoError(t, cmd.Execute())
	require.True(t, cmd.CanUndo())
	require.NoError(t, cmd.Undo())

	require.Equal(t, before, meshio.Snapshot(m))
	require.Equal(t, edges, m.EdgeCount())
	require.Empty(t, m.CheckIntegrity())
}

func cube(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, err := primitives.Cube(2)
	require.NoError(t, err)

	return m
}

func TestExtrudeCubeFace(t *testing.T) {
	m := cube(t)
	top := mesh.FaceID(2) // +Z face of the box

	cmd := ops.NewExtrudeFaces(m, []mesh.FaceID{top}, 1)
	require.NoError(t, cmd.Execute())

	require.Equal(t, 12, m.VertexCount())
	require.Equal(t, 10, m.FaceCount())
	require.Empty(t, m.CheckIntegrity())

	// The original top face id is gone; the cap sits one unit higher.
	_, ok := m.Face(top)
	require.False(t, ok)

	maxZ := math.Inf(-1)
	for _, id := range m.VertexIDs() {
		v, _ := m.Vertex(id)
		if v.Position.Z > maxZ {
			maxZ = v.Position.Z
		}
	}
	require.InDelta(t, 2.0, maxZ, 1e-9)
}

func TestExtrudeUndoExact(t *testing.T) {
	m := cube(t)
	requireUndoExact(t, m, ops.NewExtrudeFaces(m, []mesh.FaceID{2}, 1))
}

func TestExtrudeCarriesVertexAttributes(t *testing.T) {
	m := mesh.New()
	n := geometry.NewVector3(0, 0, 1)
	a := m.AddVertex(geometry.NewVector3(0, 0, 0), mesh.WithNormal(n), mesh.WithUV(geometry.NewVector2(0, 0)))
	b := m.AddVertex(geometry.NewVector3(1, 0, 0), mesh.WithNormal(n), mesh.WithUV(geometry.NewVector2(1, 0)))
	c := m.AddVertex(geometry.NewVector3(0, 1, 0), mesh.WithNormal(n), mesh.WithUV(geometry.NewVector2(0, 1)))
	f, err := m.AddFace([]mesh.VertexID{a, b, c})
	require.NoError(t, err)

	require.NoError(t, ops.NewExtrudeFaces(m, []mesh.FaceID{f}, 1).Execute())

	// Every duplicated lid vertex keeps both attributes of its source.
	for _, id := range m.VertexIDs() {
		if id == a || id == b || id == c {
			continue
		}
		v, _ := m.Vertex(id)
		require.NotNil(t, v.Normal, "vertex %d", id)
		require.Equal(t, n, *v.Normal)
		require.NotNil(t, v.UV, "vertex %d", id)
	}
}

func TestSubdivideTriangle(t *testing.T) {
	m := mesh.New()
	a := m.AddVertex(geometry.NewVector3(0, 0, 0))
	b := m.AddVertex(geometry.NewVector3(2, 0, 0))
	c := m.AddVertex(geometry.NewVector3(0, 2, 0))
	f, err := m.AddFace([]mesh.VertexID{a, b, c})
	require.NoError(t, err)

	cmd := ops.NewSubdivideFaces(m, []mesh.FaceID{f})
	require.NoError(t, cmd.Execute())

	require.Equal(t, 4, m.VertexCount())
	require.Equal(t, 3, m.FaceCount())
	_, ok := m.Face(f)
	require.False(t, ok)
	require.Empty(t, m.CheckIntegrity())

	require.NoError(t, cmd.Undo())
	require.Equal(t, 3, m.VertexCount())
	require.Equal(t, 1, m.FaceCount())
	_, ok = m.Face(f)
	require.True(t, ok)
}

func TestCollapseSharedEdge(t *testing.T) {
	m := mesh.New()
	a := m.AddVertex(geometry.NewVector3(0, 0, 0))
	b := m.AddVertex(geometry.NewVector3(2, 0, 0))
	c := m.AddVertex(geometry.NewVector3(1, 1, 0))
	d := m.AddVertex(geometry.NewVector3(1, -1, 0))
	_, err := m.AddFace([]mesh.VertexID{a, b, c})
	require.NoError(t, err)
	_, err = m.AddFace([]mesh.VertexID{b, a, d})
	require.NoError(t, err)

	cmd := ops.NewCollapseEdges(m, []mesh.EdgeKey{mesh.MakeEdgeKey(a, b)}, ops.CollapseMidpoint)
	require.NoError(t, cmd.Execute())

	// Both triangles spanned the edge and vanish; the merged vertex and
	// the two opposite corners survive.
	require.Equal(t, 3, m.VertexCount())
	require.Equal(t, 0, m.FaceCount())
	require.Empty(t, m.CheckIntegrity())

	var merged *mesh.Vertex
	for _, id := range m.VertexIDs() {
		if id != c && id != d {
			merged, _ = m.Vertex(id)
		}
	}
	require.NotNil(t, merged)
	require.InDelta(t, 1.0, merged.Position.X, 1e-9)
	require.InDelta(t, 0.0, merged.Position.Y, 1e-9)
}

func TestCollapseModes(t *testing.T) {
	tests := []struct {
		name  string
		mode  ops.CollapseMode
		wantX float64
	}{
		{"midpoint", ops.CollapseMidpoint, 1},
		{"first", ops.CollapseFirst, 0},
		{"second", ops.CollapseSecond, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := mesh.New()
			a := m.AddVertex(geometry.NewVector3(0, 0, 0))
			b := m.AddVertex(geometry.NewVector3(2, 0, 0))
			c := m.AddVertex(geometry.NewVector3(1, 1, 0))
			_, err := m.AddFace([]mesh.VertexID{a, b, c})
			require.NoError(t, err)

			cmd := ops.NewCollapseEdges(m, []mesh.EdgeKey{mesh.MakeEdgeKey(a, b)}, tc.mode)
			require.NoError(t, cmd.Execute())

			for _, id := range m.VertexIDs() {
				if id == c {
					continue
				}
				v, _ := m.Vertex(id)
				require.InDelta(t, tc.wantX, v.Position.X, 1e-9)
			}
		})
	}
}

func TestCollapseKeepsPinnedEdges(t *testing.T) {
	m := mesh.New()
	a := m.AddVertex(geometry.NewVector3(0, 0, 0))
	b := m.AddVertex(geometry.NewVector3(1, 0, 0))
	c := m.AddVertex(geometry.NewVector3(0, 1, 0))
	d := m.AddVertex(geometry.NewVector3(0, 2, 0))
	_, err := m.AddFace([]mesh.VertexID{a, b, c})
	require.NoError(t, err)
	_, err = m.AddEdge(c, d)
	require.NoError(t, err)

	cmd := ops.NewCollapseEdges(m, []mesh.EdgeKey{mesh.MakeEdgeKey(a, c)}, ops.CollapseMidpoint)
	require.NoError(t, cmd.Execute())

	rep := cmd.(interface{ Report() *ops.Report }).Report()
	require.Equal(t, 1, rep.Succeeded())

	// The triangle spanned the collapsed edge and vanishes; the pinned
	// edge hops from the dead endpoint onto the merged vertex.
	require.Equal(t, 0, m.FaceCount())
	require.Equal(t, 3, m.VertexCount())
	require.Equal(t, 1, m.EdgeCount())

	key := m.EdgeKeys()[0]
	e, ok := m.EdgeByKey(key)
	require.True(t, ok)
	require.True(t, e.Pinned())

	merged, hasD := key.Other(d)
	require.True(t, hasD)
	v, ok := m.Vertex(merged)
	require.True(t, ok)
	require.InDelta(t, 0, v.Position.X, 1e-9)
	require.InDelta(t, 0.5, v.Position.Y, 1e-9)
	require.Empty(t, m.CheckIntegrity())
}

func TestMergeFaces_NonCoplanar(t *testing.T) {
	m := mesh.New()
	a := m.AddVertex(geometry.NewVector3(0, 0, 0))
	b := m.AddVertex(geometry.NewVector3(2, 0, 0))
	c := m.AddVertex(geometry.NewVector3(1, 1, 0))
	d := m.AddVertex(geometry.NewVector3(1, -1, 1)) // bent out of plane
	f1, err := m.AddFace([]mesh.VertexID{a, b, c})
	require.NoError(t, err)
	f2, err := m.AddFace([]mesh.VertexID{b, a, d})
	require.NoError(t, err)

	before := meshio.Snapshot(m)
	cmd := ops.NewMergeFaces(m, f1, f2)
	err = cmd.Execute()
	require.Error(t, err)

	var terr *ops.TopologyError
	require.ErrorAs(t, err, &terr)
	require.ErrorIs(t, err, ops.ErrNotCoplanar)

	// Nothing changed, and the command can be retried after fixing.
	require.Equal(t, before, meshio.Snapshot(m))
}

func TestMergeFaces_Coplanar(t *testing.T) {
	m, err := primitives.Grid(2, 1, 2, 1)
	require.NoError(t, err)
	faces := m.FaceIDs()
	require.Len(t, faces, 2)

	cmd := ops.NewMergeFaces(m, faces[0], faces[1])
	require.NoError(t, cmd.Execute())

	require.Equal(t, 1, m.FaceCount())
	for _, id := range m.FaceIDs() {
		f, _ := m.Face(id)
		require.Equal(t, 6, f.VertexCount())
	}
	require.Empty(t, m.CheckIntegrity())

	require.NoError(t, cmd.Undo())
	require.Equal(t, 2, m.FaceCount())
	_, ok := m.Face(faces[0])
	require.True(t, ok)
	_, ok = m.Face(faces[1])
	require.True(t, ok)
}

func TestMergeFaces_SelfAndUnshared(t *testing.T) {
	m := cube(t)
	require.ErrorIs(t, ops.NewMergeFaces(m, 1, 1).Execute(), ops.ErrSelfMerge)
	// Perpendicular box sides fail the plane check before anything else.
	require.ErrorIs(t, ops.NewMergeFaces(m, 1, 3).Execute(), ops.ErrNotCoplanar)

	// Two coplanar triangles with no common edge.
	m2 := mesh.New()
	a := m2.AddVertex(geometry.NewVector3(0, 0, 0))
	b := m2.AddVertex(geometry.NewVector3(1, 0, 0))
	c := m2.AddVertex(geometry.NewVector3(0, 1, 0))
	d := m2.AddVertex(geometry.NewVector3(5, 0, 0))
	e := m2.AddVertex(geometry.NewVector3(6, 0, 0))
	f := m2.AddVertex(geometry.NewVector3(5, 1, 0))
	f1, err := m2.AddFace([]mesh.VertexID{a, b, c})
	require.NoError(t, err)
	f2, err := m2.AddFace([]mesh.VertexID{d, e, f})
	require.NoError(t, err)
	require.ErrorIs(t, ops.NewMergeFaces(m2, f1, f2).Execute(), ops.ErrNoSharedEdge)
}

func TestLoopInsertAroundCube(t *testing.T) {
	m := cube(t)
	seed := mesh.MakeEdgeKey(1, 5) // vertical box edge

	cmd := ops.NewLoopInsert(m, seed, 0.5)
	require.NoError(t, cmd.Execute())

	// Four side quads split in two, caps untouched.
	require.Equal(t, 12, m.VertexCount())
	require.Equal(t, 10, m.FaceCount())
	require.Empty(t, m.CheckIntegrity())

	// The inserted ring is a closed loop of four edges on new vertices.
	var loop []mesh.EdgeKey
	for _, key := range m.EdgeKeys() {
		if key.A > 8 && key.B > 8 {
			loop = append(loop, key)
		}
	}
	require.Len(t, loop, 4)

	require.NoError(t, cmd.Undo())
	require.Equal(t, 8, m.VertexCount())
	require.Equal(t, 6, m.FaceCount())
	require.Empty(t, m.CheckIntegrity())
}

func TestLoopInsertThenRemove(t *testing.T) {
	m := cube(t)
	require.NoError(t, ops.NewLoopInsert(m, mesh.MakeEdgeKey(1, 5), 0.5).Execute())

	var loop []mesh.EdgeKey
	for _, key := range m.EdgeKeys() {
		if key.A > 8 && key.B > 8 {
			loop = append(loop, key)
		}
	}
	require.Len(t, loop, 4)

	cmd := ops.NewLoopRemove(m, loop)
	require.NoError(t, cmd.Execute())

	require.Equal(t, 8, m.VertexCount())
	require.Equal(t, 6, m.FaceCount())
	require.Equal(t, 12, m.EdgeCount())
	require.Empty(t, m.CheckIntegrity())
}

func TestLoopRemove_InvalidLoop(t *testing.T) {
	m := cube(t)
	// A single box edge is an open chain; its endpoints touch only one
	// loop edge each.
	err := ops.NewLoopRemove(m, []mesh.EdgeKey{mesh.MakeEdgeKey(1, 5)}).Execute()
	require.ErrorIs(t, err, ops.ErrInvalidLoop)
}

func TestInsetFace(t *testing.T) {
	m := cube(t)
	cmd := ops.NewInsetFaces(m, []mesh.FaceID{2}, 0.25)
	require.NoError(t, cmd.Execute())

	require.Equal(t, 12, m.VertexCount())
	require.Equal(t, 10, m.FaceCount())
	require.Empty(t, m.CheckIntegrity())

	require.NoError(t, cmd.Undo())
	require.Equal(t, 8, m.VertexCount())
	require.Equal(t, 6, m.FaceCount())
}

func TestInsetRegion(t *testing.T) {
	m, err := primitives.Grid(2, 1, 2, 1)
	require.NoError(t, err)
	faces := m.FaceIDs()

	cmd := ops.NewInsetFaces(m, faces, 0.1, ops.InsetRegion())
	require.NoError(t, cmd.Execute())

	// One shared inner ring of 6 vertices; rim quads only on the region
	// boundary, so the interior edge grows no wall.
	require.Equal(t, 12, m.VertexCount())
	require.Equal(t, 8, m.FaceCount())
	require.Empty(t, m.CheckIntegrity())

	require.NoError(t, cmd.Undo())
	require.Equal(t, 6, m.VertexCount())
	require.Equal(t, 2, m.FaceCount())
}

func TestSeparateFaces(t *testing.T) {
	m := cube(t)
	before := meshio.Snapshot(m)

	cmd := ops.NewSeparateFaces(m, []mesh.FaceID{2}, ops.SeparateOffset(geometry.NewVector3(0, 0, 3)))
	require.NoError(t, cmd.Execute())

	// The lid becomes its own island on four duplicated vertices; the
	// originals keep serving the side walls.
	require.Equal(t, 12, m.VertexCount())
	require.Equal(t, 6, m.FaceCount())
	require.Empty(t, m.CheckIntegrity())

	require.NoError(t, cmd.Undo())
	require.Equal(t, before, meshio.Snapshot(m))
}

func TestRipFaces(t *testing.T) {
	m := cube(t)
	cmd := ops.NewRipFaces(m, []mesh.FaceID{2})
	require.NoError(t, cmd.Execute())

	require.Equal(t, 12, m.VertexCount())
	require.Equal(t, 6, m.FaceCount())
	require.Empty(t, m.CheckIntegrity())
	require.False(t, cmd.CanUndo())
}

func TestFlipFaces(t *testing.T) {
	m := cube(t)
	f, _ := m.Face(2)
	n0, ok := f.Normal()
	require.True(t, ok)

	cmd := ops.NewFlipFaces(m, []mesh.FaceID{2})
	require.NoError(t, cmd.Execute())

	f, _ = m.Face(2)
	n1, ok := f.Normal()
	require.True(t, ok)
	require.InDelta(t, -1, n0.Dot(n1), 1e-9)

	require.NoError(t, cmd.Undo())
	f, _ = m.Face(2)
	n2, _ := f.Normal()
	require.InDelta(t, 1, n0.Dot(n2), 1e-9)
}

func TestTransformUndoExact(t *testing.T) {
	m := cube(t)
	ids := m.VertexIDs()

	requireUndoExact(t, m, ops.NewTranslateVertices(m, ids, geometry.NewVector3(1, 2, 3)))
	requireUndoExact(t, m, ops.NewRotateVertices(m, ids, geometry.Vector3{}, geometry.NewVector3(0, 0, 1), math.Pi/3))
	requireUndoExact(t, m, ops.NewScaleVertices(m, ids, geometry.Vector3{}, geometry.NewVector3(2, 2, 0.5)))
}

func TestRotateVertices(t *testing.T) {
	m := mesh.New()
	id := m.AddVertex(geometry.NewVector3(1, 0, 0))

	cmd := ops.NewRotateVertices(m, []mesh.VertexID{id},
		geometry.Vector3{}, geometry.NewVector3(0, 0, 1), math.Pi/2)
	require.NoError(t, cmd.Execute())

	v, _ := m.Vertex(id)
	require.InDelta(t, 0, v.Position.X, 1e-9)
	require.InDelta(t, 1, v.Position.Y, 1e-9)
}

func TestUVCommands(t *testing.T) {
	m := mesh.New()
	a := m.AddVertex(geometry.NewVector3(0, 0, 0), mesh.WithUV(geometry.NewVector2(0.25, 0.25)))
	b := m.AddVertex(geometry.NewVector3(1, 0, 0)) // no UV

	cmd := ops.NewTranslateUVs(m, []mesh.VertexID{a, b}, geometry.NewVector2(0.5, 0))
	require.NoError(t, cmd.Execute())

	va, _ := m.Vertex(a)
	require.InDelta(t, 0.75, va.UV.X, 1e-9)
	vb, _ := m.Vertex(b)
	require.Nil(t, vb.UV)

	require.NoError(t, cmd.Undo())
	va, _ = m.Vertex(a)
	require.InDelta(t, 0.25, va.UV.X, 1e-9)

	set := ops.NewSetUVs(m, []mesh.VertexID{b}, geometry.NewVector2(1, 1))
	require.NoError(t, set.Execute())
	vb, _ = m.Vertex(b)
	require.NotNil(t, vb.UV)
	require.NoError(t, set.Undo())
	vb, _ = m.Vertex(b)
	require.Nil(t, vb.UV)
}

func TestSubdivideEdges(t *testing.T) {
	m, err := primitives.Grid(2, 1, 2, 1)
	require.NoError(t, err)

	// The interior edge is shared by both quads; splitting it re-splices
	// both windings.
	var interior mesh.EdgeKey
	for _, key := range m.EdgeKeys() {
		e, _ := m.EdgeByKey(key)
		if e.IsManifold() {
			interior = key
		}
	}
	require.NotZero(t, interior.A)

	cmd := ops.NewSubdivideEdges(m, []mesh.EdgeKey{interior}, 1)
	require.NoError(t, cmd.Execute())

	require.Equal(t, 7, m.VertexCount())
	require.Equal(t, 2, m.FaceCount())
	for _, id := range m.FaceIDs() {
		f, _ := m.Face(id)
		require.Equal(t, 5, f.VertexCount())
	}
	require.Empty(t, m.CheckIntegrity())

	require.NoError(t, cmd.Undo())
	require.Equal(t, 6, m.VertexCount())
	require.Empty(t, m.CheckIntegrity())
}

func TestAssignMaterial(t *testing.T) {
	m := cube(t)
	mat := m.AddMaterial("paint", mesh.WithBaseColor(mesh.Color{R: 1}))

	cmd := ops.NewAssignMaterial(m, m.FaceIDs(), mat)
	require.NoError(t, cmd.Execute())
	for _, id := range m.FaceIDs() {
		f, _ := m.Face(id)
		require.Equal(t, mat, f.Material)
	}

	require.NoError(t, cmd.Undo())
	for _, id := range m.FaceIDs() {
		f, _ := m.Face(id)
		require.Equal(t, mesh.MaterialID(0), f.Material)
	}
}

func TestRemoveFacesUndoExact(t *testing.T) {
	m := cube(t)
	requireUndoExact(t, m, ops.NewRemoveFaces(m, []mesh.FaceID{1, 2}))
}

func TestRemoveVerticesUndoExact(t *testing.T) {
	m := cube(t)
	requireUndoExact(t, m, ops.NewRemoveVertices(m, []mesh.VertexID{1}))
}

func TestAddVertexAndFace(t *testing.T) {
	m := mesh.New()
	av := ops.NewAddVertex(m, geometry.NewVector3(0, 0, 0))
	bv := ops.NewAddVertex(m, geometry.NewVector3(1, 0, 0))
	cv := ops.NewAddVertex(m, geometry.NewVector3(0, 1, 0))
	require.NoError(t, av.Execute())
	require.NoError(t, bv.Execute())
	require.NoError(t, cv.Execute())

	af := ops.NewAddFace(m, []mesh.VertexID{av.VertexID(), bv.VertexID(), cv.VertexID()})
	require.NoError(t, af.Execute())
	require.Equal(t, 1, m.FaceCount())

	require.NoError(t, af.Undo())
	require.Equal(t, 0, m.FaceCount())
	require.NoError(t, cv.Undo())
	require.Equal(t, 2, m.VertexCount())

	bad := ops.NewAddFace(m, []mesh.VertexID{av.VertexID(), bv.VertexID()})
	err := bad.Execute()
	require.ErrorIs(t, err, mesh.ErrFaceTooFewVertices)
}

func TestBevelEdge(t *testing.T) {
	m := cube(t)
	cmd := ops.NewBevelEdges(m, []mesh.EdgeKey{mesh.MakeEdgeKey(1, 5)}, 0.2,
		ops.BevelEdgeSegments(2), ops.BevelEdgeRounded())
	require.NoError(t, cmd.Execute())

	rep := cmd.(interface{ Report() *ops.Report }).Report()
	require.Equal(t, 1, rep.Succeeded())
	require.Empty(t, m.CheckIntegrity())
	require.Greater(t, m.FaceCount(), 6)
}

func TestBevelEdgeAsymmetricWidths(t *testing.T) {
	// Two coplanar quads meeting along the y axis. Sliding the shared
	// edge 0.2 into the left face and 0.5 into the right one must land
	// the strip rings at x = -0.2 and x = 0.5.
	m := mesh.New()
	a := m.AddVertex(geometry.NewVector3(0, 0, 0))
	b := m.AddVertex(geometry.NewVector3(0, 1, 0))
	c := m.AddVertex(geometry.NewVector3(-1, 0, 0))
	d := m.AddVertex(geometry.NewVector3(-1, 1, 0))
	e := m.AddVertex(geometry.NewVector3(1, 0, 0))
	f := m.AddVertex(geometry.NewVector3(1, 1, 0))
	_, err := m.AddFace([]mesh.VertexID{a, b, d, c})
	require.NoError(t, err)
	_, err = m.AddFace([]mesh.VertexID{b, a, e, f})
	require.NoError(t, err)

	cmd := ops.NewBevelEdges(m, []mesh.EdgeKey{mesh.MakeEdgeKey(a, b)}, 0.2,
		ops.BevelEdgeWidths(0.2, 0.5))
	require.NoError(t, cmd.Execute())

	rep := cmd.(interface{ Report() *ops.Report }).Report()
	require.Equal(t, 1, rep.Succeeded())
	require.Empty(t, m.CheckIntegrity())
	require.Equal(t, 8, m.VertexCount())
	require.Equal(t, 3, m.FaceCount())

	var left, right int
	for _, id := range m.VertexIDs() {
		v, _ := m.Vertex(id)
		switch {
		case math.Abs(v.Position.X+0.2) < 1e-9:
			left++
		case math.Abs(v.Position.X-0.5) < 1e-9:
			right++
		}
	}
	require.Equal(t, 2, left)
	require.Equal(t, 2, right)
}

func TestBevelFace(t *testing.T) {
	m := cube(t)
	cmd := ops.NewBevelFaces(m, []mesh.FaceID{2}, 0.3, ops.BevelFaceSegments(3))
	require.NoError(t, cmd.Execute())

	rep := cmd.(interface{ Report() *ops.Report }).Report()
	require.Equal(t, 1, rep.Succeeded())
	require.Empty(t, m.CheckIntegrity())
	// 3 rings of 4 quads plus the cap replace the lid.
	require.Equal(t, 6-1+12+1, m.FaceCount())
}

func TestDissolveFace(t *testing.T) {
	m := cube(t)
	cmd := ops.NewDissolveFaces(m, []mesh.FaceID{2})
	require.NoError(t, cmd.Execute())

	// Box sides are mutually perpendicular, so nothing merges; the lid
	// just leaves a hole.
	require.Equal(t, 5, m.FaceCount())
	require.Empty(t, m.CheckIntegrity())
}

func TestSeparateByMaterialAndComponent(t *testing.T) {
	m := cube(t)
	mat := m.AddMaterial("lid")
	f, _ := m.Face(2)
	f.Material = mat

	byMat := ops.NewSeparateByMaterial(m, mat)
	require.NoError(t, byMat.Execute())
	require.Equal(t, 12, m.VertexCount())

	require.NoError(t, byMat.Undo())
	require.Equal(t, 8, m.VertexCount())

	byComp := ops.NewSeparateComponent(m, 1)
	require.NoError(t, byComp.Execute())
	// The whole box is one component; every vertex is duplicated and the
	// originals go away with their faces.
	require.Equal(t, 8, m.VertexCount())
	require.Equal(t, 6, m.FaceCount())
	require.Empty(t, m.CheckIntegrity())
}
