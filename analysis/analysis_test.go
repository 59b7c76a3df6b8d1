package analysis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CharmingBlaze/3d-mesh-lib-sub001/analysis"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/primitives"
)

func TestBoundingBox(t *testing.T) {
	m, err := primitives.Box(2, 4, 6)
	require.NoError(t, err)

	b, ok := analysis.BoundingBox(m)
	require.True(t, ok)
	require.Equal(t, geometry.NewVector3(-1, -2, -3), b.Min)
	require.Equal(t, geometry.NewVector3(1, 2, 3), b.Max)

	_, ok = analysis.BoundingBox(mesh.New())
	require.False(t, ok, "empty mesh must report no bounds")
}

func TestSurfaceAreaAndVolume_Cube(t *testing.T) {
	m, err := primitives.Cube(2)
	require.NoError(t, err)

	require.InDelta(t, 24.0, analysis.SurfaceArea(m), 1e-9, "cube(2) area = 6·4")
	require.InDelta(t, 8.0, analysis.Volume(m), 1e-9, "cube(2) volume = 2³")
}

func TestVolume_Cylinder(t *testing.T) {
	// A 64-gon prism approximates πr²h from below.
	m, err := primitives.Cylinder(1, 2, 64)
	require.NoError(t, err)

	vol := analysis.Volume(m)
	want := 2 * math.Pi
	require.InDelta(t, want, vol, want*0.01)
	require.Less(t, vol, want)
}

func TestFaceAreaAndCentroid(t *testing.T) {
	m := mesh.New()
	a := m.AddVertex(geometry.NewVector3(0, 0, 0))
	b := m.AddVertex(geometry.NewVector3(2, 0, 0))
	c := m.AddVertex(geometry.NewVector3(0, 2, 0))
	fid, err := m.AddFace([]mesh.VertexID{a, b, c})
	require.NoError(t, err)

	area, ok := analysis.FaceArea(m, fid)
	require.True(t, ok)
	require.InDelta(t, 2.0, area, 1e-9)

	centroid, ok := analysis.FaceCentroid(m, fid)
	require.True(t, ok)
	require.InDelta(t, 2.0/3.0, centroid.X, 1e-9)
	require.InDelta(t, 2.0/3.0, centroid.Y, 1e-9)

	_, ok = analysis.FaceArea(m, 999)
	require.False(t, ok)
}

func TestConnectedComponents(t *testing.T) {
	// Two disjoint triangles plus one lone quad fan in a single store.
	m := mesh.New()
	addTri := func(offset float64) mesh.FaceID {
		a := m.AddVertex(geometry.NewVector3(offset, 0, 0))
		b := m.AddVertex(geometry.NewVector3(offset+1, 0, 0))
		c := m.AddVertex(geometry.NewVector3(offset, 1, 0))
		fid, err := m.AddFace([]mesh.VertexID{a, b, c})
		require.NoError(t, err)
		return fid
	}
	f1 := addTri(0)
	f2 := addTri(10)

	// A second face sharing an edge with f1 joins its component.
	face1, _ := m.Face(f1)
	ids := face1.VertexIDs()
	d := m.AddVertex(geometry.NewVector3(1, 1, 0))
	f3, err := m.AddFace([]mesh.VertexID{ids[1], d, ids[2]})
	require.NoError(t, err)

	comps := analysis.ConnectedComponents(m)
	require.Len(t, comps, 2)
	require.Equal(t, []mesh.FaceID{f1, f3}, comps[0])
	require.Equal(t, []mesh.FaceID{f2}, comps[1])

	require.Equal(t, []mesh.FaceID{f1, f3}, analysis.ComponentOf(m, f3))
	require.Nil(t, analysis.ComponentOf(m, 999))
}

func TestRepair_OrphansAndDegenerates(t *testing.T) {
	m, err := primitives.Plane(1, 1)
	require.NoError(t, err)

	orphan := m.AddVertex(geometry.NewVector3(9, 9, 9))
	a := m.AddVertex(geometry.NewVector3(0, 0, 5))
	b := m.AddVertex(geometry.NewVector3(1, 0, 5))
	c := m.AddVertex(geometry.NewVector3(2, 0, 5))
	degen, err := m.AddFace([]mesh.VertexID{a, b, c}) // collinear
	require.NoError(t, err)

	require.Equal(t, []mesh.VertexID{orphan}, analysis.FindOrphanVertices(m))
	require.Equal(t, []mesh.FaceID{degen}, analysis.FindDegenerateFaces(m))

	report := analysis.Repair(m, 0)
	require.Equal(t, []mesh.FaceID{degen}, report.DegenerateFaces)
	// Removing the degenerate face orphans its three corners too.
	require.ElementsMatch(t, []mesh.VertexID{orphan, a, b, c}, report.OrphanVertices)
	require.Empty(t, report.WeldedVertices)

	require.Empty(t, m.CheckIntegrity())
	require.Equal(t, 1, m.FaceCount())
	require.Equal(t, 4, m.VertexCount())
}

func TestWeldVertices(t *testing.T) {
	// Two triangles meeting along a seam of duplicated vertices; welding
	// stitches them into one connected component sharing a real edge.
	m := mesh.New()
	a1 := m.AddVertex(geometry.NewVector3(0, 0, 0))
	b1 := m.AddVertex(geometry.NewVector3(1, 0, 0))
	c := m.AddVertex(geometry.NewVector3(0, 1, 0))
	a2 := m.AddVertex(geometry.NewVector3(0, 0, 1e-8)) // coincident with a1
	b2 := m.AddVertex(geometry.NewVector3(1, 0, 1e-8)) // coincident with b1
	d := m.AddVertex(geometry.NewVector3(0.5, -1, 0))

	_, err := m.AddFace([]mesh.VertexID{a1, b1, c})
	require.NoError(t, err)
	_, err = m.AddFace([]mesh.VertexID{b2, a2, d})
	require.NoError(t, err)

	welded := analysis.WeldVertices(m, 1e-6)
	require.Equal(t, []mesh.VertexID{a2, b2}, welded)
	require.Empty(t, m.CheckIntegrity())
	require.Equal(t, 4, m.VertexCount())
	require.Equal(t, 2, m.FaceCount())

	e, ok := m.Edge(a1, b1)
	require.True(t, ok)
	require.True(t, e.IsManifold(), "welded seam edge must be shared by both faces")

	require.Len(t, analysis.ConnectedComponents(m), 1)
}

func TestWeldVertices_DegeneratesFace(t *testing.T) {
	// Welding two corners of a triangle collapses it below 3 distinct
	// vertices; the face must be removed, not kept broken.
	m := mesh.New()
	a := m.AddVertex(geometry.NewVector3(0, 0, 0))
	b := m.AddVertex(geometry.NewVector3(1e-9, 0, 0))
	c := m.AddVertex(geometry.NewVector3(1, 1, 0))
	_, err := m.AddFace([]mesh.VertexID{a, b, c})
	require.NoError(t, err)

	welded := analysis.WeldVertices(m, 1e-6)
	require.Equal(t, []mesh.VertexID{b}, welded)
	require.Equal(t, 0, m.FaceCount())
	require.Empty(t, m.CheckIntegrity())
}
