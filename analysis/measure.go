package analysis

import (
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// BoundingBox returns the axis-aligned box enclosing every vertex; ok is
// false for a mesh without vertices.
// Complexity: O(V log V) due to deterministic iteration.
func BoundingBox(m *mesh.Mesh) (geometry.Bounds, bool) {
	ids := m.VertexIDs()
	if len(ids) == 0 {
		return geometry.Bounds{}, false
	}
	first, _ := m.Vertex(ids[0])
	b := geometry.NewBounds(first.Position)
	for _, id := range ids[1:] {
		v, _ := m.Vertex(id)
		b = b.Expand(v.Position)
	}

	return b, true
}

// FaceArea returns the area of one face, fan-triangulated from its first
// winding vertex; ok is false for an unknown id.
// Complexity: O(n).
func FaceArea(m *mesh.Mesh, id mesh.FaceID) (float64, bool) {
	f, ok := m.Face(id)
	if !ok {
		return 0, false
	}
	pts := facePositions(m, f)
	if pts == nil {
		return 0, false
	}

	var area float64
	for i := 1; i < len(pts)-1; i++ {
		area += pts[i].Sub(pts[0]).Cross(pts[i+1].Sub(pts[0])).Length() / 2
	}

	return area, true
}

// SurfaceArea returns the summed area of all faces.
// Complexity: O(F·n).
func SurfaceArea(m *mesh.Mesh) float64 {
	var total float64
	for _, id := range m.FaceIDs() {
		a, _ := FaceArea(m, id)
		total += a
	}

	return total
}

// Volume returns the signed enclosed volume computed with the divergence
// theorem over fan triangles. The magnitude is the geometric volume for a
// closed mesh with consistent outward winding; open or inconsistently wound
// meshes yield the raw signed sum.
// Complexity: O(F·n).
func Volume(m *mesh.Mesh) float64 {
	var total float64
	for _, id := range m.FaceIDs() {
		f, _ := m.Face(id)
		pts := facePositions(m, f)
		if pts == nil {
			continue
		}
		for i := 1; i < len(pts)-1; i++ {
			total += pts[0].Dot(pts[i].Cross(pts[i+1])) / 6
		}
	}

	return total
}

// FaceCentroid returns the arithmetic mean of a face's vertex positions; ok
// is false for an unknown id.
// Complexity: O(n).
func FaceCentroid(m *mesh.Mesh, id mesh.FaceID) (geometry.Vector3, bool) {
	f, ok := m.Face(id)
	if !ok {
		return geometry.Vector3{}, false
	}
	pts := facePositions(m, f)
	if pts == nil {
		return geometry.Vector3{}, false
	}

	return geometry.Centroid(pts), true
}

// facePositions resolves a face's winding to positions; nil when any vertex
// is missing (only possible on a corrupted store).
func facePositions(m *mesh.Mesh, f *mesh.Face) []geometry.Vector3 {
	ids := f.VertexIDs()
	out := make([]geometry.Vector3, 0, len(ids))
	for _, id := range ids {
		v, ok := m.Vertex(id)
		if !ok {
			return nil
		}
		out = append(out, v.Position)
	}

	return out
}
