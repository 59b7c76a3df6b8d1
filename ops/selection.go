package ops

import (
	"sort"

	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// SelectionSet is the default Selection implementation: three independent
// id sets with deterministic, ascending accessors. Commands only read it;
// an embedding editor owns mutation and can swap in its own implementation.
type SelectionSet struct {
	vertices map[mesh.VertexID]struct{}
	edges    map[mesh.EdgeKey]struct{}
	faces    map[mesh.FaceID]struct{}
}

// NewSelectionSet returns an empty selection.
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{
		vertices: make(map[mesh.VertexID]struct{}),
		edges:    make(map[mesh.EdgeKey]struct{}),
		faces:    make(map[mesh.FaceID]struct{}),
	}
}

// SelectedVertexIDs returns the selected vertices in ascending id order.
func (s *SelectionSet) SelectedVertexIDs() []mesh.VertexID {
	out := make([]mesh.VertexID, 0, len(s.vertices))
	for id := range s.vertices {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// SelectedEdgeKeys returns the selected edges in ascending key order.
func (s *SelectionSet) SelectedEdgeKeys() []mesh.EdgeKey {
	out := make([]mesh.EdgeKey, 0, len(s.edges))
	for key := range s.edges {
		out = append(out, key)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})

	return out
}

// SelectedFaceIDs returns the selected faces in ascending id order.
func (s *SelectionSet) SelectedFaceIDs() []mesh.FaceID {
	out := make([]mesh.FaceID, 0, len(s.faces))
	for id := range s.faces {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// SelectVertex adds a vertex to the selection; without additive the vertex
// selection is replaced.
func (s *SelectionSet) SelectVertex(id mesh.VertexID, additive bool) {
	if !additive {
		s.vertices = make(map[mesh.VertexID]struct{})
	}
	s.vertices[id] = struct{}{}
}

// SelectEdge adds an edge to the selection; without additive the edge
// selection is replaced.
func (s *SelectionSet) SelectEdge(key mesh.EdgeKey, additive bool) {
	if !additive {
		s.edges = make(map[mesh.EdgeKey]struct{})
	}
	s.edges[key] = struct{}{}
}

// SelectFace adds a face to the selection; without additive the face
// selection is replaced.
func (s *SelectionSet) SelectFace(id mesh.FaceID, additive bool) {
	if !additive {
		s.faces = make(map[mesh.FaceID]struct{})
	}
	s.faces[id] = struct{}{}
}

// DeselectVertex drops one vertex from the selection.
func (s *SelectionSet) DeselectVertex(id mesh.VertexID) { delete(s.vertices, id) }

// DeselectEdge drops one edge from the selection.
func (s *SelectionSet) DeselectEdge(key mesh.EdgeKey) { delete(s.edges, key) }

// DeselectFace drops one face from the selection.
func (s *SelectionSet) DeselectFace(id mesh.FaceID) { delete(s.faces, id) }

// ClearVertexSelection empties the vertex set.
func (s *SelectionSet) ClearVertexSelection() {
	s.vertices = make(map[mesh.VertexID]struct{})
}

// ClearEdgeSelection empties the edge set.
func (s *SelectionSet) ClearEdgeSelection() {
	s.edges = make(map[mesh.EdgeKey]struct{})
}

// ClearFaceSelection empties the face set.
func (s *SelectionSet) ClearFaceSelection() {
	s.faces = make(map[mesh.FaceID]struct{})
}

var _ Selection = (*SelectionSet)(nil)
