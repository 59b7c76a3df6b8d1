// Package ops: undo bookkeeping.
//
// Every structural command records the entities it creates and snapshots of
// the entities it removes into an undoLog. The same log powers two things:
// mid-operation rollback of a failing target (revert the target's partial
// output before moving on) and whole-command Undo (revert every target's log
// in reverse order). Removed entities come back under their original ids via
// the store's Restore methods, which keeps undo bit-exact.
package ops

import (
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// vertexState snapshots one vertex for restoration under its original id.
type vertexState struct {
	id     mesh.VertexID
	pos    geometry.Vector3
	normal *geometry.Vector3
	uv     *geometry.Vector2
}

// captureVertex copies a live vertex's attributes.
func captureVertex(m *mesh.Mesh, id mesh.VertexID) (vertexState, bool) {
	v, ok := m.Vertex(id)
	if !ok {
		return vertexState{}, false
	}
	s := vertexState{id: id, pos: v.Position}
	if v.Normal != nil {
		n := *v.Normal
		s.normal = &n
	}
	if v.UV != nil {
		u := *v.UV
		s.uv = &u
	}

	return s, true
}

// faceState snapshots one face for restoration under its original id.
type faceState struct {
	id       mesh.FaceID
	winding  []mesh.VertexID
	material mesh.MaterialID
}

// captureFace copies a live face's winding and material.
func captureFace(m *mesh.Mesh, id mesh.FaceID) (faceState, bool) {
	f, ok := m.Face(id)
	if !ok {
		return faceState{}, false
	}

	return faceState{id: id, winding: f.VertexIDs(), material: f.Material}, true
}

// undoLog records one target's structural delta in application order.
type undoLog struct {
	createdVertices []mesh.VertexID
	createdFaces    []mesh.FaceID
	createdEdges    []mesh.EdgeKey // pinned edges created by the op
	removedVertices []vertexState
	removedFaces    []faceState
	removedEdges    []mesh.EdgeKey // pinned edges removed by the op
}

// empty reports whether the log recorded anything at all.
func (l *undoLog) empty() bool {
	return len(l.createdVertices) == 0 && len(l.createdFaces) == 0 &&
		len(l.createdEdges) == 0 && len(l.removedVertices) == 0 &&
		len(l.removedFaces) == 0 && len(l.removedEdges) == 0
}

// addVertex allocates through the store and records the new id.
func (l *undoLog) addVertex(m *mesh.Mesh, pos geometry.Vector3, opts ...mesh.VertexOption) mesh.VertexID {
	id := m.AddVertex(pos, opts...)
	l.createdVertices = append(l.createdVertices, id)

	return id
}

// addFace creates a face through the store and records the new id.
func (l *undoLog) addFace(m *mesh.Mesh, winding []mesh.VertexID, material mesh.MaterialID) (mesh.FaceID, error) {
	id, err := m.AddFace(winding, mesh.WithMaterial(material))
	if err != nil {
		return 0, err
	}
	l.createdFaces = append(l.createdFaces, id)

	return id, nil
}

// removeFace snapshots and removes a face.
func (l *undoLog) removeFace(m *mesh.Mesh, id mesh.FaceID) bool {
	s, ok := captureFace(m, id)
	if !ok {
		return false
	}
	m.RemoveFace(id)
	l.removedFaces = append(l.removedFaces, s)

	return true
}

// removeVertex snapshots and removes a vertex. Incident faces must already
// be gone; the caller owns that ordering.
func (l *undoLog) removeVertex(m *mesh.Mesh, id mesh.VertexID) bool {
	s, ok := captureVertex(m, id)
	if !ok {
		return false
	}
	m.RemoveVertex(id)
	l.removedVertices = append(l.removedVertices, s)

	return true
}

// removePinnedEdge removes an orphaned pinned edge and records it.
func (l *undoLog) removePinnedEdge(m *mesh.Mesh, key mesh.EdgeKey) {
	if removed, err := m.RemoveEdge(key.A, key.B); err == nil && removed {
		l.removedEdges = append(l.removedEdges, key)
	}
}

// revert rolls the delta back: created entities go away, removed entities
// come back under their original ids. Order matters: created faces before
// created vertices, restored vertices before restored faces.
func (l *undoLog) revert(m *mesh.Mesh) {
	for i := len(l.createdFaces) - 1; i >= 0; i-- {
		m.RemoveFace(l.createdFaces[i])
	}
	for i := len(l.createdEdges) - 1; i >= 0; i-- {
		key := l.createdEdges[i]
		_, _ = m.RemoveEdge(key.A, key.B)
	}
	for i := len(l.createdVertices) - 1; i >= 0; i-- {
		m.RemoveVertex(l.createdVertices[i])
	}
	for i := len(l.removedVertices) - 1; i >= 0; i-- {
		s := l.removedVertices[i]
		_ = m.RestoreVertex(s.id, s.pos, s.normal, s.uv)
	}
	for i := len(l.removedFaces) - 1; i >= 0; i-- {
		s := l.removedFaces[i]
		_ = m.RestoreFace(s.id, s.winding, s.material)
	}
	for i := len(l.removedEdges) - 1; i >= 0; i-- {
		key := l.removedEdges[i]
		_, _ = m.AddEdge(key.A, key.B)
	}
	*l = undoLog{}
}
