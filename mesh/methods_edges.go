package mesh

// AddEdge explicitly creates (or pins) the canonical edge a—b and returns its
// key. An edge created this way survives even with an empty face set; edges
// derived from AddFace die with their last face.
//
// Returns ErrLoopEdge when a == b and ErrVertexNotFound when either endpoint
// is missing.
// Complexity: O(1).
func (m *Mesh) AddEdge(a, b VertexID) (EdgeKey, error) {
	if a == b {
		return EdgeKey{}, ErrLoopEdge
	}
	if _, ok := m.vertices[a]; !ok {
		return EdgeKey{}, ErrVertexNotFound
	}
	if _, ok := m.vertices[b]; !ok {
		return EdgeKey{}, ErrVertexNotFound
	}

	key := MakeEdgeKey(a, b)
	e, ok := m.edges[key]
	if !ok {
		e = &Edge{Key: key, faces: make(map[FaceID]struct{})}
		m.edges[key] = e
		m.vertices[key.A].edges[key] = struct{}{}
		m.vertices[key.B].edges[key] = struct{}{}
	}
	e.pinned = true

	return key, nil
}

// Edge looks up the canonical edge connecting a and b, in either order.
// Absence is a normal case, not an error.
// Complexity: O(1).
func (m *Mesh) Edge(a, b VertexID) (*Edge, bool) {
	e, ok := m.edges[MakeEdgeKey(a, b)]
	return e, ok
}

// EdgeByKey looks up an edge by its canonical key.
// Complexity: O(1).
func (m *Mesh) EdgeByKey(key EdgeKey) (*Edge, bool) {
	e, ok := m.edges[key]
	return e, ok
}

// RemoveEdge directly deletes the edge a—b. Direct removal is only valid
// while the edge has zero incident faces; calling it on a used edge is a
// programming error reported as ErrEdgeInUse (callers must remove dependent
// faces first). An unknown edge returns (false, nil): absence is idempotent,
// matching RemoveFace/RemoveVertex.
// Complexity: O(1).
func (m *Mesh) RemoveEdge(a, b VertexID) (bool, error) {
	key := MakeEdgeKey(a, b)
	e, ok := m.edges[key]
	if !ok {
		return false, nil
	}
	if len(e.faces) > 0 {
		return false, ErrEdgeInUse
	}
	m.deleteEdgeRecord(key)

	return true, nil
}

// deleteEdgeRecord drops the edge record and detaches it from both
// endpoints' edge sets. Callers guarantee the edge exists.
func (m *Mesh) deleteEdgeRecord(key EdgeKey) {
	delete(m.edges, key)
	if v, ok := m.vertices[key.A]; ok {
		delete(v.edges, key)
	}
	if v, ok := m.vertices[key.B]; ok {
		delete(v.edges, key)
	}
}
