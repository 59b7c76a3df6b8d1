package mesh

import "github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"

// AddVertex inserts a new vertex at the given position and returns its fresh
// id. Always succeeds.
// Complexity: O(1) amortized.
func (m *Mesh) AddVertex(pos geometry.Vector3, opts ...VertexOption) VertexID {
	m.nextVertexID++
	v := &Vertex{
		ID:       VertexID(m.nextVertexID),
		Position: pos,
		edges:    make(map[EdgeKey]struct{}),
		faces:    make(map[FaceID]struct{}),
	}
	for _, opt := range opts {
		opt(v)
	}
	m.vertices[v.ID] = v

	return v.ID
}

// Vertex looks up a vertex by id. Absence is a normal case, not an error.
// Complexity: O(1).
func (m *Mesh) Vertex(id VertexID) (*Vertex, bool) {
	v, ok := m.vertices[id]
	return v, ok
}

// RemoveVertex deletes the vertex and cascades: every incident face is
// removed first (detaching edges as usual), then every remaining incident
// edge (all orphaned at that point, pinned or not), then the vertex record.
// Returns false if the id is unknown; removal of an absent id is idempotent.
// Complexity: O(deg(v) · face size).
func (m *Mesh) RemoveVertex(id VertexID) bool {
	v, ok := m.vertices[id]
	if !ok {
		return false
	}

	// 1) Cascade through incident faces. Sorted order keeps the cascade
	//    deterministic for callers that observe intermediate state.
	for _, fid := range v.FaceIDs() {
		m.RemoveFace(fid)
	}

	// 2) Any edge still incident survives only because it is pinned or was
	//    shared with faces not touching this vertex; the vertex is going
	//    away, so every such edge must go with it.
	for _, k := range v.EdgeKeys() {
		m.deleteEdgeRecord(k)
	}

	// 3) Drop the vertex itself.
	delete(m.vertices, id)

	return true
}

// RestoreVertex re-inserts a vertex under an id this store previously
// allocated, carrying the given attributes. It exists for command undo and
// for deserialization; ordinary creation goes through AddVertex.
//
// Returns ErrIDNotAllocated if the id is 0 or beyond the allocation
// watermark, ErrIDInUse if the id is currently live.
// Complexity: O(1).
func (m *Mesh) RestoreVertex(id VertexID, pos geometry.Vector3, normal *geometry.Vector3, uv *geometry.Vector2) error {
	if id == 0 || uint64(id) > m.nextVertexID {
		return ErrIDNotAllocated
	}
	if _, live := m.vertices[id]; live {
		return ErrIDInUse
	}
	v := &Vertex{
		ID:       id,
		Position: pos,
		edges:    make(map[EdgeKey]struct{}),
		faces:    make(map[FaceID]struct{}),
	}
	if normal != nil {
		n := *normal
		v.Normal = &n
	}
	if uv != nil {
		u := *uv
		v.UV = &u
	}
	m.vertices[id] = v

	return nil
}

// positions resolves a winding to vertex positions; ok is false when any id
// is missing.
func (m *Mesh) positions(ids []VertexID) ([]geometry.Vector3, bool) {
	out := make([]geometry.Vector3, 0, len(ids))
	for _, id := range ids {
		v, ok := m.vertices[id]
		if !ok {
			return nil, false
		}
		out = append(out, v.Position)
	}

	return out, true
}
