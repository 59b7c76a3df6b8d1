// Package mesh: face lifecycle.
//
// AddFace/RemoveFace are the only two places where face↔edge↔vertex
// back-references are wired and unwired; every higher-level edit funnels
// through them (a face's winding is replaced by remove + re-add).
package mesh

import (
	"fmt"

	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
)

// AddFace creates a face from an ordered winding of vertex ids and returns
// its fresh id.
//
// Validation: at least 3 distinct ids (ErrFaceTooFewVertices), no vertex
// repeated in consecutive positions including the closing pair
// (ErrFaceRepeatedVertex), every id resolved (ErrVertexNotFound, wrapped with
// the offending id). On failure the store is unchanged and no id is burned.
//
// On success: the Newell normal is computed (nil when degenerate — the face
// is kept either way so a repair pass can report it), each consecutive pair's
// canonical edge is looked up or created with this face added to its face
// set, and the face id plus edge keys are added to each participant vertex's
// back-reference sets.
// Complexity: O(n) in winding length.
func (m *Mesh) AddFace(ids []VertexID, opts ...FaceOption) (FaceID, error) {
	if err := m.validateWinding(ids); err != nil {
		return 0, err
	}

	m.nextFaceID++
	f := &Face{ID: FaceID(m.nextFaceID)}
	f.vertices = append(f.vertices, ids...)
	for _, opt := range opts {
		opt(f)
	}
	m.wireFace(f)

	return f.ID, nil
}

// RemoveFace detaches the face from every vertex and edge it touches and
// deletes it. Each touched edge whose face set becomes empty is deleted too
// (detaching it from its endpoints' edge sets) unless it was pinned via
// AddEdge. Returns false if the id is unknown (idempotent no-op).
// Complexity: O(n) in winding length.
func (m *Mesh) RemoveFace(id FaceID) bool {
	f, ok := m.faces[id]
	if !ok {
		return false
	}
	m.unwireFace(f)
	delete(m.faces, id)

	return true
}

// RestoreFace re-inserts a face under an id this store previously allocated,
// with the given winding and material. Same validation as AddFace plus the
// id checks of RestoreVertex. Used by command undo and deserialization.
// Complexity: O(n).
func (m *Mesh) RestoreFace(id FaceID, ids []VertexID, material MaterialID) error {
	if id == 0 || uint64(id) > m.nextFaceID {
		return ErrIDNotAllocated
	}
	if _, live := m.faces[id]; live {
		return ErrIDInUse
	}
	if err := m.validateWinding(ids); err != nil {
		return err
	}
	f := &Face{ID: id, Material: material}
	f.vertices = append(f.vertices, ids...)
	m.wireFace(f)

	return nil
}

// RefreshFaceNormal recomputes the cached normal from current vertex
// positions. Editing commands call this after moving a face's vertices; the
// store itself calls it whenever the winding changes. Returns false for an
// unknown face id.
// Complexity: O(n).
func (m *Mesh) RefreshFaceNormal(id FaceID) bool {
	f, ok := m.faces[id]
	if !ok {
		return false
	}
	m.recomputeNormal(f)

	return true
}

// validateWinding enforces the AddFace preconditions without touching state.
func (m *Mesh) validateWinding(ids []VertexID) error {
	if len(ids) < 3 {
		return ErrFaceTooFewVertices
	}
	distinct := make(map[VertexID]struct{}, len(ids))
	for i, id := range ids {
		if _, ok := m.vertices[id]; !ok {
			return fmt.Errorf("mesh: AddFace: vertex %d: %w", id, ErrVertexNotFound)
		}
		if ids[(i+1)%len(ids)] == id {
			return ErrFaceRepeatedVertex
		}
		distinct[id] = struct{}{}
	}
	if len(distinct) < 3 {
		return ErrFaceTooFewVertices
	}

	return nil
}

// wireFace installs a validated face: stores it, computes its normal and
// wires all back-references.
func (m *Mesh) wireFace(f *Face) {
	m.faces[f.ID] = f
	m.recomputeNormal(f)

	for i, id := range f.vertices {
		next := f.vertices[(i+1)%len(f.vertices)]
		key := MakeEdgeKey(id, next)

		e, ok := m.edges[key]
		if !ok {
			e = &Edge{Key: key, faces: make(map[FaceID]struct{})}
			m.edges[key] = e
			m.vertices[key.A].edges[key] = struct{}{}
			m.vertices[key.B].edges[key] = struct{}{}
		}
		e.faces[f.ID] = struct{}{}
		m.vertices[id].faces[f.ID] = struct{}{}
	}
}

// unwireFace detaches a face from all vertices and edges, deleting edges
// whose face set empties unless pinned.
func (m *Mesh) unwireFace(f *Face) {
	for _, key := range f.EdgeKeys() {
		e, ok := m.edges[key]
		if !ok {
			continue
		}
		delete(e.faces, f.ID)
		if len(e.faces) == 0 && !e.pinned {
			m.deleteEdgeRecord(key)
		}
	}
	for _, id := range f.vertices {
		if v, ok := m.vertices[id]; ok {
			delete(v.faces, f.ID)
		}
	}
}

// recomputeNormal refreshes the cached Newell normal; degenerate windings
// cache nil.
func (m *Mesh) recomputeNormal(f *Face) {
	pts, ok := m.positions(f.vertices)
	if !ok {
		f.normal = nil
		return
	}
	n, ok := geometry.NewellNormal(pts)
	if !ok {
		f.normal = nil
		return
	}
	f.normal = &n
}

// Face looks up a face by id. Absence is a normal case, not an error.
// Complexity: O(1).
func (m *Mesh) Face(id FaceID) (*Face, bool) {
	f, ok := m.faces[id]
	return f, ok
}
