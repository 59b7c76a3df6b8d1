package mesh

import "sort"

// Mesh is the topology store: the arena that owns every vertex, edge, face
// and material of one editable mesh. All inter-entity references are ids
// resolved through this arena.
//
// Id counters are per-store and monotonic; they are never rewound, not even
// by Clear, so a stale id can never resolve to a later-created entity.
type Mesh struct {
	nextVertexID   uint64
	nextFaceID     uint64
	nextMaterialID uint64

	vertices  map[VertexID]*Vertex
	faces     map[FaceID]*Face
	edges     map[EdgeKey]*Edge
	materials map[MaterialID]*Material
}

// New creates an empty Mesh.
// Complexity: O(1).
func New() *Mesh {
	return &Mesh{
		vertices:  make(map[VertexID]*Vertex),
		faces:     make(map[FaceID]*Face),
		edges:     make(map[EdgeKey]*Edge),
		materials: make(map[MaterialID]*Material),
	}
}

// VertexCount returns the number of live vertices. O(1).
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// FaceCount returns the number of live faces. O(1).
func (m *Mesh) FaceCount() int { return len(m.faces) }

// EdgeCount returns the number of live edges. O(1).
func (m *Mesh) EdgeCount() int { return len(m.edges) }

// MaterialCount returns the number of live materials. O(1).
func (m *Mesh) MaterialCount() int { return len(m.materials) }

// VertexIDs returns all vertex ids in ascending order.
// Complexity: O(V log V).
func (m *Mesh) VertexIDs() []VertexID {
	out := make([]VertexID, 0, len(m.vertices))
	for id := range m.vertices {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// FaceIDs returns all face ids in ascending order.
// Complexity: O(F log F).
func (m *Mesh) FaceIDs() []FaceID {
	out := make([]FaceID, 0, len(m.faces))
	for id := range m.faces {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// EdgeKeys returns all edge keys in lexicographic order.
// Complexity: O(E log E).
func (m *Mesh) EdgeKeys() []EdgeKey {
	out := make([]EdgeKey, 0, len(m.edges))
	for k := range m.edges {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })

	return out
}

// MaterialIDs returns all material ids in ascending order.
// Complexity: O(M log M).
func (m *Mesh) MaterialIDs() []MaterialID {
	out := make([]MaterialID, 0, len(m.materials))
	for id := range m.materials {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Clear removes every entity but keeps the id counters, preserving the
// no-id-reuse guarantee across the store's whole lifetime.
// Complexity: O(1) amortized.
func (m *Mesh) Clear() {
	m.vertices = make(map[VertexID]*Vertex)
	m.faces = make(map[FaceID]*Face)
	m.edges = make(map[EdgeKey]*Edge)
	m.materials = make(map[MaterialID]*Material)
}

// ReserveIDs advances the id counters so that future allocations start past
// the given ids. Used when loading serialized data whose ids must keep their
// original values; see the meshio package.
func (m *Mesh) ReserveIDs(maxVertex VertexID, maxFace FaceID, maxMaterial MaterialID) {
	if uint64(maxVertex) > m.nextVertexID {
		m.nextVertexID = uint64(maxVertex)
	}
	if uint64(maxFace) > m.nextFaceID {
		m.nextFaceID = uint64(maxFace)
	}
	if uint64(maxMaterial) > m.nextMaterialID {
		m.nextMaterialID = uint64(maxMaterial)
	}
}
