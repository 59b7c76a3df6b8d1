package mesh

// Clone returns a deep copy of the store: entities, back-reference sets and
// id counters. The copy is fully independent; mutating either mesh never
// touches the other.
// Complexity: O(V + E + F + M).
func (m *Mesh) Clone() *Mesh {
	clone := New()
	clone.nextVertexID = m.nextVertexID
	clone.nextFaceID = m.nextFaceID
	clone.nextMaterialID = m.nextMaterialID

	for id, v := range m.vertices {
		nv := &Vertex{
			ID:       v.ID,
			Position: v.Position,
			edges:    make(map[EdgeKey]struct{}, len(v.edges)),
			faces:    make(map[FaceID]struct{}, len(v.faces)),
		}
		if v.Normal != nil {
			n := *v.Normal
			nv.Normal = &n
		}
		if v.UV != nil {
			u := *v.UV
			nv.UV = &u
		}
		for k := range v.edges {
			nv.edges[k] = struct{}{}
		}
		for f := range v.faces {
			nv.faces[f] = struct{}{}
		}
		clone.vertices[id] = nv
	}

	for key, e := range m.edges {
		ne := &Edge{Key: e.Key, pinned: e.pinned, faces: make(map[FaceID]struct{}, len(e.faces))}
		for f := range e.faces {
			ne.faces[f] = struct{}{}
		}
		clone.edges[key] = ne
	}

	for id, f := range m.faces {
		nf := &Face{ID: f.ID, Material: f.Material}
		nf.vertices = append(nf.vertices, f.vertices...)
		if f.normal != nil {
			n := *f.normal
			nf.normal = &n
		}
		clone.faces[id] = nf
	}

	for id, mat := range m.materials {
		stored := *mat
		clone.materials[id] = &stored
	}

	return clone
}
