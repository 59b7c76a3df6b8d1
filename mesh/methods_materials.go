package mesh

// AddMaterial creates a material value object and returns its fresh id.
// Materials have no topology effect; faces reference them by id only.
// Complexity: O(1).
func (m *Mesh) AddMaterial(name string, opts ...MaterialOption) MaterialID {
	m.nextMaterialID++
	mat := &Material{
		ID:      MaterialID(m.nextMaterialID),
		Name:    name,
		Opacity: 1,
	}
	for _, opt := range opts {
		opt(mat)
	}
	m.materials[mat.ID] = mat

	return mat.ID
}

// Material looks up a material by id. Absence is a normal case, not an error.
// Complexity: O(1).
func (m *Mesh) Material(id MaterialID) (*Material, bool) {
	mat, ok := m.materials[id]
	return mat, ok
}

// RemoveMaterial deletes a material record. Faces referencing the id keep
// their reference; a dangling material id simply resolves to "not found".
// Returns false if the id is unknown.
// Complexity: O(1).
func (m *Mesh) RemoveMaterial(id MaterialID) bool {
	if _, ok := m.materials[id]; !ok {
		return false
	}
	delete(m.materials, id)

	return true
}

// RestoreMaterial re-inserts a material under a previously allocated id,
// used by deserialization. Same id rules as RestoreVertex.
// Complexity: O(1).
func (m *Mesh) RestoreMaterial(mat Material) error {
	if mat.ID == 0 || uint64(mat.ID) > m.nextMaterialID {
		return ErrIDNotAllocated
	}
	if _, live := m.materials[mat.ID]; live {
		return ErrIDInUse
	}
	stored := mat
	m.materials[mat.ID] = &stored

	return nil
}
