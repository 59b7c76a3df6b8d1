package analysis

import (
	"sort"

	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// ConnectedComponents groups the mesh's faces into components connected via
// shared edges. Components and the faces within them come back in ascending
// id order, so the result is deterministic for a given mesh.
// Complexity: O(F·n + E).
func ConnectedComponents(m *mesh.Mesh) [][]mesh.FaceID {
	seen := make(map[mesh.FaceID]struct{}, m.FaceCount())
	var comps [][]mesh.FaceID

	for _, seed := range m.FaceIDs() {
		if _, done := seen[seed]; done {
			continue
		}
		comp := componentFrom(m, seed, seen)
		comps = append(comps, comp)
	}

	return comps
}

// ComponentOf returns the component containing seed, or nil for an unknown
// face id. Faces come back in ascending id order.
// Complexity: O(component size).
func ComponentOf(m *mesh.Mesh, seed mesh.FaceID) []mesh.FaceID {
	if _, ok := m.Face(seed); !ok {
		return nil
	}

	return componentFrom(m, seed, make(map[mesh.FaceID]struct{}))
}

// componentFrom runs a BFS from seed across shared edges, marking everything
// it reaches in seen.
func componentFrom(m *mesh.Mesh, seed mesh.FaceID, seen map[mesh.FaceID]struct{}) []mesh.FaceID {
	queue := []mesh.FaceID{seed}
	seen[seed] = struct{}{}
	var comp []mesh.FaceID

	for qi := 0; qi < len(queue); qi++ {
		fid := queue[qi]
		comp = append(comp, fid)
		f, ok := m.Face(fid)
		if !ok {
			continue
		}
		for _, key := range f.EdgeKeys() {
			e, ok := m.EdgeByKey(key)
			if !ok {
				continue
			}
			for _, nb := range e.FaceIDs() {
				if _, done := seen[nb]; !done {
					seen[nb] = struct{}{}
					queue = append(queue, nb)
				}
			}
		}
	}

	sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })

	return comp
}
