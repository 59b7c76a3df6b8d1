package analysis

import (
	"math"
	"sort"

	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// RepairReport lists everything a Repair pass touched.
type RepairReport struct {
	// OrphanVertices are the vertex ids removed for having no incident
	// edges or faces.
	OrphanVertices []mesh.VertexID

	// DegenerateFaces are the face ids removed for having no computable
	// normal.
	DegenerateFaces []mesh.FaceID

	// WeldedVertices are the vertex ids merged away into a kept neighbor.
	WeldedVertices []mesh.VertexID
}

// FindOrphanVertices returns the ids of vertices referenced by no edge and
// no face, in ascending order.
// Complexity: O(V log V).
func FindOrphanVertices(m *mesh.Mesh) []mesh.VertexID {
	var out []mesh.VertexID
	for _, id := range m.VertexIDs() {
		v, _ := m.Vertex(id)
		if v.EdgeCount() == 0 && v.FaceCount() == 0 {
			out = append(out, id)
		}
	}

	return out
}

// RemoveOrphanVertices deletes every orphan vertex and returns the removed
// ids.
func RemoveOrphanVertices(m *mesh.Mesh) []mesh.VertexID {
	orphans := FindOrphanVertices(m)
	for _, id := range orphans {
		m.RemoveVertex(id)
	}

	return orphans
}

// FindDegenerateFaces returns the ids of faces whose cached normal is nil
// (fewer than 3 non-collinear vertices), in ascending order. The store keeps
// such faces on purpose; this is where they get reported.
// Complexity: O(F log F).
func FindDegenerateFaces(m *mesh.Mesh) []mesh.FaceID {
	var out []mesh.FaceID
	for _, id := range m.FaceIDs() {
		f, _ := m.Face(id)
		if _, ok := f.Normal(); !ok {
			out = append(out, id)
		}
	}

	return out
}

// RemoveDegenerateFaces deletes every degenerate face and returns the
// removed ids.
func RemoveDegenerateFaces(m *mesh.Mesh) []mesh.FaceID {
	degens := FindDegenerateFaces(m)
	for _, id := range degens {
		m.RemoveFace(id)
	}

	return degens
}

// WeldVertices merges every pair of vertices closer than eps into one,
// keeping the lower id. Faces touching a merged-away vertex are rebuilt with
// the kept id, consecutive duplicates collapsed; a rebuild left with fewer
// than 3 distinct vertices is removed instead. Returns the merged-away ids
// in ascending order.
//
// The search uses an eps-sized spatial hash with neighbor-cell probing, so
// welding is exact with respect to eps.
// Complexity: O(V + affected faces).
func WeldVertices(m *mesh.Mesh, eps float64) []mesh.VertexID {
	if eps <= 0 || m.VertexCount() == 0 {
		return nil
	}

	// 1) Bucket kept vertices by quantized cell; earlier (lower) ids win.
	type cell struct{ x, y, z int64 }
	quantize := func(p geometry.Vector3) cell {
		return cell{
			x: int64(math.Floor(p.X / eps)),
			y: int64(math.Floor(p.Y / eps)),
			z: int64(math.Floor(p.Z / eps)),
		}
	}
	kept := make(map[cell][]mesh.VertexID)
	remap := make(map[mesh.VertexID]mesh.VertexID)

	for _, id := range m.VertexIDs() {
		v, _ := m.Vertex(id)
		c := quantize(v.Position)
		target := mesh.VertexID(0)
	probe:
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for dz := int64(-1); dz <= 1; dz++ {
					for _, cand := range kept[cell{c.x + dx, c.y + dy, c.z + dz}] {
						cv, _ := m.Vertex(cand)
						if cv.Position.DistanceSq(v.Position) <= eps*eps {
							target = cand
							break probe
						}
					}
				}
			}
		}
		if target != 0 {
			remap[id] = target
		} else {
			kept[c] = append(kept[c], id)
		}
	}
	if len(remap) == 0 {
		return nil
	}

	// 2) Rebuild every face that touches a merged-away vertex.
	affected := make(map[mesh.FaceID]struct{})
	for id := range remap {
		v, _ := m.Vertex(id)
		for _, fid := range v.FaceIDs() {
			affected[fid] = struct{}{}
		}
	}
	order := make([]mesh.FaceID, 0, len(affected))
	for fid := range affected {
		order = append(order, fid)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	for _, fid := range order {
		f, _ := m.Face(fid)
		winding := rebuildWinding(f.VertexIDs(), remap)
		material := f.Material
		m.RemoveFace(fid)
		if winding != nil {
			// A welded rebuild is a new face; the old id stays dead.
			_, _ = m.AddFace(winding, mesh.WithMaterial(material))
		}
	}

	// 3) Drop the merged-away vertices (cascade frees their edges).
	removed := make([]mesh.VertexID, 0, len(remap))
	for id := range remap {
		removed = append(removed, id)
	}
	sort.Slice(removed, func(i, j int) bool { return removed[i] < removed[j] })
	for _, id := range removed {
		m.RemoveVertex(id)
	}

	return removed
}

// Repair runs orphan cleanup, degenerate-face removal and welding in one
// pass and reports what changed. Welding runs first so faces degenerated by
// the weld are caught by the same pass.
func Repair(m *mesh.Mesh, weldEps float64) RepairReport {
	var r RepairReport
	r.WeldedVertices = WeldVertices(m, weldEps)
	r.DegenerateFaces = RemoveDegenerateFaces(m)
	r.OrphanVertices = RemoveOrphanVertices(m)

	return r
}

// rebuildWinding substitutes merged ids and collapses consecutive duplicates
// (including the closing pair); nil means the face no longer has 3 distinct
// vertices and must be dropped.
func rebuildWinding(ids []mesh.VertexID, remap map[mesh.VertexID]mesh.VertexID) []mesh.VertexID {
	mapped := make([]mesh.VertexID, 0, len(ids))
	for _, id := range ids {
		if to, ok := remap[id]; ok {
			id = to
		}
		mapped = append(mapped, id)
	}

	out := mapped[:0]
	for _, id := range mapped {
		if len(out) == 0 || out[len(out)-1] != id {
			out = append(out, id)
		}
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}

	distinct := make(map[mesh.VertexID]struct{}, len(out))
	for _, id := range out {
		distinct[id] = struct{}{}
	}
	if len(distinct) < 3 {
		return nil
	}

	return out
}
