package ops

import (
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// ripFacesCmd tears the selected faces off the surrounding surface by
// duplicating only the vertices on the seam.
type ripFacesCmd struct {
	state
	m       *mesh.Mesh
	targets []mesh.FaceID
	report  Report
}

// NewRipFaces detaches the target faces along their boundary with the rest
// of the mesh: every vertex shared with an unselected face or a pinned edge
// is duplicated, and the selected faces are rebuilt using the duplicates.
// Vertices interior to the selection keep their ids. Irreversible.
func NewRipFaces(m *mesh.Mesh, targets []mesh.FaceID) Command {
	return &ripFacesCmd{m: m, targets: targets}
}

// NewRipFacesFromSelection pulls the face list from the selection.
func NewRipFacesFromSelection(m *mesh.Mesh, sel Selection) Command {
	return NewRipFaces(m, sel.SelectedFaceIDs())
}

func (c *ripFacesCmd) Name() string    { return "rip" }
func (c *ripFacesCmd) CanUndo() bool   { return false }
func (c *ripFacesCmd) Undo() error     { return ErrUndoUnsupported }
func (c *ripFacesCmd) Report() *Report { return &c.report }

func (c *ripFacesCmd) Execute() error {
	if err := c.begin(); err != nil {
		return err
	}
	c.report = Report{}

	var log undoLog
	err := c.rip(&log)
	if err != nil {
		log.revert(c.m)
	}
	for _, id := range c.targets {
		c.report.add(faceTarget(id), err)
	}

	return nil
}

func (c *ripFacesCmd) rip(log *undoLog) error {
	if len(c.targets) == 0 {
		return validationErr("rip", ErrNoTargets, "group")
	}

	selected := make(map[mesh.FaceID]struct{}, len(c.targets))
	for _, id := range c.targets {
		if _, ok := c.m.Face(id); !ok {
			return validationErr("rip", mesh.ErrFaceNotFound, "face %d", id)
		}
		selected[id] = struct{}{}
	}

	type faceInfo struct {
		id       mesh.FaceID
		winding  []mesh.VertexID
		material mesh.MaterialID
	}
	infos := make([]faceInfo, 0, len(selected))
	taken := make(map[mesh.FaceID]struct{}, len(selected))
	for _, id := range c.targets {
		if _, dup := taken[id]; dup {
			continue
		}
		taken[id] = struct{}{}
		f, _ := c.m.Face(id)
		infos = append(infos, faceInfo{id: id, winding: f.VertexIDs(), material: f.Material})
	}

	// Seam vertices are the ones the outside world still needs.
	dup := make(map[mesh.VertexID]mesh.VertexID)
	for _, info := range infos {
		for _, vid := range info.winding {
			if _, done := dup[vid]; done {
				continue
			}
			v, ok := c.m.Vertex(vid)
			if !ok {
				return validationErr("rip", mesh.ErrVertexNotFound, "vertex %d", vid)
			}
			if !c.onSeam(v, selected) {
				continue
			}
			var opts []mesh.VertexOption
			if v.Normal != nil {
				opts = append(opts, mesh.WithNormal(*v.Normal))
			}
			if v.UV != nil {
				opts = append(opts, mesh.WithUV(*v.UV))
			}
			dup[vid] = log.addVertex(c.m, v.Position, opts...)
		}
	}

	for _, info := range infos {
		log.removeFace(c.m, info.id)
	}
	for _, info := range infos {
		winding := make([]mesh.VertexID, len(info.winding))
		for i, vid := range info.winding {
			if d, ok := dup[vid]; ok {
				winding[i] = d
			} else {
				winding[i] = vid
			}
		}
		if _, err := log.addFace(c.m, winding, info.material); err != nil {
			return topologyErr("rip", err, "face %d", info.id)
		}
	}

	return nil
}

// onSeam reports whether v is attached to topology outside the selection.
func (c *ripFacesCmd) onSeam(v *mesh.Vertex, selected map[mesh.FaceID]struct{}) bool {
	for _, fid := range v.FaceIDs() {
		if _, in := selected[fid]; !in {
			return true
		}
	}
	for _, key := range v.EdgeKeys() {
		if e, ok := c.m.EdgeByKey(key); ok && e.Pinned() {
			return true
		}
	}

	return false
}
