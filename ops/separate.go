package ops

import (
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/analysis"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// separateFacesCmd rebuilds a face group on a fully duplicated vertex ring,
// detaching it from all surrounding topology.
type separateFacesCmd struct {
	state
	m       *mesh.Mesh
	targets []mesh.FaceID
	offset  geometry.Vector3
	report  Report
	log     undoLog
}

// SeparateOption tweaks a separate command.
type SeparateOption func(*separateFacesCmd)

// SeparateOffset displaces the detached copy by delta, which makes the split
// visible immediately.
func SeparateOffset(delta geometry.Vector3) SeparateOption {
	return func(c *separateFacesCmd) { c.offset = delta }
}

// NewSeparateFaces detaches the target faces as an island: every vertex the
// group uses is duplicated with its attributes, the group's faces are
// rebuilt on the duplicates, and original vertices left without any
// topology are removed. Vertices still used by faces or pinned edges
// outside the group survive, so the surrounding mesh is untouched. The
// group commits or rolls back as a unit.
func NewSeparateFaces(m *mesh.Mesh, targets []mesh.FaceID, opts ...SeparateOption) Command {
	c := &separateFacesCmd{m: m, targets: targets}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewSeparateFacesFromSelection pulls the face list from the selection.
func NewSeparateFacesFromSelection(m *mesh.Mesh, sel Selection, opts ...SeparateOption) Command {
	return NewSeparateFaces(m, sel.SelectedFaceIDs(), opts...)
}

// NewSeparateByMaterial detaches every face bound to the given material id.
func NewSeparateByMaterial(m *mesh.Mesh, mat mesh.MaterialID, opts ...SeparateOption) Command {
	var targets []mesh.FaceID
	for _, id := range m.FaceIDs() {
		if f, ok := m.Face(id); ok && f.Material == mat {
			targets = append(targets, id)
		}
	}

	return NewSeparateFaces(m, targets, opts...)
}

// NewSeparateComponent detaches the whole connected component containing the
// seed face.
func NewSeparateComponent(m *mesh.Mesh, seed mesh.FaceID, opts ...SeparateOption) Command {
	return NewSeparateFaces(m, analysis.ComponentOf(m, seed), opts...)
}

func (c *separateFacesCmd) Name() string    { return "separate" }
func (c *separateFacesCmd) CanUndo() bool   { return true }
func (c *separateFacesCmd) Report() *Report { return &c.report }

func (c *separateFacesCmd) Execute() error {
	if err := c.begin(); err != nil {
		return err
	}
	c.report = Report{}
	c.log = undoLog{}

	err := c.separate(&c.log)
	if err != nil {
		c.log.revert(c.m)
	}
	for _, id := range c.targets {
		c.report.add(faceTarget(id), err)
	}

	return nil
}

func (c *separateFacesCmd) Undo() error {
	if err := c.beginUndo(); err != nil {
		return err
	}
	c.log.revert(c.m)

	return nil
}

func (c *separateFacesCmd) separate(log *undoLog) error {
	if len(c.targets) == 0 {
		return validationErr("separate", ErrNoTargets, "group")
	}

	type faceInfo struct {
		id       mesh.FaceID
		winding  []mesh.VertexID
		material mesh.MaterialID
	}
	seen := make(map[mesh.FaceID]struct{}, len(c.targets))
	infos := make([]faceInfo, 0, len(c.targets))
	for _, id := range c.targets {
		f, ok := c.m.Face(id)
		if !ok {
			return validationErr("separate", mesh.ErrFaceNotFound, "face %d", id)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		infos = append(infos, faceInfo{id: id, winding: f.VertexIDs(), material: f.Material})
	}

	dup := make(map[mesh.VertexID]mesh.VertexID)
	for _, info := range infos {
		for _, vid := range info.winding {
			if _, done := dup[vid]; done {
				continue
			}
			v, ok := c.m.Vertex(vid)
			if !ok {
				return validationErr("separate", mesh.ErrVertexNotFound, "vertex %d", vid)
			}
			var opts []mesh.VertexOption
			if v.Normal != nil {
				opts = append(opts, mesh.WithNormal(*v.Normal))
			}
			if v.UV != nil {
				opts = append(opts, mesh.WithUV(*v.UV))
			}
			dup[vid] = log.addVertex(c.m, v.Position.Add(c.offset), opts...)
		}
	}

	for _, info := range infos {
		log.removeFace(c.m, info.id)
	}
	for _, info := range infos {
		winding := make([]mesh.VertexID, len(info.winding))
		for i, vid := range info.winding {
			winding[i] = dup[vid]
		}
		if _, err := log.addFace(c.m, winding, info.material); err != nil {
			return topologyErr("separate", err, "face %d", info.id)
		}
	}

	// Originals that carried nothing but the group go away; anything still
	// wired to outside topology stays.
	for vid := range dup {
		if v, ok := c.m.Vertex(vid); ok && v.FaceCount() == 0 && v.EdgeCount() == 0 {
			log.removeVertex(c.m, vid)
		}
	}

	return nil
}
