package ops

import (
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// extrudeFacesCmd pulls faces out along a direction, building a cap face on
// duplicated vertices and one side quad per boundary edge.
type extrudeFacesCmd struct {
	state
	m        *mesh.Mesh
	targets  []mesh.FaceID
	distance float64
	dir      *geometry.Vector3 // nil = per-face normal
	report   Report
	logs     []undoLog
}

// ExtrudeOption tweaks an extrude command.
type ExtrudeOption func(*extrudeFacesCmd)

// ExtrudeAlong overrides the per-face normal with a fixed direction. The
// vector is normalized at execute time.
func ExtrudeAlong(dir geometry.Vector3) ExtrudeOption {
	return func(c *extrudeFacesCmd) { c.dir = &dir }
}

// NewExtrudeFaces extrudes every target face by distance. Each face is
// extruded individually: its winding is duplicated and offset, the original
// face is removed, the cap keeps the original winding order and material,
// and side quads stitch the old ring to the new one. A face whose normal is
// degenerate fails (skipped with rollback) unless ExtrudeAlong supplies a
// direction.
func NewExtrudeFaces(m *mesh.Mesh, targets []mesh.FaceID, distance float64, opts ...ExtrudeOption) Command {
	c := &extrudeFacesCmd{m: m, targets: targets, distance: distance}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewExtrudeFacesFromSelection pulls the face list from the selection.
func NewExtrudeFacesFromSelection(m *mesh.Mesh, sel Selection, distance float64, opts ...ExtrudeOption) Command {
	return NewExtrudeFaces(m, sel.SelectedFaceIDs(), distance, opts...)
}

func (c *extrudeFacesCmd) Name() string    { return "extrude" }
func (c *extrudeFacesCmd) CanUndo() bool   { return true }
func (c *extrudeFacesCmd) Report() *Report { return &c.report }

func (c *extrudeFacesCmd) Execute() error {
	if err := c.begin(); err != nil {
		return err
	}
	c.report = Report{}
	c.logs = c.logs[:0]

	for _, id := range c.targets {
		var log undoLog
		if err := c.extrudeOne(id, &log); err != nil {
			log.revert(c.m)
			c.report.add(faceTarget(id), err)
			continue
		}
		c.logs = append(c.logs, log)
		c.report.add(faceTarget(id), nil)
	}

	return nil
}

func (c *extrudeFacesCmd) Undo() error {
	if err := c.beginUndo(); err != nil {
		return err
	}
	for i := len(c.logs) - 1; i >= 0; i-- {
		c.logs[i].revert(c.m)
	}
	c.logs = c.logs[:0]

	return nil
}

func (c *extrudeFacesCmd) extrudeOne(id mesh.FaceID, log *undoLog) error {
	f, ok := c.m.Face(id)
	if !ok {
		return validationErr("extrude", mesh.ErrFaceNotFound, "face %d", id)
	}

	dir, err := c.direction(f)
	if err != nil {
		return err
	}
	offset := dir.Scale(c.distance)

	winding := f.VertexIDs()
	material := f.Material

	// Duplicate the ring first so a vertex lookup failure cannot happen
	// after the original face is gone.
	ring := make([]mesh.VertexID, len(winding))
	for i, vid := range winding {
		v, ok := c.m.Vertex(vid)
		if !ok {
			return validationErr("extrude", mesh.ErrVertexNotFound, "vertex %d", vid)
		}
		var opts []mesh.VertexOption
		if v.Normal != nil {
			opts = append(opts, mesh.WithNormal(*v.Normal))
		}
		if v.UV != nil {
			opts = append(opts, mesh.WithUV(*v.UV))
		}
		ring[i] = log.addVertex(c.m, v.Position.Add(offset), opts...)
	}

	log.removeFace(c.m, id)

	if _, err := log.addFace(c.m, ring, material); err != nil {
		return topologyErr("extrude", err, "face %d cap", id)
	}
	for i := range winding {
		j := (i + 1) % len(winding)
		quad := []mesh.VertexID{winding[i], winding[j], ring[j], ring[i]}
		if _, err := log.addFace(c.m, quad, material); err != nil {
			return topologyErr("extrude", err, "face %d side %d", id, i)
		}
	}

	return nil
}

// direction resolves the extrusion direction for one face.
func (c *extrudeFacesCmd) direction(f *mesh.Face) (geometry.Vector3, error) {
	if c.dir != nil {
		unit, ok := c.dir.Normalize()
		if !ok {
			return geometry.Vector3{}, validationErr("extrude", ErrDegenerateFace, "zero direction")
		}
		return unit, nil
	}
	n, ok := f.Normal()
	if !ok {
		return geometry.Vector3{}, topologyErr("extrude", ErrDegenerateFace, "face %d", f.ID)
	}

	return n, nil
}
