package ops

import (
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// insetFacesCmd shrinks faces inward, producing a smaller cap face and a
// quad rim between the old and new boundary.
type insetFacesCmd struct {
	state
	m       *mesh.Mesh
	targets []mesh.FaceID
	amount  float64
	region  bool
	report  Report
	logs    []undoLog
}

// InsetOption tweaks an inset command.
type InsetOption func(*insetFacesCmd)

// InsetRegion insets the selected faces as one region: vertices shared
// between selected faces get a single shared inner duplicate, and rim quads
// appear only along the region boundary.
func InsetRegion() InsetOption {
	return func(c *insetFacesCmd) { c.region = true }
}

// NewInsetFaces insets every target face by amount. Each inner vertex moves
// along the inward angle bisector at the matching outer vertex; where the
// boundary is locally straight the move falls back to the direction of the
// face centroid.
func NewInsetFaces(m *mesh.Mesh, targets []mesh.FaceID, amount float64, opts ...InsetOption) Command {
	c := &insetFacesCmd{m: m, targets: targets, amount: amount}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewInsetFacesFromSelection pulls the face list from the selection.
func NewInsetFacesFromSelection(m *mesh.Mesh, sel Selection, amount float64, opts ...InsetOption) Command {
	return NewInsetFaces(m, sel.SelectedFaceIDs(), amount, opts...)
}

func (c *insetFacesCmd) Name() string    { return "inset" }
func (c *insetFacesCmd) CanUndo() bool   { return true }
func (c *insetFacesCmd) Report() *Report { return &c.report }

func (c *insetFacesCmd) Execute() error {
	if err := c.begin(); err != nil {
		return err
	}
	c.report = Report{}
	c.logs = c.logs[:0]

	if c.region {
		return c.executeRegion()
	}
	for _, id := range c.targets {
		var log undoLog
		if err := c.insetOne(id, &log); err != nil {
			log.revert(c.m)
			c.report.add(faceTarget(id), err)
			continue
		}
		c.logs = append(c.logs, log)
		c.report.add(faceTarget(id), nil)
	}

	return nil
}

func (c *insetFacesCmd) Undo() error {
	if err := c.beginUndo(); err != nil {
		return err
	}
	for i := len(c.logs) - 1; i >= 0; i-- {
		c.logs[i].revert(c.m)
	}
	c.logs = c.logs[:0]

	return nil
}

func (c *insetFacesCmd) insetOne(id mesh.FaceID, log *undoLog) error {
	f, ok := c.m.Face(id)
	if !ok {
		return validationErr("inset", mesh.ErrFaceNotFound, "face %d", id)
	}
	winding := f.VertexIDs()
	material := f.Material

	pts := make([]geometry.Vector3, len(winding))
	uvs := make([]*geometry.Vector2, len(winding))
	for i, vid := range winding {
		v, ok := c.m.Vertex(vid)
		if !ok {
			return validationErr("inset", mesh.ErrVertexNotFound, "vertex %d", vid)
		}
		pts[i] = v.Position
		uvs[i] = v.UV
	}
	centroid := geometry.Centroid(pts)

	ring := make([]mesh.VertexID, len(winding))
	for i := range winding {
		pos := insetPosition(pts, i, centroid, c.amount)
		var opts []mesh.VertexOption
		if uvs[i] != nil {
			opts = append(opts, mesh.WithUV(*uvs[i]))
		}
		ring[i] = log.addVertex(c.m, pos, opts...)
	}

	log.removeFace(c.m, id)

	if _, err := log.addFace(c.m, ring, material); err != nil {
		return topologyErr("inset", err, "face %d cap", id)
	}
	for i := range winding {
		j := (i + 1) % len(winding)
		quad := []mesh.VertexID{winding[i], winding[j], ring[j], ring[i]}
		if _, err := log.addFace(c.m, quad, material); err != nil {
			return topologyErr("inset", err, "face %d rim %d", id, i)
		}
	}

	return nil
}

// executeRegion insets the whole target set at once. The region commits or
// rolls back as a unit.
func (c *insetFacesCmd) executeRegion() error {
	var log undoLog
	err := c.insetRegion(&log)
	if err != nil {
		log.revert(c.m)
	} else {
		c.logs = append(c.logs, log)
	}
	for _, id := range c.targets {
		c.report.add(faceTarget(id), err)
	}

	return nil
}

func (c *insetFacesCmd) insetRegion(log *undoLog) error {
	if len(c.targets) == 0 {
		return validationErr("inset", ErrNoTargets, "region")
	}

	selected := make(map[mesh.FaceID]struct{}, len(c.targets))
	type faceInfo struct {
		id       mesh.FaceID
		winding  []mesh.VertexID
		material mesh.MaterialID
	}
	infos := make([]faceInfo, 0, len(c.targets))
	for _, id := range c.targets {
		f, ok := c.m.Face(id)
		if !ok {
			return validationErr("inset", mesh.ErrFaceNotFound, "face %d", id)
		}
		if _, dup := selected[id]; dup {
			continue
		}
		selected[id] = struct{}{}
		infos = append(infos, faceInfo{id: id, winding: f.VertexIDs(), material: f.Material})
	}

	// Average the per-face inset targets so a vertex shared by several
	// selected faces gets one agreed inner position.
	sum := make(map[mesh.VertexID]geometry.Vector3)
	count := make(map[mesh.VertexID]int)
	for _, info := range infos {
		pts := make([]geometry.Vector3, len(info.winding))
		for i, vid := range info.winding {
			v, ok := c.m.Vertex(vid)
			if !ok {
				return validationErr("inset", mesh.ErrVertexNotFound, "vertex %d", vid)
			}
			pts[i] = v.Position
		}
		centroid := geometry.Centroid(pts)
		for i, vid := range info.winding {
			sum[vid] = sum[vid].Add(insetPosition(pts, i, centroid, c.amount))
			count[vid]++
		}
	}

	// Inner vertices carry no UVs: a shared duplicate cannot inherit one
	// coordinate from several fan corners.
	inner := make(map[mesh.VertexID]mesh.VertexID, len(sum))
	for vid, total := range sum {
		inner[vid] = log.addVertex(c.m, total.Scale(1/float64(count[vid])))
	}

	// Rim quads belong only to edges on the region boundary: an edge
	// interior to the region is covered by two caps.
	interior := make(map[mesh.EdgeKey]int)
	for _, info := range infos {
		w := info.winding
		for i := range w {
			interior[mesh.MakeEdgeKey(w[i], w[(i+1)%len(w)])]++
		}
	}

	for _, info := range infos {
		log.removeFace(c.m, info.id)
	}
	for _, info := range infos {
		capRing := make([]mesh.VertexID, len(info.winding))
		for i, vid := range info.winding {
			capRing[i] = inner[vid]
		}
		if _, err := log.addFace(c.m, capRing, info.material); err != nil {
			return topologyErr("inset", err, "face %d cap", info.id)
		}
		w := info.winding
		for i := range w {
			j := (i + 1) % len(w)
			if interior[mesh.MakeEdgeKey(w[i], w[j])] > 1 {
				continue
			}
			quad := []mesh.VertexID{w[i], w[j], inner[w[j]], inner[w[i]]}
			if _, err := log.addFace(c.m, quad, info.material); err != nil {
				return topologyErr("inset", err, "face %d rim %d", info.id, i)
			}
		}
	}

	return nil
}

// insetPosition computes the inner position for winding index i: step along
// the inward angle bisector, or toward the centroid where the two boundary
// directions cancel out.
func insetPosition(pts []geometry.Vector3, i int, centroid geometry.Vector3, amount float64) geometry.Vector3 {
	n := len(pts)
	cur := pts[i]
	toPrev := pts[(i-1+n)%n].Sub(cur)
	toNext := pts[(i+1)%n].Sub(cur)

	dir := geometry.Vector3{}
	if dp, ok := toPrev.Normalize(); ok {
		if dn, ok := toNext.Normalize(); ok {
			dir = dp.Add(dn)
		}
	}
	unit, ok := dir.Normalize()
	if !ok {
		// Straight or degenerate corner: head for the centroid instead.
		if unit, ok = centroid.Sub(cur).Normalize(); !ok {
			return cur
		}
	}

	return cur.Add(unit.Scale(amount))
}
