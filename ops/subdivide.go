package ops

import (
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// subdivideFacesCmd replaces each face by a triangle fan around its centroid.
type subdivideFacesCmd struct {
	state
	m       *mesh.Mesh
	targets []mesh.FaceID
	report  Report
	logs    []undoLog
}

// NewSubdivideFaces splits every target face into triangles around a new
// center vertex at the face centroid. The center inherits averaged UV and
// shading normal when every corner carries them. The original face id dies;
// the fan triangles get fresh ids.
func NewSubdivideFaces(m *mesh.Mesh, targets []mesh.FaceID) Command {
	return &subdivideFacesCmd{m: m, targets: targets}
}

// NewSubdivideFacesFromSelection pulls the face list from the selection.
func NewSubdivideFacesFromSelection(m *mesh.Mesh, sel Selection) Command {
	return NewSubdivideFaces(m, sel.SelectedFaceIDs())
}

func (c *subdivideFacesCmd) Name() string    { return "subdivide_faces" }
func (c *subdivideFacesCmd) CanUndo() bool   { return true }
func (c *subdivideFacesCmd) Report() *Report { return &c.report }

func (c *subdivideFacesCmd) Execute() error {
	if err := c.begin(); err != nil {
		return err
	}
	c.report = Report{}
	c.logs = c.logs[:0]

	for _, id := range c.targets {
		var log undoLog
		if err := c.subdivideOne(id, &log); err != nil {
			log.revert(c.m)
			c.report.add(faceTarget(id), err)
			continue
		}
		c.logs = append(c.logs, log)
		c.report.add(faceTarget(id), nil)
	}

	return nil
}

func (c *subdivideFacesCmd) Undo() error {
	if err := c.beginUndo(); err != nil {
		return err
	}
	for i := len(c.logs) - 1; i >= 0; i-- {
		c.logs[i].revert(c.m)
	}
	c.logs = c.logs[:0]

	return nil
}

func (c *subdivideFacesCmd) subdivideOne(id mesh.FaceID, log *undoLog) error {
	f, ok := c.m.Face(id)
	if !ok {
		return validationErr("subdivide_faces", mesh.ErrFaceNotFound, "face %d", id)
	}
	winding := f.VertexIDs()
	material := f.Material

	pts := make([]geometry.Vector3, len(winding))
	var (
		uvSum      geometry.Vector2
		nSum       geometry.Vector3
		allUV      = true
		allNormals = true
	)
	for i, vid := range winding {
		v, ok := c.m.Vertex(vid)
		if !ok {
			return validationErr("subdivide_faces", mesh.ErrVertexNotFound, "vertex %d", vid)
		}
		pts[i] = v.Position
		if v.UV != nil {
			uvSum = uvSum.Add(*v.UV)
		} else {
			allUV = false
		}
		if v.Normal != nil {
			nSum = nSum.Add(*v.Normal)
		} else {
			allNormals = false
		}
	}

	var opts []mesh.VertexOption
	if allUV {
		opts = append(opts, mesh.WithUV(uvSum.Scale(1/float64(len(winding)))))
	}
	if allNormals {
		if unit, ok := nSum.Normalize(); ok {
			opts = append(opts, mesh.WithNormal(unit))
		}
	}
	center := log.addVertex(c.m, geometry.Centroid(pts), opts...)

	log.removeFace(c.m, id)

	for i := range winding {
		j := (i + 1) % len(winding)
		tri := []mesh.VertexID{winding[i], winding[j], center}
		if _, err := log.addFace(c.m, tri, material); err != nil {
			return topologyErr("subdivide_faces", err, "face %d fan %d", id, i)
		}
	}

	return nil
}

// subdivideEdgesCmd splits edges by inserting evenly spaced vertices and
// rebuilding every face that used the edge with the new chain spliced in.
type subdivideEdgesCmd struct {
	state
	m       *mesh.Mesh
	targets []mesh.EdgeKey
	cuts    int
	smooth  bool
	report  Report
	logs    []undoLog
}

// SubdivideEdgesOption tweaks an edge-subdivide command.
type SubdivideEdgesOption func(*subdivideEdgesCmd)

// SubdivideSmooth also interpolates UV and shading normal onto the inserted
// vertices when both endpoints carry the attribute.
func SubdivideSmooth() SubdivideEdgesOption {
	return func(c *subdivideEdgesCmd) { c.smooth = true }
}

// NewSubdivideEdges splits every target edge into cuts+1 segments. Faces
// using the edge are rebuilt with the chain spliced into their winding;
// pinned target edges are replaced by a pinned chain.
func NewSubdivideEdges(m *mesh.Mesh, targets []mesh.EdgeKey, cuts int, opts ...SubdivideEdgesOption) Command {
	c := &subdivideEdgesCmd{m: m, targets: targets, cuts: cuts}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewSubdivideEdgesFromSelection pulls the edge list from the selection.
func NewSubdivideEdgesFromSelection(m *mesh.Mesh, sel Selection, cuts int, opts ...SubdivideEdgesOption) Command {
	return NewSubdivideEdges(m, sel.SelectedEdgeKeys(), cuts, opts...)
}

func (c *subdivideEdgesCmd) Name() string    { return "subdivide_edges" }
func (c *subdivideEdgesCmd) CanUndo() bool   { return true }
func (c *subdivideEdgesCmd) Report() *Report { return &c.report }

func (c *subdivideEdgesCmd) Execute() error {
	if err := c.begin(); err != nil {
		return err
	}
	c.report = Report{}
	c.logs = c.logs[:0]

	if c.cuts < 1 {
		for _, key := range c.targets {
			c.report.add(edgeTarget(key), validationErr("subdivide_edges", ErrNoTargets, "cuts %d", c.cuts))
		}
		return nil
	}

	for _, key := range c.targets {
		var log undoLog
		if err := c.splitOne(key, &log); err != nil {
			log.revert(c.m)
			c.report.add(edgeTarget(key), err)
			continue
		}
		c.logs = append(c.logs, log)
		c.report.add(edgeTarget(key), nil)
	}

	return nil
}

func (c *subdivideEdgesCmd) Undo() error {
	if err := c.beginUndo(); err != nil {
		return err
	}
	for i := len(c.logs) - 1; i >= 0; i-- {
		c.logs[i].revert(c.m)
	}
	c.logs = c.logs[:0]

	return nil
}

func (c *subdivideEdgesCmd) splitOne(key mesh.EdgeKey, log *undoLog) error {
	e, ok := c.m.EdgeByKey(key)
	if !ok {
		return validationErr("subdivide_edges", mesh.ErrEdgeNotFound, "edge %d-%d", key.A, key.B)
	}
	va, okA := c.m.Vertex(key.A)
	vb, okB := c.m.Vertex(key.B)
	if !okA || !okB {
		return validationErr("subdivide_edges", mesh.ErrVertexNotFound, "edge %d-%d", key.A, key.B)
	}
	pinned := e.Pinned()
	faces := e.FaceIDs()

	// Chain runs A -> B in canonical key order.
	chain := make([]mesh.VertexID, c.cuts)
	for k := 1; k <= c.cuts; k++ {
		t := float64(k) / float64(c.cuts+1)
		var opts []mesh.VertexOption
		if c.smooth {
			if va.UV != nil && vb.UV != nil {
				opts = append(opts, mesh.WithUV(va.UV.Lerp(*vb.UV, t)))
			}
			if va.Normal != nil && vb.Normal != nil {
				if unit, ok := va.Normal.Lerp(*vb.Normal, t).Normalize(); ok {
					opts = append(opts, mesh.WithNormal(unit))
				}
			}
		}
		chain[k-1] = log.addVertex(c.m, va.Position.Lerp(vb.Position, t), opts...)
	}

	for _, fid := range faces {
		f, ok := c.m.Face(fid)
		if !ok {
			continue
		}
		winding := spliceChain(f.VertexIDs(), key, chain)
		material := f.Material
		log.removeFace(c.m, fid)
		if _, err := log.addFace(c.m, winding, material); err != nil {
			return topologyErr("subdivide_edges", err, "face %d", fid)
		}
	}

	if pinned {
		// The straight pinned span is replaced by a pinned chain.
		if _, stillThere := c.m.EdgeByKey(key); stillThere {
			log.removePinnedEdge(c.m, key)
		}
		prev := key.A
		for _, mid := range chain {
			if k, err := c.m.AddEdge(prev, mid); err == nil {
				log.createdEdges = append(log.createdEdges, k)
			}
			prev = mid
		}
		if k, err := c.m.AddEdge(prev, key.B); err == nil {
			log.createdEdges = append(log.createdEdges, k)
		}
	}

	return nil
}

// spliceChain inserts chain between the two endpoints of key inside winding,
// following the face's own traversal direction.
func spliceChain(winding []mesh.VertexID, key mesh.EdgeKey, chain []mesh.VertexID) []mesh.VertexID {
	out := make([]mesh.VertexID, 0, len(winding)+len(chain))
	n := len(winding)
	for i := 0; i < n; i++ {
		cur, next := winding[i], winding[(i+1)%n]
		out = append(out, cur)
		if mesh.MakeEdgeKey(cur, next) != key {
			continue
		}
		if cur == key.A {
			out = append(out, chain...)
		} else {
			for j := len(chain) - 1; j >= 0; j-- {
				out = append(out, chain[j])
			}
		}
	}

	return out
}
