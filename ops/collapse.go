package ops

import (
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// CollapseMode selects where the merged vertex of an edge collapse lands.
type CollapseMode int

const (
	// CollapseMidpoint places the merged vertex at the edge midpoint.
	CollapseMidpoint CollapseMode = iota

	// CollapseFirst keeps the position of the lower-id endpoint.
	CollapseFirst

	// CollapseSecond keeps the position of the higher-id endpoint.
	CollapseSecond

	// CollapseWeighted biases toward the endpoint with more incident
	// topology, so the busier vertex moves less.
	CollapseWeighted
)

// collapseEdgesCmd contracts edges to a single vertex each. Old ids die and
// cannot be resurrected, so the command is irreversible.
type collapseEdgesCmd struct {
	state
	m       *mesh.Mesh
	targets []mesh.EdgeKey
	mode    CollapseMode
	report  Report
}

// NewCollapseEdges contracts every target edge: both endpoints are replaced
// by one fresh vertex, faces spanning the edge disappear, and surviving
// incident faces are rebuilt around the merged vertex. Irreversible.
func NewCollapseEdges(m *mesh.Mesh, targets []mesh.EdgeKey, mode CollapseMode) Command {
	return &collapseEdgesCmd{m: m, targets: targets, mode: mode}
}

// NewCollapseEdgesFromSelection pulls the edge list from the selection.
func NewCollapseEdgesFromSelection(m *mesh.Mesh, sel Selection, mode CollapseMode) Command {
	return NewCollapseEdges(m, sel.SelectedEdgeKeys(), mode)
}

func (c *collapseEdgesCmd) Name() string    { return "collapse" }
func (c *collapseEdgesCmd) CanUndo() bool   { return false }
func (c *collapseEdgesCmd) Undo() error     { return ErrUndoUnsupported }
func (c *collapseEdgesCmd) Report() *Report { return &c.report }

func (c *collapseEdgesCmd) Execute() error {
	if err := c.begin(); err != nil {
		return err
	}
	c.report = Report{}

	for _, key := range c.targets {
		var log undoLog
		if err := c.collapseOne(key, &log); err != nil {
			log.revert(c.m)
			c.report.add(edgeTarget(key), err)
			continue
		}
		c.report.add(edgeTarget(key), nil)
	}

	return nil
}

func (c *collapseEdgesCmd) collapseOne(key mesh.EdgeKey, log *undoLog) error {
	if _, ok := c.m.EdgeByKey(key); !ok {
		return validationErr("collapse", mesh.ErrEdgeNotFound, "edge %d-%d", key.A, key.B)
	}
	va, okA := c.m.Vertex(key.A)
	vb, okB := c.m.Vertex(key.B)
	if !okA || !okB {
		return validationErr("collapse", mesh.ErrVertexNotFound, "edge %d-%d", key.A, key.B)
	}

	merged := log.addVertex(c.m, c.mergedPosition(va, vb))

	// Faces spanning the edge vanish; faces touching one endpoint are
	// rebuilt with that endpoint swapped for the merged vertex. A rebuild
	// that leaves fewer than three distinct corners degenerates away.
	seen := make(map[mesh.FaceID]struct{})
	for _, vid := range []mesh.VertexID{key.A, key.B} {
		v, _ := c.m.Vertex(vid)
		for _, fid := range v.FaceIDs() {
			if _, done := seen[fid]; done {
				continue
			}
			seen[fid] = struct{}{}
			f, ok := c.m.Face(fid)
			if !ok {
				continue
			}
			winding := remapWinding(f.VertexIDs(), map[mesh.VertexID]mesh.VertexID{
				key.A: merged,
				key.B: merged,
			})
			material := f.Material
			log.removeFace(c.m, fid)
			if winding == nil {
				continue
			}
			if _, err := log.addFace(c.m, winding, material); err != nil {
				return topologyErr("collapse", err, "face %d", fid)
			}
		}
	}

	// Pinned edges hanging off either endpoint are re-pinned onto the
	// merged vertex before the endpoints cascade away.
	for _, vid := range []mesh.VertexID{key.A, key.B} {
		v, _ := c.m.Vertex(vid)
		for _, k := range v.EdgeKeys() {
			if k == key {
				continue
			}
			if e, ok := c.m.EdgeByKey(k); ok && e.Pinned() {
				other, _ := k.Other(vid)
				if nk, err := c.m.AddEdge(merged, other); err == nil {
					log.createdEdges = append(log.createdEdges, nk)
				}
			}
		}
	}

	log.removeVertex(c.m, key.A)
	log.removeVertex(c.m, key.B)

	return nil
}

// mergedPosition resolves the collapse landing point for the chosen mode.
func (c *collapseEdgesCmd) mergedPosition(va, vb *mesh.Vertex) geometry.Vector3 {
	switch c.mode {
	case CollapseFirst:
		return va.Position
	case CollapseSecond:
		return vb.Position
	case CollapseWeighted:
		wa := float64(va.EdgeCount() + va.FaceCount())
		wb := float64(vb.EdgeCount() + vb.FaceCount())
		if wa+wb == 0 {
			return va.Position.Mid(vb.Position)
		}
		return va.Position.Lerp(vb.Position, wb/(wa+wb))
	default:
		return va.Position.Mid(vb.Position)
	}
}

// remapWinding substitutes vertex ids and drops consecutive duplicates,
// including across the closing wrap. It returns nil when fewer than three
// distinct corners remain.
func remapWinding(winding []mesh.VertexID, subst map[mesh.VertexID]mesh.VertexID) []mesh.VertexID {
	out := make([]mesh.VertexID, 0, len(winding))
	for _, vid := range winding {
		if repl, ok := subst[vid]; ok {
			vid = repl
		}
		if len(out) > 0 && out[len(out)-1] == vid {
			continue
		}
		out = append(out, vid)
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}

	distinct := make(map[mesh.VertexID]struct{}, len(out))
	for _, vid := range out {
		distinct[vid] = struct{}{}
	}
	if len(distinct) < 3 {
		return nil
	}

	return out
}
