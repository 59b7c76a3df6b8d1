package ops

import (
	"math"

	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// Coplanarity tolerances for merging: normals must agree to within about
// 0.08 degrees and every corner of one face must sit on the other's plane.
const (
	coplanarDot  = 1 - 1e-6
	coplanarDist = 1e-6
)

// mergeFacesCmd joins two coplanar faces sharing exactly one edge into a
// single face.
type mergeFacesCmd struct {
	state
	m    *mesh.Mesh
	a, b mesh.FaceID
	log  undoLog
}

// NewMergeFaces dissolves the single shared edge between faces a and b and
// replaces both with one face tracing their combined boundary. The merged
// face keeps a's material on a fresh id. Fails without side effects when the
// faces are not coplanar or the shared edge is missing or ambiguous.
func NewMergeFaces(m *mesh.Mesh, a, b mesh.FaceID) Command {
	return &mergeFacesCmd{m: m, a: a, b: b}
}

func (c *mergeFacesCmd) Name() string  { return "merge_faces" }
func (c *mergeFacesCmd) CanUndo() bool { return true }

func (c *mergeFacesCmd) Execute() error {
	if err := c.begin(); err != nil {
		return err
	}
	c.log = undoLog{}
	if _, err := mergeFacePair(c.m, c.a, c.b, &c.log); err != nil {
		c.log.revert(c.m)
		c.executed = false
		return err
	}

	return nil
}

func (c *mergeFacesCmd) Undo() error {
	if err := c.beginUndo(); err != nil {
		return err
	}
	c.log.revert(c.m)

	return nil
}

// mergeFacePair validates and performs one pairwise merge, recording the
// delta into log. Shared by merge_faces and dissolve.
func mergeFacePair(m *mesh.Mesh, a, b mesh.FaceID, log *undoLog) (mesh.FaceID, error) {
	if a == b {
		return 0, validationErr("merge_faces", ErrSelfMerge, "face %d", a)
	}
	fa, okA := m.Face(a)
	fb, okB := m.Face(b)
	if !okA {
		return 0, validationErr("merge_faces", mesh.ErrFaceNotFound, "face %d", a)
	}
	if !okB {
		return 0, validationErr("merge_faces", mesh.ErrFaceNotFound, "face %d", b)
	}

	if err := checkCoplanar(m, fa, fb); err != nil {
		return 0, err
	}

	shared, err := sharedEdge(fa, fb)
	if err != nil {
		return 0, err
	}

	combined, ok := traceCombinedBoundary(fa.VertexIDs(), fb.VertexIDs(), shared)
	if !ok {
		return 0, topologyErr("merge_faces", ErrOpenBoundary, "faces %d+%d", a, b)
	}

	material := fa.Material
	log.removeFace(m, a)
	log.removeFace(m, b)
	id, err := log.addFace(m, combined, material)
	if err != nil {
		return 0, topologyErr("merge_faces", err, "faces %d+%d", a, b)
	}

	return id, nil
}

// checkCoplanar requires both faces to have normals that agree and corners
// on a common plane.
func checkCoplanar(m *mesh.Mesh, fa, fb *mesh.Face) error {
	na, okA := fa.Normal()
	nb, okB := fb.Normal()
	if !okA {
		return topologyErr("merge_faces", ErrDegenerateFace, "face %d", fa.ID)
	}
	if !okB {
		return topologyErr("merge_faces", ErrDegenerateFace, "face %d", fb.ID)
	}
	if na.Dot(nb) < coplanarDot {
		return topologyErr("merge_faces", ErrNotCoplanar, "faces %d+%d", fa.ID, fb.ID)
	}

	origin := geometry.Vector3{}
	if v, ok := m.Vertex(fa.VertexIDs()[0]); ok {
		origin = v.Position
	}
	for _, vid := range fb.VertexIDs() {
		v, ok := m.Vertex(vid)
		if !ok {
			continue
		}
		if math.Abs(geometry.PlaneDistance(v.Position, origin, na)) > coplanarDist {
			return topologyErr("merge_faces", ErrNotCoplanar, "faces %d+%d", fa.ID, fb.ID)
		}
	}

	return nil
}

// sharedEdge finds the unique edge both faces use.
func sharedEdge(fa, fb *mesh.Face) (mesh.EdgeKey, error) {
	inA := make(map[mesh.EdgeKey]struct{})
	for _, k := range fa.EdgeKeys() {
		inA[k] = struct{}{}
	}
	var (
		found mesh.EdgeKey
		n     int
	)
	for _, k := range fb.EdgeKeys() {
		if _, ok := inA[k]; ok {
			found = k
			n++
		}
	}
	switch n {
	case 0:
		return mesh.EdgeKey{}, topologyErr("merge_faces", ErrNoSharedEdge, "faces %d+%d", fa.ID, fb.ID)
	case 1:
		return found, nil
	default:
		return mesh.EdgeKey{}, topologyErr("merge_faces", ErrMultiSharedEdge, "faces %d+%d", fa.ID, fb.ID)
	}
}

// traceCombinedBoundary melts the two windings into one cycle: every
// directed edge of both faces goes into a successor table, the two
// traversals of the shared edge cancel, and the remainder is chained from an
// arbitrary start. Fails when the remainder is not a single cycle, e.g. when
// the faces wind in opposite orientations.
func traceCombinedBoundary(wa, wb []mesh.VertexID, shared mesh.EdgeKey) ([]mesh.VertexID, bool) {
	next := make(map[mesh.VertexID]mesh.VertexID, len(wa)+len(wb))
	add := func(w []mesh.VertexID) bool {
		for i := range w {
			from, to := w[i], w[(i+1)%len(w)]
			if mesh.MakeEdgeKey(from, to) == shared {
				continue
			}
			if _, dup := next[from]; dup {
				return false
			}
			next[from] = to
		}
		return true
	}
	if !add(wa) || !add(wb) {
		return nil, false
	}

	start := wa[0]
	if _, ok := next[start]; !ok {
		// wa[0] can be the shared edge's tail; pick any recorded tail.
		for from := range next {
			start = from
			break
		}
	}

	out := make([]mesh.VertexID, 0, len(next))
	cur := start
	for range next {
		out = append(out, cur)
		var ok bool
		cur, ok = next[cur]
		if !ok {
			return nil, false
		}
	}

	return out, cur == start && len(out) == len(next)
}
