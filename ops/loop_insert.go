package ops

import (
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// loopInsertCmd cuts a new edge loop through a band of quads.
type loopInsertCmd struct {
	state
	m    *mesh.Mesh
	seed mesh.EdgeKey
	t    float64
	log  undoLog
}

// NewLoopInsert cuts an edge loop starting at the seed edge, split at
// parameter t in (0,1) measured from the seed key's lower-id endpoint. The
// walk crosses each quad from the entered edge to its opposite edge and
// keeps going until it returns to the seed (closed loop), hits a mesh
// boundary, or meets a face that is not a manifold quad. Quads along the
// walk split into two; a terminal non-quad neighbor has the split vertex
// spliced into its winding so no face is left pointing at a vanished edge.
func NewLoopInsert(m *mesh.Mesh, seed mesh.EdgeKey, t float64) Command {
	return &loopInsertCmd{m: m, seed: seed, t: t}
}

func (c *loopInsertCmd) Name() string  { return "loop_insert" }
func (c *loopInsertCmd) CanUndo() bool { return true }

func (c *loopInsertCmd) Execute() error {
	if err := c.begin(); err != nil {
		return err
	}
	c.log = undoLog{}
	if err := c.insert(&c.log); err != nil {
		c.log.revert(c.m)
		c.executed = false
		return err
	}

	return nil
}

func (c *loopInsertCmd) Undo() error {
	if err := c.beginUndo(); err != nil {
		return err
	}
	c.log.revert(c.m)

	return nil
}

// rebuildPlan defers face rebuilding until the whole walk has been traced,
// so the walk always reads pristine topology.
type rebuildPlan struct {
	face     mesh.FaceID
	windings [][]mesh.VertexID
}

// walkFront is the moving edge of the quad walk: the directed edge the next
// face is entered through, the parameter along it, and the already created
// split vertex sitting on it.
type walkFront struct {
	face mesh.FaceID
	u, v mesh.VertexID // directed as the face traverses it
	s    float64       // split parameter from u
	mid  mesh.VertexID
}

func (c *loopInsertCmd) insert(log *undoLog) error {
	if c.t <= 0 || c.t >= 1 {
		return validationErr("loop_insert", ErrInvalidLoop, "parameter %v", c.t)
	}
	e, ok := c.m.EdgeByKey(c.seed)
	if !ok {
		return validationErr("loop_insert", mesh.ErrEdgeNotFound, "edge %d-%d", c.seed.A, c.seed.B)
	}
	if e.IsOrphan() {
		return topologyErr("loop_insert", ErrInvalidLoop, "edge %d-%d has no faces", c.seed.A, c.seed.B)
	}
	if e.IsNonManifold() {
		return topologyErr("loop_insert", ErrInvalidLoop, "edge %d-%d has %d faces", c.seed.A, c.seed.B, e.FaceCount())
	}

	va, okA := c.m.Vertex(c.seed.A)
	vb, okB := c.m.Vertex(c.seed.B)
	if !okA || !okB {
		return validationErr("loop_insert", mesh.ErrVertexNotFound, "edge %d-%d", c.seed.A, c.seed.B)
	}
	seedMid := log.addVertex(c.m, va.Position.Lerp(vb.Position, c.t))

	var plans []rebuildPlan
	visited := make(map[mesh.FaceID]struct{})

	faces := e.FaceIDs()
	closed, err := c.walk(front(c.m, faces[0], c.seed, c.t, seedMid), c.seed, seedMid, visited, &plans, log)
	if err != nil {
		return err
	}
	if !closed && len(faces) == 2 {
		if _, err := c.walk(front(c.m, faces[1], c.seed, c.t, seedMid), c.seed, seedMid, visited, &plans, log); err != nil {
			return err
		}
	}

	for _, plan := range plans {
		material := faceMaterialOf(c.m, plan.face)
		log.removeFace(c.m, plan.face)
		for _, w := range plan.windings {
			if _, err := log.addFace(c.m, w, material); err != nil {
				return topologyErr("loop_insert", err, "face %d", plan.face)
			}
		}
	}

	return nil
}

// front builds the initial walk state for one side of the seed edge.
func front(m *mesh.Mesh, faceID mesh.FaceID, seed mesh.EdgeKey, t float64, mid mesh.VertexID) walkFront {
	f, _ := m.Face(faceID)
	if f != nil && traverses(f.VertexIDs(), seed.A, seed.B) {
		return walkFront{face: faceID, u: seed.A, v: seed.B, s: t, mid: mid}
	}

	return walkFront{face: faceID, u: seed.B, v: seed.A, s: 1 - t, mid: mid}
}

// walk traces one direction away from the seed, planning face rebuilds as
// it goes. It reports whether the loop closed back onto the seed edge.
func (c *loopInsertCmd) walk(w walkFront, seed mesh.EdgeKey, seedMid mesh.VertexID, visited map[mesh.FaceID]struct{}, plans *[]rebuildPlan, log *undoLog) (bool, error) {
	maxSteps := c.m.FaceCount() + 1
	for step := 0; step < maxSteps; step++ {
		if _, done := visited[w.face]; done {
			return false, nil
		}
		f, ok := c.m.Face(w.face)
		if !ok {
			return false, nil
		}
		winding := rotateTo(f.VertexIDs(), w.u, w.v)
		if winding == nil {
			return false, nil
		}
		if len(winding) != 4 {
			// Terminal non-quad: splice the entry split into it and stop.
			visited[w.face] = struct{}{}
			*plans = append(*plans, rebuildPlan{
				face:     w.face,
				windings: [][]mesh.VertexID{spliceAfter(winding, w.u, w.mid)},
			})
			return false, nil
		}
		visited[w.face] = struct{}{}

		a, b, cc, d := winding[0], winding[1], winding[2], winding[3]
		exit := mesh.MakeEdgeKey(cc, d)

		var mid mesh.VertexID
		closing := exit == seed
		if closing {
			mid = seedMid
		} else {
			vd, okD := c.m.Vertex(d)
			vc, okC := c.m.Vertex(cc)
			if !okD || !okC {
				return false, validationErr("loop_insert", mesh.ErrVertexNotFound, "edge %d-%d", cc, d)
			}
			mid = log.addVertex(c.m, vd.Position.Lerp(vc.Position, w.s))
		}

		*plans = append(*plans, rebuildPlan{
			face: w.face,
			windings: [][]mesh.VertexID{
				{a, w.mid, mid, d},
				{w.mid, b, cc, mid},
			},
		})
		if closing {
			return true, nil
		}

		exitEdge, ok := c.m.EdgeByKey(exit)
		if !ok || !exitEdge.IsManifold() {
			// Boundary or non-manifold: splice the split vertex into any
			// other face still using the exit edge, then stop.
			if ok {
				for _, nid := range exitEdge.FaceIDs() {
					if nid == w.face {
						continue
					}
					if _, done := visited[nid]; done {
						continue
					}
					nf, okN := c.m.Face(nid)
					if !okN {
						continue
					}
					visited[nid] = struct{}{}
					*plans = append(*plans, rebuildPlan{
						face:     nid,
						windings: [][]mesh.VertexID{spliceBetween(nf.VertexIDs(), exit, mid)},
					})
				}
			}
			return false, nil
		}

		next := exitEdge.FaceIDs()[0]
		if next == w.face {
			next = exitEdge.FaceIDs()[1]
		}
		nf, ok := c.m.Face(next)
		if !ok {
			return false, nil
		}
		if traverses(nf.VertexIDs(), d, cc) {
			w = walkFront{face: next, u: d, v: cc, s: w.s, mid: mid}
		} else {
			w = walkFront{face: next, u: cc, v: d, s: 1 - w.s, mid: mid}
		}
	}

	return false, nil
}

// rotateTo rotates winding so it starts with the directed edge u -> v, or
// returns nil when the winding does not contain it.
func rotateTo(winding []mesh.VertexID, u, v mesh.VertexID) []mesh.VertexID {
	n := len(winding)
	for i := 0; i < n; i++ {
		if winding[i] == u && winding[(i+1)%n] == v {
			out := make([]mesh.VertexID, n)
			for j := 0; j < n; j++ {
				out[j] = winding[(i+j)%n]
			}
			return out
		}
	}

	return nil
}

// spliceAfter inserts mid right after u in the winding.
func spliceAfter(winding []mesh.VertexID, u mesh.VertexID, mid mesh.VertexID) []mesh.VertexID {
	out := make([]mesh.VertexID, 0, len(winding)+1)
	for _, vid := range winding {
		out = append(out, vid)
		if vid == u {
			out = append(out, mid)
		}
	}

	return out
}

// spliceBetween inserts mid between the two endpoints of key, in the
// winding's own traversal direction.
func spliceBetween(winding []mesh.VertexID, key mesh.EdgeKey, mid mesh.VertexID) []mesh.VertexID {
	return spliceChain(winding, key, []mesh.VertexID{mid})
}
