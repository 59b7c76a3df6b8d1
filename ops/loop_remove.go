package ops

import (
	"fmt"
	"sort"

	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// loopRemoveCmd deletes an edge loop and merges the face bands on both
// sides of it.
type loopRemoveCmd struct {
	state
	m              *mesh.Mesh
	targets        []mesh.EdgeKey
	acrossMaterial bool
	report         Report
}

// LoopRemoveOption tweaks a loop-remove command.
type LoopRemoveOption func(*loopRemoveCmd)

// MergeAcrossMaterials lets face groups with different materials merge into
// one face; the merged face keeps the material of the group's first face.
// Without it, a material boundary also bounds the merge groups.
func MergeAcrossMaterials() LoopRemoveOption {
	return func(c *loopRemoveCmd) { c.acrossMaterial = true }
}

// NewLoopRemove deletes the given edge loop: faces connected through the
// loop's edges are merged group by group, the loop's edges disappear, and
// loop vertices left without topology are removed. Every vertex on the loop
// must touch exactly two loop edges, so the set must form closed loops or
// end-to-end chains. Irreversible.
func NewLoopRemove(m *mesh.Mesh, targets []mesh.EdgeKey, opts ...LoopRemoveOption) Command {
	c := &loopRemoveCmd{m: m, targets: targets}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewLoopRemoveFromSelection pulls the edge list from the selection.
func NewLoopRemoveFromSelection(m *mesh.Mesh, sel Selection, opts ...LoopRemoveOption) Command {
	return NewLoopRemove(m, sel.SelectedEdgeKeys(), opts...)
}

func (c *loopRemoveCmd) Name() string    { return "loop_remove" }
func (c *loopRemoveCmd) CanUndo() bool   { return false }
func (c *loopRemoveCmd) Undo() error     { return ErrUndoUnsupported }
func (c *loopRemoveCmd) Report() *Report { return &c.report }

func (c *loopRemoveCmd) Execute() error {
	if err := c.begin(); err != nil {
		return err
	}
	c.report = Report{}

	loop := make(map[mesh.EdgeKey]struct{}, len(c.targets))
	for _, key := range c.targets {
		if _, ok := c.m.EdgeByKey(key); !ok {
			c.executed = false
			return validationErr("loop_remove", mesh.ErrEdgeNotFound, "edge %d-%d", key.A, key.B)
		}
		loop[key] = struct{}{}
	}
	if len(loop) == 0 {
		c.executed = false
		return validationErr("loop_remove", ErrNoTargets, "loop")
	}

	// Loop vertices must carry exactly two loop edges; anything else is a
	// branch or a dangling end inside the set.
	degree := make(map[mesh.VertexID]int)
	for key := range loop {
		degree[key.A]++
		degree[key.B]++
	}
	for vid, d := range degree {
		if d != 2 {
			c.executed = false
			return validationErr("loop_remove", ErrInvalidLoop, "vertex %d touches %d loop edges", vid, d)
		}
	}

	for _, group := range c.groups(loop) {
		c.mergeGroup(group, degree)
	}

	// Pinned loop edges survive their faces; sweep them explicitly, then
	// drop the loop vertices nothing references anymore.
	for key := range loop {
		if _, ok := c.m.EdgeByKey(key); ok {
			_, _ = c.m.RemoveEdge(key.A, key.B)
		}
	}
	for vid := range degree {
		if v, ok := c.m.Vertex(vid); ok && v.FaceCount() == 0 && v.EdgeCount() == 0 {
			c.m.RemoveVertex(vid)
		}
	}

	return nil
}

// groups partitions the faces touching the loop into merge groups: faces
// joined by a shared loop edge (and, unless disabled, a shared material)
// merge together. Groups come out in ascending order of their lowest id.
func (c *loopRemoveCmd) groups(loop map[mesh.EdgeKey]struct{}) [][]mesh.FaceID {
	adj := make(map[mesh.FaceID][]mesh.FaceID)
	for key := range loop {
		e, ok := c.m.EdgeByKey(key)
		if !ok {
			continue
		}
		ids := e.FaceIDs()
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				if !c.acrossMaterial && !sameMaterial(c.m, ids[i], ids[j]) {
					continue
				}
				adj[ids[i]] = append(adj[ids[i]], ids[j])
				adj[ids[j]] = append(adj[ids[j]], ids[i])
			}
		}
	}

	roots := make([]mesh.FaceID, 0, len(adj))
	for id := range adj {
		roots = append(roots, id)
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })

	var out [][]mesh.FaceID
	seen := make(map[mesh.FaceID]struct{}, len(adj))
	for _, root := range roots {
		if _, done := seen[root]; done {
			continue
		}
		group := []mesh.FaceID{root}
		seen[root] = struct{}{}
		for i := 0; i < len(group); i++ {
			for _, next := range adj[group[i]] {
				if _, done := seen[next]; done {
					continue
				}
				seen[next] = struct{}{}
				group = append(group, next)
			}
		}
		if len(group) > 1 {
			out = append(out, group)
		}
	}

	return out
}

// mergeGroup melts one face group into a single face with the loop vertices
// squeezed out of its boundary. A group whose combined boundary does not
// close into one cycle is reported and left untouched.
func (c *loopRemoveCmd) mergeGroup(group []mesh.FaceID, loopDegree map[mesh.VertexID]int) {
	target := groupTarget(group)

	next := make(map[mesh.VertexID]mesh.VertexID)
	drop := make(map[dirEdge]int)
	for _, id := range group {
		f, ok := c.m.Face(id)
		if !ok {
			c.report.add(target, validationErr("loop_remove", mesh.ErrFaceNotFound, "face %d", id))
			return
		}
		w := f.VertexIDs()
		for i := range w {
			from, to := w[i], w[(i+1)%len(w)]
			drop[dirEdge{from, to}]++
		}
	}
	// Directed edges traversed both ways inside the group are interior and
	// cancel; the rest must chain into one cycle.
	for de, n := range drop {
		if n > 1 {
			c.report.add(target, topologyErr("loop_remove", ErrOpenBoundary, "edge %d-%d traversed twice", de.from, de.to))
			return
		}
		if drop[dirEdge{de.to, de.from}] > 0 {
			continue
		}
		if _, dup := next[de.from]; dup {
			c.report.add(target, topologyErr("loop_remove", ErrOpenBoundary, "vertex %d branches", de.from))
			return
		}
		next[de.from] = de.to
	}
	if len(next) == 0 {
		c.report.add(target, topologyErr("loop_remove", ErrOpenBoundary, "no boundary"))
		return
	}

	var start mesh.VertexID
	for from := range next {
		start = from
		break
	}
	boundary := make([]mesh.VertexID, 0, len(next))
	cur := start
	for range next {
		boundary = append(boundary, cur)
		n, ok := next[cur]
		if !ok {
			c.report.add(target, topologyErr("loop_remove", ErrOpenBoundary, "vertex %d dead-ends", cur))
			return
		}
		cur = n
	}
	if cur != start || len(boundary) != len(next) {
		c.report.add(target, topologyErr("loop_remove", ErrOpenBoundary, "multiple cycles"))
		return
	}

	// Loop vertices are interior to the merged face; squeeze them out.
	merged := boundary[:0]
	for _, vid := range boundary {
		if _, onLoop := loopDegree[vid]; onLoop {
			continue
		}
		merged = append(merged, vid)
	}
	if len(merged) < 3 {
		c.report.add(target, topologyErr("loop_remove", ErrDegenerateFace, "merged boundary too small"))
		return
	}

	material := faceMaterialOf(c.m, group[0])
	var log undoLog
	for _, id := range group {
		log.removeFace(c.m, id)
	}
	if _, err := log.addFace(c.m, merged, material); err != nil {
		log.revert(c.m)
		c.report.add(target, topologyErr("loop_remove", err, "merged face"))
		return
	}
	c.report.add(target, nil)
}

type dirEdge struct {
	from, to mesh.VertexID
}

// groupTarget labels a merge group for the report.
func groupTarget(group []mesh.FaceID) string {
	sorted := append([]mesh.FaceID(nil), group...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	s := "faces"
	for _, id := range sorted {
		s += fmt.Sprintf(" %d", id)
	}

	return s
}

// sameMaterial reports whether two faces share a material id.
func sameMaterial(m *mesh.Mesh, a, b mesh.FaceID) bool {
	fa, okA := m.Face(a)
	fb, okB := m.Face(b)

	return okA && okB && fa.Material == fb.Material
}
