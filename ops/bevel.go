package ops

import (
	"math"

	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// bevelProfile selects the cross-section shape of a bevel.
type bevelProfile int

const (
	profileChamfer bevelProfile = iota
	profileRounded
)

// bevelEdgesCmd replaces edges by segmented strips between their two
// adjacent faces.
type bevelEdgesCmd struct {
	state
	m        *mesh.Mesh
	targets  []mesh.EdgeKey
	width    float64
	widths   [2]float64
	segments int
	profile  bevelProfile
	report   Report
}

// BevelEdgesOption tweaks an edge-bevel command.
type BevelEdgesOption func(*bevelEdgesCmd)

// BevelEdgeSegments sets the strip resolution; n quads across the bevel.
// Values below 1 are clamped to 1.
func BevelEdgeSegments(n int) BevelEdgesOption {
	return func(c *bevelEdgesCmd) {
		if n < 1 {
			n = 1
		}
		c.segments = n
	}
}

// BevelEdgeRounded bends the strip into an arc instead of a flat chamfer.
func BevelEdgeRounded() BevelEdgesOption {
	return func(c *bevelEdgesCmd) { c.profile = profileRounded }
}

// BevelEdgeWidths makes an interior-edge bevel asymmetric: wa is the slide
// into the face that traverses the edge from its lower to its higher vertex
// id, wb the slide into the opposite face. Without this option both sides
// use the constructor width. Boundary edges ignore the pair.
func BevelEdgeWidths(wa, wb float64) BevelEdgesOption {
	return func(c *bevelEdgesCmd) { c.widths = [2]float64{wa, wb} }
}

// NewBevelEdges replaces every target edge with a strip of quads: both
// endpoint vertices fan out into rings displaced into the two adjacent
// faces, those faces are rebuilt on the outermost rings, and corner gaps at
// endpoints that keep other topology are fan-filled. A boundary edge gets a
// single inward slide instead of a strip. Old vertex positions are gone
// afterwards, so the command is irreversible.
func NewBevelEdges(m *mesh.Mesh, targets []mesh.EdgeKey, width float64, opts ...BevelEdgesOption) Command {
	c := &bevelEdgesCmd{m: m, targets: targets, width: width, widths: [2]float64{width, width}, segments: 1}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewBevelEdgesFromSelection pulls the edge list from the selection.
func NewBevelEdgesFromSelection(m *mesh.Mesh, sel Selection, width float64, opts ...BevelEdgesOption) Command {
	return NewBevelEdges(m, sel.SelectedEdgeKeys(), width, opts...)
}

func (c *bevelEdgesCmd) Name() string    { return "bevel_edges" }
func (c *bevelEdgesCmd) CanUndo() bool   { return false }
func (c *bevelEdgesCmd) Undo() error     { return ErrUndoUnsupported }
func (c *bevelEdgesCmd) Report() *Report { return &c.report }

func (c *bevelEdgesCmd) Execute() error {
	if err := c.begin(); err != nil {
		return err
	}
	c.report = Report{}

	for _, key := range c.targets {
		var log undoLog
		if err := c.bevelOne(key, &log); err != nil {
			log.revert(c.m)
			c.report.add(edgeTarget(key), err)
			continue
		}
		c.report.add(edgeTarget(key), nil)
	}

	return nil
}

func (c *bevelEdgesCmd) bevelOne(key mesh.EdgeKey, log *undoLog) error {
	e, ok := c.m.EdgeByKey(key)
	if !ok {
		return validationErr("bevel_edges", mesh.ErrEdgeNotFound, "edge %d-%d", key.A, key.B)
	}
	switch {
	case e.IsNonManifold():
		return topologyErr("bevel_edges", ErrInvalidLoop, "edge %d-%d has %d faces", key.A, key.B, e.FaceCount())
	case e.IsOrphan():
		return topologyErr("bevel_edges", ErrNoSharedEdge, "edge %d-%d has no faces", key.A, key.B)
	case e.IsBoundary():
		return c.bevelBoundary(key, e.FaceIDs()[0], log)
	}

	faces := e.FaceIDs()
	f1, ok1 := c.m.Face(faces[0])
	f2, ok2 := c.m.Face(faces[1])
	if !ok1 || !ok2 {
		return validationErr("bevel_edges", mesh.ErrFaceNotFound, "edge %d-%d", key.A, key.B)
	}
	// Orient so f1 traverses A -> B.
	if !traverses(f1.VertexIDs(), key.A, key.B) {
		f1, f2 = f2, f1
	}

	va, okA := c.m.Vertex(key.A)
	vb, okB := c.m.Vertex(key.B)
	if !okA || !okB {
		return validationErr("bevel_edges", mesh.ErrVertexNotFound, "edge %d-%d", key.A, key.B)
	}

	w1, err := c.inFaceDir(f1, key)
	if err != nil {
		return err
	}
	w2, err := c.inFaceDir(f2, key)
	if err != nil {
		return err
	}

	// Rings 0..segments sweep from the f1 side to the f2 side.
	k := c.segments
	ringA := make([]mesh.VertexID, k+1)
	ringB := make([]mesh.VertexID, k+1)
	for i := 0; i <= k; i++ {
		off := c.stripOffset(w1, w2, float64(i)/float64(k))
		ringA[i] = log.addVertex(c.m, va.Position.Add(off))
		ringB[i] = log.addVertex(c.m, vb.Position.Add(off))
	}

	if err := rebuildWithSubst(c.m, log, f1.ID, map[mesh.VertexID]mesh.VertexID{
		key.A: ringA[0], key.B: ringB[0],
	}); err != nil {
		return err
	}
	if err := rebuildWithSubst(c.m, log, f2.ID, map[mesh.VertexID]mesh.VertexID{
		key.A: ringA[k], key.B: ringB[k],
	}); err != nil {
		return err
	}

	material := faceMaterialOf(c.m, f1.ID)
	for i := 0; i < k; i++ {
		quad := []mesh.VertexID{ringB[i], ringA[i], ringA[i+1], ringB[i+1]}
		if _, err := log.addFace(c.m, quad, material); err != nil {
			return topologyErr("bevel_edges", err, "edge %d-%d strip %d", key.A, key.B, i)
		}
	}

	// Endpoints still holding other topology get their corner gap fanned
	// shut; fully orphaned endpoints go away.
	if err := c.closeCorner(key.A, ringA, material, true, log); err != nil {
		return err
	}
	if err := c.closeCorner(key.B, ringB, material, false, log); err != nil {
		return err
	}

	return nil
}

// bevelBoundary slides a boundary edge into its single face, leaving the
// original edge as the outer rim of one new quad.
func (c *bevelEdgesCmd) bevelBoundary(key mesh.EdgeKey, faceID mesh.FaceID, log *undoLog) error {
	f, ok := c.m.Face(faceID)
	if !ok {
		return validationErr("bevel_edges", mesh.ErrFaceNotFound, "edge %d-%d", key.A, key.B)
	}
	va, okA := c.m.Vertex(key.A)
	vb, okB := c.m.Vertex(key.B)
	if !okA || !okB {
		return validationErr("bevel_edges", mesh.ErrVertexNotFound, "edge %d-%d", key.A, key.B)
	}
	w, err := c.inFaceDir(f, key)
	if err != nil {
		return err
	}
	off := w.Scale(c.width)
	newA := log.addVertex(c.m, va.Position.Add(off))
	newB := log.addVertex(c.m, vb.Position.Add(off))

	aFirst := traverses(f.VertexIDs(), key.A, key.B)
	if err := rebuildWithSubst(c.m, log, faceID, map[mesh.VertexID]mesh.VertexID{
		key.A: newA, key.B: newB,
	}); err != nil {
		return err
	}

	material := faceMaterialOf(c.m, faceID)
	quad := []mesh.VertexID{key.A, key.B, newB, newA}
	if !aFirst {
		quad = []mesh.VertexID{key.B, key.A, newA, newB}
	}
	if _, err := log.addFace(c.m, quad, material); err != nil {
		return topologyErr("bevel_edges", err, "edge %d-%d rim", key.A, key.B)
	}

	return nil
}

// closeCorner fans the gap between a surviving endpoint and its ring, or
// drops the endpoint entirely when nothing else uses it.
func (c *bevelEdgesCmd) closeCorner(vid mesh.VertexID, ring []mesh.VertexID, material mesh.MaterialID, isA bool, log *undoLog) error {
	v, ok := c.m.Vertex(vid)
	if !ok {
		return nil
	}
	if v.FaceCount() == 0 {
		if v.EdgeCount() == 0 {
			log.removeVertex(c.m, vid)
		}
		return nil
	}
	for i := 0; i+1 < len(ring); i++ {
		tri := []mesh.VertexID{vid, ring[i+1], ring[i]}
		if !isA {
			tri = []mesh.VertexID{vid, ring[i], ring[i+1]}
		}
		if _, err := log.addFace(c.m, tri, material); err != nil {
			return topologyErr("bevel_edges", err, "corner at vertex %d", vid)
		}
	}

	return nil
}

// inFaceDir is the unit direction from the edge midpoint toward the face
// interior, projected perpendicular to the edge.
func (c *bevelEdgesCmd) inFaceDir(f *mesh.Face, key mesh.EdgeKey) (geometry.Vector3, error) {
	va, okA := c.m.Vertex(key.A)
	vb, okB := c.m.Vertex(key.B)
	if !okA || !okB {
		return geometry.Vector3{}, validationErr("bevel_edges", mesh.ErrVertexNotFound, "edge %d-%d", key.A, key.B)
	}
	tangent, ok := vb.Position.Sub(va.Position).Normalize()
	if !ok {
		return geometry.Vector3{}, topologyErr("bevel_edges", ErrDegenerateFace, "edge %d-%d has zero length", key.A, key.B)
	}

	pts := make([]geometry.Vector3, 0, f.VertexCount())
	for _, id := range f.VertexIDs() {
		if v, ok := c.m.Vertex(id); ok {
			pts = append(pts, v.Position)
		}
	}
	mid := va.Position.Mid(vb.Position)
	toward := geometry.Centroid(pts).Sub(mid)
	inPlane := toward.Sub(tangent.Scale(toward.Dot(tangent)))
	dir, ok := inPlane.Normalize()
	if !ok {
		return geometry.Vector3{}, topologyErr("bevel_edges", ErrDegenerateFace, "face %d", f.ID)
	}

	return dir, nil
}

// stripOffset blends the two in-face directions at parameter t in [0,1],
// scaling by the per-side widths so an asymmetric bevel leans further into
// one face than the other.
func (c *bevelEdgesCmd) stripOffset(w1, w2 geometry.Vector3, t float64) geometry.Vector3 {
	blend := w1.Lerp(w2, t)
	if c.profile == profileRounded {
		if unit, ok := blend.Normalize(); ok {
			blend = unit
		}
	}

	return blend.Scale(c.widths[0] + (c.widths[1]-c.widths[0])*t)
}

// rebuildWithSubst re-creates a face with some corners substituted. The old
// id dies; the replacement gets a fresh id and keeps the material.
func rebuildWithSubst(m *mesh.Mesh, log *undoLog, id mesh.FaceID, subst map[mesh.VertexID]mesh.VertexID) error {
	f, ok := m.Face(id)
	if !ok {
		return validationErr("bevel_edges", mesh.ErrFaceNotFound, "face %d", id)
	}
	winding := remapWinding(f.VertexIDs(), subst)
	material := f.Material
	log.removeFace(m, id)
	if winding == nil {
		return nil
	}
	if _, err := log.addFace(m, winding, material); err != nil {
		return topologyErr("bevel_edges", err, "face %d", id)
	}

	return nil
}

// faceMaterialOf fetches a face's material, defaulting to the zero id when
// the face is already gone.
func faceMaterialOf(m *mesh.Mesh, id mesh.FaceID) mesh.MaterialID {
	if f, ok := m.Face(id); ok {
		return f.Material
	}

	return 0
}

// bevelFacesCmd rounds a face off by sweeping its boundary inward and
// upward through intermediate rings to a lifted cap.
type bevelFacesCmd struct {
	state
	m        *mesh.Mesh
	targets  []mesh.FaceID
	width    float64
	segments int
	profile  bevelProfile
	report   Report
}

// BevelFacesOption tweaks a face-bevel command.
type BevelFacesOption func(*bevelFacesCmd)

// BevelFaceSegments sets the ring count between the original boundary and
// the cap. Values below 1 are clamped to 1.
func BevelFaceSegments(n int) BevelFacesOption {
	return func(c *bevelFacesCmd) {
		if n < 1 {
			n = 1
		}
		c.segments = n
	}
}

// BevelFaceRounded sweeps the rings along a quarter circle instead of a
// straight slope.
func BevelFaceRounded() BevelFacesOption {
	return func(c *bevelFacesCmd) { c.profile = profileRounded }
}

// NewBevelFaces bevels every target face: the face is replaced by rings
// that inset its boundary while lifting it along the face normal, ending in
// a smaller cap at full width. Irreversible.
func NewBevelFaces(m *mesh.Mesh, targets []mesh.FaceID, width float64, opts ...BevelFacesOption) Command {
	c := &bevelFacesCmd{m: m, targets: targets, width: width, segments: 1}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewBevelFacesFromSelection pulls the face list from the selection.
func NewBevelFacesFromSelection(m *mesh.Mesh, sel Selection, width float64, opts ...BevelFacesOption) Command {
	return NewBevelFaces(m, sel.SelectedFaceIDs(), width, opts...)
}

func (c *bevelFacesCmd) Name() string    { return "bevel_faces" }
func (c *bevelFacesCmd) CanUndo() bool   { return false }
func (c *bevelFacesCmd) Undo() error     { return ErrUndoUnsupported }
func (c *bevelFacesCmd) Report() *Report { return &c.report }

func (c *bevelFacesCmd) Execute() error {
	if err := c.begin(); err != nil {
		return err
	}
	c.report = Report{}

	for _, id := range c.targets {
		var log undoLog
		if err := c.bevelOne(id, &log); err != nil {
			log.revert(c.m)
			c.report.add(faceTarget(id), err)
			continue
		}
		c.report.add(faceTarget(id), nil)
	}

	return nil
}

func (c *bevelFacesCmd) bevelOne(id mesh.FaceID, log *undoLog) error {
	f, ok := c.m.Face(id)
	if !ok {
		return validationErr("bevel_faces", mesh.ErrFaceNotFound, "face %d", id)
	}
	normal, ok := f.Normal()
	if !ok {
		return topologyErr("bevel_faces", ErrDegenerateFace, "face %d", id)
	}
	winding := f.VertexIDs()
	material := f.Material

	pts := make([]geometry.Vector3, len(winding))
	for i, vid := range winding {
		v, ok := c.m.Vertex(vid)
		if !ok {
			return validationErr("bevel_faces", mesh.ErrVertexNotFound, "vertex %d", vid)
		}
		pts[i] = v.Position
	}
	centroid := geometry.Centroid(pts)

	k := c.segments
	rings := make([][]mesh.VertexID, k+1)
	rings[0] = winding
	for i := 1; i <= k; i++ {
		inset, lift := c.ringShape(float64(i) / float64(k))
		ring := make([]mesh.VertexID, len(winding))
		for j := range winding {
			pos := insetPosition(pts, j, centroid, inset).Add(normal.Scale(lift))
			ring[j] = log.addVertex(c.m, pos)
		}
		rings[i] = ring
	}

	log.removeFace(c.m, id)

	for i := 0; i < k; i++ {
		lo, hi := rings[i], rings[i+1]
		for j := range lo {
			jn := (j + 1) % len(lo)
			quad := []mesh.VertexID{lo[j], lo[jn], hi[jn], hi[j]}
			if _, err := log.addFace(c.m, quad, material); err != nil {
				return topologyErr("bevel_faces", err, "face %d ring %d", id, i)
			}
		}
	}
	if _, err := log.addFace(c.m, rings[k], material); err != nil {
		return topologyErr("bevel_faces", err, "face %d cap", id)
	}

	return nil
}

// ringShape maps sweep parameter t in (0,1] to an inset amount and a normal
// lift. The chamfer profile climbs linearly; the rounded profile follows a
// quarter circle that leaves the surface tangentially.
func (c *bevelFacesCmd) ringShape(t float64) (inset, lift float64) {
	if c.profile == profileRounded {
		phi := t * math.Pi / 2
		return c.width * (1 - math.Cos(phi)), c.width * math.Sin(phi)
	}

	return c.width * t, c.width * t
}

// traverses reports whether the winding contains the directed edge a -> b.
func traverses(winding []mesh.VertexID, a, b mesh.VertexID) bool {
	n := len(winding)
	for i := 0; i < n; i++ {
		if winding[i] == a && winding[(i+1)%n] == b {
			return true
		}
	}

	return false
}
