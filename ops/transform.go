package ops

import (
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// vertexTransform is the shared machinery of translate/rotate/scale: it
// snapshots position and normal of every target vertex, applies a point (and
// optional direction) mapping, and refreshes the normals of every touched
// face. Undo restores the snapshots bit-for-bit.
type vertexTransform struct {
	state
	name    string
	m       *mesh.Mesh
	targets []mesh.VertexID
	point   func(geometry.Vector3) geometry.Vector3
	dir     func(geometry.Vector3) geometry.Vector3 // nil = normals untouched
	report  Report
	prior   []vertexState
}

func (c *vertexTransform) Name() string { return c.name }

// CanUndo reports true: transforms restore snapshots exactly.
func (c *vertexTransform) CanUndo() bool { return true }

// Report returns the per-target outcomes of the last Execute.
func (c *vertexTransform) Report() *Report { return &c.report }

func (c *vertexTransform) Execute() error {
	if err := c.begin(); err != nil {
		return err
	}
	c.report = Report{}
	c.prior = c.prior[:0]

	touched := make(map[mesh.FaceID]struct{})
	for _, id := range c.targets {
		v, ok := c.m.Vertex(id)
		if !ok {
			c.report.add(vertexTarget(id), validationErr(c.name, mesh.ErrVertexNotFound, "vertex %d", id))
			continue
		}
		snap, _ := captureVertex(c.m, id)
		c.prior = append(c.prior, snap)

		v.Position = c.point(v.Position)
		if c.dir != nil && v.Normal != nil {
			n := c.dir(*v.Normal)
			if unit, ok := n.Normalize(); ok {
				v.Normal = &unit
			}
		}
		for _, fid := range v.FaceIDs() {
			touched[fid] = struct{}{}
		}
		c.report.add(vertexTarget(id), nil)
	}
	for fid := range touched {
		c.m.RefreshFaceNormal(fid)
	}

	return nil
}

func (c *vertexTransform) Undo() error {
	if err := c.beginUndo(); err != nil {
		return err
	}
	touched := make(map[mesh.FaceID]struct{})
	for i := len(c.prior) - 1; i >= 0; i-- {
		s := c.prior[i]
		v, ok := c.m.Vertex(s.id)
		if !ok {
			continue
		}
		v.Position = s.pos
		v.Normal = s.normal
		v.UV = s.uv
		for _, fid := range v.FaceIDs() {
			touched[fid] = struct{}{}
		}
	}
	for fid := range touched {
		c.m.RefreshFaceNormal(fid)
	}

	return nil
}

// NewTranslateVertices moves every target vertex by delta.
func NewTranslateVertices(m *mesh.Mesh, targets []mesh.VertexID, delta geometry.Vector3) Command {
	return &vertexTransform{
		name:    "translate",
		m:       m,
		targets: targets,
		point:   func(p geometry.Vector3) geometry.Vector3 { return p.Add(delta) },
	}
}

// NewRotateVertices rotates every target vertex (and its shading normal)
// about the axis through pivot by angle radians.
func NewRotateVertices(m *mesh.Mesh, targets []mesh.VertexID, pivot, axis geometry.Vector3, angle float64) Command {
	return &vertexTransform{
		name:    "rotate",
		m:       m,
		targets: targets,
		point: func(p geometry.Vector3) geometry.Vector3 {
			return p.RotateAround(pivot, axis, angle)
		},
		dir: func(n geometry.Vector3) geometry.Vector3 {
			return n.RotateAround(geometry.Vector3{}, axis, angle)
		},
	}
}

// NewScaleVertices scales every target vertex about pivot by the per-axis
// factors. Shading normals are left to the snapshot-exact undo; callers
// needing exact normals after non-uniform scaling should recompute them.
func NewScaleVertices(m *mesh.Mesh, targets []mesh.VertexID, pivot, factors geometry.Vector3) Command {
	return &vertexTransform{
		name:    "scale",
		m:       m,
		targets: targets,
		point: func(p geometry.Vector3) geometry.Vector3 {
			d := p.Sub(pivot)
			return pivot.Add(geometry.NewVector3(d.X*factors.X, d.Y*factors.Y, d.Z*factors.Z))
		},
	}
}

// NewTranslateVerticesFromSelection pulls the target list from the external
// selection.
func NewTranslateVerticesFromSelection(m *mesh.Mesh, sel Selection, delta geometry.Vector3) Command {
	return NewTranslateVertices(m, sel.SelectedVertexIDs(), delta)
}
