package ops

import (
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// uvEdit covers every UV command: snapshot the prior coordinate (or its
// absence) per target, apply a mapping, restore on Undo.
type uvEdit struct {
	state
	name    string
	m       *mesh.Mesh
	targets []mesh.VertexID
	apply   func(v *mesh.Vertex)
	report  Report
	prior   []uvState
}

type uvState struct {
	id mesh.VertexID
	uv *geometry.Vector2
}

func (c *uvEdit) Name() string    { return c.name }
func (c *uvEdit) CanUndo() bool   { return true }
func (c *uvEdit) Report() *Report { return &c.report }

func (c *uvEdit) Execute() error {
	if err := c.begin(); err != nil {
		return err
	}
	c.report = Report{}
	c.prior = c.prior[:0]

	for _, id := range c.targets {
		v, ok := c.m.Vertex(id)
		if !ok {
			c.report.add(vertexTarget(id), validationErr(c.name, mesh.ErrVertexNotFound, "vertex %d", id))
			continue
		}
		s := uvState{id: id}
		if v.UV != nil {
			u := *v.UV
			s.uv = &u
		}
		c.prior = append(c.prior, s)
		c.apply(v)
		c.report.add(vertexTarget(id), nil)
	}

	return nil
}

func (c *uvEdit) Undo() error {
	if err := c.beginUndo(); err != nil {
		return err
	}
	for i := len(c.prior) - 1; i >= 0; i-- {
		s := c.prior[i]
		if v, ok := c.m.Vertex(s.id); ok {
			v.UV = s.uv
		}
	}

	return nil
}

// NewSetUVs assigns the same texture coordinate to every target vertex.
func NewSetUVs(m *mesh.Mesh, targets []mesh.VertexID, uv geometry.Vector2) Command {
	return &uvEdit{
		name:    "set_uvs",
		m:       m,
		targets: targets,
		apply: func(v *mesh.Vertex) {
			u := uv
			v.UV = &u
		},
	}
}

// NewTranslateUVs shifts every target vertex's texture coordinate by delta.
// Vertices without UVs are left untouched and still count as successes.
func NewTranslateUVs(m *mesh.Mesh, targets []mesh.VertexID, delta geometry.Vector2) Command {
	return &uvEdit{
		name:    "translate_uvs",
		m:       m,
		targets: targets,
		apply: func(v *mesh.Vertex) {
			if v.UV != nil {
				u := v.UV.Add(delta)
				v.UV = &u
			}
		},
	}
}

// NewRotateUVs rotates every target vertex's texture coordinate about pivot
// by angle radians. Vertices without UVs are left untouched.
func NewRotateUVs(m *mesh.Mesh, targets []mesh.VertexID, pivot geometry.Vector2, angle float64) Command {
	return &uvEdit{
		name:    "rotate_uvs",
		m:       m,
		targets: targets,
		apply: func(v *mesh.Vertex) {
			if v.UV != nil {
				u := v.UV.Rotate(pivot, angle)
				v.UV = &u
			}
		},
	}
}
