package ops

import (
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// addMaterialCmd registers a material; undo deletes it again.
type addMaterialCmd struct {
	state
	m    *mesh.Mesh
	name string
	opts []mesh.MaterialOption
	id   mesh.MaterialID
}

// NewAddMaterial registers a material. The allocated id is available through
// MaterialID after Execute.
func NewAddMaterial(m *mesh.Mesh, name string, opts ...mesh.MaterialOption) *AddMaterialCommand {
	return &AddMaterialCommand{addMaterialCmd{m: m, name: name, opts: opts}}
}

// AddMaterialCommand exposes the allocated id of a NewAddMaterial command.
type AddMaterialCommand struct {
	addMaterialCmd
}

// MaterialID returns the id allocated by the last Execute.
func (c *AddMaterialCommand) MaterialID() mesh.MaterialID { return c.id }

func (c *addMaterialCmd) Name() string  { return "add_material" }
func (c *addMaterialCmd) CanUndo() bool { return true }

func (c *addMaterialCmd) Execute() error {
	if err := c.begin(); err != nil {
		return err
	}
	c.id = c.m.AddMaterial(c.name, c.opts...)

	return nil
}

func (c *addMaterialCmd) Undo() error {
	if err := c.beginUndo(); err != nil {
		return err
	}
	c.m.RemoveMaterial(c.id)

	return nil
}

// assignMaterialCmd rebinds faces to a material; undo restores the previous
// binding per face.
type assignMaterialCmd struct {
	state
	m       *mesh.Mesh
	targets []mesh.FaceID
	mat     mesh.MaterialID
	report  Report
	prior   []faceMaterial
}

type faceMaterial struct {
	face mesh.FaceID
	mat  mesh.MaterialID
}

// NewAssignMaterial points every target face at the given material id. The
// id is not required to resolve to a registered material; dangling ids are
// legal and render as "unassigned".
func NewAssignMaterial(m *mesh.Mesh, targets []mesh.FaceID, mat mesh.MaterialID) Command {
	return &assignMaterialCmd{m: m, targets: targets, mat: mat}
}

// NewAssignMaterialFromSelection pulls the face list from the selection.
func NewAssignMaterialFromSelection(m *mesh.Mesh, sel Selection, mat mesh.MaterialID) Command {
	return NewAssignMaterial(m, sel.SelectedFaceIDs(), mat)
}

func (c *assignMaterialCmd) Name() string    { return "assign_material" }
func (c *assignMaterialCmd) CanUndo() bool   { return true }
func (c *assignMaterialCmd) Report() *Report { return &c.report }

func (c *assignMaterialCmd) Execute() error {
	if err := c.begin(); err != nil {
		return err
	}
	c.report = Report{}
	c.prior = c.prior[:0]

	for _, id := range c.targets {
		f, ok := c.m.Face(id)
		if !ok {
			c.report.add(faceTarget(id), validationErr("assign_material", mesh.ErrFaceNotFound, "face %d", id))
			continue
		}
		c.prior = append(c.prior, faceMaterial{face: id, mat: f.Material})
		f.Material = c.mat
		c.report.add(faceTarget(id), nil)
	}

	return nil
}

func (c *assignMaterialCmd) Undo() error {
	if err := c.beginUndo(); err != nil {
		return err
	}
	for i := len(c.prior) - 1; i >= 0; i-- {
		p := c.prior[i]
		if f, ok := c.m.Face(p.face); ok {
			f.Material = p.mat
		}
	}

	return nil
}
