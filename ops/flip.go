package ops

import (
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// flipFacesCmd reverses face windings in place. Reversal is an involution,
// so Undo simply reverses the successfully flipped faces again.
type flipFacesCmd struct {
	state
	m       *mesh.Mesh
	targets []mesh.FaceID
	report  Report
	flipped []mesh.FaceID
}

// NewFlipFaces reverses the winding of every target face, inverting its
// geometric normal while keeping its id and material.
func NewFlipFaces(m *mesh.Mesh, targets []mesh.FaceID) Command {
	return &flipFacesCmd{m: m, targets: targets}
}

// NewFlipFacesFromSelection pulls the face list from the selection.
func NewFlipFacesFromSelection(m *mesh.Mesh, sel Selection) Command {
	return NewFlipFaces(m, sel.SelectedFaceIDs())
}

func (c *flipFacesCmd) Name() string    { return "flip_faces" }
func (c *flipFacesCmd) CanUndo() bool   { return true }
func (c *flipFacesCmd) Report() *Report { return &c.report }

func (c *flipFacesCmd) Execute() error {
	if err := c.begin(); err != nil {
		return err
	}
	c.report = Report{}
	c.flipped = c.flipped[:0]

	for _, id := range c.targets {
		if err := flipFace(c.m, id); err != nil {
			c.report.add(faceTarget(id), validationErr("flip_faces", err, "face %d", id))
			continue
		}
		c.flipped = append(c.flipped, id)
		c.report.add(faceTarget(id), nil)
	}

	return nil
}

func (c *flipFacesCmd) Undo() error {
	if err := c.beginUndo(); err != nil {
		return err
	}
	for i := len(c.flipped) - 1; i >= 0; i-- {
		_ = flipFace(c.m, c.flipped[i])
	}

	return nil
}

// flipFace rebuilds one face under its own id with the winding reversed.
// The edge set is unchanged, so no edge churn occurs beyond the rebuild.
func flipFace(m *mesh.Mesh, id mesh.FaceID) error {
	f, ok := m.Face(id)
	if !ok {
		return mesh.ErrFaceNotFound
	}
	winding := f.VertexIDs()
	for i, j := 0, len(winding)-1; i < j; i, j = i+1, j-1 {
		winding[i], winding[j] = winding[j], winding[i]
	}
	material := f.Material
	m.RemoveFace(id)

	return m.RestoreFace(id, winding, material)
}
