package ops

import (
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// addVertexCmd creates one vertex; undo removes it again.
type addVertexCmd struct {
	state
	m    *mesh.Mesh
	pos  geometry.Vector3
	opts []mesh.VertexOption
	id   mesh.VertexID
}

// NewAddVertex creates a vertex at pos with the given attribute options.
// The allocated id is available through VertexID after Execute.
func NewAddVertex(m *mesh.Mesh, pos geometry.Vector3, opts ...mesh.VertexOption) *AddVertexCommand {
	return &AddVertexCommand{addVertexCmd{m: m, pos: pos, opts: opts}}
}

// AddVertexCommand exposes the allocated id of a NewAddVertex command.
type AddVertexCommand struct {
	addVertexCmd
}

// VertexID returns the id allocated by the last Execute.
func (c *AddVertexCommand) VertexID() mesh.VertexID { return c.id }

func (c *addVertexCmd) Name() string  { return "add_vertex" }
func (c *addVertexCmd) CanUndo() bool { return true }

func (c *addVertexCmd) Execute() error {
	if err := c.begin(); err != nil {
		return err
	}
	c.id = c.m.AddVertex(c.pos, c.opts...)

	return nil
}

func (c *addVertexCmd) Undo() error {
	if err := c.beginUndo(); err != nil {
		return err
	}
	c.m.RemoveVertex(c.id)

	return nil
}

// addFaceCmd creates one face; undo removes it again.
type addFaceCmd struct {
	state
	m       *mesh.Mesh
	winding []mesh.VertexID
	opts    []mesh.FaceOption
	id      mesh.FaceID
}

// NewAddFace creates a face over the given winding. Execute surfaces the
// store's winding validation errors unchanged.
func NewAddFace(m *mesh.Mesh, winding []mesh.VertexID, opts ...mesh.FaceOption) *AddFaceCommand {
	return &AddFaceCommand{addFaceCmd{m: m, winding: winding, opts: opts}}
}

// AddFaceCommand exposes the allocated id of a NewAddFace command.
type AddFaceCommand struct {
	addFaceCmd
}

// FaceID returns the id allocated by the last Execute.
func (c *AddFaceCommand) FaceID() mesh.FaceID { return c.id }

func (c *addFaceCmd) Name() string  { return "add_face" }
func (c *addFaceCmd) CanUndo() bool { return true }

func (c *addFaceCmd) Execute() error {
	if err := c.begin(); err != nil {
		return err
	}
	id, err := c.m.AddFace(c.winding, c.opts...)
	if err != nil {
		c.executed = false
		return validationErr("add_face", err, "winding of %d vertices", len(c.winding))
	}
	c.id = id

	return nil
}

func (c *addFaceCmd) Undo() error {
	if err := c.beginUndo(); err != nil {
		return err
	}
	c.m.RemoveFace(c.id)

	return nil
}

// removeFacesCmd deletes faces; undo restores them under their original ids.
type removeFacesCmd struct {
	state
	m       *mesh.Mesh
	targets []mesh.FaceID
	report  Report
	log     undoLog
}

// NewRemoveFaces deletes every target face. Orphaned unpinned edges die with
// their last face; undo brings the faces (and those edges) back exactly.
func NewRemoveFaces(m *mesh.Mesh, targets []mesh.FaceID) Command {
	return &removeFacesCmd{m: m, targets: targets}
}

// NewRemoveFacesFromSelection pulls the target list from the selection.
func NewRemoveFacesFromSelection(m *mesh.Mesh, sel Selection) Command {
	return NewRemoveFaces(m, sel.SelectedFaceIDs())
}

func (c *removeFacesCmd) Name() string    { return "remove_faces" }
func (c *removeFacesCmd) CanUndo() bool   { return true }
func (c *removeFacesCmd) Report() *Report { return &c.report }

func (c *removeFacesCmd) Execute() error {
	if err := c.begin(); err != nil {
		return err
	}
	c.report = Report{}
	c.log = undoLog{}

	for _, id := range c.targets {
		if !c.log.removeFace(c.m, id) {
			c.report.add(faceTarget(id), validationErr("remove_faces", mesh.ErrFaceNotFound, "face %d", id))
			continue
		}
		c.report.add(faceTarget(id), nil)
	}

	return nil
}

func (c *removeFacesCmd) Undo() error {
	if err := c.beginUndo(); err != nil {
		return err
	}
	c.log.revert(c.m)

	return nil
}

// removeVerticesCmd deletes vertices with full cascade; undo restores the
// vertices, their incident faces, and their pinned edges exactly.
type removeVerticesCmd struct {
	state
	m       *mesh.Mesh
	targets []mesh.VertexID
	report  Report
	log     undoLog
}

// NewRemoveVertices deletes every target vertex along with every face and
// edge that uses it.
func NewRemoveVertices(m *mesh.Mesh, targets []mesh.VertexID) Command {
	return &removeVerticesCmd{m: m, targets: targets}
}

// NewRemoveVerticesFromSelection pulls the target list from the selection.
func NewRemoveVerticesFromSelection(m *mesh.Mesh, sel Selection) Command {
	return NewRemoveVertices(m, sel.SelectedVertexIDs())
}

func (c *removeVerticesCmd) Name() string    { return "remove_vertices" }
func (c *removeVerticesCmd) CanUndo() bool   { return true }
func (c *removeVerticesCmd) Report() *Report { return &c.report }

func (c *removeVerticesCmd) Execute() error {
	if err := c.begin(); err != nil {
		return err
	}
	c.report = Report{}
	c.log = undoLog{}

	for _, id := range c.targets {
		v, ok := c.m.Vertex(id)
		if !ok {
			c.report.add(vertexTarget(id), validationErr("remove_vertices", mesh.ErrVertexNotFound, "vertex %d", id))
			continue
		}
		// Snapshot the cascade by hand so every casualty restores under
		// its original id: faces first, then pinned edges, then the
		// vertex itself.
		for _, fid := range v.FaceIDs() {
			c.log.removeFace(c.m, fid)
		}
		for _, key := range v.EdgeKeys() {
			if e, ok := c.m.EdgeByKey(key); ok && e.Pinned() && e.IsOrphan() {
				c.log.removePinnedEdge(c.m, key)
			}
		}
		c.log.removeVertex(c.m, id)
		c.report.add(vertexTarget(id), nil)
	}

	return nil
}

func (c *removeVerticesCmd) Undo() error {
	if err := c.beginUndo(); err != nil {
		return err
	}
	c.log.revert(c.m)

	return nil
}
