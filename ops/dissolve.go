package ops

import (
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// dissolveFacesCmd removes faces and greedily merges the coplanar neighbors
// left around each hole.
type dissolveFacesCmd struct {
	state
	m       *mesh.Mesh
	targets []mesh.FaceID
	report  Report
}

// NewDissolveFaces removes every target face and then tries to simplify the
// surrounding surface: neighbors of the removed face that are coplanar and
// share exactly one edge get merged pairwise, cascading while merges keep
// succeeding. Where no neighbor pair qualifies the hole simply remains.
// Irreversible.
func NewDissolveFaces(m *mesh.Mesh, targets []mesh.FaceID) Command {
	return &dissolveFacesCmd{m: m, targets: targets}
}

// NewDissolveFacesFromSelection pulls the face list from the selection.
func NewDissolveFacesFromSelection(m *mesh.Mesh, sel Selection) Command {
	return NewDissolveFaces(m, sel.SelectedFaceIDs())
}

func (c *dissolveFacesCmd) Name() string    { return "dissolve" }
func (c *dissolveFacesCmd) CanUndo() bool   { return false }
func (c *dissolveFacesCmd) Undo() error     { return ErrUndoUnsupported }
func (c *dissolveFacesCmd) Report() *Report { return &c.report }

func (c *dissolveFacesCmd) Execute() error {
	if err := c.begin(); err != nil {
		return err
	}
	c.report = Report{}

	for _, id := range c.targets {
		f, ok := c.m.Face(id)
		if !ok {
			c.report.add(faceTarget(id), validationErr("dissolve", mesh.ErrFaceNotFound, "face %d", id))
			continue
		}

		// Neighbors across each edge of the doomed face form the hole
		// ring; collect them before the face goes.
		ring := make([]mesh.FaceID, 0, f.VertexCount())
		seen := map[mesh.FaceID]struct{}{id: {}}
		for _, key := range f.EdgeKeys() {
			e, ok := c.m.EdgeByKey(key)
			if !ok {
				continue
			}
			for _, nid := range e.FaceIDs() {
				if _, dup := seen[nid]; dup {
					continue
				}
				seen[nid] = struct{}{}
				ring = append(ring, nid)
			}
		}

		c.m.RemoveFace(id)
		c.mergeRing(ring)
		c.report.add(faceTarget(id), nil)
	}

	return nil
}

// mergeRing greedily merges coplanar pairs in the hole ring. Each successful
// merge replaces two entries with the merged face and restarts the scan,
// since the new face may pair with yet another neighbor.
func (c *dissolveFacesCmd) mergeRing(ring []mesh.FaceID) {
	for {
		merged := false
	scan:
		for i := 0; i < len(ring); i++ {
			for j := i + 1; j < len(ring); j++ {
				var log undoLog
				id, err := mergeFacePair(c.m, ring[i], ring[j], &log)
				if err != nil {
					log.revert(c.m)
					continue
				}
				ring[i] = id
				ring = append(ring[:j], ring[j+1:]...)
				merged = true
				break scan
			}
		}
		if !merged {
			return
		}
	}
}
