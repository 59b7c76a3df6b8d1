package ops

import (
	"fmt"

	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// Command is one reversible-or-declared-irreversible structural edit. An
// external undo/redo stack drives the pair: it calls Execute, checks CanUndo,
// and calls Undo to reverse. Undo re-arms the command, so a redo is simply
// Execute again.
type Command interface {
	// Name identifies the operation, e.g. "extrude".
	Name() string

	// Execute performs the edit. Calling it twice without an intervening
	// Undo returns ErrAlreadyExecuted.
	Execute() error

	// Undo reverses the edit, or returns ErrUndoUnsupported for
	// irreversible commands. Callers must not assume success without
	// checking the returned error.
	Undo() error

	// CanUndo reports whether this command supports Undo at all.
	CanUndo() bool
}

// Selection is the external selection-set collaborator. Commands consume it
// purely as an opaque source of element ids via the *FromSelection
// constructors; mutating it back is the embedder's business.
type Selection interface {
	SelectedVertexIDs() []mesh.VertexID
	SelectedEdgeKeys() []mesh.EdgeKey
	SelectedFaceIDs() []mesh.FaceID

	SelectVertex(id mesh.VertexID, additive bool)
	SelectEdge(key mesh.EdgeKey, additive bool)
	SelectFace(id mesh.FaceID, additive bool)

	DeselectVertex(id mesh.VertexID)
	DeselectEdge(key mesh.EdgeKey)
	DeselectFace(id mesh.FaceID)

	ClearVertexSelection()
	ClearEdgeSelection()
	ClearFaceSelection()
}

// Outcome is the per-target result of a multi-target command.
type Outcome struct {
	// Target names the element, e.g. "face 12" or "edge 3-7".
	Target string

	// Err is nil when the target was edited successfully.
	Err error
}

// Report collects per-target outcomes of one Execute. A failed target was
// rolled back individually; successful targets stay committed.
type Report struct {
	Outcomes []Outcome
}

func (r *Report) add(target string, err error) {
	r.Outcomes = append(r.Outcomes, Outcome{Target: target, Err: err})
}

// Succeeded returns the number of targets edited successfully.
func (r *Report) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err == nil {
			n++
		}
	}

	return n
}

// Failed returns the number of targets that were skipped after rollback.
func (r *Report) Failed() int {
	return len(r.Outcomes) - r.Succeeded()
}

// Errs returns the non-nil per-target errors in outcome order.
func (r *Report) Errs() []error {
	var out []error
	for _, o := range r.Outcomes {
		if o.Err != nil {
			out = append(out, o.Err)
		}
	}

	return out
}

// faceTarget formats a face id for Outcome.Target.
func faceTarget(id mesh.FaceID) string { return fmt.Sprintf("face %d", id) }

// vertexTarget formats a vertex id for Outcome.Target.
func vertexTarget(id mesh.VertexID) string { return fmt.Sprintf("vertex %d", id) }

// edgeTarget formats an edge key for Outcome.Target.
func edgeTarget(k mesh.EdgeKey) string { return fmt.Sprintf("edge %d-%d", k.A, k.B) }

// state tracks the execute/undo lifecycle shared by every command.
type state struct {
	executed bool
}

// begin guards double execution and flips the lifecycle flag.
func (s *state) begin() error {
	if s.executed {
		return ErrAlreadyExecuted
	}
	s.executed = true

	return nil
}

// beginUndo guards undo-before-execute and re-arms the command.
func (s *state) beginUndo() error {
	if !s.executed {
		return ErrNotExecuted
	}
	s.executed = false

	return nil
}
