package ops

import (
	"errors"
	"fmt"
)

// Sentinel errors for command lifecycle and structural failures.
var (
	// ErrAlreadyExecuted indicates Execute was called twice without an
	// intervening Undo.
	ErrAlreadyExecuted = errors.New("ops: command already executed")

	// ErrNotExecuted indicates Undo was called before Execute.
	ErrNotExecuted = errors.New("ops: command not executed")

	// ErrUndoUnsupported indicates Undo on a declared-irreversible command.
	ErrUndoUnsupported = errors.New("ops: operation is irreversible")

	// ErrNoTargets indicates a command constructed with an empty target list.
	ErrNoTargets = errors.New("ops: no target elements")

	// ErrDegenerateFace indicates an operation needed a face normal but the
	// face is degenerate.
	ErrDegenerateFace = errors.New("ops: face has no computable normal")

	// ErrSelfMerge indicates a merge of a face with itself.
	ErrSelfMerge = errors.New("ops: cannot merge a face with itself")

	// ErrNotCoplanar indicates merge targets whose planes disagree beyond
	// tolerance.
	ErrNotCoplanar = errors.New("ops: faces are not coplanar")

	// ErrNoSharedEdge indicates merge targets that share no edge.
	ErrNoSharedEdge = errors.New("ops: faces share no edge")

	// ErrMultiSharedEdge indicates merge targets sharing more than one edge,
	// which makes the combined boundary ambiguous.
	ErrMultiSharedEdge = errors.New("ops: faces share more than one edge")

	// ErrInvalidLoop indicates an edge set that is not a closed loop with
	// every participant vertex at loop-degree exactly 2.
	ErrInvalidLoop = errors.New("ops: edges do not form a valid loop")

	// ErrOpenBoundary indicates a boundary trace that did not close into a
	// single cycle.
	ErrOpenBoundary = errors.New("ops: region boundary does not close")

	// ErrNotQuad indicates a loop walk that needs quad faces but met a
	// non-quad.
	ErrNotQuad = errors.New("ops: face is not a quad")
)

// ValidationError reports caller-supplied input that violates a structural
// precondition. The operation aborts for that element without corrupting the
// store.
type ValidationError struct {
	Op     string // operation name
	Target string // offending element, e.g. "face 12"
	Reason error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("ops: %s: %s: %v", e.Op, e.Target, e.Reason)
}

// Unwrap exposes the underlying reason for errors.Is checks.
func (e *ValidationError) Unwrap() error { return e.Reason }

// TopologyError reports an edit that is geometrically or topologically
// infeasible given the current mesh state.
type TopologyError struct {
	Op     string
	Target string
	Reason error
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("ops: %s: %s: %v", e.Op, e.Target, e.Reason)
}

// Unwrap exposes the underlying reason for errors.Is checks.
func (e *TopologyError) Unwrap() error { return e.Reason }

// validationErr builds a ValidationError with a formatted target.
func validationErr(op string, reason error, format string, args ...interface{}) error {
	return &ValidationError{Op: op, Target: fmt.Sprintf(format, args...), Reason: reason}
}

// topologyErr builds a TopologyError with a formatted target.
func topologyErr(op string, reason error, format string, args ...interface{}) error {
	return &TopologyError{Op: op, Target: fmt.Sprintf(format, args...), Reason: reason}
}
