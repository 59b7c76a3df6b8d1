// Package ops implements the editing-operations engine: one command type per
// structural mesh edit, all working through the mesh.Mesh topology store.
//
// What:
//
//   - Structural surgery: Extrude, Inset, Bevel, SubdivideFaces,
//     SubdivideEdges, Collapse, LoopInsert, LoopRemove, Dissolve, MergeFaces,
//     Separate, Rip, FlipFaces.
//   - Attribute edits: AssignMaterial, TranslateVertices, RotateVertices,
//     ScaleVertices, SetUVs, TranslateUVs, RotateUVs.
//   - Entity edits: AddVertex, AddFace, RemoveVertices, RemoveFaces.
//
// Command contract:
//
//	Every command implements Execute/Undo/CanUndo/Name. Execute performs the
//	edit at most once per logical edit (a second call returns
//	ErrAlreadyExecuted; Undo re-arms it). Multi-target commands process their
//	targets element by element: a failure on one target is recorded in the
//	command's Report and that target is rolled back to its pre-operation
//	state, but the batch keeps going and Execute returns nil. Single-target
//	commands (MergeFaces, LoopInsert) return the failure from Execute
//	directly, after rolling back any partial work. LoopRemove validates the
//	whole loop up front — a bad loop fails Execute — and then reports each
//	band merge per group.
//
// Reversibility:
//
//	Reversible commands retain whatever prior state undo needs and restore
//	entities under their original ids (see mesh.RestoreVertex/RestoreFace).
//	Bevel, Collapse, Dissolve, Rip and LoopRemove are declared irreversible:
//	CanUndo reports false and Undo returns ErrUndoUnsupported instead of
//	silently leaving stale state. Undo stacks must check CanUndo before
//	relying on Undo.
//
// Error taxonomy:
//
//   - ValidationError: caller input violates a structural precondition
//     (unresolved id, self-merge, too few vertices).
//   - TopologyError: the edit is infeasible on the current mesh
//     (non-coplanar merge, invalid loop, no shared edge).
//   - ErrUndoUnsupported / ErrAlreadyExecuted / ErrNotExecuted: command
//     lifecycle misuse.
//
// Selection:
//
//	Commands take explicit target ids; the *FromSelection constructors pull
//	them from the external Selection collaborator instead. The engine treats
//	Selection purely as an opaque id source.
package ops
