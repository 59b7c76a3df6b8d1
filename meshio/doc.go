// Package meshio persists meshes as plain data snapshots.
//
// What:
//   - Snapshot flattens a mesh into MeshData, a JSON-taggable struct tree
//     with explicit ids and deterministic (id-sorted) ordering.
//   - Build reconstructs a mesh from MeshData under the original ids,
//     advancing the id counters past the highest loaded id so future
//     allocations never collide.
//   - Encode and Decode stream MeshData as JSON.
//
// Edges are never serialized: the full edge set is derivable from face
// windings and is rebuilt during Build. Explicitly pinned edges without
// faces are therefore not part of the persisted state.
//
// Errors: Build fails with ErrBadData wrapping the store's validation error
// when the payload references unknown ids or illegal windings.
package meshio
