// Package mesh implements the topology store at the heart of the editing
// kernel: an arena that owns every Vertex, Edge, Face and Material by id and
// keeps their bidirectional back-references consistent under insertion,
// mutation and cascading deletion.
//
// What:
//
//   - Mesh: the authoritative registry. Entities are created only through its
//     factory methods (AddVertex, AddFace, AddEdge, AddMaterial), mutated in
//     place, and destroyed only through its removal methods.
//   - Vertex: position plus optional normal/UV, with store-owned sets of
//     incident edge keys and face ids.
//   - Edge: derived record keyed by the canonical (min,max) vertex-id pair;
//     exists because a face uses it or because it was explicitly pinned via
//     AddEdge, and dies when its face set empties and it is not pinned.
//   - Face: ordered winding of ≥3 distinct vertex ids with a cached Newell
//     normal (degenerate faces keep a nil normal and stay in the store so a
//     repair pass can find them).
//   - Material: flat shading value object, referenced from faces by id only.
//
// Why an arena:
//
//	Vertex↔Edge↔Face form a cyclic reference graph. Storing ids instead of
//	pointers and resolving them through the Mesh sidesteps ownership cycles
//	entirely; removal methods are the single place cascade rules live.
//
// Invariants (hold after every exported mutation):
//
//  1. Every face has ≥3 distinct vertex ids.
//  2. Every consecutive vertex pair of a face has an Edge record carrying
//     that face's id.
//  3. A vertex's edge and face sets exactly mirror the edges/faces that
//     reference it.
//  4. Removing a vertex cascades: incident faces first, then now-orphaned
//     edges, then the vertex itself.
//  5. Ids are per-store, monotonic and never reused; a stale id resolves to
//     "not found", never to a later entity.
//  6. A face's cached normal is nil whenever the winding is degenerate and is
//     recomputed whenever the vertex list changes.
//
// Concurrency:
//
//	The store is deliberately not synchronized. Every operation is a bounded,
//	synchronous local graph edit; embedders drive one mutation at a time
//	(typically from a single edit-session goroutine). Concurrent mutation is
//	undefined behavior.
//
// Errors:
//
//	ErrVertexNotFound      - an operation referenced a missing vertex id.
//	ErrFaceNotFound        - an operation referenced a missing face id.
//	ErrEdgeNotFound        - an operation referenced a missing edge.
//	ErrFaceTooFewVertices  - a face was given fewer than 3 distinct vertex ids.
//	ErrFaceRepeatedVertex  - a face repeats a vertex id in consecutive positions.
//	ErrLoopEdge            - an edge's endpoints are the same vertex.
//	ErrEdgeInUse           - direct edge removal while faces still use it.
//	ErrIDInUse             - restore target id is currently live.
//	ErrIDNotAllocated      - restore target id was never allocated by this store.
package mesh
