// Package analysis provides read-only measurement and mesh-repair passes on
// top of the topology store.
//
// What:
//
//   - Measurement: BoundingBox, SurfaceArea, Volume (signed, divergence
//     theorem), FaceArea, FaceCentroid.
//   - ConnectedComponents: face groups reachable through shared edges, used
//     by the separate-by-component editing operation.
//   - Repair: orphan-vertex cleanup, degenerate-face removal and vertex
//     welding, each reporting exactly what it touched. The store deliberately
//     retains degenerate faces so this pass can surface them explicitly
//     instead of dropping them silently.
//
// Conventions:
//
//   - Faces are fan-triangulated from their first winding vertex for area
//     and volume; Volume is only meaningful for closed, consistently wound
//     meshes and returns the signed sum otherwise.
//   - All listings come back in ascending id order for determinism.
//
// Complexity: every pass is linear in the entities it visits; welding uses a
// spatial hash and stays O(V) for meshes without pathological clustering.
package analysis
