// Package meshkit is a programmatic 3D polygon-mesh editing kernel: an
// id-indexed topology store plus a command-based editing engine, built for
// tools and pipelines rather than interactive viewports.
//
// 🚀 What is in the box?
//
//	A headless, deterministic mesh kernel that brings together:
//		• Topology store: vertices, faces, derived edges, materials — all
//		  referenced by ids that are never reused
//		• Editing commands: extrude, inset, bevel, subdivide, collapse,
//		  edge-loop insert/remove, merge, separate, rip, transforms, UVs
//		• Undo contract: reversible commands restore the store bit-exactly,
//		  original ids included; irreversible ones say so up front
//		• Analysis: bounds, area, volume, connected components, repair
//		• Primitives: plane, grid, box, tetrahedron, pyramid, cylinder
//		• Serialization: JSON snapshots that rebuild under the same ids
//
// ✨ Why this shape?
//
//   - Deterministic – sorted listings and stable ids make batch edits and
//     golden-file tests reproducible
//   - Safe to fail – multi-target commands roll back only the failing
//     target and report per-target outcomes
//   - Pure Go – no cgo, no GPU, no scene graph
//
// Everything is organized under six subpackages:
//
//	geometry/   — vectors, Newell normals, bounds
//	mesh/       — the topology store and its integrity rules
//	analysis/   — measurement, components, repair passes
//	ops/        — the command engine and selection collaborator
//	primitives/ — deterministic starter shapes
//	meshio/     — snapshot persistence
//
// Quick start:
//
//	m, _ := primitives.Cube(2)
//	cmd := ops.NewExtrudeFaces(m, []mesh.FaceID{2}, 1)
//	_ = cmd.Execute() // 12 vertices, 10 faces
//	_ = cmd.Undo()    // back to 8 and 6, same ids
//
// See each subpackage's doc.go for the full contracts.
package meshkit
