// Package primitives builds small, deterministic starter meshes: plane,
// grid, cube, box, tetrahedron, pyramid and cylinder.
//
// What:
//
//   - Every constructor returns a fresh, self-consistent *mesh.Mesh with
//     outward-facing windings (counter-clockwise seen from outside), ready
//     for the editing operations in the ops package.
//   - Construction is fully deterministic: the same parameters always yield
//     the same ids, windings and positions.
//
// Why:
//
//   - Editing operations need something to edit; these shapes double as the
//     canonical fixtures for tests and examples (a cube for extrusion, a
//     tetrahedron for cascade checks, a grid for loop cuts).
//
// Errors:
//
//	ErrBadParameter - a dimension is not strictly positive, or a segment
//	count is below its minimum. Constructors never panic.
//
// Complexity: linear in the number of generated entities.
package primitives
