// Package geometry provides the small vector-math toolkit used by the mesh
// kernel: 3D/2D value vectors, axis-angle rotation, axis-aligned bounds, and
// the Newell polygon-normal summation.
//
// What:
//
//   - Vector3 / Vector2: immutable value types with the usual arithmetic
//     (Add, Sub, Scale, Dot, Cross, Normalize, Lerp, Distance).
//   - RotateAround: Rodrigues rotation of a point about an arbitrary axis.
//   - Bounds: axis-aligned bounding box with Expand/Center/Size.
//   - NewellNormal: robust polygon normal for non-planar, non-convex loops.
//
// Why:
//
//   - Every editing operation (extrude, inset, bevel, …) works in plain
//     coordinate space; a tiny dependency-free value-type layer keeps the
//     topology packages free of math noise.
//
// Conventions:
//
//   - All types are values; methods never mutate their receiver.
//   - Epsilon: squared lengths below Epsilon2 (1e-12) are treated as zero,
//     which is the degeneracy threshold for face normals.
//
// Complexity: all operations are O(1) except NewellNormal, which is O(n) in
// the number of loop vertices.
package geometry
