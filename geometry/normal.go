package geometry

// NewellNormal computes the unit normal of a closed vertex loop using the
// Newell summation. Unlike a single cross product it stays stable for
// non-planar and non-convex polygons; a triangle is simply the 3-point case.
//
// Returns false when the summed vector's squared length falls below Epsilon2,
// i.e. the loop is degenerate (fewer than 3 non-collinear points).
// Complexity: O(n).
func NewellNormal(points []Vector3) (Vector3, bool) {
	if len(points) < 3 {
		return Vector3{}, false
	}
	var n Vector3
	for i, cur := range points {
		next := points[(i+1)%len(points)]
		n.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		n.Y += (cur.Z - next.Z) * (cur.X + next.X)
		n.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}

	return n.Normalize()
}

// PlaneDistance returns the signed distance from point to the plane passing
// through origin with the given unit normal.
func PlaneDistance(point, origin, normal Vector3) float64 {
	return point.Sub(origin).Dot(normal)
}

// Centroid returns the arithmetic mean of the given points, or the zero
// vector for an empty slice.
func Centroid(points []Vector3) Vector3 {
	if len(points) == 0 {
		return Vector3{}
	}
	var sum Vector3
	for _, p := range points {
		sum = sum.Add(p)
	}

	return sum.Scale(1 / float64(len(points)))
}
