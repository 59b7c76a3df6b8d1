package geometry

import "math"

const (
	// Epsilon is the linear tolerance used for near-zero comparisons.
	Epsilon = 1e-9

	// Epsilon2 is the squared-length tolerance below which a summed polygon
	// normal is considered degenerate.
	Epsilon2 = 1e-12
)

// Vector3 represents a 3D point or direction.
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 creates a new 3D vector.
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns the difference between two vectors.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Scale multiplies the vector by a scalar.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns the vector pointing the opposite way.
func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSq returns the squared magnitude, avoiding the square root.
func (v Vector3) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns the unit vector in the same direction, and false when the
// vector is too short to normalize safely.
func (v Vector3) Normalize() (Vector3, bool) {
	l2 := v.LengthSq()
	if l2 < Epsilon2 {
		return Vector3{}, false
	}
	inv := 1 / math.Sqrt(l2)

	return v.Scale(inv), true
}

// Distance returns the Euclidean distance between two points.
func (v Vector3) Distance(other Vector3) float64 {
	return v.Sub(other).Length()
}

// DistanceSq returns the squared distance between two points.
func (v Vector3) DistanceSq(other Vector3) float64 {
	return v.Sub(other).LengthSq()
}

// Lerp linearly interpolates from v to other by t in [0,1].
func (v Vector3) Lerp(other Vector3, t float64) Vector3 {
	return v.Add(other.Sub(v).Scale(t))
}

// Mid returns the midpoint of two points.
func (v Vector3) Mid(other Vector3) Vector3 {
	return v.Lerp(other, 0.5)
}

// RotateAround rotates the point about an axis through pivot by angle radians
// (Rodrigues' formula). A degenerate axis leaves the point unchanged.
func (v Vector3) RotateAround(pivot, axis Vector3, angle float64) Vector3 {
	k, ok := axis.Normalize()
	if !ok {
		return v
	}
	p := v.Sub(pivot)
	sin, cos := math.Sincos(angle)
	// p·cosθ + (k×p)·sinθ + k·(k·p)(1−cosθ)
	rotated := p.Scale(cos).
		Add(k.Cross(p).Scale(sin)).
		Add(k.Scale(k.Dot(p) * (1 - cos)))

	return rotated.Add(pivot)
}

// Vector2 represents a 2D point, used for UV coordinates.
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new 2D vector.
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Lerp linearly interpolates from v to other by t in [0,1].
func (v Vector2) Lerp(other Vector2, t float64) Vector2 {
	return v.Add(other.Sub(v).Scale(t))
}

// Rotate rotates the point about pivot by angle radians (counter-clockwise).
func (v Vector2) Rotate(pivot Vector2, angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	p := v.Sub(pivot)

	return Vector2{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}.Add(pivot)
}

// Length returns the magnitude of the vector.
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}
