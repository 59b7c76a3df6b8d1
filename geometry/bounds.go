package geometry

// Bounds is an axis-aligned bounding box. The zero value is not meaningful;
// use NewBounds or start from the first expanded point.
type Bounds struct {
	Min, Max Vector3
}

// NewBounds returns a box collapsed onto a single point.
func NewBounds(p Vector3) Bounds {
	return Bounds{Min: p, Max: p}
}

// Expand grows the box to include p.
func (b Bounds) Expand(p Vector3) Bounds {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}

	return b
}

// Union returns the smallest box containing both boxes.
func (b Bounds) Union(other Bounds) Bounds {
	return b.Expand(other.Min).Expand(other.Max)
}

// Center returns the midpoint of the box.
func (b Bounds) Center() Vector3 {
	return b.Min.Mid(b.Max)
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() Vector3 {
	return b.Max.Sub(b.Min)
}
