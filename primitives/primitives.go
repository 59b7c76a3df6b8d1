package primitives

import (
	"errors"
	"fmt"
	"math"

	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// ErrBadParameter indicates a non-positive dimension or an out-of-range
// segment count.
var ErrBadParameter = errors.New("primitives: invalid parameter")

// Plane returns a single quad of the given width (X) and height (Y),
// centered at the origin in the XY plane, facing +Z.
func Plane(width, height float64) (*mesh.Mesh, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("primitives: Plane(%g, %g): %w", width, height, ErrBadParameter)
	}

	return Grid(width, height, 1, 1)
}

// Grid returns a plane subdivided into nx by ny quads, centered at the
// origin in the XY plane, facing +Z. nx and ny must be at least 1.
func Grid(width, height float64, nx, ny int) (*mesh.Mesh, error) {
	if width <= 0 || height <= 0 || nx < 1 || ny < 1 {
		return nil, fmt.Errorf("primitives: Grid(%g, %g, %d, %d): %w", width, height, nx, ny, ErrBadParameter)
	}

	m := mesh.New()
	ids := make([][]mesh.VertexID, ny+1)
	for j := 0; j <= ny; j++ {
		ids[j] = make([]mesh.VertexID, nx+1)
		y := -height/2 + height*float64(j)/float64(ny)
		for i := 0; i <= nx; i++ {
			x := -width/2 + width*float64(i)/float64(nx)
			u := float64(i) / float64(nx)
			v := float64(j) / float64(ny)
			ids[j][i] = m.AddVertex(geometry.NewVector3(x, y, 0),
				mesh.WithNormal(geometry.NewVector3(0, 0, 1)),
				mesh.WithUV(geometry.NewVector2(u, v)),
			)
		}
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			// Counter-clockwise seen from +Z.
			winding := []mesh.VertexID{ids[j][i], ids[j][i+1], ids[j+1][i+1], ids[j+1][i]}
			if _, err := m.AddFace(winding); err != nil {
				return nil, fmt.Errorf("primitives: Grid face (%d,%d): %w", i, j, err)
			}
		}
	}

	return m, nil
}

// Cube returns an axis-aligned cube with the given edge length, centered at
// the origin: 8 vertices, 6 quad faces, 12 edges, all wound outward.
func Cube(size float64) (*mesh.Mesh, error) {
	if size <= 0 {
		return nil, fmt.Errorf("primitives: Cube(%g): %w", size, ErrBadParameter)
	}

	return Box(size, size, size)
}

// Box returns an axis-aligned box with the given extents along X, Y and Z,
// centered at the origin.
func Box(sx, sy, sz float64) (*mesh.Mesh, error) {
	if sx <= 0 || sy <= 0 || sz <= 0 {
		return nil, fmt.Errorf("primitives: Box(%g, %g, %g): %w", sx, sy, sz, ErrBadParameter)
	}

	m := mesh.New()
	hx, hy, hz := sx/2, sy/2, sz/2
	v := [8]mesh.VertexID{
		m.AddVertex(geometry.NewVector3(-hx, -hy, -hz)),
		m.AddVertex(geometry.NewVector3(hx, -hy, -hz)),
		m.AddVertex(geometry.NewVector3(hx, hy, -hz)),
		m.AddVertex(geometry.NewVector3(-hx, hy, -hz)),
		m.AddVertex(geometry.NewVector3(-hx, -hy, hz)),
		m.AddVertex(geometry.NewVector3(hx, -hy, hz)),
		m.AddVertex(geometry.NewVector3(hx, hy, hz)),
		m.AddVertex(geometry.NewVector3(-hx, hy, hz)),
	}
	quads := [6][4]int{
		{0, 3, 2, 1}, // bottom, -Z
		{4, 5, 6, 7}, // top, +Z
		{0, 1, 5, 4}, // front, -Y
		{2, 3, 7, 6}, // back, +Y
		{0, 4, 7, 3}, // left, -X
		{1, 2, 6, 5}, // right, +X
	}
	for _, q := range quads {
		winding := []mesh.VertexID{v[q[0]], v[q[1]], v[q[2]], v[q[3]]}
		if _, err := m.AddFace(winding); err != nil {
			return nil, fmt.Errorf("primitives: Box face %v: %w", q, err)
		}
	}

	return m, nil
}

// Tetrahedron returns a tetrahedron with base edge length size, base in the
// XY plane and apex above the base centroid: 4 vertices, 4 triangles,
// 6 edges.
func Tetrahedron(size float64) (*mesh.Mesh, error) {
	if size <= 0 {
		return nil, fmt.Errorf("primitives: Tetrahedron(%g): %w", size, ErrBadParameter)
	}

	m := mesh.New()
	h := size * math.Sqrt(2.0/3.0) // regular tetrahedron height
	base := [3]mesh.VertexID{
		m.AddVertex(geometry.NewVector3(0, 0, 0)),
		m.AddVertex(geometry.NewVector3(size, 0, 0)),
		m.AddVertex(geometry.NewVector3(size/2, size*math.Sqrt(3)/2, 0)),
	}
	apex := m.AddVertex(geometry.NewVector3(size/2, size*math.Sqrt(3)/6, h))

	tris := [4][3]mesh.VertexID{
		{base[0], base[2], base[1]}, // base, wound to face -Z
		{base[0], base[1], apex},
		{base[1], base[2], apex},
		{base[2], base[0], apex},
	}
	for _, tri := range tris {
		if _, err := m.AddFace(tri[:]); err != nil {
			return nil, fmt.Errorf("primitives: Tetrahedron face: %w", err)
		}
	}

	return m, nil
}

// Pyramid returns a square-based pyramid: base edge length base in the XY
// plane centered at the origin, apex at height above the center.
func Pyramid(base, height float64) (*mesh.Mesh, error) {
	if base <= 0 || height <= 0 {
		return nil, fmt.Errorf("primitives: Pyramid(%g, %g): %w", base, height, ErrBadParameter)
	}

	m := mesh.New()
	h := base / 2
	corners := [4]mesh.VertexID{
		m.AddVertex(geometry.NewVector3(-h, -h, 0)),
		m.AddVertex(geometry.NewVector3(h, -h, 0)),
		m.AddVertex(geometry.NewVector3(h, h, 0)),
		m.AddVertex(geometry.NewVector3(-h, h, 0)),
	}
	apex := m.AddVertex(geometry.NewVector3(0, 0, height))

	if _, err := m.AddFace([]mesh.VertexID{corners[0], corners[3], corners[2], corners[1]}); err != nil {
		return nil, fmt.Errorf("primitives: Pyramid base: %w", err)
	}
	for i := 0; i < 4; i++ {
		tri := []mesh.VertexID{corners[i], corners[(i+1)%4], apex}
		if _, err := m.AddFace(tri); err != nil {
			return nil, fmt.Errorf("primitives: Pyramid side %d: %w", i, err)
		}
	}

	return m, nil
}

// Cylinder returns a closed cylinder around the Z axis: two rings of
// segments vertices, segments side quads and two n-gon caps. segments must
// be at least 3.
func Cylinder(radius, height float64, segments int) (*mesh.Mesh, error) {
	if radius <= 0 || height <= 0 || segments < 3 {
		return nil, fmt.Errorf("primitives: Cylinder(%g, %g, %d): %w", radius, height, segments, ErrBadParameter)
	}

	m := mesh.New()
	bottom := make([]mesh.VertexID, segments)
	top := make([]mesh.VertexID, segments)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		x, y := radius*math.Cos(angle), radius*math.Sin(angle)
		bottom[i] = m.AddVertex(geometry.NewVector3(x, y, -height/2))
		top[i] = m.AddVertex(geometry.NewVector3(x, y, height/2))
	}

	// Side quads, outward.
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		winding := []mesh.VertexID{bottom[i], bottom[next], top[next], top[i]}
		if _, err := m.AddFace(winding); err != nil {
			return nil, fmt.Errorf("primitives: Cylinder side %d: %w", i, err)
		}
	}

	// Top cap counter-clockwise from +Z, bottom cap reversed.
	if _, err := m.AddFace(top); err != nil {
		return nil, fmt.Errorf("primitives: Cylinder top cap: %w", err)
	}
	reversed := make([]mesh.VertexID, segments)
	for i, id := range bottom {
		reversed[segments-1-i] = id
	}
	if _, err := m.AddFace(reversed); err != nil {
		return nil, fmt.Errorf("primitives: Cylinder bottom cap: %w", err)
	}

	return m, nil
}
