package geometry_test

import (
	"math"
	"testing"

	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
)

const tol = 1e-9

func almostEqual(a, b geometry.Vector3) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol && math.Abs(a.Z-b.Z) < tol
}

func TestVector3_Arithmetic(t *testing.T) {
	a := geometry.NewVector3(1, 2, 3)
	b := geometry.NewVector3(4, 5, 6)

	if got, want := a.Add(b), geometry.NewVector3(5, 7, 9); got != want {
		t.Errorf("Add = %v; want %v", got, want)
	}
	if got, want := b.Sub(a), geometry.NewVector3(3, 3, 3); got != want {
		t.Errorf("Sub = %v; want %v", got, want)
	}
	if got, want := a.Scale(2), geometry.NewVector3(2, 4, 6); got != want {
		t.Errorf("Scale = %v; want %v", got, want)
	}
	if got, want := a.Dot(b), 32.0; got != want {
		t.Errorf("Dot = %v; want %v", got, want)
	}
}

func TestVector3_Cross(t *testing.T) {
	x := geometry.NewVector3(1, 0, 0)
	y := geometry.NewVector3(0, 1, 0)
	z := geometry.NewVector3(0, 0, 1)

	if got := x.Cross(y); !almostEqual(got, z) {
		t.Errorf("x×y = %v; want %v", got, z)
	}
	if got := y.Cross(x); !almostEqual(got, z.Neg()) {
		t.Errorf("y×x = %v; want %v", got, z.Neg())
	}
}

func TestVector3_Normalize(t *testing.T) {
	v := geometry.NewVector3(3, 0, 4)
	unit, ok := v.Normalize()
	if !ok {
		t.Fatal("Normalize reported degenerate for a length-5 vector")
	}
	if math.Abs(unit.Length()-1) > tol {
		t.Errorf("normalized length = %v; want 1", unit.Length())
	}

	if _, ok = geometry.NewVector3(0, 0, 0).Normalize(); ok {
		t.Error("Normalize(zero) succeeded; want degenerate")
	}
}

func TestVector3_RotateAround(t *testing.T) {
	cases := []struct {
		name  string
		point geometry.Vector3
		pivot geometry.Vector3
		axis  geometry.Vector3
		angle float64
		want  geometry.Vector3
	}{
		{"QuarterTurnZ", geometry.NewVector3(1, 0, 0), geometry.Vector3{}, geometry.NewVector3(0, 0, 1), math.Pi / 2, geometry.NewVector3(0, 1, 0)},
		{"HalfTurnY", geometry.NewVector3(1, 0, 0), geometry.Vector3{}, geometry.NewVector3(0, 1, 0), math.Pi, geometry.NewVector3(-1, 0, 0)},
		{"OffsetPivot", geometry.NewVector3(2, 1, 0), geometry.NewVector3(1, 1, 0), geometry.NewVector3(0, 0, 1), math.Pi / 2, geometry.NewVector3(1, 2, 0)},
		{"DegenerateAxis", geometry.NewVector3(5, 6, 7), geometry.Vector3{}, geometry.Vector3{}, 1, geometry.NewVector3(5, 6, 7)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.point.RotateAround(tc.pivot, tc.axis, tc.angle)
			if !almostEqual(got, tc.want) {
				t.Errorf("RotateAround = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestNewellNormal(t *testing.T) {
	// Counter-clockwise unit square in the XY plane → +Z normal.
	square := []geometry.Vector3{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
	n, ok := geometry.NewellNormal(square)
	if !ok {
		t.Fatal("NewellNormal reported degenerate for a unit square")
	}
	if !almostEqual(n, geometry.NewVector3(0, 0, 1)) {
		t.Errorf("normal = %v; want +Z", n)
	}

	// Reversed winding flips the normal.
	reversed := []geometry.Vector3{square[3], square[2], square[1], square[0]}
	n, _ = geometry.NewellNormal(reversed)
	if !almostEqual(n, geometry.NewVector3(0, 0, -1)) {
		t.Errorf("reversed normal = %v; want -Z", n)
	}

	// Collinear points are degenerate.
	line := []geometry.Vector3{{X: 0}, {X: 1}, {X: 2}}
	if _, ok = geometry.NewellNormal(line); ok {
		t.Error("NewellNormal(collinear) succeeded; want degenerate")
	}
}

func TestNewellNormal_NonPlanar(t *testing.T) {
	// A quad folded slightly out of plane still yields a stable normal
	// pointing mostly along +Z.
	quad := []geometry.Vector3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0.2}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: -0.2},
	}
	n, ok := geometry.NewellNormal(quad)
	if !ok {
		t.Fatal("NewellNormal reported degenerate for folded quad")
	}
	if n.Z <= 0.8 {
		t.Errorf("normal = %v; want Z component > 0.8", n)
	}
}

func TestCentroid(t *testing.T) {
	pts := []geometry.Vector3{{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: 1, Y: 3, Z: 0}}
	if got, want := geometry.Centroid(pts), geometry.NewVector3(1, 1, 0); !almostEqual(got, want) {
		t.Errorf("Centroid = %v; want %v", got, want)
	}
	if got := geometry.Centroid(nil); got != (geometry.Vector3{}) {
		t.Errorf("Centroid(nil) = %v; want zero", got)
	}
}

func TestBounds(t *testing.T) {
	b := geometry.NewBounds(geometry.NewVector3(1, 1, 1))
	b = b.Expand(geometry.NewVector3(-1, 2, 0))
	b = b.Expand(geometry.NewVector3(3, -2, 5))

	if want := geometry.NewVector3(-1, -2, 0); b.Min != want {
		t.Errorf("Min = %v; want %v", b.Min, want)
	}
	if want := geometry.NewVector3(3, 2, 5); b.Max != want {
		t.Errorf("Max = %v; want %v", b.Max, want)
	}
	if want := geometry.NewVector3(4, 4, 5); b.Size() != want {
		t.Errorf("Size = %v; want %v", b.Size(), want)
	}
	if want := geometry.NewVector3(1, 0, 2.5); b.Center() != want {
		t.Errorf("Center = %v; want %v", b.Center(), want)
	}
}

func TestVector2_Rotate(t *testing.T) {
	p := geometry.NewVector2(1, 0)
	got := p.Rotate(geometry.Vector2{}, math.Pi/2)
	if math.Abs(got.X) > tol || math.Abs(got.Y-1) > tol {
		t.Errorf("Rotate = %v; want (0,1)", got)
	}
}
