// Package mesh: entity records, ids, sentinel errors and functional options.
//
// This file declares VertexID/FaceID/MaterialID, the canonical EdgeKey, the
// Vertex/Edge/Face/Material records with their read-only back-reference
// accessors, and the option types consumed by the Mesh factory methods.
package mesh

import (
	"errors"
	"sort"

	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
)

// Sentinel errors for topology-store operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("mesh: vertex not found")

	// ErrFaceNotFound indicates an operation referenced a non-existent face.
	ErrFaceNotFound = errors.New("mesh: face not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("mesh: edge not found")

	// ErrFaceTooFewVertices indicates a face definition with fewer than 3
	// distinct vertex ids.
	ErrFaceTooFewVertices = errors.New("mesh: face needs at least 3 distinct vertices")

	// ErrFaceRepeatedVertex indicates a face winding that repeats a vertex id
	// in consecutive positions (including the closing pair).
	ErrFaceRepeatedVertex = errors.New("mesh: face repeats a vertex in consecutive positions")

	// ErrLoopEdge indicates an edge whose two endpoints are the same vertex.
	ErrLoopEdge = errors.New("mesh: edge endpoints must differ")

	// ErrEdgeInUse indicates a direct RemoveEdge on an edge whose face set is
	// not empty; dependent faces must be removed first.
	ErrEdgeInUse = errors.New("mesh: edge still referenced by faces")

	// ErrIDInUse indicates a restore targeting an id that is currently live.
	ErrIDInUse = errors.New("mesh: id already in use")

	// ErrIDNotAllocated indicates a restore targeting an id this store never
	// allocated.
	ErrIDNotAllocated = errors.New("mesh: id was never allocated")
)

// VertexID uniquely identifies a vertex within one Mesh. Ids are monotonic
// and never reused; 0 is never allocated.
type VertexID uint64

// FaceID uniquely identifies a face within one Mesh.
type FaceID uint64

// MaterialID uniquely identifies a material within one Mesh. The zero value
// means "no material".
type MaterialID uint64

// EdgeKey is the canonical identifier of an undirected edge: the two vertex
// ids it connects with the smaller id first, so each connection has exactly
// one record regardless of traversal direction.
type EdgeKey struct {
	A, B VertexID
}

// MakeEdgeKey builds the canonical key for the undirected edge a—b.
func MakeEdgeKey(a, b VertexID) EdgeKey {
	if a > b {
		a, b = b, a
	}

	return EdgeKey{A: a, B: b}
}

// Contains reports whether v is one of the key's endpoints.
func (k EdgeKey) Contains(v VertexID) bool {
	return k.A == v || k.B == v
}

// Other returns the endpoint opposite v, and false if v is not an endpoint.
func (k EdgeKey) Other(v VertexID) (VertexID, bool) {
	switch v {
	case k.A:
		return k.B, true
	case k.B:
		return k.A, true
	default:
		return 0, false
	}
}

// SharesVertex reports whether two keys have an endpoint in common.
func (k EdgeKey) SharesVertex(other EdgeKey) bool {
	return k.Contains(other.A) || k.Contains(other.B)
}

// less orders edge keys lexicographically for deterministic listings.
func (k EdgeKey) less(other EdgeKey) bool {
	if k.A != other.A {
		return k.A < other.A
	}

	return k.B < other.B
}

// Vertex is a mesh corner point. Position, Normal and UV are freely mutable
// by editing commands; the incident-edge and incident-face sets are owned by
// the Mesh and exposed read-only.
type Vertex struct {
	// ID is the store-unique identifier of this vertex.
	ID VertexID

	// Position is the vertex location in object space.
	Position geometry.Vector3

	// Normal is the optional per-vertex shading normal.
	Normal *geometry.Vector3

	// UV is the optional texture coordinate.
	UV *geometry.Vector2

	edges map[EdgeKey]struct{}
	faces map[FaceID]struct{}
}

// EdgeKeys returns the incident edge keys in deterministic (sorted) order.
func (v *Vertex) EdgeKeys() []EdgeKey {
	out := make([]EdgeKey, 0, len(v.edges))
	for k := range v.edges {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })

	return out
}

// FaceIDs returns the incident face ids in ascending order.
func (v *Vertex) FaceIDs() []FaceID {
	out := make([]FaceID, 0, len(v.faces))
	for id := range v.faces {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// UsesEdge reports whether the vertex is an endpoint of the given edge.
func (v *Vertex) UsesEdge(k EdgeKey) bool {
	_, ok := v.edges[k]
	return ok
}

// UsesFace reports whether the vertex participates in the given face.
func (v *Vertex) UsesFace(id FaceID) bool {
	_, ok := v.faces[id]
	return ok
}

// EdgeCount returns the number of incident edges.
func (v *Vertex) EdgeCount() int { return len(v.edges) }

// FaceCount returns the number of incident faces.
func (v *Vertex) FaceCount() int { return len(v.faces) }

// Edge is a derived undirected connection between two vertices. It tracks the
// faces currently using it; 0 faces = orphan, 1 = boundary, 2 = manifold
// interior, >2 = non-manifold (tolerated, never rejected).
type Edge struct {
	// Key holds the two endpoint vertex ids, smaller first.
	Key EdgeKey

	faces  map[FaceID]struct{}
	pinned bool
}

// FaceIDs returns the ids of the faces using this edge, in ascending order.
func (e *Edge) FaceIDs() []FaceID {
	out := make([]FaceID, 0, len(e.faces))
	for id := range e.faces {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// FaceCount returns the number of faces using this edge.
func (e *Edge) FaceCount() int { return len(e.faces) }

// UsesFace reports whether the given face uses this edge.
func (e *Edge) UsesFace(id FaceID) bool {
	_, ok := e.faces[id]
	return ok
}

// Pinned reports whether the edge was explicitly requested via AddEdge and
// therefore survives an empty face set.
func (e *Edge) Pinned() bool { return e.pinned }

// IsOrphan reports an edge with no faces.
func (e *Edge) IsOrphan() bool { return len(e.faces) == 0 }

// IsBoundary reports an edge used by exactly one face.
func (e *Edge) IsBoundary() bool { return len(e.faces) == 1 }

// IsManifold reports an edge used by exactly two faces.
func (e *Edge) IsManifold() bool { return len(e.faces) == 2 }

// IsNonManifold reports an edge used by more than two faces.
func (e *Edge) IsNonManifold() bool { return len(e.faces) > 2 }

// Face is an ordered winding of vertex ids. The winding determines the
// orientation; the cached normal is computed with the Newell summation and is
// nil while the winding is degenerate.
type Face struct {
	// ID is the store-unique identifier of this face.
	ID FaceID

	// Material references a Material by id; 0 means no material.
	Material MaterialID

	vertices []VertexID
	normal   *geometry.Vector3
}

// VertexIDs returns a copy of the winding in order.
func (f *Face) VertexIDs() []VertexID {
	out := make([]VertexID, len(f.vertices))
	copy(out, f.vertices)

	return out
}

// VertexCount returns the number of winding entries.
func (f *Face) VertexCount() int { return len(f.vertices) }

// Uses reports whether the winding contains the given vertex id.
func (f *Face) Uses(id VertexID) bool {
	for _, v := range f.vertices {
		if v == id {
			return true
		}
	}

	return false
}

// EdgeKeys returns the canonical keys of the face's boundary edges, one per
// consecutive winding pair including the closing pair.
func (f *Face) EdgeKeys() []EdgeKey {
	out := make([]EdgeKey, 0, len(f.vertices))
	for i, v := range f.vertices {
		next := f.vertices[(i+1)%len(f.vertices)]
		out = append(out, MakeEdgeKey(v, next))
	}

	return out
}

// Normal returns the cached face normal; ok is false while the face is
// degenerate (fewer than 3 non-collinear vertices).
func (f *Face) Normal() (geometry.Vector3, bool) {
	if f.normal == nil {
		return geometry.Vector3{}, false
	}

	return *f.normal, true
}

// Color is a linear RGB triple.
type Color struct {
	R, G, B float64
}

// Material is a flat shading value object. It never participates in
// topology; faces reference it by id only.
type Material struct {
	// ID is the store-unique identifier of this material.
	ID MaterialID

	// Name is a human-readable label.
	Name string

	BaseColor Color
	Emissive  Color
	Opacity   float64
	Metallic  float64
	Roughness float64

	// Textures holds up to 5 optional texture references; empty slots are "".
	Textures [5]string
}

// VertexOption configures optional vertex attributes at creation time.
type VertexOption func(*Vertex)

// WithNormal sets the per-vertex shading normal.
func WithNormal(n geometry.Vector3) VertexOption {
	return func(v *Vertex) { v.Normal = &n }
}

// WithUV sets the texture coordinate.
func WithUV(uv geometry.Vector2) VertexOption {
	return func(v *Vertex) { v.UV = &uv }
}

// FaceOption configures optional face attributes at creation time.
type FaceOption func(*Face)

// WithMaterial assigns a material id to the face.
func WithMaterial(id MaterialID) FaceOption {
	return func(f *Face) { f.Material = id }
}

// MaterialOption configures material properties at creation time.
type MaterialOption func(*Material)

// WithBaseColor sets the material base color.
func WithBaseColor(c Color) MaterialOption {
	return func(m *Material) { m.BaseColor = c }
}

// WithEmissive sets the material emissive color.
func WithEmissive(c Color) MaterialOption {
	return func(m *Material) { m.Emissive = c }
}

// WithOpacity sets the material opacity (default 1).
func WithOpacity(o float64) MaterialOption {
	return func(m *Material) { m.Opacity = o }
}

// WithMetallic sets the metallic factor.
func WithMetallic(v float64) MaterialOption {
	return func(m *Material) { m.Metallic = v }
}

// WithRoughness sets the roughness factor.
func WithRoughness(v float64) MaterialOption {
	return func(m *Material) { m.Roughness = v }
}

// WithTexture sets the texture reference in the given slot (0..4); slots
// outside that range are ignored.
func WithTexture(slot int, ref string) MaterialOption {
	return func(m *Material) {
		if slot >= 0 && slot < len(m.Textures) {
			m.Textures[slot] = ref
		}
	}
}
