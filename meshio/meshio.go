package meshio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/CharmingBlaze/3d-mesh-lib-sub001/geometry"
	"github.com/CharmingBlaze/3d-mesh-lib-sub001/mesh"
)

// FormatVersion marks the MeshData layout; bump on incompatible changes.
const FormatVersion = 1

// ErrBadData indicates a payload that cannot rebuild a valid mesh.
var ErrBadData = errors.New("meshio: invalid mesh data")

// VertexData is one persisted vertex.
type VertexData struct {
	ID       uint64      `json:"id"`
	Position [3]float64  `json:"position"`
	Normal   *[3]float64 `json:"normal,omitempty"`
	UV       *[2]float64 `json:"uv,omitempty"`
}

// FaceData is one persisted face; Vertices is the winding in order.
type FaceData struct {
	ID       uint64   `json:"id"`
	Vertices []uint64 `json:"vertices"`
	Material uint64   `json:"material,omitempty"`
}

// MaterialData is one persisted material.
type MaterialData struct {
	ID        uint64     `json:"id"`
	Name      string     `json:"name"`
	BaseColor [3]float64 `json:"base_color"`
	Emissive  [3]float64 `json:"emissive"`
	Opacity   float64    `json:"opacity"`
	Metallic  float64    `json:"metallic"`
	Roughness float64    `json:"roughness"`
	Textures  [5]string  `json:"textures"`
}

// MeshData is the whole persisted state of one mesh.
type MeshData struct {
	Version   int            `json:"version"`
	Vertices  []VertexData   `json:"vertices"`
	Faces     []FaceData     `json:"faces"`
	Materials []MaterialData `json:"materials,omitempty"`
}

// Snapshot flattens m into a MeshData with id-sorted entity lists.
func Snapshot(m *mesh.Mesh) *MeshData {
	d := &MeshData{Version: FormatVersion}

	for _, id := range m.VertexIDs() {
		v, _ := m.Vertex(id)
		vd := VertexData{
			ID:       uint64(id),
			Position: [3]float64{v.Position.X, v.Position.Y, v.Position.Z},
		}
		if v.Normal != nil {
			vd.Normal = &[3]float64{v.Normal.X, v.Normal.Y, v.Normal.Z}
		}
		if v.UV != nil {
			vd.UV = &[2]float64{v.UV.X, v.UV.Y}
		}
		d.Vertices = append(d.Vertices, vd)
	}

	for _, id := range m.FaceIDs() {
		f, _ := m.Face(id)
		winding := f.VertexIDs()
		fd := FaceData{
			ID:       uint64(id),
			Vertices: make([]uint64, len(winding)),
			Material: uint64(f.Material),
		}
		for i, vid := range winding {
			fd.Vertices[i] = uint64(vid)
		}
		d.Faces = append(d.Faces, fd)
	}

	for _, id := range m.MaterialIDs() {
		mat, _ := m.Material(id)
		d.Materials = append(d.Materials, MaterialData{
			ID:        uint64(id),
			Name:      mat.Name,
			BaseColor: colorToArray(mat.BaseColor),
			Emissive:  colorToArray(mat.Emissive),
			Opacity:   mat.Opacity,
			Metallic:  mat.Metallic,
			Roughness: mat.Roughness,
			Textures:  mat.Textures,
		})
	}

	return d
}

// Build reconstructs a mesh from d under the persisted ids. Edges are
// rederived from the face windings.
func (d *MeshData) Build() (*mesh.Mesh, error) {
	m := mesh.New()

	var maxV, maxF, maxM uint64
	for _, vd := range d.Vertices {
		if vd.ID > maxV {
			maxV = vd.ID
		}
	}
	for _, fd := range d.Faces {
		if fd.ID > maxF {
			maxF = fd.ID
		}
	}
	for _, md := range d.Materials {
		if md.ID > maxM {
			maxM = md.ID
		}
	}
	m.ReserveIDs(mesh.VertexID(maxV), mesh.FaceID(maxF), mesh.MaterialID(maxM))

	for _, vd := range d.Vertices {
		var normal *geometry.Vector3
		if vd.Normal != nil {
			n := geometry.NewVector3(vd.Normal[0], vd.Normal[1], vd.Normal[2])
			normal = &n
		}
		var uv *geometry.Vector2
		if vd.UV != nil {
			u := geometry.NewVector2(vd.UV[0], vd.UV[1])
			uv = &u
		}
		pos := geometry.NewVector3(vd.Position[0], vd.Position[1], vd.Position[2])
		if err := m.RestoreVertex(mesh.VertexID(vd.ID), pos, normal, uv); err != nil {
			return nil, fmt.Errorf("%w: vertex %d: %v", ErrBadData, vd.ID, err)
		}
	}

	for _, fd := range d.Faces {
		winding := make([]mesh.VertexID, len(fd.Vertices))
		for i, vid := range fd.Vertices {
			winding[i] = mesh.VertexID(vid)
		}
		if err := m.RestoreFace(mesh.FaceID(fd.ID), winding, mesh.MaterialID(fd.Material)); err != nil {
			return nil, fmt.Errorf("%w: face %d: %v", ErrBadData, fd.ID, err)
		}
	}

	for _, md := range d.Materials {
		mat := mesh.Material{
			ID:        mesh.MaterialID(md.ID),
			Name:      md.Name,
			BaseColor: colorFromArray(md.BaseColor),
			Emissive:  colorFromArray(md.Emissive),
			Opacity:   md.Opacity,
			Metallic:  md.Metallic,
			Roughness: md.Roughness,
			Textures:  md.Textures,
		}
		if err := m.RestoreMaterial(mat); err != nil {
			return nil, fmt.Errorf("%w: material %d: %v", ErrBadData, md.ID, err)
		}
	}

	return m, nil
}

// Encode writes m to w as JSON.
func Encode(w io.Writer, m *mesh.Mesh) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(Snapshot(m))
}

// Decode reads a JSON snapshot from r and rebuilds the mesh.
func Decode(r io.Reader) (*mesh.Mesh, error) {
	var d MeshData
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadData, err)
	}

	return d.Build()
}

func colorToArray(c mesh.Color) [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}

func colorFromArray(a [3]float64) mesh.Color {
	return mesh.Color{R: a[0], G: a[1], B: a[2]}
}
