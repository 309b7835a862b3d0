package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Face is a triangle given by three 1-based vertex indices
type Face [3]int

// Mesh holds the vertex positions and triangle faces of an OBJ file, in
// declaration order
type Mesh struct {
	Vertices []mgl32.Vec3
	Faces    []Face

	NumVertices int
	NumFaces    int
}

func NewMesh() *Mesh {
	return &Mesh{
		Vertices: make([]mgl32.Vec3, 0),
		Faces:    make([]Face, 0),
	}
}

func (m *Mesh) AddVertex(v mgl32.Vec3) {
	m.Vertices = append(m.Vertices, v)
	m.NumVertices = len(m.Vertices)
}

func (m *Mesh) AddFace(f Face) {
	m.Faces = append(m.Faces, f)
	m.NumFaces = len(m.Faces)
}

// Vertex returns the vertex at a 1-based index
func (m *Mesh) Vertex(index int) (mgl32.Vec3, error) {
	if index < 1 || index > len(m.Vertices) {
		return mgl32.Vec3{}, fmt.Errorf("%w: vertex %d not in [1,%d]",
			ErrIndexOutOfRange, index, len(m.Vertices))
	}
	return m.Vertices[index-1], nil
}

// Flatten resolves every face against the vertex list and returns the
// coordinates in face, then vertex, then axis order. The result always has
// 9 entries per face.
func (m *Mesh) Flatten() (out []float32, err error) {
	out = make([]float32, 0, 9*len(m.Faces))
	for nf, face := range m.Faces {
		for _, index := range face {
			var v mgl32.Vec3
			if v, err = m.Vertex(index); err != nil {
				return nil, fmt.Errorf("face %d: %w", nf+1, err)
			}
			out = append(out, v[0], v[1], v[2])
		}
	}
	return
}
