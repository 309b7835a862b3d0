package mesh

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Bounds is an axis aligned bounding box
type Bounds struct {
	Min [3]float64 `json:"min"`
	Max [3]float64 `json:"max"`
}

type Summary struct {
	NumVertices   int     `json:"vertices"`
	NumFaces      int     `json:"faces"`
	NumFlattened  int     `json:"flattened"`
	Bounds        *Bounds `json:"bounds,omitempty"`
	ReferencedMax int     `json:"maxIndex"`
}

// VertexMatrix packs the vertices into an [nvertices][3] matrix, or nil for
// an empty mesh
func (m *Mesh) VertexMatrix() *mat.Dense {
	if len(m.Vertices) == 0 {
		return nil
	}
	data := make([]float64, 0, 3*len(m.Vertices))
	for _, v := range m.Vertices {
		data = append(data, float64(v[0]), float64(v[1]), float64(v[2]))
	}
	return mat.NewDense(len(m.Vertices), 3, data)
}

// Summarize reports mesh sizes and vertex bounds. Faces are resolved so an
// out of range index is reported the same way Flatten reports it.
func (m *Mesh) Summarize() (s Summary, err error) {
	var flat []float32
	if flat, err = m.Flatten(); err != nil {
		return
	}
	s = Summary{
		NumVertices:  len(m.Vertices),
		NumFaces:     len(m.Faces),
		NumFlattened: len(flat),
	}
	for _, face := range m.Faces {
		for _, index := range face {
			s.ReferencedMax = max(s.ReferencedMax, index)
		}
	}
	V := m.VertexMatrix()
	if V == nil {
		return
	}
	b := &Bounds{}
	col := make([]float64, len(m.Vertices))
	for j := 0; j < 3; j++ {
		mat.Col(col, j, V)
		b.Min[j], b.Max[j] = floats.Min(col), floats.Max(col)
	}
	s.Bounds = b
	return
}
