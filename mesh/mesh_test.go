package mesh

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareMesh() *Mesh {
	m := NewMesh()
	m.AddVertex(mgl32.Vec3{0, 0, 0})
	m.AddVertex(mgl32.Vec3{1, 0, 0})
	m.AddVertex(mgl32.Vec3{1, 1, 0})
	m.AddVertex(mgl32.Vec3{0, 1, 2})
	m.AddFace(Face{1, 2, 3})
	m.AddFace(Face{1, 3, 4})
	return m
}

func TestFlatten(t *testing.T) {
	m := squareMesh()
	out, err := m.Flatten()
	require.NoError(t, err)
	assert.Len(t, out, 9*m.NumFaces)

	// Each face slice is v[i-1] ++ v[j-1] ++ v[k-1]
	for nf, face := range m.Faces {
		var want []float32
		for _, index := range face {
			v := m.Vertices[index-1]
			want = append(want, v[0], v[1], v[2])
		}
		assert.Equal(t, want, out[9*nf:9*nf+9], "face %d", nf+1)
	}
}

func TestFlatten_RepeatedVertices(t *testing.T) {
	m := squareMesh()
	m.AddFace(Face{4, 4, 4})
	out, err := m.Flatten()
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 2, 0, 1, 2, 0, 1, 2}, out[18:])
}

func TestVertexBounds(t *testing.T) {
	m := squareMesh()

	v, err := m.Vertex(1)
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, v)

	v, err = m.Vertex(m.NumVertices)
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{0, 1, 2}, v)

	for _, index := range []int{0, -1, m.NumVertices + 1} {
		_, err = m.Vertex(index)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), "index %d", index)
	}
}

func TestFlatten_OutOfRange(t *testing.T) {
	for _, face := range []Face{{0, 1, 2}, {1, 2, 5}} {
		m := squareMesh()
		m.AddFace(face)
		out, err := m.Flatten()
		require.Error(t, err)
		assert.Nil(t, out)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange))
		assert.Contains(t, err.Error(), "face 3")
	}
}

func TestFlatten_NoFaces(t *testing.T) {
	m := NewMesh()
	m.AddVertex(mgl32.Vec3{1, 2, 3})
	out, err := m.Flatten()
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRecordError(t *testing.T) {
	err := error(&RecordError{Line: 7, Text: "v 1 2", Err: ErrMalformedRecord})
	assert.True(t, errors.Is(err, ErrMalformedRecord))
	assert.Equal(t, `line 7 "v 1 2": malformed record`, err.Error())
}

func TestSummarize(t *testing.T) {
	s, err := squareMesh().Summarize()
	require.NoError(t, err)
	assert.Equal(t, 4, s.NumVertices)
	assert.Equal(t, 2, s.NumFaces)
	assert.Equal(t, 18, s.NumFlattened)
	assert.Equal(t, 4, s.ReferencedMax)
	require.NotNil(t, s.Bounds)
	assert.Equal(t, [3]float64{0, 0, 0}, s.Bounds.Min)
	assert.Equal(t, [3]float64{1, 1, 2}, s.Bounds.Max)
}

func TestSummarize_Empty(t *testing.T) {
	s, err := NewMesh().Summarize()
	require.NoError(t, err)
	assert.Equal(t, Summary{}, s)
	assert.Nil(t, NewMesh().VertexMatrix())
}

func TestSummarize_OutOfRange(t *testing.T) {
	m := squareMesh()
	m.AddFace(Face{9, 1, 1})
	_, err := m.Summarize()
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}
