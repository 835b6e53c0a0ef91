package mesh

import (
	"errors"
	"fmt"
)

// ComponentsPerVertex is the number of float32 position components (x, y, z).
const ComponentsPerVertex = 3

const bytesPerFloat = 4

var (
	ErrEmpty      = errors.New("mesh has no vertices")
	ErrIncomplete = errors.New("mesh vertex data is not a whole number of vertices")
)

// Mesh is a flat list of xyz positions drawn as a triangle list.
type Mesh struct {
	Vertices []float32
}

// Triangle is the default mesh: a single triangle centred in clip space.
func Triangle() Mesh {
	return Mesh{Vertices: []float32{
		-0.5, -0.5, 0.0,
		0.5, -0.5, 0.0,
		0.0, 0.5, 0.0,
	}}
}

func (m Mesh) VertexCount() int {
	return len(m.Vertices) / ComponentsPerVertex
}

// Stride is the distance in bytes between consecutive vertices.
func (m Mesh) Stride() int32 {
	return ComponentsPerVertex * bytesPerFloat
}

func (m Mesh) SizeBytes() int {
	return len(m.Vertices) * bytesPerFloat
}

func (m Mesh) Validate() error {
	if len(m.Vertices) == 0 {
		return ErrEmpty
	}
	if len(m.Vertices)%ComponentsPerVertex != 0 {
		return fmt.Errorf("%w: %d floats", ErrIncomplete, len(m.Vertices))
	}
	if len(m.Vertices)%(3*ComponentsPerVertex) != 0 {
		return fmt.Errorf("%w: %d vertices do not form whole triangles", ErrIncomplete, m.VertexCount())
	}
	return nil
}
