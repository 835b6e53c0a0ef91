package gfx_test

import (
	"testing"

	"github.com/kjkrol/gltriangle/pkg/gfx"
	"github.com/kjkrol/gltriangle/pkg/mesh"
)

func TestRendererConfig_CustomMesh(t *testing.T) {
	conf := gfx.RendererConfig{
		Mesh: mesh.Mesh{Vertices: []float32{
			-1, -1, 0,
			1, -1, 0,
			1, 1, 0,
			-1, -1, 0,
			1, 1, 0,
			-1, 1, 0,
		}},
	}
	if err := conf.Mesh.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if got := conf.Mesh.VertexCount(); got != 6 {
		t.Errorf("VertexCount() = %d, want 6", got)
	}
}
