package gfx

import "github.com/kjkrol/gltriangle/pkg/mesh"

// RendererConfig describes GPU inputs provided by the caller.
// VertexShader and FragmentShader are paths to GLSL 330 core sources; the
// vertex stage must read its position from attribute location 0.
// When FailOnShaderError is false a program that failed to compile or link
// is still used for drawing.
type RendererConfig struct {
	VertexShader      string
	FragmentShader    string
	FailOnShaderError bool
	ClearColor        [4]float32
	Mesh              mesh.Mesh
}
