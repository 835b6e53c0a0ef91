package shader

// Driver is the subset of the graphics API the builder needs. Every call is
// made against the context that is current on the calling thread.
type Driver interface {
	CreateShader(kind StageKind) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	// ShaderInfoLog returns at most maxLen bytes of the shader's info log.
	ShaderInfoLog(shader uint32, maxLen int) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	// ProgramInfoLog returns at most maxLen bytes of the program's info log.
	ProgramInfoLog(program uint32, maxLen int) string
	DeleteProgram(program uint32)
}
