package shader

import "errors"

const (
	DefaultVertexPath   = "shaders/shader.vert"
	DefaultFragmentPath = "shaders/shader.frag"
)

// Paths locates the two shader source files.
type Paths struct {
	Vertex   string
	Fragment string
}

func DefaultPaths() Paths {
	return Paths{Vertex: DefaultVertexPath, Fragment: DefaultFragmentPath}
}

// Program is a linked program object together with the stages it was
// built from. Stage handles are deleted once linking is done.
type Program struct {
	Handle   uint32
	Vertex   *Stage
	Fragment *Stage
	Linked   bool
	Log      string
}

// Usable reports whether both stages compiled and the program linked.
func (p *Program) Usable() bool {
	if p == nil || !p.Linked {
		return false
	}
	return p.Vertex != nil && p.Vertex.Compiled && p.Fragment != nil && p.Fragment.Compiled
}

func (p *Program) Delete(drv Driver) {
	if p == nil || p.Handle == 0 {
		return
	}
	drv.DeleteProgram(p.Handle)
	p.Handle = 0
	p.Linked = false
}

type Builder struct {
	driver Driver
	paths  Paths
}

func NewBuilder(drv Driver, paths Paths) *Builder {
	if paths.Vertex == "" {
		paths.Vertex = DefaultVertexPath
	}
	if paths.Fragment == "" {
		paths.Fragment = DefaultFragmentPath
	}
	return &Builder{driver: drv, paths: paths}
}

func (b *Builder) Paths() Paths {
	return b.paths
}

// BuildProgram reads both shader files and links them into a program.
// The program is always returned; the error joins every compile and
// link failure met on the way.
func (b *Builder) BuildProgram() (*Program, error) {
	vertexSource := ReadSource(b.paths.Vertex)
	fragmentSource := ReadSource(b.paths.Fragment)
	return b.BuildProgramFromSource(vertexSource, fragmentSource)
}

func (b *Builder) BuildProgramFromSource(vertexSource, fragmentSource string) (*Program, error) {
	var errs []error

	vertex, err := CompileStage(b.driver, vertexSource, Vertex)
	if err != nil {
		errs = append(errs, err)
	}
	fragment, err := CompileStage(b.driver, fragmentSource, Fragment)
	if err != nil {
		errs = append(errs, err)
	}

	program := &Program{
		Handle:   b.driver.CreateProgram(),
		Vertex:   vertex,
		Fragment: fragment,
	}
	b.driver.AttachShader(program.Handle, vertex.Handle)
	b.driver.AttachShader(program.Handle, fragment.Handle)
	b.driver.LinkProgram(program.Handle)

	program.Linked = b.driver.ProgramLinked(program.Handle)
	if !program.Linked {
		program.Log = truncateLog(b.driver.ProgramInfoLog(program.Handle, MaxInfoLogLength))
		Logger().Error("program link error", "handle", program.Handle, "log", program.Log)
		errs = append(errs, &LinkError{Log: program.Log})
	} else {
		Logger().Info("program linked", "handle", program.Handle)
	}

	b.driver.DeleteShader(vertex.Handle)
	b.driver.DeleteShader(fragment.Handle)
	return program, errors.Join(errs...)
}
