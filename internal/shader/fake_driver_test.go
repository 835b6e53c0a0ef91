package shader

import "strings"

const compileFailureLog = "0:1(1): error: syntax error, unexpected IDENTIFIER"

// fakeDriver compiles any source containing "void main" and links a
// program when every attached shader compiled.
type fakeDriver struct {
	next     uint32
	kinds    map[uint32]StageKind
	sources  map[uint32]string
	compiled map[uint32]bool
	attached map[uint32][]uint32
	linked   map[uint32]bool
	deleted  map[uint32]bool

	shaderLog string
	linkLog   string
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		kinds:     make(map[uint32]StageKind),
		sources:   make(map[uint32]string),
		compiled:  make(map[uint32]bool),
		attached:  make(map[uint32][]uint32),
		linked:    make(map[uint32]bool),
		deleted:   make(map[uint32]bool),
		shaderLog: compileFailureLog,
		linkLog:   "error: linking with uncompiled/unspecialized shader",
	}
}

func (d *fakeDriver) alloc() uint32 {
	d.next++
	return d.next
}

func (d *fakeDriver) CreateShader(kind StageKind) uint32 {
	h := d.alloc()
	d.kinds[h] = kind
	return h
}

func (d *fakeDriver) ShaderSource(shader uint32, source string) {
	d.sources[shader] = source
}

func (d *fakeDriver) CompileShader(shader uint32) {
	d.compiled[shader] = strings.Contains(d.sources[shader], "void main")
}

func (d *fakeDriver) ShaderCompiled(shader uint32) bool {
	return d.compiled[shader]
}

func (d *fakeDriver) ShaderInfoLog(shader uint32, maxLen int) string {
	if d.compiled[shader] {
		return ""
	}
	return d.shaderLog
}

func (d *fakeDriver) DeleteShader(shader uint32) {
	d.deleted[shader] = true
}

func (d *fakeDriver) CreateProgram() uint32 {
	return d.alloc()
}

func (d *fakeDriver) AttachShader(program, shader uint32) {
	d.attached[program] = append(d.attached[program], shader)
}

func (d *fakeDriver) LinkProgram(program uint32) {
	ok := len(d.attached[program]) > 0
	for _, s := range d.attached[program] {
		if !d.compiled[s] {
			ok = false
		}
	}
	d.linked[program] = ok
}

func (d *fakeDriver) ProgramLinked(program uint32) bool {
	return d.linked[program]
}

func (d *fakeDriver) ProgramInfoLog(program uint32, maxLen int) string {
	if d.linked[program] {
		return ""
	}
	return d.linkLog
}

func (d *fakeDriver) DeleteProgram(program uint32) {
	d.deleted[program] = true
}
