//go:build cgo

package renderer

import (
	"fmt"
	"image/color"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/kjkrol/gltriangle/internal/shader"
	"github.com/kjkrol/gltriangle/pkg/gfx"
	"github.com/kjkrol/gltriangle/pkg/mesh"
)

var glBackend = backend{
	init:   initDriver,
	driver: NewGLDriver,
	setup:  setupGL,
}

type renderer struct {
	driver      shader.Driver
	initialized bool

	program    *shader.Program
	vbo        uint32
	vao        uint32
	clearColor [4]float32
	mesh       mesh.Mesh
}

func newRenderer(driver shader.Driver, conf gfx.RendererConfig) *renderer {
	m := conf.Mesh
	if len(m.Vertices) == 0 {
		m = mesh.Triangle()
	}
	return &renderer{
		driver:     driver,
		clearColor: conf.ClearColor,
		mesh:       m,
	}
}

// initDriver loads the OpenGL entry points for the current context.
func initDriver() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrDriverInit, err)
	}
	return nil
}

func setupGL(driver shader.Driver, program *shader.Program, conf gfx.RendererConfig) (gfx.Renderer, error) {
	r := newRenderer(driver, conf)
	if err := r.setup(program); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *renderer) setup(program *shader.Program) error {
	if err := r.mesh.Validate(); err != nil {
		return err
	}
	r.program = program

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, r.mesh.SizeBytes(), gl.Ptr(r.mesh.Vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, mesh.ComponentsPerVertex, gl.FLOAT, false, r.mesh.Stride(), gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], r.clearColor[3])
	r.initialized = true
	return nil
}

func (r *renderer) Render(w *gfx.Window) {
	if !r.initialized {
		return
	}
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	width, height := w.FramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))

	gl.UseProgram(r.program.Handle)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(r.mesh.VertexCount()))
}

func (r *renderer) Close() {
	if !r.initialized {
		return
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	r.program.Delete(r.driver)
	r.initialized = false
}

// readPixel returns the colour of one framebuffer pixel, origin bottom-left.
func (r *renderer) readPixel(x, y int) color.RGBA {
	var px [4]uint8
	gl.ReadPixels(int32(x), int32(y), 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&px[0]))
	return color.RGBA{R: px[0], G: px[1], B: px[2], A: px[3]}
}
