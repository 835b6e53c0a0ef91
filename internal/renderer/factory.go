package renderer

import (
	"errors"
	"fmt"

	"github.com/kjkrol/gltriangle/internal/shader"
	"github.com/kjkrol/gltriangle/pkg/gfx"
)

var (
	ErrDriverInit = errors.New("graphics driver init failed")
	ErrProgram    = errors.New("shader program build failed")
)

// backend is the graphics API a factory drives: init loads it for the
// current context, driver exposes its shader calls and setup uploads the
// mesh once the program is built.
type backend struct {
	init   func() error
	driver func() shader.Driver
	setup  func(driver shader.Driver, program *shader.Program, conf gfx.RendererConfig) (gfx.Renderer, error)
}

// NewRendererFactory returns a factory that loads the driver, builds the
// shader program and uploads the mesh for the window's context.
//
// Driver init failures wrap ErrDriverInit. Shader failures wrap ErrProgram
// only when conf.FailOnShaderError is set; otherwise they are logged by the
// shader package and the program is used as is.
func NewRendererFactory(conf gfx.RendererConfig) gfx.RendererFactory {
	return newFactory(conf, glBackend)
}

func newFactory(conf gfx.RendererConfig, b backend) gfx.RendererFactory {
	return func(_ *gfx.Window) (gfx.Renderer, error) {
		if err := b.init(); err != nil {
			return nil, err
		}
		driver := b.driver()
		builder := shader.NewBuilder(driver, shader.Paths{
			Vertex:   conf.VertexShader,
			Fragment: conf.FragmentShader,
		})
		program, err := builder.BuildProgram()
		if err != nil && conf.FailOnShaderError {
			program.Delete(driver)
			return nil, fmt.Errorf("%w: %w", ErrProgram, err)
		}
		r, err := b.setup(driver, program, conf)
		if err != nil {
			program.Delete(driver)
			return nil, err
		}
		return r, nil
	}
}
