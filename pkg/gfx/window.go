package gfx

import (
	"fmt"

	"github.com/kjkrol/gltriangle/internal/platform"
)

type WindowConfig struct {
	Width             int
	Height            int
	Title             string
	ContextMajor      int
	ContextMinor      int
	CoreProfile       bool
	ForwardCompatible bool
	Hidden            bool
}

func (w WindowConfig) convert() platform.WindowConfig {
	return platform.WindowConfig{
		Width:             w.Width,
		Height:            w.Height,
		Title:             w.Title,
		ContextMajor:      w.ContextMajor,
		ContextMinor:      w.ContextMinor,
		CoreProfile:       w.CoreProfile,
		ForwardCompatible: w.ForwardCompatible,
		Hidden:            w.Hidden,
	}
}

type Window struct {
	platformWinWrapper platform.PlatformWindowWrapper
	renderer           Renderer
	strategy           EventsConsumerStrategy
	queue              []platform.Event
	frames             uint64
}

// NewWindow opens a platform window with a current rendering context and,
// when factory is non-nil, creates the renderer for it. A factory error
// closes the window and is returned wrapped.
func NewWindow(conf WindowConfig, factory RendererFactory) (*Window, error) {
	wrapper, err := platform.NewPlatformWindowWrapper(conf.convert())
	if err != nil {
		return nil, err
	}
	return newWindow(wrapper, factory)
}

func newWindow(wrapper platform.PlatformWindowWrapper, factory RendererFactory) (*Window, error) {
	if wrapper == nil {
		return nil, fmt.Errorf("%w: platform window wrapper is required", platform.ErrCreateWindow)
	}
	window := &Window{platformWinWrapper: wrapper, strategy: DrainAll()}
	if factory != nil {
		renderer, err := factory(window)
		if err != nil {
			wrapper.Close()
			return nil, fmt.Errorf("renderer: %w", err)
		}
		window.renderer = renderer
	}
	return window, nil
}

// Show makes a window created with Hidden visible.
func (w *Window) Show() {
	w.platformWinWrapper.Show()
}

// FramebufferSize reports the drawable size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	if w == nil || w.platformWinWrapper == nil {
		return 0, 0
	}
	return w.platformWinWrapper.FramebufferSize()
}

// Frames is the number of frames presented by Run so far.
func (w *Window) Frames() uint64 {
	return w.frames
}

// Stop requests the frame loop to end after the current frame.
func (w *Window) Stop() {
	w.platformWinWrapper.SetShouldClose(true)
}

func (w *Window) Stopped() bool {
	return w.platformWinWrapper.ShouldClose()
}

func (w *Window) Close() {
	if w.renderer != nil {
		w.renderer.Close()
		w.renderer = nil
	}
	if w.platformWinWrapper != nil {
		w.platformWinWrapper.Close()
		w.platformWinWrapper = nil
	}
}

func (w *Window) SetEventsStrategy(strategy EventsConsumerStrategy) {
	if strategy == nil {
		strategy = DrainAll()
	}
	w.strategy = strategy
}

// SetRenderer replaces the renderer, closing the previous one.
func (w *Window) SetRenderer(renderer Renderer) {
	if w == nil {
		return
	}
	if w.renderer != nil {
		w.renderer.Close()
	}
	w.renderer = renderer
}

// Run polls events, renders and presents frames until a close is
// requested. It must be called from the thread that created the window.
func (w *Window) Run(handleEvent func(event Event)) {
	for !w.platformWinWrapper.ShouldClose() {
		w.RunFrame(handleEvent)
	}
}

// RunFrame executes a single iteration of the frame loop.
func (w *Window) RunFrame(handleEvent func(event Event)) {
	w.queue = append(w.queue, w.platformWinWrapper.PollEvents()...)
	poll := func() (Event, bool) {
		if len(w.queue) == 0 {
			return nil, false
		}
		next := w.queue[0]
		w.queue = w.queue[1:]
		return convert(next), true
	}
	if handleEvent == nil {
		handleEvent = func(Event) {}
	}
	w.strategy.Consume(poll, handleEvent)

	if w.renderer != nil {
		w.renderer.Render(w)
	}
	w.platformWinWrapper.SwapBuffers()
	w.frames++
}
