//go:build (linux || windows || darwin) && cgo

package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// KeyEscape is the key code GLFW reports for the escape key.
const KeyEscape = uint64(glfw.KeyEscape)

type glfwWindowWrapper struct {
	window  *glfw.Window
	pending []Event
}

// NewPlatformWindowWrapper initialises GLFW, creates a window with an OpenGL
// context as described by conf and makes that context current on the
// calling thread. The thread stays locked until Close.
func NewPlatformWindowWrapper(conf WindowConfig) (PlatformWindowWrapper, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}

	applyHints(conf)
	window, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("%w: %v", ErrCreateWindow, err)
	}
	window.MakeContextCurrent()

	w := &glfwWindowWrapper{window: window}
	window.SetKeyCallback(w.onKey)
	window.SetCloseCallback(w.onClose)
	window.SetFramebufferSizeCallback(w.onFramebufferSize)
	return w, nil
}

func applyHints(conf WindowConfig) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, conf.ContextMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, conf.ContextMinor)
	if conf.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	if conf.ForwardCompatible {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	if conf.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}
}

func (w *glfwWindowWrapper) onKey(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	code := uint64(key)
	label := glfw.GetKeyName(key, scancode)
	switch action {
	case glfw.Press:
		w.pending = append(w.pending, KeyPress{Code: code, Scancode: scancode, Mods: uint32(mods), Label: label})
	case glfw.Release:
		w.pending = append(w.pending, KeyRelease{Code: code, Scancode: scancode, Mods: uint32(mods), Label: label})
	case glfw.Repeat:
		w.pending = append(w.pending, KeyRepeat{Code: code, Scancode: scancode, Mods: uint32(mods), Label: label})
	}
}

func (w *glfwWindowWrapper) onClose(_ *glfw.Window) {
	w.pending = append(w.pending, DestroyNotify{})
}

func (w *glfwWindowWrapper) onFramebufferSize(_ *glfw.Window, width, height int) {
	w.pending = append(w.pending, FramebufferResize{Width: width, Height: height})
}

func (w *glfwWindowWrapper) Show() {
	w.window.Show()
}

func (w *glfwWindowWrapper) Close() {
	if w.window == nil {
		return
	}
	w.window.Destroy()
	w.window = nil
	glfw.Terminate()
	runtime.UnlockOSThread()
}

func (w *glfwWindowWrapper) PollEvents() []Event {
	glfw.PollEvents()
	events := w.pending
	w.pending = nil
	return events
}

func (w *glfwWindowWrapper) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *glfwWindowWrapper) SetShouldClose(v bool) {
	w.window.SetShouldClose(v)
}

func (w *glfwWindowWrapper) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glfwWindowWrapper) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}
