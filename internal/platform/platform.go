package platform

import "errors"

var (
	ErrInit         = errors.New("windowing layer init failed")
	ErrCreateWindow = errors.New("window creation failed")
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

type PlatformWindowWrapper interface {
	Show()
	Close()
	// PollEvents processes pending window-system events and returns the
	// ones received since the previous call.
	PollEvents() []Event
	ShouldClose() bool
	SetShouldClose(bool)
	SwapBuffers()
	FramebufferSize() (width, height int)
}
