package gfx

import (
	"log/slog"

	"github.com/kjkrol/gltriangle/internal/platform"
)

// KeyEscape is the code carried by KeyPress for the escape key.
const KeyEscape = platform.KeyEscape

type Event interface{}

type KeyPress struct {
	Code     uint64
	Scancode int
	Mods     uint32
	Label    string
}
type KeyRelease struct {
	Code     uint64
	Scancode int
	Mods     uint32
	Label    string
}
type KeyRepeat struct {
	Code     uint64
	Scancode int
	Mods     uint32
	Label    string
}
type FramebufferResize struct {
	Width, Height int
}
type DestroyNotify struct{}
type UnexpectedEvent struct{}

func convert(event platform.Event) Event {
	switch e := event.(type) {
	case platform.KeyPress:
		return KeyPress{Code: e.Code, Scancode: e.Scancode, Mods: e.Mods, Label: e.Label}
	case platform.KeyRelease:
		return KeyRelease{Code: e.Code, Scancode: e.Scancode, Mods: e.Mods, Label: e.Label}
	case platform.KeyRepeat:
		return KeyRepeat{Code: e.Code, Scancode: e.Scancode, Mods: e.Mods, Label: e.Label}
	case platform.FramebufferResize:
		return FramebufferResize{Width: e.Width, Height: e.Height}
	case platform.DestroyNotify:
		return DestroyNotify{}
	default:
		return UnexpectedEvent{}
	}
}

// CloseOnEscape stops w when escape is pressed and passes every other
// event on to next.
func CloseOnEscape(w *Window, next func(Event)) func(Event) {
	return func(event Event) {
		if key, ok := event.(KeyPress); ok && key.Code == KeyEscape {
			w.Stop()
			return
		}
		if next != nil {
			next(event)
		}
	}
}

// LogEvents writes key and window events to logger.
func LogEvents(logger *slog.Logger) func(Event) {
	return func(event Event) {
		switch e := event.(type) {
		case KeyPress:
			logger.Info("key", "code", e.Code, "action", "press", "mods", e.Mods, "label", e.Label)
		case KeyRelease:
			logger.Info("key", "code", e.Code, "action", "release", "mods", e.Mods, "label", e.Label)
		case KeyRepeat:
			logger.Info("key", "code", e.Code, "action", "repeat", "mods", e.Mods, "label", e.Label)
		case FramebufferResize:
			logger.Debug("framebuffer resized", "width", e.Width, "height", e.Height)
		case DestroyNotify:
			logger.Info("window close requested")
		}
	}
}
