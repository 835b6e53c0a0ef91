package platform

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
