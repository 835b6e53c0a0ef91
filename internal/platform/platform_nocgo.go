//go:build !cgo || !(linux || windows || darwin)

package platform

import "fmt"

// KeyEscape matches no key; without GLFW no key events are delivered.
const KeyEscape = ^uint64(0)

func NewPlatformWindowWrapper(conf WindowConfig) (PlatformWindowWrapper, error) {
	return nil, fmt.Errorf("%w: built without GLFW support", ErrInit)
}
