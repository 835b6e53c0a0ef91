//go:build !cgo

package renderer

import "fmt"

var glBackend = backend{
	init: func() error {
		return fmt.Errorf("%w: built without cgo", ErrDriverInit)
	},
}
