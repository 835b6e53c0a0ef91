package shader

import (
	"errors"
	"fmt"
)

var ErrUnknownStage = errors.New("unknown shader stage")

type CompileError struct {
	Kind StageKind
	Log  string
}

func (e *CompileError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("%s shader compile error", e.Kind)
	}
	return fmt.Sprintf("%s shader compile error: %s", e.Kind, e.Log)
}

type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	if e.Log == "" {
		return "link error"
	}
	return fmt.Sprintf("link error: %s", e.Log)
}
