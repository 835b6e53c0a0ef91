package shader

import (
	"fmt"
	"unicode/utf8"
)

// MaxInfoLogLength bounds the diagnostic text fetched from the driver.
const MaxInfoLogLength = 512

// CompileStage compiles source as a shader of the given kind. When
// compilation fails the stage is still returned together with a
// *CompileError carrying the driver's diagnostic.
func CompileStage(drv Driver, source string, kind StageKind) (*Stage, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStage, kind)
	}
	handle := drv.CreateShader(kind)
	drv.ShaderSource(handle, source)
	drv.CompileShader(handle)

	stage := &Stage{
		Handle:   handle,
		Kind:     kind,
		Compiled: drv.ShaderCompiled(handle),
	}
	if stage.Compiled {
		Logger().Debug("shader compiled", "stage", kind, "handle", handle)
		return stage, nil
	}
	stage.Log = truncateLog(drv.ShaderInfoLog(handle, MaxInfoLogLength))
	Logger().Error("shader compile error", "stage", kind, "handle", handle, "log", stage.Log)
	return stage, &CompileError{Kind: kind, Log: stage.Log}
}

// truncateLog keeps at most MaxInfoLogLength bytes of log without
// splitting a multi-byte rune.
func truncateLog(log string) string {
	if len(log) <= MaxInfoLogLength {
		return log
	}
	cut := MaxInfoLogLength
	for cut > 0 && !utf8.RuneStart(log[cut]) {
		cut--
	}
	return log[:cut]
}
