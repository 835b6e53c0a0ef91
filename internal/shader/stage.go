package shader

import "fmt"

type StageKind int

const (
	Vertex StageKind = iota + 1
	Fragment
)

func (k StageKind) String() string {
	switch k {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("StageKind(%d)", int(k))
	}
}

func (k StageKind) valid() bool {
	return k == Vertex || k == Fragment
}

// Stage is a compiled shader object. Handle is populated even when
// compilation failed; Compiled and Log describe the outcome.
type Stage struct {
	Handle   uint32
	Kind     StageKind
	Compiled bool
	Log      string
}
