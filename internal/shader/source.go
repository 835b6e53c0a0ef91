package shader

import "os"

// ReadSource returns the contents of the file at path, or an empty string
// if it cannot be read.
func ReadSource(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		Logger().Warn("cannot read shader source", "path", path, "error", err)
		return ""
	}
	return string(b)
}
