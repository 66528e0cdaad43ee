package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// PathLike is satisfied by anything that can be viewed as a path: plain
// strings, Path, or any other named string type.
type PathLike interface {
	~string
}

// AsPath converts any path-like value into a Path.
func AsPath[P PathLike](p P) Path {
	return Path(p)
}

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Components splits the path into its ordered components, directory names
// first and the file name last.
func (p Path) Components() []string {
	return PathComponents(p)
}

// PathComponents decomposes a path into its components the way an OS path
// iterator does: an absolute path starts with a root component ("/"), empty
// and "." segments are dropped, ".." is kept verbatim.
func PathComponents[P PathLike](p P) []string {
	raw := filepath.ToSlash(string(p))
	components := make([]string, 0, strings.Count(raw, "/")+1)

	if strings.HasPrefix(raw, "/") {
		components = append(components, "/")
	}

	for i, segment := range strings.Split(raw, "/") {
		if segment == "" {
			continue
		}

		// Only a leading "." is a CurDir component; interior ones are normalized away.
		if segment == "." && (i != 0 || len(components) > 0) {
			continue
		}

		components = append(components, segment)
	}

	return components
}

// JoinComponents is the display form of components produced by
// PathComponents: slash separated, with a root component kept as a single
// leading slash.
func JoinComponents(components []string) string {
	if len(components) > 0 && components[0] == "/" {
		return "/" + strings.Join(components[1:], "/")
	}

	return strings.Join(components, "/")
}
