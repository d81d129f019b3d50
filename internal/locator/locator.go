// Package locator holds the value types used to reference files resolved
// from orchestrator configuration.
package locator

import "path/filepath"

// FileLocation points at a file on the local filesystem.
type FileLocation struct {
	path string
}

// Of returns a FileLocation for the given path, made absolute when possible.
func Of(path string) FileLocation {
	if abs, err := filepath.Abs(path); err == nil {
		return FileLocation{path: abs}
	}
	return FileLocation{path: path}
}

// Path returns the absolute path of the referenced file.
func (f FileLocation) Path() string { return f.path }

func (f FileLocation) String() string { return f.path }
