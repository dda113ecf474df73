package domain

import "path/filepath"

// RepositoryRef identifies a discovered repository. Path is its identity.
type RepositoryRef struct {
	Name string
	Path string
}

// NewRepositoryRef builds a reference from a repository root directory
func NewRepositoryRef(path string) RepositoryRef {
	clean := filepath.Clean(path)
	return RepositoryRef{
		Name: filepath.Base(clean),
		Path: clean,
	}
}
