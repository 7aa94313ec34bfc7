package files

import (
	"github.com/peterkovacs/files/backend"
)

// SpecialFolder returns a handle to one of the backend's well-known
// directories.
func SpecialFolder(dir backend.SpecialDirectory, opts ...Option) (*Folder, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	p, err := cfg.backend.SpecialDirectory(dir)
	if err != nil {
		return nil, locationError(dir.String(), ReasonMissing, err)
	}
	l, err := lookup(p, backend.KindDirectory, cfg.backend, cfg.logger)
	if err != nil {
		return nil, err
	}
	return &Folder{l}, nil
}

// Home returns the user's home folder.
func Home(opts ...Option) (*Folder, error) {
	return SpecialFolder(backend.Home, opts...)
}

// Current returns the working directory.
func Current(opts ...Option) (*Folder, error) {
	return SpecialFolder(backend.Current, opts...)
}

// Temporary returns the folder for temporary files.
func Temporary(opts ...Option) (*Folder, error) {
	return SpecialFolder(backend.Temporary, opts...)
}

// Documents returns the user's documents folder.
func Documents(opts ...Option) (*Folder, error) {
	return SpecialFolder(backend.Documents, opts...)
}

// Library returns the user's library folder.
func Library(opts ...Option) (*Folder, error) {
	return SpecialFolder(backend.Library, opts...)
}

// Caches returns the user's cache folder.
func Caches(opts ...Option) (*Folder, error) {
	return SpecialFolder(backend.Caches, opts...)
}

// Root returns the root folder.
func Root(opts ...Option) (*Folder, error) {
	return NewFolder(Separator, opts...)
}
