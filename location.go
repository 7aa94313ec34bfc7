package files

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/peterkovacs/files/backend"
	"github.com/peterkovacs/files/logging"
)

// Location is implemented by *File and *Folder.
type Location interface {
	fmt.Stringer

	// Path returns the canonical absolute path.
	Path() string
	// Name returns the last path segment.
	Name() string
	// Extension returns the extension of Name, if it has one.
	Extension() (string, bool)
	// NameExcludingExtension returns Name without its extension.
	NameExcludingExtension() string
	// Kind reports whether the handle is a file or a folder.
	Kind() backend.Kind
	// Backend returns the backend the handle operates through.
	Backend() backend.Backend
	// Key returns a comparable identity usable as a map key.
	Key() Key
	// Equal reports whether other names the same entry under the same backend.
	Equal(other Location) bool
	// Exists reports whether an entry of the handle's kind is still at Path.
	Exists() bool
	// Parent returns the containing folder.
	Parent() (*Folder, error)
	// ModificationTime returns the time the entry was last modified.
	ModificationTime() (time.Time, error)
	// RelativePath returns Path relative to folder.
	RelativePath(to *Folder) string
	// Rename changes the last path segment.
	Rename(newName string, opts ...RenameOption) error
	// Move re-parents the entry into a folder, keeping its name.
	Move(to *Folder) error
	// Delete removes the entry, recursively for folders.
	Delete() error
}

// Key identifies an entry. Keys of equal handles are equal.
type Key struct {
	Backend backend.Backend
	Path    string
}

// location is the state shared by File and Folder.
type location struct {
	path    string
	kind    backend.Kind
	backend backend.Backend
	logger  *zap.Logger
}

// resolve builds a handle for raw after checking that an entry of the given
// kind exists there.
func resolve(raw string, kind backend.Kind, cfg *config) (location, error) {
	p, err := NewResolver(cfg.backend).Resolve(raw, "")
	if err != nil {
		return location{}, locationError(raw, ReasonMissing, err)
	}
	return lookup(p, kind, cfg.backend, cfg.logger)
}

// lookup builds a handle for the absolute path p after checking that an
// entry of the given kind exists there.
func lookup(p string, kind backend.Kind, b backend.Backend, logger *zap.Logger) (location, error) {
	l := location{path: Canonical(p, kind), kind: kind, backend: b, logger: logger}
	if err := l.validate(); err != nil {
		return location{}, err
	}
	return l, nil
}

// child builds an unchecked handle for p, sharing l's backend and logger.
func (l *location) child(p string, kind backend.Kind) location {
	return location{path: Canonical(p, kind), kind: kind, backend: l.backend, logger: l.logger}
}

// backendPath is the path in the form backends expect.
func (l *location) backendPath() string {
	return trim(l.path)
}

// validate fails unless an entry of l's kind is at l's path.
func (l *location) validate() error {
	got, err := l.backend.Exists(l.backendPath())
	if err != nil {
		return locationError(l.path, ReasonMissing, err)
	}
	switch got {
	case l.kind:
		return nil
	case backend.KindAbsent:
		return locationError(l.path, ReasonMissing, backend.ErrNotExist)
	default:
		return locationError(l.path, ReasonKindMismatch, fmt.Errorf("found %s, want %s", got, l.kind))
	}
}

// Path returns the canonical absolute path. Folder paths end with "/".
func (l *location) Path() string { return l.path }

// Name returns the last path segment, including any extension.
func (l *location) Name() string { return Name(l.path) }

// Extension returns the text after the last "." in Name.
func (l *location) Extension() (string, bool) { return Extension(l.Name()) }

// NameExcludingExtension returns Name without its extension.
func (l *location) NameExcludingExtension() string { return NameExcludingExtension(l.Name()) }

// Kind returns backend.KindFile or backend.KindDirectory.
func (l *location) Kind() backend.Kind { return l.kind }

// Backend returns the backend the handle operates through.
func (l *location) Backend() backend.Backend { return l.backend }

// Key returns the handle's identity.
func (l *location) Key() Key { return Key{Backend: l.backend, Path: l.path} }

// String returns the canonical path.
func (l *location) String() string { return l.path }

// Equal reports whether other has the same canonical path under the same
// backend. A file never equals a folder.
func (l *location) Equal(other Location) bool {
	o := locationOf(other)
	if o == nil {
		return false
	}
	return l.backend == o.backend && l.path == o.path
}

func locationOf(loc Location) *location {
	switch v := loc.(type) {
	case *File:
		if v != nil {
			return &v.location
		}
	case *Folder:
		if v != nil {
			return &v.location
		}
	}
	return nil
}

// Exists reports whether an entry of the handle's kind is still at Path.
func (l *location) Exists() bool {
	return l.validate() == nil
}

// Parent returns the folder containing the entry. The root folder has no
// parent.
func (l *location) Parent() (*Folder, error) {
	p, ok := ParentPath(l.path)
	if !ok {
		return nil, locationError(l.path, ReasonMissing, errors.New("root has no parent"))
	}
	parent := l.child(p, backend.KindDirectory)
	if err := parent.validate(); err != nil {
		return nil, err
	}
	return &Folder{parent}, nil
}

// ModificationTime returns the time the entry was last modified.
func (l *location) ModificationTime() (time.Time, error) {
	if err := l.validate(); err != nil {
		return time.Time{}, err
	}
	t, err := l.backend.ModificationTime(l.backendPath())
	if err != nil {
		return time.Time{}, readError(l.path, ReasonReadFailed, err)
	}
	return t, nil
}

// RelativePath returns Path relative to the folder to, or Path unchanged
// when the entry is not below it.
func (l *location) RelativePath(to *Folder) string {
	if to == nil {
		return l.path
	}
	return RelativePath(l.path, to.path)
}

// Rename replaces the last path segment with newName. Unless disabled with
// KeepExtension(false), the current extension is appended to newName when
// newName does not already end with it. Renaming to the current name does
// nothing.
func (l *location) Rename(newName string, opts ...RenameOption) error {
	o := renameOptions{keepExtension: true}
	for _, opt := range opts {
		opt(&o)
	}

	if newName == "" || newName == "." || newName == ".." || strings.Contains(newName, Separator) {
		return writeError(l.path, ReasonMoveFailed, fmt.Errorf("invalid name %q: %w", newName, backend.ErrInvalid))
	}
	if o.keepExtension {
		if ext, ok := l.Extension(); ok && !strings.HasSuffix(newName, "."+ext) {
			newName += "." + ext
		}
	}
	if newName == l.Name() {
		return nil
	}

	parent, ok := ParentPath(l.path)
	if !ok {
		return writeError(l.path, ReasonMoveFailed, fmt.Errorf("cannot rename root: %w", backend.ErrPermission))
	}
	return l.relocate(Subpath(parent, newName), "renamed")
}

// Move re-parents the entry into to, keeping its name. to must not already
// contain an entry with that name.
func (l *location) Move(to *Folder) error {
	if to == nil {
		return writeError(l.path, ReasonMoveFailed, backend.ErrInvalid)
	}
	return l.relocate(Subpath(to.path, l.Name()), "moved")
}

// relocate moves the entry to the absolute path target and updates the
// handle.
func (l *location) relocate(target, verb string) error {
	if err := l.requireFree(target, ReasonMoveFailed); err != nil {
		return err
	}
	if err := l.backend.Move(l.backendPath(), target); err != nil {
		return writeError(l.path, ReasonMoveFailed, err)
	}

	from := l.path
	l.path = Canonical(target, l.kind)
	l.logger.Debug(verb, logging.Path(from), logging.Destination(l.path))
	return nil
}

// copyTo duplicates the entry into to and returns the canonical path of the
// copy.
func (l *location) copyTo(to *Folder) (string, error) {
	if to == nil {
		return "", writeError(l.path, ReasonCopyFailed, backend.ErrInvalid)
	}
	target := Subpath(to.path, l.Name())
	if err := l.requireFree(target, ReasonCopyFailed); err != nil {
		return "", err
	}
	if err := l.backend.Copy(l.backendPath(), target); err != nil {
		return "", writeError(l.path, ReasonCopyFailed, err)
	}

	p := Canonical(target, l.kind)
	l.logger.Debug("copied", logging.Path(l.path), logging.Destination(p))
	return p, nil
}

// requireFree fails with ReasonAlreadyExists when target is taken, or with
// reason when the backend cannot tell.
func (l *location) requireFree(target string, reason Reason) error {
	kind, err := l.backend.Exists(target)
	if err != nil {
		return writeError(target, reason, err)
	}
	if kind != backend.KindAbsent {
		return writeError(Canonical(target, kind), ReasonAlreadyExists, backend.ErrExist)
	}
	return nil
}

// Delete removes the entry, recursively for folders. The handle stays
// usable as a value but every later operation that needs the entry fails.
func (l *location) Delete() error {
	if err := l.validate(); err != nil {
		return err
	}
	if err := l.backend.Remove(l.backendPath()); err != nil {
		return locationError(l.path, ReasonDeleteFailed, err)
	}
	l.logger.Debug("deleted", logging.Path(l.path))
	return nil
}

// managedBy checks that the same path holds an entry of the same kind in b.
func (l *location) managedBy(b backend.Backend) (location, error) {
	if b == nil {
		return location{}, locationError(l.path, ReasonMissing, backend.ErrInvalid)
	}
	return lookup(l.backendPath(), l.kind, b, l.logger)
}
