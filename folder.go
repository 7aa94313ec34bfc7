package files

import (
	"errors"
	"io/fs"
	"path"

	"go.uber.org/zap"

	"github.com/peterkovacs/files/backend"
	"github.com/peterkovacs/files/logging"
)

// Folder is a handle to a folder.
type Folder struct {
	location
}

// NewFolder returns a handle to the existing folder at p. p may be absolute,
// relative to the current directory, or start with "~". The returned path
// always ends with "/".
func NewFolder(p string, opts ...Option) (*Folder, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	l, err := resolve(p, backend.KindDirectory, cfg)
	if err != nil {
		return nil, err
	}
	return &Folder{l}, nil
}

// File returns the existing file called name directly inside f.
func (f *Folder) File(name string) (*File, error) {
	return f.FileAt(name)
}

// FileAt returns the existing file at the relative path p below f.
func (f *Folder) FileAt(p string) (*File, error) {
	l := f.child(Subpath(f.path, p), backend.KindFile)
	if err := l.validate(); err != nil {
		return nil, err
	}
	return &File{l}, nil
}

// Subfolder returns the existing folder called name directly inside f.
func (f *Folder) Subfolder(name string) (*Folder, error) {
	return f.SubfolderAt(name)
}

// SubfolderAt returns the existing folder at the relative path p below f.
func (f *Folder) SubfolderAt(p string) (*Folder, error) {
	l := f.child(Subpath(f.path, p), backend.KindDirectory)
	if err := l.validate(); err != nil {
		return nil, err
	}
	return &Folder{l}, nil
}

// ContainsFile reports whether a file exists at the relative path p.
func (f *Folder) ContainsFile(p string) bool {
	_, err := f.FileAt(p)
	return err == nil
}

// ContainsSubfolder reports whether a folder exists at the relative path p.
func (f *Folder) ContainsSubfolder(p string) bool {
	_, err := f.SubfolderAt(p)
	return err == nil
}

// Contains reports whether loc is a direct child of f under the same
// backend.
func (f *Folder) Contains(loc Location) bool {
	l := locationOf(loc)
	if l == nil || l.backend != f.backend {
		return false
	}
	parent, ok := ParentPath(l.path)
	return ok && parent == f.path
}

// CreateFile creates a file with contents at the relative path p, creating
// any missing intermediate folders. It fails with ReasonAlreadyExists when
// anything already exists at p.
func (f *Folder) CreateFile(p string, contents []byte) (*File, error) {
	target := Subpath(f.path, p)
	if err := f.requireAbsent(target); err != nil {
		return nil, err
	}
	if err := f.mkdirAll(path.Dir(target)); err != nil {
		return nil, writeError(Canonical(target, backend.KindFile), ReasonCreateFailed, err)
	}
	if err := f.backend.Create(target, backend.KindFile, contents); err != nil {
		return nil, f.createError(target, backend.KindFile, err)
	}

	created := &File{f.child(target, backend.KindFile)}
	f.logger.Debug("created file", logging.Path(created.path))
	return created, nil
}

// CreateFileIfNeeded returns the file at p, creating it with contents first
// when it does not exist. contents are ignored for an existing file.
func (f *Folder) CreateFileIfNeeded(p string, contents []byte) (*File, error) {
	existing, err := f.FileAt(p)
	if err == nil {
		return existing, nil
	}
	if ReasonOf(err) != ReasonMissing {
		return nil, err
	}
	return f.CreateFile(p, contents)
}

// CreateSubfolder creates a folder at the relative path p, creating any
// missing intermediate folders. It fails with ReasonAlreadyExists when
// anything already exists at p.
func (f *Folder) CreateSubfolder(p string) (*Folder, error) {
	target := Subpath(f.path, p)
	if err := f.requireAbsent(target); err != nil {
		return nil, err
	}
	if err := f.mkdirAll(target); err != nil {
		return nil, f.createError(target, backend.KindDirectory, err)
	}

	created := &Folder{f.child(target, backend.KindDirectory)}
	f.logger.Debug("created folder", logging.Path(created.path))
	return created, nil
}

// CreateSubfolderIfNeeded returns the folder at p, creating it and any
// missing intermediate folders first when it does not exist.
func (f *Folder) CreateSubfolderIfNeeded(p string) (*Folder, error) {
	existing, err := f.SubfolderAt(p)
	if err == nil {
		return existing, nil
	}
	if ReasonOf(err) != ReasonMissing {
		return nil, err
	}
	return f.CreateSubfolder(p)
}

// requireAbsent fails unless nothing exists at the backend path target.
func (f *Folder) requireAbsent(target string) error {
	kind, err := f.backend.Exists(target)
	if err != nil {
		return writeError(target, ReasonCreateFailed, err)
	}
	if kind != backend.KindAbsent {
		return writeError(Canonical(target, kind), ReasonAlreadyExists, backend.ErrExist)
	}
	return nil
}

func (f *Folder) createError(target string, kind backend.Kind, err error) error {
	reason := ReasonCreateFailed
	if errors.Is(err, backend.ErrExist) {
		reason = ReasonAlreadyExists
	}
	return writeError(Canonical(target, kind), reason, err)
}

// mkdirAll creates the directory p and any missing parents.
func (f *Folder) mkdirAll(p string) error {
	kind, err := f.backend.Exists(p)
	if err != nil {
		return err
	}
	switch kind {
	case backend.KindDirectory:
		return nil
	case backend.KindFile:
		return &fs.PathError{Op: "mkdir", Path: p, Err: backend.ErrNotDirectory}
	}
	if parent := path.Dir(p); parent != p {
		if err := f.mkdirAll(parent); err != nil {
			return err
		}
	}
	if err := f.backend.Create(p, backend.KindDirectory, nil); err != nil && !errors.Is(err, backend.ErrExist) {
		return err
	}
	return nil
}

// Files returns a sequence over the files directly inside f.
func (f *Folder) Files() FileSequence {
	return newSequence[*File](f, backend.KindFile)
}

// Subfolders returns a sequence over the folders directly inside f.
func (f *Folder) Subfolders() FolderSequence {
	return newSequence[*Folder](f, backend.KindDirectory)
}

// children lists the direct children of f.
func (f *Folder) children(o contentsOptions) ([]Location, error) {
	entries, err := f.backend.ListChildren(f.backendPath())
	if err != nil {
		return nil, readError(f.path, ReasonReadFailed, err)
	}
	var out []Location
	for _, e := range entries {
		if !o.includeHidden && IsHidden(e.Name) {
			continue
		}
		switch e.Kind {
		case backend.KindFile:
			out = append(out, &File{f.child(f.path+e.Name, backend.KindFile)})
		case backend.KindDirectory:
			out = append(out, &Folder{f.child(f.path+e.Name, backend.KindDirectory)})
		}
	}
	return out, nil
}

// IsEmpty reports whether f has no children. Hidden children are ignored
// unless IncludeHidden is given.
func (f *Folder) IsEmpty(opts ...ContentsOption) (bool, error) {
	children, err := f.children(newContentsOptions(opts))
	if err != nil {
		return false, err
	}
	return len(children) == 0, nil
}

// Empty deletes every child of f, leaving f itself in place. Hidden children
// are kept unless IncludeHidden is given. It stops at the first failure.
func (f *Folder) Empty(opts ...ContentsOption) error {
	children, err := f.children(newContentsOptions(opts))
	if err != nil {
		return err
	}
	for i, child := range children {
		if err := child.Delete(); err != nil {
			f.logger.Warn("empty aborted",
				logging.Path(f.path),
				zap.Int("completed", i),
				zap.Error(err))
			return err
		}
	}
	return nil
}

// MoveContents moves every child of f into to. Hidden children stay unless
// IncludeHidden is given. It stops at the first failure; children already
// moved stay moved.
func (f *Folder) MoveContents(to *Folder, opts ...ContentsOption) error {
	if to == nil {
		return writeError(f.path, ReasonMoveFailed, backend.ErrInvalid)
	}
	children, err := f.children(newContentsOptions(opts))
	if err != nil {
		return err
	}
	for i, child := range children {
		if err := child.Move(to); err != nil {
			f.logger.Warn("move contents aborted",
				logging.Path(f.path),
				logging.Destination(to.Path()),
				zap.Int("completed", i),
				zap.Error(err))
			return err
		}
	}
	return nil
}

// Copy duplicates f and everything below it into to and returns a handle to
// the copy.
func (f *Folder) Copy(to *Folder) (*Folder, error) {
	p, err := f.copyTo(to)
	if err != nil {
		return nil, err
	}
	return &Folder{f.child(p, backend.KindDirectory)}, nil
}

// ManagedBy returns a handle to the folder at the same path in b.
func (f *Folder) ManagedBy(b backend.Backend) (*Folder, error) {
	l, err := f.managedBy(b)
	if err != nil {
		return nil, err
	}
	return &Folder{l}, nil
}

var _ Location = (*Folder)(nil)
