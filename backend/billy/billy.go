package billy

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/peterkovacs/files/backend"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

// Backend adapts a billy.Filesystem to backend.Backend.
type Backend struct {
	bfs     billy.Filesystem
	typ     backend.Type
	special map[backend.SpecialDirectory]string
}

// NewLocal creates a backend over the local disk, rooted at "/".
// Special directories come from WithLocalConfig, or the FILES_* environment
// variables, falling back to the operating system defaults.
func NewLocal(opts ...Option) (*Backend, error) {
	o := newOptions(opts)

	cfg := o.config
	if cfg == nil {
		loaded, err := LoadLocalConfig()
		if err != nil {
			return nil, err
		}
		cfg = &loaded
	}

	special, err := cfg.directories()
	if err != nil {
		return nil, err
	}
	for k, v := range o.special {
		special[k] = v
	}

	return &Backend{
		bfs:     osfs.New("/"),
		typ:     backend.TypeLocal,
		special: special,
	}, nil
}

// NewMemory creates an empty in-memory backend whose special directories
// already exist.
func NewMemory(opts ...Option) *Backend {
	o := newOptions(opts)

	special := memoryDefaults()
	for k, v := range o.special {
		special[k] = v
	}

	bfs := memfs.New()
	for _, dir := range special {
		// memfs MkdirAll only fails when a file is in the way, which cannot
		// happen on a fresh tree.
		_ = bfs.MkdirAll(dir, dirPerm)
	}

	return &Backend{
		bfs:     bfs,
		typ:     backend.TypeMemory,
		special: special,
	}
}

// New wraps an existing billy.Filesystem. Paths handed to the backend are
// interpreted relative to bfs's root. Only the special directories given as
// options are available.
func New(bfs billy.Filesystem, typ backend.Type, opts ...Option) *Backend {
	o := newOptions(opts)
	special := make(map[backend.SpecialDirectory]string, len(o.special))
	for k, v := range o.special {
		special[k] = v
	}
	return &Backend{bfs: bfs, typ: typ, special: special}
}

// Unwrap returns the underlying billy.Filesystem.
func (b *Backend) Unwrap() billy.Filesystem {
	return b.bfs
}

// Type returns the storage type given at construction.
func (b *Backend) Type() backend.Type {
	return b.typ
}

// normalize converts paths to use forward slashes consistently.
func normalize(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// clean validates and normalizes a path handed to the backend.
func clean(op, p string) (string, error) {
	p = normalize(p)
	if !path.IsAbs(p) {
		return "", &fs.PathError{Op: op, Path: p, Err: backend.ErrInvalid}
	}
	return p, nil
}

func isWithin(parent, child string) bool {
	if parent == "/" {
		return child != "/"
	}
	return strings.HasPrefix(child, parent+"/")
}

// kind stats p and reports what lives there.
func (b *Backend) kind(p string) (backend.Kind, error) {
	if p == "/" {
		return backend.KindDirectory, nil
	}
	info, err := b.bfs.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return backend.KindAbsent, nil
		}
		return backend.KindAbsent, err
	}
	if info.IsDir() {
		return backend.KindDirectory, nil
	}
	return backend.KindFile, nil
}

// requireKind fails unless p holds an entry of the wanted kind.
func (b *Backend) requireKind(op, p string, want backend.Kind) error {
	got, err := b.kind(p)
	if err != nil {
		return &fs.PathError{Op: op, Path: p, Err: err}
	}
	switch {
	case got == want:
		return nil
	case got == backend.KindAbsent:
		return &fs.PathError{Op: op, Path: p, Err: backend.ErrNotExist}
	case want == backend.KindDirectory:
		return &fs.PathError{Op: op, Path: p, Err: backend.ErrNotDirectory}
	default:
		return &fs.PathError{Op: op, Path: p, Err: backend.ErrIsDirectory}
	}
}

// requireFree fails with ErrExist when p is taken and with ErrNotExist when
// its parent directory is missing.
func (b *Backend) requireFree(op, p string) error {
	got, err := b.kind(p)
	if err != nil {
		return &fs.PathError{Op: op, Path: p, Err: err}
	}
	if got != backend.KindAbsent {
		return &fs.PathError{Op: op, Path: p, Err: backend.ErrExist}
	}
	return b.requireKind(op, path.Dir(p), backend.KindDirectory)
}

// ReadBackend implementation

// Exists reports the kind of entry at p.
func (b *Backend) Exists(p string) (backend.Kind, error) {
	p, err := clean("exists", p)
	if err != nil {
		return backend.KindAbsent, err
	}
	return b.kind(p)
}

// ListChildren returns the direct children of the directory at p.
// Symbolic links are reported with the kind of their target; dangling links
// are reported as files.
func (b *Backend) ListChildren(p string) ([]backend.Entry, error) {
	p, err := clean("readdir", p)
	if err != nil {
		return nil, err
	}
	if err := b.requireKind("readdir", p, backend.KindDirectory); err != nil {
		return nil, err
	}

	infos, err := b.bfs.ReadDir(p)
	if err != nil {
		return nil, err
	}

	entries := make([]backend.Entry, 0, len(infos))
	for _, info := range infos {
		entry := backend.Entry{Name: info.Name(), Kind: backend.KindFile}
		if info.IsDir() {
			entry.Kind = backend.KindDirectory
		} else if info.Mode()&fs.ModeSymlink != 0 {
			if k, err := b.kind(path.Join(p, info.Name())); err == nil && k == backend.KindDirectory {
				entry.Kind = backend.KindDirectory
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ReadBytes returns the contents of the file at p.
func (b *Backend) ReadBytes(p string) ([]byte, error) {
	p, err := clean("read", p)
	if err != nil {
		return nil, err
	}
	if err := b.requireKind("read", p, backend.KindFile); err != nil {
		return nil, err
	}
	return util.ReadFile(b.bfs, p)
}

// ModificationTime returns the modification time of p.
func (b *Backend) ModificationTime(p string) (time.Time, error) {
	p, err := clean("stat", p)
	if err != nil {
		return time.Time{}, err
	}
	info, err := b.bfs.Stat(p)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// WriteBackend implementation

// Create makes a new file or directory at p. The parent must exist.
func (b *Backend) Create(p string, kind backend.Kind, contents []byte) error {
	p, err := clean("create", p)
	if err != nil {
		return err
	}
	if err := b.requireFree("create", p); err != nil {
		return err
	}

	switch kind {
	case backend.KindDirectory:
		return b.bfs.MkdirAll(p, dirPerm)
	case backend.KindFile:
		return withFile(b.bfs, p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, func(f billy.File) error {
			_, err := f.Write(contents)
			return err
		})
	default:
		return &fs.PathError{Op: "create", Path: p, Err: backend.ErrInvalid}
	}
}

// WriteBytes replaces the contents of the file at p, creating it if needed.
func (b *Backend) WriteBytes(p string, data []byte) error {
	p, err := clean("write", p)
	if err != nil {
		return err
	}
	got, err := b.kind(p)
	if err != nil {
		return &fs.PathError{Op: "write", Path: p, Err: err}
	}
	if got == backend.KindDirectory {
		return &fs.PathError{Op: "write", Path: p, Err: backend.ErrIsDirectory}
	}
	return util.WriteFile(b.bfs, p, data, filePerm)
}

// AppendBytes appends data to the existing file at p.
func (b *Backend) AppendBytes(p string, data []byte) error {
	p, err := clean("append", p)
	if err != nil {
		return err
	}
	if err := b.requireKind("append", p, backend.KindFile); err != nil {
		return err
	}
	return withFile(b.bfs, p, os.O_WRONLY|os.O_APPEND, func(f billy.File) error {
		_, err := f.Write(data)
		return err
	})
}

// ManageBackend implementation

// Remove deletes p, recursively for directories.
func (b *Backend) Remove(p string) error {
	p, err := clean("remove", p)
	if err != nil {
		return err
	}
	if p == "/" {
		return &fs.PathError{Op: "remove", Path: p, Err: backend.ErrPermission}
	}
	got, err := b.kind(p)
	if err != nil {
		return &fs.PathError{Op: "remove", Path: p, Err: err}
	}
	if got == backend.KindAbsent {
		return &fs.PathError{Op: "remove", Path: p, Err: backend.ErrNotExist}
	}
	return util.RemoveAll(b.bfs, p)
}

// Move renames from to to. to must be free and its parent must exist.
func (b *Backend) Move(from, to string) error {
	from, to, err := b.transfer("move", from, to)
	if err != nil {
		return err
	}
	return b.bfs.Rename(from, to)
}

// Copy duplicates from at to, recursively for directories.
func (b *Backend) Copy(from, to string) error {
	from, to, err := b.transfer("copy", from, to)
	if err != nil {
		return err
	}
	return b.copy(from, to)
}

// transfer validates the arguments shared by Move and Copy.
func (b *Backend) transfer(op, from, to string) (string, string, error) {
	from, err := clean(op, from)
	if err != nil {
		return "", "", err
	}
	to, err = clean(op, to)
	if err != nil {
		return "", "", err
	}
	got, err := b.kind(from)
	if err != nil {
		return "", "", &fs.PathError{Op: op, Path: from, Err: err}
	}
	if got == backend.KindAbsent {
		return "", "", &fs.PathError{Op: op, Path: from, Err: backend.ErrNotExist}
	}
	if from == "/" || isWithin(from, to) {
		return "", "", &fs.PathError{Op: op, Path: to, Err: backend.ErrInvalid}
	}
	if err := b.requireFree(op, to); err != nil {
		return "", "", err
	}
	return from, to, nil
}

func (b *Backend) copy(from, to string) error {
	info, err := b.bfs.Stat(from)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		data, err := util.ReadFile(b.bfs, from)
		if err != nil {
			return err
		}
		return util.WriteFile(b.bfs, to, data, info.Mode().Perm())
	}

	// List before creating the destination so it can never show up in the
	// source listing.
	children, err := b.bfs.ReadDir(from)
	if err != nil {
		return err
	}
	if err := b.bfs.MkdirAll(to, info.Mode().Perm()|0o700); err != nil {
		return err
	}
	for _, child := range children {
		if err := b.copy(path.Join(from, child.Name()), path.Join(to, child.Name())); err != nil {
			return err
		}
	}
	return nil
}

// DirectoryBackend implementation

// SpecialDirectory returns the configured path of dir. For the local backend
// Current is the process working directory at the time of the call.
func (b *Backend) SpecialDirectory(dir backend.SpecialDirectory) (string, error) {
	if p, ok := b.special[dir]; ok {
		return p, nil
	}
	if dir == backend.Current && b.typ == backend.TypeLocal {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to determine working directory: %w", err)
		}
		return normalize(wd), nil
	}
	return "", fmt.Errorf("%s directory: %w", dir, backend.ErrUnsupported)
}

// Compile-time interface check.
var _ backend.Backend = (*Backend)(nil)
