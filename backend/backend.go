package backend

import (
	"time"
)

// Type represents the underlying storage of a backend.
type Type int

const (
	// TypeUnknown indicates the storage is unknown or unspecified.
	TypeUnknown Type = iota
	// TypeLocal indicates a disk-backed backend.
	TypeLocal
	// TypeMemory indicates an in-memory backend.
	TypeMemory
)

// String returns a string representation of the Type.
func (t Type) String() string {
	switch t {
	case TypeLocal:
		return "local"
	case TypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// Kind is the result of an existence check.
type Kind int

const (
	// KindAbsent means nothing exists at the path.
	KindAbsent Kind = iota
	// KindFile means a regular file exists at the path.
	KindFile
	// KindDirectory means a directory exists at the path.
	KindDirectory
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "absent"
	}
}

// Entry is a single child returned by ListChildren.
type Entry struct {
	Name string
	Kind Kind
}

// SpecialDirectory identifies a well-known directory such as the user's home.
type SpecialDirectory int

const (
	// Home is the current user's home directory.
	Home SpecialDirectory = iota
	// Current is the working directory.
	Current
	// Temporary is the directory for temporary files.
	Temporary
	// Documents is the user's documents directory.
	Documents
	// Library is the user's application support directory.
	Library
	// Caches is the user's cache directory.
	Caches
)

// String returns a string representation of the SpecialDirectory.
func (d SpecialDirectory) String() string {
	switch d {
	case Home:
		return "home"
	case Current:
		return "current"
	case Temporary:
		return "temporary"
	case Documents:
		return "documents"
	case Library:
		return "library"
	case Caches:
		return "caches"
	default:
		return "unknown"
	}
}

// Backend is the full capability consumed by file and folder handles.
//
// Implementations must be comparable (typically a pointer), since handle
// equality is defined as equal paths under the same backend value.
type Backend interface {
	ReadBackend
	WriteBackend
	ManageBackend
	DirectoryBackend

	// Type returns the underlying storage type.
	Type() Type
}

// ReadBackend defines read-only operations.
type ReadBackend interface {
	// Exists reports what, if anything, lives at path. A missing entry is
	// KindAbsent with a nil error; an error means existence could not be
	// determined.
	Exists(path string) (Kind, error)

	// ListChildren returns the direct children of the directory at path.
	// The order is whatever the storage provides; callers must not assume
	// it is sorted.
	ListChildren(path string) ([]Entry, error)

	// ReadBytes returns the full contents of the file at path.
	ReadBytes(path string) ([]byte, error)

	// ModificationTime returns the last modification time of path.
	ModificationTime(path string) (time.Time, error)
}

// WriteBackend defines operations that create entries or change contents.
type WriteBackend interface {
	// Create makes a new entry of the given kind. The parent directory must
	// already exist. It fails with ErrExist if anything is already at path.
	// contents is ignored for directories.
	Create(path string, kind Kind, contents []byte) error

	// WriteBytes replaces the contents of the file at path, creating it if
	// needed.
	WriteBytes(path string, data []byte) error

	// AppendBytes appends data to the file at path. The file is opened and
	// closed within the call, whether or not the write succeeds.
	AppendBytes(path string, data []byte) error
}

// ManageBackend defines operations that rearrange the tree.
type ManageBackend interface {
	// Remove deletes the entry at path, recursively for directories.
	// It fails with ErrNotExist if nothing is there.
	Remove(path string) error

	// Move renames from to to. It fails with ErrExist if to is taken.
	Move(from, to string) error

	// Copy duplicates from at to, recursively for directories. It fails
	// with ErrExist if to is taken.
	Copy(from, to string) error
}

// DirectoryBackend resolves well-known directories.
type DirectoryBackend interface {
	// SpecialDirectory returns the absolute path of dir. It fails with
	// ErrUnsupported when the backend has no such directory.
	SpecialDirectory(dir SpecialDirectory) (string, error)
}
