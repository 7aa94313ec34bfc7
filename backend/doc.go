// Package backend defines the capability the files module uses to touch a
// real filesystem.
//
// Handles in the files package never call the operating system directly.
// Every existence check, listing, read, write, move or removal goes through
// a Backend, which makes it possible to run the same handle code against
// the local disk, an in-memory tree in tests, or a tree rooted somewhere
// other than "/".
//
// # Interface Hierarchy
//
// Backend is composed of four small interfaces:
//
//   - ReadBackend: Exists, ListChildren, ReadBytes, ModificationTime
//   - WriteBackend: Create, WriteBytes, AppendBytes
//   - ManageBackend: Remove, Move, Copy
//   - DirectoryBackend: SpecialDirectory
//
// # Paths
//
// All paths passed to a Backend are absolute, use "/" as separator and carry
// no trailing separator (except the root itself). Path normalization is the
// caller's job; backends do not expand "~" or resolve relative paths.
//
// # Errors
//
// Backends report failures with errors that match the sentinels re-exported
// here (ErrNotExist, ErrExist, ErrPermission, ...) through errors.Is, usually
// wrapped in *fs.PathError.
//
// # Implementations
//
//   - github.com/peterkovacs/files/backend/billy - go-billy local and in-memory backends
//
// The backendtest package contains a conformance suite implementations
// should pass.
package backend
