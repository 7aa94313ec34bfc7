package files

import (
	"fmt"
	"iter"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/peterkovacs/files/backend"
)

// Sequence describes an enumeration of the files or folders below a folder.
// It holds no results: every consumption lists the backend again, so changes
// made between consumptions are visible.
//
// Children of a folder are visited in the order the backend lists them. In
// recursive mode a folder's own files come first, then each subfolder is
// yielded and its subtree walked before moving on to the next subfolder.
// Hidden folders are neither yielded nor descended into unless hidden entries
// are included.
//
// The walk descends through the same *Folder handles it yields, so renaming
// or moving a yielded folder during iteration does not derail it.
type Sequence[T Location] struct {
	root      *Folder
	kind      backend.Kind
	recursive bool
	hidden    bool
	pattern   string
	// skip is a folder that is neither yielded nor descended into.
	skip *Key
}

// FileSequence enumerates files.
type FileSequence = Sequence[*File]

// FolderSequence enumerates folders.
type FolderSequence = Sequence[*Folder]

func newSequence[T Location](root *Folder, kind backend.Kind) Sequence[T] {
	return Sequence[T]{root: root, kind: kind}
}

// Recursive returns a copy of s that also enumerates every descendant.
func (s Sequence[T]) Recursive() Sequence[T] {
	s.recursive = true
	return s
}

// IncludingHidden returns a copy of s that also enumerates hidden entries.
func (s Sequence[T]) IncludingHidden() Sequence[T] {
	s.hidden = true
	return s
}

// Matching returns a copy of s that only yields entries whose path relative
// to the starting folder matches the doublestar pattern, for example
// "*.go" or "**/testdata/*.json". Folders still get descended into when they
// do not match.
func (s Sequence[T]) Matching(pattern string) Sequence[T] {
	s.pattern = pattern
	return s
}

// IsRecursive reports whether s enumerates descendants.
func (s Sequence[T]) IsRecursive() bool { return s.recursive }

// IncludesHidden reports whether s enumerates hidden entries.
func (s Sequence[T]) IncludesHidden() bool { return s.hidden }

// All yields every element of s. A listing failure is yielded once with a
// nil element and ends the walk.
func (s Sequence[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		if s.pattern != "" && !doublestar.ValidatePattern(s.pattern) {
			var zero T
			yield(zero, readError(s.root.path, ReasonReadFailed, fmt.Errorf("%w: %q", doublestar.ErrBadPattern, s.pattern)))
			return
		}
		s.walk(s.root, yield)
	}
}

// walk visits dir and reports whether the consumer wants more.
func (s Sequence[T]) walk(dir *Folder, yield func(T, error) bool) bool {
	entries, err := dir.backend.ListChildren(dir.backendPath())
	if err != nil {
		var zero T
		yield(zero, readError(dir.path, ReasonReadFailed, err))
		return false
	}

	var subfolders []*Folder
	for _, e := range entries {
		if !s.hidden && IsHidden(e.Name) {
			continue
		}
		if s.skip != nil && e.Kind == backend.KindDirectory &&
			*s.skip == (Key{Backend: dir.backend, Path: dir.path + e.Name + Separator}) {
			continue
		}
		switch e.Kind {
		case backend.KindFile:
			if s.kind != backend.KindFile {
				continue
			}
			if !s.emit(&File{dir.child(dir.path+e.Name, backend.KindFile)}, yield) {
				return false
			}
		case backend.KindDirectory:
			subfolders = append(subfolders, &Folder{dir.child(dir.path+e.Name, backend.KindDirectory)})
		}
	}

	for _, sub := range subfolders {
		if s.kind == backend.KindDirectory && !s.emit(sub, yield) {
			return false
		}
		if s.recursive && !s.walk(sub, yield) {
			return false
		}
	}
	return true
}

// emit yields loc if it passes the pattern filter.
func (s Sequence[T]) emit(loc Location, yield func(T, error) bool) bool {
	if s.pattern != "" {
		rel := trim(RelativePath(loc.Path(), s.root.path))
		// The pattern was validated in All.
		if ok, _ := doublestar.Match(s.pattern, rel); !ok {
			return true
		}
	}
	return yield(loc.(T), nil)
}

// Count returns the number of elements.
func (s Sequence[T]) Count() (int, error) {
	n := 0
	for _, err := range s.All() {
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Names returns the name of every element, in enumeration order.
func (s Sequence[T]) Names() ([]string, error) {
	var names []string
	for elem, err := range s.All() {
		if err != nil {
			return names, err
		}
		names = append(names, elem.Name())
	}
	return names, nil
}

// First returns the first element, or the zero value when s is empty.
func (s Sequence[T]) First() (T, error) {
	for elem, err := range s.All() {
		return elem, err
	}
	var zero T
	return zero, nil
}

// Last returns the last element, or the zero value when s is empty.
func (s Sequence[T]) Last() (T, error) {
	var last T
	for elem, err := range s.All() {
		if err != nil {
			var zero T
			return zero, err
		}
		last = elem
	}
	return last, nil
}

// Collect returns every element.
func (s Sequence[T]) Collect() ([]T, error) {
	var out []T
	for elem, err := range s.All() {
		if err != nil {
			return out, err
		}
		out = append(out, elem)
	}
	return out, nil
}

// Move moves every element into to, one at a time, stopping at the first
// failure. When to lies inside the walked tree it is skipped, so moved
// elements are not visited again.
func (s Sequence[T]) Move(to *Folder) error {
	if to == nil {
		return writeError(s.root.path, ReasonMoveFailed, backend.ErrInvalid)
	}
	key := to.Key()
	s.skip = &key
	for elem, err := range s.All() {
		if err != nil {
			return err
		}
		if err := elem.Move(to); err != nil {
			return err
		}
	}
	return nil
}
