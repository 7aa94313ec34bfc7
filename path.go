package files

import (
	"fmt"
	"path"
	"strings"

	"github.com/peterkovacs/files/backend"
)

// Separator is the path separator used by canonical paths.
const Separator = "/"

// Resolver turns user supplied path strings into canonical absolute paths.
// The home and working directories come from the backend, so resolution is
// consistent with the tree the handles operate on.
type Resolver struct {
	dirs backend.DirectoryBackend
}

// NewResolver returns a Resolver that takes "~" and "." from dirs.
func NewResolver(dirs backend.DirectoryBackend) Resolver {
	return Resolver{dirs: dirs}
}

// Resolve returns the absolute, cleaned form of raw without a trailing
// separator.
//
// A first segment of exactly "~" is replaced by the home directory. Other
// relative paths are resolved against relativeTo, or against the current
// directory when relativeTo is empty. An empty raw always resolves to the
// current directory, whatever relativeTo is.
func (r Resolver) Resolve(raw, relativeTo string) (string, error) {
	var base string
	switch {
	case raw == "~" || strings.HasPrefix(raw, "~"+Separator):
		home, err := r.dirs.SpecialDirectory(backend.Home)
		if err != nil {
			return "", fmt.Errorf("resolve %q: %w", raw, err)
		}
		base, raw = home, strings.TrimPrefix(raw, "~")
	case strings.HasPrefix(raw, Separator):
		base = Separator
	case raw != "" && relativeTo != "":
		base = relativeTo
	default:
		cwd, err := r.dirs.SpecialDirectory(backend.Current)
		if err != nil {
			return "", fmt.Errorf("resolve %q: %w", raw, err)
		}
		base = cwd
	}
	return Clean(base + Separator + raw), nil
}

// Clean collapses repeated separators and "." segments, applies ".."
// segments lexically and returns the result rooted at "/" without a trailing
// separator. ".." at the root stays at the root.
func Clean(p string) string {
	return path.Clean(Separator + p)
}

// Subpath returns the cleaned path of raw below the folder at parent. A single
// leading separator on raw is ignored, so "a/b" and "/a/b" name the same
// child.
func Subpath(parent, raw string) string {
	raw = strings.TrimPrefix(raw, Separator)
	return Clean(parent + Separator + raw)
}

// Canonical returns the canonical form of the absolute path p for an entry of
// the given kind: folders end with a separator, files do not.
func Canonical(p string, kind backend.Kind) string {
	p = Clean(p)
	if kind == backend.KindDirectory && p != Separator {
		return p + Separator
	}
	return p
}

// trim strips the trailing separator of a canonical folder path, giving the
// form backends expect.
func trim(p string) string {
	if p == Separator {
		return p
	}
	return strings.TrimSuffix(p, Separator)
}

// Name returns the last segment of p. The root has an empty name.
func Name(p string) string {
	p = trim(p)
	if p == Separator {
		return ""
	}
	return p[strings.LastIndex(p, Separator)+1:]
}

// Extension returns the text after the last "." in name. Names without a
// ".", names whose only "." comes first and names ending in "." have no
// extension.
func Extension(name string) (string, bool) {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return "", false
	}
	return name[i+1:], true
}

// NameExcludingExtension returns name without its extension and the "."
// before it.
func NameExcludingExtension(name string) string {
	ext, ok := Extension(name)
	if !ok {
		return name
	}
	return name[:len(name)-len(ext)-1]
}

// ParentPath returns the canonical folder path containing p. The root has no
// parent.
func ParentPath(p string) (string, bool) {
	p = trim(p)
	if p == Separator {
		return "", false
	}
	return Canonical(path.Dir(p), backend.KindDirectory), true
}

// IsHidden reports whether name denotes a hidden entry.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// RelativePath returns p relative to the folder at root. When p is not
// strictly below root it is returned unchanged.
func RelativePath(p, root string) string {
	if !strings.HasSuffix(root, Separator) {
		root += Separator
	}
	if len(p) > len(root) && strings.HasPrefix(p, root) {
		return p[len(root):]
	}
	return p
}
