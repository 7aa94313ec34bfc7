// Package backendtest provides a conformance suite for backend.Backend
// implementations.
//
// The suite checks the contract the files package relies on: kinds reported
// by Exists, strict Create, recursive Remove and Copy, collision checks on
// Move, append semantics and special directory lookup. Listing order is never
// asserted, since backends are free to return children in any order.
//
// Example usage:
//
//	func TestMyBackend(t *testing.T) {
//	    backendtest.TestSuite(t, func(t *testing.T) (backend.Backend, string) {
//	        b := mybackend.New()
//	        return b, "/scratch"
//	    })
//	}
package backendtest

import (
	"path"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peterkovacs/files/backend"
)

// Factory returns a fresh backend and the absolute path of an existing, empty
// directory in it that the tests may freely modify.
type Factory func(t *testing.T) (backend.Backend, string)

// TestSuite runs every conformance group with a fresh backend per group.
func TestSuite(t *testing.T, newBackend Factory) {
	t.Run("Read", func(t *testing.T) {
		b, root := newBackend(t)
		TestRead(t, b, root)
	})
	t.Run("Write", func(t *testing.T) {
		b, root := newBackend(t)
		TestWrite(t, b, root)
	})
	t.Run("Manage", func(t *testing.T) {
		b, root := newBackend(t)
		TestManage(t, b, root)
	})
	t.Run("Directory", func(t *testing.T) {
		b, _ := newBackend(t)
		TestDirectory(t, b)
	})
}

// mkdir creates a directory for test setup.
func mkdir(t *testing.T, b backend.Backend, p string) {
	t.Helper()
	require.NoError(t, b.Create(p, backend.KindDirectory, nil), "setup: Create(%s)", p)
}

// mkfile creates a file for test setup.
func mkfile(t *testing.T, b backend.Backend, p string, contents string) {
	t.Helper()
	require.NoError(t, b.Create(p, backend.KindFile, []byte(contents)), "setup: Create(%s)", p)
}

// requireKind asserts the kind of entry at p.
func requireKind(t *testing.T, b backend.Backend, p string, want backend.Kind) {
	t.Helper()
	got, err := b.Exists(p)
	require.NoError(t, err, "Exists(%s)", p)
	require.Equal(t, want, got, "Exists(%s)", p)
}

// join is path.Join for test paths.
func join(elem ...string) string {
	return path.Join(elem...)
}
