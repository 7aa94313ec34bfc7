package backendtest

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/peterkovacs/files/backend"
)

// TestRead tests Exists, ListChildren, ReadBytes and ModificationTime.
func TestRead(t *testing.T, b backend.Backend, root string) {
	t.Run("ExistsKinds", func(t *testing.T) {
		dir := join(root, "exists")
		mkdir(t, b, dir)
		mkfile(t, b, join(dir, "file.txt"), "x")

		requireKind(t, b, dir, backend.KindDirectory)
		requireKind(t, b, join(dir, "file.txt"), backend.KindFile)
		requireKind(t, b, join(dir, "missing"), backend.KindAbsent)
		requireKind(t, b, "/", backend.KindDirectory)
	})

	t.Run("ListChildren", func(t *testing.T) {
		dir := join(root, "list")
		mkdir(t, b, dir)
		mkfile(t, b, join(dir, "b.txt"), "")
		mkfile(t, b, join(dir, ".hidden"), "")
		mkdir(t, b, join(dir, "a"))

		entries, err := b.ListChildren(dir)
		require.NoError(t, err)
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
		require.Equal(t, []backend.Entry{
			{Name: ".hidden", Kind: backend.KindFile},
			{Name: "a", Kind: backend.KindDirectory},
			{Name: "b.txt", Kind: backend.KindFile},
		}, entries)
	})

	t.Run("ListChildrenEmpty", func(t *testing.T) {
		dir := join(root, "empty")
		mkdir(t, b, dir)

		entries, err := b.ListChildren(dir)
		require.NoError(t, err)
		require.Empty(t, entries)
	})

	t.Run("ListChildrenMissing", func(t *testing.T) {
		_, err := b.ListChildren(join(root, "nope"))
		require.True(t, errors.Is(err, backend.ErrNotExist), "got %v", err)
	})

	t.Run("ListChildrenOfFile", func(t *testing.T) {
		p := join(root, "notadir.txt")
		mkfile(t, b, p, "")

		_, err := b.ListChildren(p)
		require.Error(t, err)
	})

	t.Run("ReadBytes", func(t *testing.T) {
		p := join(root, "read.txt")
		mkfile(t, b, p, "hello")

		data, err := b.ReadBytes(p)
		require.NoError(t, err)
		require.Equal(t, []byte("hello"), data)
	})

	t.Run("ReadBytesMissing", func(t *testing.T) {
		_, err := b.ReadBytes(join(root, "missing.txt"))
		require.True(t, errors.Is(err, backend.ErrNotExist), "got %v", err)
	})

	t.Run("ReadBytesDirectory", func(t *testing.T) {
		dir := join(root, "readdir")
		mkdir(t, b, dir)

		_, err := b.ReadBytes(dir)
		require.Error(t, err)
	})

	t.Run("ModificationTime", func(t *testing.T) {
		p := join(root, "mtime.txt")
		before := time.Now().Add(-time.Minute)
		mkfile(t, b, p, "x")

		mtime, err := b.ModificationTime(p)
		require.NoError(t, err)
		require.True(t, mtime.After(before), "mtime %v should be after %v", mtime, before)

		_, err = b.ModificationTime(join(root, "missing"))
		require.Error(t, err)
	})

	t.Run("RelativePathRejected", func(t *testing.T) {
		_, err := b.ReadBytes("relative/path.txt")
		require.Error(t, err)
	})
}
