package backendtest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peterkovacs/files/backend"
)

// TestManage tests Remove, Move and Copy.
func TestManage(t *testing.T, b backend.Backend, root string) {
	t.Run("RemoveFile", func(t *testing.T) {
		p := join(root, "remove.txt")
		mkfile(t, b, p, "")

		require.NoError(t, b.Remove(p))
		requireKind(t, b, p, backend.KindAbsent)
	})

	t.Run("RemoveTree", func(t *testing.T) {
		dir := join(root, "tree")
		mkdir(t, b, dir)
		mkdir(t, b, join(dir, "sub"))
		mkfile(t, b, join(dir, "sub", "deep.txt"), "")
		mkfile(t, b, join(dir, ".hidden"), "")

		require.NoError(t, b.Remove(dir))
		requireKind(t, b, dir, backend.KindAbsent)
	})

	t.Run("RemoveMissing", func(t *testing.T) {
		err := b.Remove(join(root, "never-existed"))
		require.True(t, errors.Is(err, backend.ErrNotExist), "got %v", err)
	})

	t.Run("MoveFile", func(t *testing.T) {
		from := join(root, "move-from.txt")
		to := join(root, "move-to.txt")
		mkfile(t, b, from, "moved")

		require.NoError(t, b.Move(from, to))
		requireKind(t, b, from, backend.KindAbsent)

		data, err := b.ReadBytes(to)
		require.NoError(t, err)
		require.Equal(t, "moved", string(data))
	})

	t.Run("MoveDirectory", func(t *testing.T) {
		from := join(root, "dir-from")
		to := join(root, "dir-to")
		mkdir(t, b, from)
		mkfile(t, b, join(from, "child.txt"), "child")

		require.NoError(t, b.Move(from, to))
		requireKind(t, b, from, backend.KindAbsent)
		requireKind(t, b, join(to, "child.txt"), backend.KindFile)
	})

	t.Run("MoveCollision", func(t *testing.T) {
		from := join(root, "collide-a.txt")
		to := join(root, "collide-b.txt")
		mkfile(t, b, from, "a")
		mkfile(t, b, to, "b")

		err := b.Move(from, to)
		require.True(t, errors.Is(err, backend.ErrExist), "got %v", err)

		data, err := b.ReadBytes(to)
		require.NoError(t, err)
		require.Equal(t, "b", string(data))
	})

	t.Run("MoveIntoItself", func(t *testing.T) {
		dir := join(root, "self")
		mkdir(t, b, dir)
		require.Error(t, b.Move(dir, join(dir, "inner")))
		requireKind(t, b, dir, backend.KindDirectory)
	})

	t.Run("MoveMissing", func(t *testing.T) {
		err := b.Move(join(root, "ghost"), join(root, "ghost2"))
		require.True(t, errors.Is(err, backend.ErrNotExist), "got %v", err)
	})

	t.Run("CopyFile", func(t *testing.T) {
		from := join(root, "copy-from.txt")
		to := join(root, "copy-to.txt")
		mkfile(t, b, from, "copied")

		require.NoError(t, b.Copy(from, to))

		for _, p := range []string{from, to} {
			data, err := b.ReadBytes(p)
			require.NoError(t, err)
			require.Equal(t, "copied", string(data))
		}
	})

	t.Run("CopyTree", func(t *testing.T) {
		from := join(root, "copy-tree")
		to := join(root, "copy-tree-2")
		mkdir(t, b, from)
		mkdir(t, b, join(from, "a"))
		mkfile(t, b, join(from, "a", "b.txt"), "b")

		require.NoError(t, b.Copy(from, to))
		requireKind(t, b, join(from, "a", "b.txt"), backend.KindFile)

		data, err := b.ReadBytes(join(to, "a", "b.txt"))
		require.NoError(t, err)
		require.Equal(t, "b", string(data))
	})

	t.Run("CopyCollision", func(t *testing.T) {
		from := join(root, "copy-collide-a")
		to := join(root, "copy-collide-b")
		mkdir(t, b, from)
		mkdir(t, b, to)

		err := b.Copy(from, to)
		require.True(t, errors.Is(err, backend.ErrExist), "got %v", err)
	})

	t.Run("CopyIntoItself", func(t *testing.T) {
		dir := join(root, "copy-self")
		mkdir(t, b, dir)
		require.Error(t, b.Copy(dir, join(dir, "inner")))
	})
}
