package backendtest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peterkovacs/files/backend"
)

// TestWrite tests Create, WriteBytes and AppendBytes.
func TestWrite(t *testing.T, b backend.Backend, root string) {
	t.Run("CreateFile", func(t *testing.T) {
		p := join(root, "created.txt")
		require.NoError(t, b.Create(p, backend.KindFile, []byte("contents")))

		data, err := b.ReadBytes(p)
		require.NoError(t, err)
		require.Equal(t, "contents", string(data))
	})

	t.Run("CreateEmptyFile", func(t *testing.T) {
		p := join(root, "empty.txt")
		require.NoError(t, b.Create(p, backend.KindFile, nil))

		data, err := b.ReadBytes(p)
		require.NoError(t, err)
		require.Empty(t, data)
	})

	t.Run("CreateDirectory", func(t *testing.T) {
		p := join(root, "created-dir")
		require.NoError(t, b.Create(p, backend.KindDirectory, nil))
		requireKind(t, b, p, backend.KindDirectory)
	})

	t.Run("CreateIsStrict", func(t *testing.T) {
		p := join(root, "strict.txt")
		mkfile(t, b, p, "original")

		err := b.Create(p, backend.KindFile, []byte("replacement"))
		require.True(t, errors.Is(err, backend.ErrExist), "got %v", err)

		err = b.Create(p, backend.KindDirectory, nil)
		require.True(t, errors.Is(err, backend.ErrExist), "got %v", err)

		data, err := b.ReadBytes(p)
		require.NoError(t, err)
		require.Equal(t, "original", string(data))
	})

	t.Run("CreateWithoutParent", func(t *testing.T) {
		err := b.Create(join(root, "no", "parent.txt"), backend.KindFile, nil)
		require.True(t, errors.Is(err, backend.ErrNotExist), "got %v", err)
		requireKind(t, b, join(root, "no"), backend.KindAbsent)
	})

	t.Run("WriteBytesOverwrites", func(t *testing.T) {
		p := join(root, "overwrite.txt")
		mkfile(t, b, p, "a much longer original")

		require.NoError(t, b.WriteBytes(p, []byte("short")))

		data, err := b.ReadBytes(p)
		require.NoError(t, err)
		require.Equal(t, "short", string(data))
	})

	t.Run("WriteBytesDirectory", func(t *testing.T) {
		p := join(root, "write-dir")
		mkdir(t, b, p)
		require.Error(t, b.WriteBytes(p, []byte("x")))
	})

	t.Run("AppendBytes", func(t *testing.T) {
		p := join(root, "append.txt")
		mkfile(t, b, p, "one")

		require.NoError(t, b.AppendBytes(p, []byte(" two")))
		require.NoError(t, b.AppendBytes(p, []byte(" three")))

		data, err := b.ReadBytes(p)
		require.NoError(t, err)
		require.Equal(t, "one two three", string(data))
	})

	t.Run("AppendBytesMissing", func(t *testing.T) {
		p := join(root, "append-missing.txt")
		err := b.AppendBytes(p, []byte("x"))
		require.True(t, errors.Is(err, backend.ErrNotExist), "got %v", err)
		requireKind(t, b, p, backend.KindAbsent)
	})
}
