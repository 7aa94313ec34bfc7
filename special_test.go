package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkovacs/files/backend"
	"github.com/peterkovacs/files/backend/billy"
)

func TestSpecialFolders_Memory(t *testing.T) {
	opt := WithBackend(billy.NewMemory())

	tests := []struct {
		name string
		fn   func(...Option) (*Folder, error)
		want string
	}{
		{"home", Home, "/home/"},
		{"current", Current, "/"},
		{"temporary", Temporary, "/tmp/"},
		{"documents", Documents, "/home/Documents/"},
		{"library", Library, "/home/Library/"},
		{"caches", Caches, "/home/Library/Caches/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folder, err := tt.fn(opt)
			require.NoError(t, err)
			assert.Equal(t, tt.want, folder.Path())
		})
	}
}

func TestSpecialFolder_Unsupported(t *testing.T) {
	mem := billy.New(nil, backend.TypeMemory)

	_, err := SpecialFolder(backend.Home, WithBackend(mem))
	assert.Equal(t, ReasonMissing, ReasonOf(err))
	assert.ErrorIs(t, err, backend.ErrUnsupported)
}

func TestSpecialFolder_Custom(t *testing.T) {
	mem := billy.NewMemory(billy.WithSpecialDirectory(backend.Current, "/work/project"))

	current, err := Current(WithBackend(mem))
	require.NoError(t, err)
	assert.Equal(t, "/work/project/", current.Path())

	_, err = current.CreateFile("notes.txt", []byte("x"))
	require.NoError(t, err)

	// Relative paths resolve against the backend's current directory.
	file, err := NewFile("notes.txt", WithBackend(mem))
	require.NoError(t, err)
	assert.Equal(t, "/work/project/notes.txt", file.Path())
}

func TestDefaultBackend_Local(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("local"), 0o644))

	folder, err := NewFolder(dir)
	require.NoError(t, err)
	assert.Equal(t, backend.TypeLocal, folder.Backend().Type())

	file, err := folder.File("a.txt")
	require.NoError(t, err)
	s, err := file.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "local", s)

	// Handles created without a backend share the same one.
	again, err := NewFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.True(t, again.Equal(file))
}
