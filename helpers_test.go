package files

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peterkovacs/files/backend/billy"
)

// newTestFolder returns an empty folder at /home/test in a fresh memory
// backend.
func newTestFolder(t *testing.T) *Folder {
	t.Helper()
	home, err := Home(WithBackend(billy.NewMemory()))
	require.NoError(t, err)
	folder, err := home.CreateSubfolder("test")
	require.NoError(t, err)
	return folder
}

func mustCreateFile(t *testing.T, folder *Folder, p, contents string) *File {
	t.Helper()
	file, err := folder.CreateFile(p, []byte(contents))
	require.NoError(t, err)
	return file
}

func mustCreateSubfolder(t *testing.T, folder *Folder, p string) *Folder {
	t.Helper()
	sub, err := folder.CreateSubfolder(p)
	require.NoError(t, err)
	return sub
}
