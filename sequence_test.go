package files

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkovacs/files/backend"
)

// newTree creates:
//
//	1/File1
//	1/1A/File1A
//	1/1B/File1B
//	2/File2
//	2/2A/File2A
//	2/2B/File2B
func newTree(t *testing.T) *Folder {
	t.Helper()
	folder := newTestFolder(t)
	for _, top := range []string{"1", "2"} {
		mustCreateFile(t, folder, top+"/File"+top, "")
		for _, sub := range []string{"A", "B"} {
			mustCreateFile(t, folder, top+"/"+top+sub+"/File"+top+sub, "")
		}
	}
	return folder
}

func TestSequence_RecursiveFileOrder(t *testing.T) {
	folder := newTree(t)

	names, err := folder.Files().Recursive().Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"File1", "File1A", "File1B", "File2", "File2A", "File2B"}, names)

	shallow, err := folder.Files().Count()
	require.NoError(t, err)
	assert.Zero(t, shallow)
}

func TestSequence_RecursiveFolderOrder(t *testing.T) {
	folder := newTree(t)

	names, err := folder.Subfolders().Recursive().Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "1A", "1B", "2", "2A", "2B"}, names)

	shallow, err := folder.Subfolders().Names()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "2"}, shallow)
}

func TestSequence_Hidden(t *testing.T) {
	folder := newTestFolder(t)
	mustCreateFile(t, folder, "A", "")
	mustCreateFile(t, folder, ".B", "")

	count, err := folder.Files().Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = folder.Files().IncludingHidden().Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSequence_HiddenFoldersNotDescended(t *testing.T) {
	folder := newTestFolder(t)
	mustCreateFile(t, folder, ".git/config", "")
	mustCreateFile(t, folder, "src/main.go", "")
	mustCreateFile(t, folder, "src/.env", "")

	names, err := folder.Files().Recursive().Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go"}, names)

	names, err = folder.Files().Recursive().IncludingHidden().Names()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"config", "main.go", ".env"}, names)

	folders, err := folder.Subfolders().Recursive().Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"src"}, folders)
}

func TestSequence_RenameDuringRecursiveIteration(t *testing.T) {
	folder := newTree(t)
	sequence := folder.Subfolders().Recursive()

	count := 0
	for sub, err := range sequence.All() {
		require.NoError(t, err)
		require.NoError(t, sub.Rename("Folder "+sub.Name()))
		count++
	}
	assert.Equal(t, 6, count)

	names, err := sequence.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Folder 1", "Folder 1A", "Folder 1B",
		"Folder 2", "Folder 2A", "Folder 2B",
	}, names)

	files, err := folder.Files().Recursive().Count()
	require.NoError(t, err)
	assert.Equal(t, 6, files)
}

func TestSequence_ReflectsChangesBetweenConsumptions(t *testing.T) {
	folder := newTestFolder(t)
	files := folder.Files()

	count, err := files.Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	mustCreateFile(t, folder, "late.txt", "")
	count, err = files.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSequence_Modifiers(t *testing.T) {
	folder := newTestFolder(t)
	base := folder.Files()
	modified := base.Recursive().IncludingHidden()

	assert.False(t, base.IsRecursive())
	assert.False(t, base.IncludesHidden())
	assert.True(t, modified.IsRecursive())
	assert.True(t, modified.IncludesHidden())
}

func TestSequence_FirstLastCollect(t *testing.T) {
	folder := newTestFolder(t)

	first, err := folder.Files().First()
	require.NoError(t, err)
	assert.Nil(t, first)
	last, err := folder.Files().Last()
	require.NoError(t, err)
	assert.Nil(t, last)

	mustCreateFile(t, folder, "a", "")
	mustCreateFile(t, folder, "b", "")
	mustCreateFile(t, folder, "c", "")

	all, err := folder.Files().Collect()
	require.NoError(t, err)
	require.Len(t, all, 3)

	first, err = folder.Files().First()
	require.NoError(t, err)
	assert.True(t, first.Equal(all[0]))

	last, err = folder.Files().Last()
	require.NoError(t, err)
	assert.True(t, last.Equal(all[2]))

	for _, f := range all {
		assert.Equal(t, backend.KindFile, f.Kind())
		assert.True(t, folder.Contains(f))
	}
}

func TestSequence_EarlyBreak(t *testing.T) {
	folder := newTree(t)

	var seen []string
	for file, err := range folder.Files().Recursive().All() {
		require.NoError(t, err)
		seen = append(seen, file.Name())
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"File1", "File1A"}, seen)
}

func TestSequence_Move(t *testing.T) {
	folder := newTree(t)
	dest := mustCreateSubfolder(t, folder, "dest")

	one, err := folder.Subfolder("1")
	require.NoError(t, err)
	require.NoError(t, one.Files().Recursive().Move(dest))

	names, err := dest.Files().Names()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"File1", "File1A", "File1B"}, names)

	left, err := one.Files().Recursive().Count()
	require.NoError(t, err)
	assert.Zero(t, left)
}

func TestSequence_MoveIntoWalkedTree(t *testing.T) {
	folder := newTestFolder(t)
	mustCreateFile(t, folder, "a", "")
	mustCreateFile(t, folder, "b", "")
	mustCreateFile(t, folder, "sub/c", "")
	dest := mustCreateSubfolder(t, folder, "dest")

	require.NoError(t, folder.Files().Recursive().Move(dest))

	names, err := dest.Files().Names()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, names)
	assert.True(t, folder.ContainsSubfolder("sub"))
	assert.False(t, folder.ContainsFile("sub/c"))

	require.NoError(t, folder.Subfolders().Move(dest))
	assert.True(t, dest.ContainsSubfolder("sub"))
	assert.True(t, folder.ContainsSubfolder("dest"))
}

func TestSequence_MoveStopsAtFirstFailure(t *testing.T) {
	folder := newTestFolder(t)
	src := mustCreateSubfolder(t, folder, "src")
	dest := mustCreateSubfolder(t, folder, "dest")
	mustCreateFile(t, src, "a", "")
	mustCreateFile(t, src, "b", "")
	mustCreateFile(t, src, "c", "")
	mustCreateFile(t, dest, "b", "")

	err := src.Files().Move(dest)
	assert.Equal(t, ReasonAlreadyExists, ReasonOf(err))
	assert.True(t, dest.ContainsFile("a"))
	assert.True(t, src.ContainsFile("b"))
	assert.True(t, src.ContainsFile("c"))
}

func TestSequence_Matching(t *testing.T) {
	folder := newTestFolder(t)
	mustCreateFile(t, folder, "README.md", "")
	mustCreateFile(t, folder, "main.go", "")
	mustCreateFile(t, folder, "pkg/util.go", "")
	mustCreateFile(t, folder, "pkg/util_test.go", "")
	mustCreateFile(t, folder, "pkg/testdata/input.json", "")

	names, err := folder.Files().Recursive().Matching("*.go").Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go"}, names)

	names, err = folder.Files().Recursive().Matching("**/*.go").Names()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"main.go", "util.go", "util_test.go"}, names)

	names, err = folder.Files().Recursive().Matching("**/testdata/*.json").Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"input.json"}, names)

	folders, err := folder.Subfolders().Recursive().Matching("pkg/*").Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"testdata"}, folders)

	_, err = folder.Files().Matching("[").Count()
	assert.Equal(t, ReasonReadFailed, ReasonOf(err))
}
