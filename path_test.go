package files

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkovacs/files/backend"
	"github.com/peterkovacs/files/backend/billy"
)

func TestResolver_Resolve(t *testing.T) {
	mem := billy.NewMemory(
		billy.WithSpecialDirectory(backend.Home, "/users/me"),
		billy.WithSpecialDirectory(backend.Current, "/work"),
	)
	r := NewResolver(mem)

	tests := []struct {
		name       string
		raw        string
		relativeTo string
		want       string
	}{
		{"absolute", "/a/b", "", "/a/b"},
		{"trailing separator", "/a/b/", "", "/a/b"},
		{"repeated separators", "/a//b///c", "", "/a/b/c"},
		{"dot segments", "/a/./b/.", "", "/a/b"},
		{"parent segments", "/a/b/../c", "", "/a/c"},
		{"parent above root", "/../../a", "", "/a"},
		{"home", "~", "", "/users/me"},
		{"home child", "~/docs/notes.txt", "", "/users/me/docs/notes.txt"},
		{"home parent", "~/../other", "", "/users/other"},
		{"tilde prefix is not home", "~other/x", "", "/work/~other/x"},
		{"tilde later is literal", "a/~/b", "", "/work/a/~/b"},
		{"relative to current", "a/b", "", "/work/a/b"},
		{"relative to base", "a/b", "/base", "/base/a/b"},
		{"relative parent", "../x", "/base/sub", "/base/x"},
		{"empty is current", "", "", "/work"},
		{"empty ignores base", "", "/base", "/work"},
		{"dot is current", ".", "", "/work"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.raw, tt.relativeTo)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_MissingSpecialDirectory(t *testing.T) {
	r := NewResolver(billy.New(nil, backend.TypeMemory))

	_, err := r.Resolve("~/x", "")
	require.ErrorIs(t, err, backend.ErrUnsupported)

	_, err = r.Resolve("x", "")
	require.ErrorIs(t, err, backend.ErrUnsupported)

	got, err := r.Resolve("/x", "")
	require.NoError(t, err)
	assert.Equal(t, "/x", got)
}

func TestClean(t *testing.T) {
	assert.Equal(t, "/", Clean(""))
	assert.Equal(t, "/", Clean("/"))
	assert.Equal(t, "/", Clean("/.."))
	assert.Equal(t, "/a", Clean("a"))
	assert.Equal(t, "/a/b", Clean("//a/./b/"))
}

func TestSubpath(t *testing.T) {
	assert.Equal(t, "/root/a/b/c.txt", Subpath("/root/", "a/b/c.txt"))
	assert.Equal(t, "/root/a/b/c.txt", Subpath("/root/", "/a/b/c.txt"))
	assert.Equal(t, "/root/a", Subpath("/root/", "a/"))
	assert.Equal(t, "/a", Subpath("/", "a"))
	assert.Equal(t, "/other", Subpath("/root/", "../other"))
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "/a/b/", Canonical("/a/b", backend.KindDirectory))
	assert.Equal(t, "/a/b/", Canonical("/a/b/", backend.KindDirectory))
	assert.Equal(t, "/", Canonical("/", backend.KindDirectory))
	assert.Equal(t, "/a/b", Canonical("/a/b/", backend.KindFile))
}

func TestName(t *testing.T) {
	assert.Equal(t, "c.txt", Name("/a/b/c.txt"))
	assert.Equal(t, "b", Name("/a/b/"))
	assert.Equal(t, "a", Name("/a"))
	assert.Equal(t, "", Name("/"))
}

func TestExtension(t *testing.T) {
	tests := []struct {
		name    string
		ext     string
		ok      bool
		without string
	}{
		{"file.txt", "txt", true, "file"},
		{"archive.tar.gz", "gz", true, "archive.tar"},
		{".hidden.json", "json", true, ".hidden"},
		{".bashrc", "", false, ".bashrc"},
		{"Makefile", "", false, "Makefile"},
		{"trailing.", "", false, "trailing."},
		{"", "", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, ok := Extension(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.ext, ext)
			assert.Equal(t, tt.without, NameExcludingExtension(tt.name))
		})
	}
}

func TestParentPath(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"/a/b/c.txt", "/a/b/", true},
		{"/a/b/", "/a/", true},
		{"/a", "/", true},
		{"/", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := ParentPath(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden(".git"))
	assert.True(t, IsHidden(".hidden.txt"))
	assert.False(t, IsHidden("visible"))
	assert.False(t, IsHidden("a.b"))
}

func TestRelativePath(t *testing.T) {
	assert.Equal(t, "b/c.txt", RelativePath("/a/b/c.txt", "/a/"))
	assert.Equal(t, "b/c.txt", RelativePath("/a/b/c.txt", "/a"))
	assert.Equal(t, "b/", RelativePath("/a/b/", "/a/"))
	assert.Equal(t, "/x/y.txt", RelativePath("/x/y.txt", "/a/"))
	assert.Equal(t, "/ab/c", RelativePath("/ab/c", "/a/"))
	assert.Equal(t, "/a/", RelativePath("/a/", "/a/"))
	assert.Equal(t, "a/b", RelativePath("/a/b", "/"))
}
