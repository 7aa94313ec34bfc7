package backendtest

import (
	"errors"
	"path"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peterkovacs/files/backend"
)

// TestDirectory tests SpecialDirectory. Every directory the backend reports
// must be absolute and exist; unsupported directories must fail with
// ErrUnsupported.
func TestDirectory(t *testing.T, b backend.Backend) {
	dirs := []backend.SpecialDirectory{
		backend.Home,
		backend.Current,
		backend.Temporary,
		backend.Documents,
		backend.Library,
		backend.Caches,
	}

	for _, dir := range dirs {
		t.Run(dir.String(), func(t *testing.T) {
			p, err := b.SpecialDirectory(dir)
			if err != nil {
				require.True(t, errors.Is(err, backend.ErrUnsupported), "got %v", err)
				return
			}
			require.True(t, path.IsAbs(p), "%s directory %q is not absolute", dir, p)
			if dir == backend.Home || dir == backend.Current || dir == backend.Temporary {
				requireKind(t, b, p, backend.KindDirectory)
			}
		})
	}
}
