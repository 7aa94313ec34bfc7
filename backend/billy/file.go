package billy

import (
	"errors"
	"os"

	"github.com/go-git/go-billy/v5"
)

// withFile opens name with flag, runs fn and always closes the file. Write
// access is synced before closing when the underlying file supports it
// (osfs does, memfs does not). A close or sync failure is joined into the
// returned error.
func withFile(bfs billy.Basic, name string, flag int, fn func(billy.File) error) (err error) {
	f, err := bfs.OpenFile(name, flag, filePerm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	if err := fn(f); err != nil {
		return err
	}

	if flag&(os.O_WRONLY|os.O_RDWR) != 0 {
		if syncer, ok := f.(interface{ Sync() error }); ok {
			return syncer.Sync()
		}
	}
	return nil
}
