package files

import (
	"io/fs"
	"strings"

	"github.com/peterkovacs/files/logging"
)

// Import copies the tree below root in src into f, typically to seed a
// folder from an embed.FS or fstest.MapFS. Folders are merged; an existing
// file at a destination path fails with ReasonAlreadyExists. Use "." as root
// to import all of src. It stops at the first failure.
func (f *Folder) Import(src fs.FS, root string) error {
	err := fs.WalkDir(src, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return readError(p, ReasonReadFailed, err)
		}

		rel := p
		if root != "." && root != "" {
			rel = strings.TrimPrefix(strings.TrimPrefix(p, root), Separator)
		}
		if rel == "." || rel == "" {
			return nil
		}

		if d.IsDir() {
			_, err := f.CreateSubfolderIfNeeded(rel)
			return err
		}

		data, err := fs.ReadFile(src, p)
		if err != nil {
			return readError(p, ReasonReadFailed, err)
		}
		_, err = f.CreateFile(rel, data)
		return err
	})
	if err != nil {
		return err
	}
	f.logger.Debug("imported", logging.Path(f.path))
	return nil
}
