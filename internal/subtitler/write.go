package subtitler

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// writeAtomic writes content to a temporary file next to path and renames it over path,
// so readers never observe a partially written subtitle.
func writeAtomic(fs afero.Fs, path string, content []byte) error {
	tmp, err := afero.TempFile(fs, filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	fail := func(err error) error {
		_ = tmp.Close()
		_ = fs.Remove(tmpName)
		return err
	}

	if _, err := tmp.Write(content); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		return fail(err)
	}
	if err := fs.Chmod(tmpName, 0o644); err != nil {
		return fail(err)
	}
	if err := fs.Rename(tmpName, path); err != nil {
		return fail(err)
	}
	return nil
}
