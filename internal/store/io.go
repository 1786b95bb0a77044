package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// maxKeyFileSize bounds key file reads; every supported layout is well under 4 KiB.
const maxKeyFileSize = 64 << 10

var errKeyFileTooLarge = errors.New("key file too large")

// readKeyFile returns the contents of a key file. A missing file keeps
// os.ErrNotExist in its chain.
func readKeyFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := io.ReadAll(io.LimitReader(f, maxKeyFileSize+1))
	if err != nil {
		return nil, err
	}
	if len(b) > maxKeyFileSize {
		return nil, fmt.Errorf("%s: %w", path, errKeyFileTooLarge)
	}
	return b, nil
}

// writeKeyFile stages b next to path, syncs it and renames it into place so
// a reader never observes a half-written key.
func writeKeyFile(path string, b []byte, mode os.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	staged := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(staged)
		}
	}()

	if err = f.Chmod(mode); err != nil {
		return err
	}
	if _, err = f.Write(b); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(staged, path)
}
