package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileBackend stores the collection as a single JSON file named after the
// storage key inside a data directory. Writes go through a temp file and a
// rename so an interrupted write never truncates the durable copy.
type FileBackend struct {
	fs   afero.Fs
	path string
}

// NewFileBackend creates a backend rooted at dir on the given filesystem.
// Pass afero.NewOsFs() outside of tests.
func NewFileBackend(fs afero.Fs, dir string) (*FileBackend, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileBackend{
		fs:   fs,
		path: filepath.Join(dir, Key+".json"),
	}, nil
}

// Path returns the location of the data file.
func (b *FileBackend) Path() string { return b.path }

func (b *FileBackend) Load(_ context.Context) ([]byte, error) {
	data, err := afero.ReadFile(b.fs, b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", b.path, err)
	}
	return data, nil
}

func (b *FileBackend) Save(_ context.Context, data []byte) error {
	tmp := b.path + ".tmp"
	if err := afero.WriteFile(b.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := b.fs.Rename(tmp, b.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
