package store

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type LocalStore interface {
	Contains(name string) (bool, error)

	// Store writes content to name, replacing any existing file. It returns the
	// number of bytes written.
	Store(name string, content io.Reader) (int64, error)

	// Path returns the location name would be written to.
	Path(name string) string
}

// FileStore stores files in a directory on the local file system. Names may
// contain path separators; they are resolved relative to the directory.
type FileStore struct {
	dataDir string
}

// NewFileStore returns a store rooted at dataDir. An empty dataDir means the
// working directory.
func NewFileStore(dataDir string) *FileStore {
	return &FileStore{
		dataDir: dataDir,
	}
}

func (fs *FileStore) Path(name string) string {
	if fs.dataDir == "" {
		return name
	}
	return filepath.Join(fs.dataDir, name)
}

func (fs *FileStore) Contains(name string) (bool, error) {
	_, err := os.Stat(fs.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (fs *FileStore) Store(name string, content io.Reader) (int64, error) {
	filePath := fs.Path(name)

	file, err := os.Create(filePath)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to create %s", filePath)
	}

	n, err := io.Copy(file, content)
	if err != nil {
		file.Close()
		return n, errors.Wrapf(err, "failed to write %s", filePath)
	}

	if err := file.Close(); err != nil {
		return n, errors.Wrapf(err, "failed to close %s", filePath)
	}

	return n, nil
}
