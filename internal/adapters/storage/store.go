// Package storage persists the task list in a flat, pipe-delimited text file.
package storage

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/spaceman/internal/core/domain"
	"go.trai.ch/zerr"
)

// FileStore implements ports.TaskStore on a single text file that is
// rewritten in full on every save.
type FileStore struct {
	path string

	// digest of the content last read from or written to path
	digest    uint64
	hasDigest bool
}

// NewFileStore creates a store backed by the file at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: filepath.Clean(path)}
}

// Path returns the location of the task file.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and decodes the task file.
func (s *FileStore) Load() (*domain.TaskList, error) {
	//nolint:gosec // Path is cleaned and provided by trusted configuration
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrStoreNotFound, "no task file yet"), "path", s.path)
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", s.path)
	}

	list, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, zerr.With(err, "path", s.path)
	}

	s.remember(data)
	return list, nil
}

// Init creates the parent directory and an empty task file if it does not exist.
func (s *FileStore) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, err.Error()), "path", s.path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted configuration
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, err.Error()), "path", s.path)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, err.Error()), "path", s.path)
	}

	return nil
}

// Save encodes the whole list and atomically replaces the task file.
// Nothing is written when the encoded content matches what is already on disk.
func (s *FileStore) Save(list *domain.TaskList) error {
	data := Encode(list)
	if s.hasDigest && s.digest == xxhash.Sum64(data) {
		return nil
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}

	s.remember(data)
	return nil
}

func (s *FileStore) remember(data []byte) {
	s.digest = xxhash.Sum64(data)
	s.hasDigest = true
}

// writeFileAtomic writes to a temporary file in the target directory and
// renames it over path, so a crash leaves either the old or the new content.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true

	return syncDir(dir)
}

func syncDir(dir string) error {
	//nolint:gosec // Directory of the trusted task file
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer func() { _ = d.Close() }()
	return d.Sync()
}
