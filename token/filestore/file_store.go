package filestore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	apperrors "github.com/jrsteele09/go-photo-session/internal/errors"
	"github.com/jrsteele09/go-photo-session/token"
	"github.com/pkg/errors"
)

var _ token.Store = (*FileStore)(nil)

// FileStore persists the token in a small JSON document of key -> value pairs,
// so other keys written by hand survive a Set.
type FileStore struct {
	path string
	key  string
	mu   sync.Mutex
}

func New(path, key string) *FileStore {
	if key == "" {
		key = token.DefaultKey
	}
	return &FileStore{path: path, key: key}
}

func (fs *FileStore) Get(_ context.Context) (string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	values, err := fs.read()
	if err != nil {
		return "", err
	}
	t, ok := values[fs.key]
	if !ok {
		return "", apperrors.ErrTokenNotFound
	}
	return t, nil
}

func (fs *FileStore) Set(_ context.Context, t string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	values, err := fs.read()
	if err != nil {
		return err
	}
	values[fs.key] = t
	return fs.write(values)
}

func (fs *FileStore) Delete(_ context.Context) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	values, err := fs.read()
	if err != nil {
		return err
	}
	if _, ok := values[fs.key]; !ok {
		return nil
	}
	delete(values, fs.key)
	return fs.write(values)
}

func (fs *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(fs.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "[FileStore] read %s", fs.path)
	}
	if len(data) == 0 {
		return map[string]string{}, nil
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrapf(err, "[FileStore] decode %s", fs.path)
	}
	return values, nil
}

// write replaces the file atomically via a temp file in the same directory
func (fs *FileStore) write(values map[string]string) error {
	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrapf(err, "[FileStore] create %s", dir)
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "[FileStore] encode")
	}

	tmp, err := os.CreateTemp(dir, ".token-*")
	if err != nil {
		return errors.Wrap(err, "[FileStore] create temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "[FileStore] write temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "[FileStore] close temp file")
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return errors.Wrap(err, "[FileStore] chmod temp file")
	}
	return errors.Wrapf(os.Rename(tmp.Name(), fs.path), "[FileStore] replace %s", fs.path)
}
