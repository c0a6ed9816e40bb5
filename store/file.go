package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/wealthnest/client-go/models"
)

// FileStore persists the token pair as a JSON file. The file holds only the
// two token strings and is written with owner-only permissions.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) (models.Token, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Token{}, ErrNoToken
		}
		return models.Token{}, err
	}

	var token models.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return models.Token{}, err
	}
	if token.Empty() {
		return models.Token{}, ErrNoToken
	}
	return token, nil
}

func (s *FileStore) Save(_ context.Context, token models.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileStore) Clear(_ context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
