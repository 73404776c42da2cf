package tokenstore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/fantavoti/pkg/domain/interfaces"
	"github.com/m-mizutani/fantavoti/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultPath is the token file used when none is configured
const DefaultPath = "cookie.txt"

type fileStore struct {
	path string
}

// NewFile creates a TokenStore backed by a plain text file. The file holds
// the raw Cookie header value, so a cookie copied from a browser works too.
func NewFile(path string) interfaces.TokenStore {
	return &fileStore{path: path}
}

func (s *fileStore) Load(ctx context.Context) (model.AuthToken, bool, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, goerr.Wrap(err, "failed to read token file", goerr.V("path", s.path))
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", false, nil
	}
	return model.AuthToken(token), true, nil
}

func (s *fileStore) Save(ctx context.Context, token model.AuthToken) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return goerr.Wrap(err, "failed to create token directory", goerr.V("dir", dir))
		}
	}
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return goerr.Wrap(err, "failed to write token file", goerr.V("path", s.path))
	}
	return nil
}

func (s *fileStore) Delete(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return goerr.Wrap(err, "failed to remove token file", goerr.V("path", s.path))
	}
	return nil
}
