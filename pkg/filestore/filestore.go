package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SavedFile describes a stored upload. Name is the generated disk name,
// URL is the public path clients use to reference the file.
type SavedFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

type Store interface {
	Save(fileName string, r io.Reader) (*SavedFile, error)
}

// LocalStore writes uploads to a directory served as static files. Files
// get a random name so uploads can never overwrite each other; only the
// original extension is kept.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStore) Save(fileName string, r io.Reader) (*SavedFile, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	name := uuid.New().String() + ext

	path := filepath.Join(s.dir, name)

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	size, err := io.Copy(file, r)
	if err != nil {
		file.Close()
		os.Remove(path)

		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(path)

		return nil, fmt.Errorf("failed to close file: %w", err)
	}

	return &SavedFile{Name: name, URL: s.baseURL + "/" + name, Size: size}, nil
}
