// Package blob abstracts the binary object store behind Put/Remove. The
// service only ever handles the returned URL; the bytes live outside the
// relational store.
package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Store interface {
	// Put persists the bytes under a name derived from filename and
	// returns the URL the object is served at.
	Put(ctx context.Context, filename string, r io.Reader) (string, error)

	// Remove deletes the object a previous Put returned url for.
	Remove(ctx context.Context, url string) error
}

// LocalStore keeps blobs on the local disk and serves them under
// /uploads/. A cloud bucket would satisfy the same interface.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Dir is the directory objects are written to, for the HTTP file server.
func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Put(ctx context.Context, filename string, r io.Reader) (string, error) {
	name := uuid.NewString() + sanitizeExt(filename)
	dest := filepath.Join(s.dir, name)

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create blob: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("write blob: %w", err)
	}

	return "/uploads/" + name, nil
}

func (s *LocalStore) Remove(ctx context.Context, url string) error {
	name := path.Base(url)
	if name == "" || name == "." || name == "/" {
		return fmt.Errorf("invalid blob url: %s", url)
	}
	return os.Remove(filepath.Join(s.dir, name))
}

// sanitizeExt keeps only a plain extension from the client-supplied name,
// guarding against path tricks in Content-Disposition filenames.
func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if strings.ContainsAny(ext, "/\\") || len(ext) > 16 {
		return ""
	}
	return ext
}
