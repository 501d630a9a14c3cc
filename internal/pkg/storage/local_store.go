// Package storage holds uploaded contract files on the local
// filesystem, namespaced per contract id. The database row is written
// only after the file landed, so a crash can orphan a file but never
// produce a row without one.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) *LocalStore {
	return &LocalStore{baseDir: baseDir}
}

// Save streams the upload to a fresh path under the contract's
// directory and returns the stored path. The kind separates contract
// documents from termination documents in the namespace.
func (s *LocalStore) Save(contractID string, kind string, originalName string, r io.Reader) (string, int64, error) {
	dir := filepath.Join(s.baseDir, contractID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s%s", kind, uuid.New().String(), filepath.Ext(originalName))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, r)
	if err != nil {
		os.Remove(path)
		return "", 0, fmt.Errorf("write file: %w", err)
	}
	return path, written, nil
}

// Copy duplicates an already stored file into the given kind's
// namespace. Source and copy have independent lifecycles afterwards.
func (s *LocalStore) Copy(srcPath, contractID, kind string) (string, int64, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return "", 0, fmt.Errorf("open source file: %w", err)
	}
	defer src.Close()

	return s.Save(contractID, kind, filepath.Base(srcPath), src)
}

func (s *LocalStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (s *LocalStore) Remove(path string) error {
	return os.Remove(path)
}

func (s *LocalStore) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}
