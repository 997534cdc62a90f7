package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrBlobNotFound reports that a stored path no longer resolves to a file.
var ErrBlobNotFound = errors.New("blob not found")

// Category names one of the directories the store keeps blobs under.
type Category string

const (
	CategoryImages       Category = "images"
	CategoryProjectFiles Category = "project_files"
	CategoryExecutables  Category = "executables"
)

// Store writes blobs beneath a single root, one subdirectory per category.
// Paths returned by Save are relative to the process working directory and
// are stored verbatim in the metadata rows that own them.
type Store struct {
	root string
}

// New creates the root and every category directory up front.
func New(root string) (*Store, error) {
	for _, category := range []Category{CategoryImages, CategoryProjectFiles, CategoryExecutables} {
		if err := os.MkdirAll(filepath.Join(root, string(category)), 0o755); err != nil {
			return nil, err
		}
	}
	return &Store{root: root}, nil
}

// Save streams r into the category directory and returns the stored path.
// The blob is written to a temp file first and renamed into place, so a
// half-written upload never lands under its final name. Keys are prefixed
// with a fresh uuid: two uploads sharing a filename never collide.
func (s *Store) Save(category Category, name string, r io.Reader) (string, error) {
	dir := filepath.Join(s.root, string(category))
	destination := filepath.Join(dir, key(name))

	tmp, err := os.CreateTemp(dir, "pending-")
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	if err := os.Rename(tmp.Name(), destination); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	return destination, nil
}

// Open returns the blob at a stored path together with its size.
// A path that no longer resolves reports ErrBlobNotFound.
func (s *Store) Open(path string) (*os.File, os.FileInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, ErrBlobNotFound
		}
		return nil, nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	return f, stat, nil
}

// Remove deletes the blob at a stored path. Removal is idempotent: a path
// that is already gone is a success, any other failure is reported.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// key namespaces an uploaded filename with a fresh uuid and strips any
// directory components a client may have smuggled into it.
func key(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = "upload"
	}
	return uuid.New().String() + "_" + base
}
