package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jobboard/backend/internal/config"
	"github.com/jobboard/backend/internal/util"
)

type StorageServiceInterface interface {
	Store(src io.Reader, dir, filename string) (string, error)
	Resolve(path string) (string, error)
	Delete(path string) error
}

// StorageService keeps uploaded files on local disk under the
// configured upload root. Stored paths are opaque to callers and
// recorded verbatim on the owning record.
type StorageService struct {
	root string
}

func NewStorageService() *StorageService {
	return &StorageService{root: config.LoadStorageConfig().UploadDir}
}

// NewStorageServiceAt roots the store at an explicit directory.
func NewStorageServiceAt(root string) *StorageService {
	return &StorageService{root: root}
}

func (s *StorageService) Store(src io.Reader, dir, filename string) (string, error) {
	name := fmt.Sprintf("%s%s", uuid.NewString(), strings.ToLower(filepath.Ext(filename)))
	rel := filepath.ToSlash(filepath.Join(dir, name))

	absDir := filepath.Join(s.root, dir)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", util.NewError(util.CodeInternal, "cannot save file", err)
	}
	dst, err := os.Create(filepath.Join(absDir, name))
	if err != nil {
		return "", util.NewError(util.CodeInternal, "cannot save file", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", util.NewError(util.CodeInternal, "cannot save file", err)
	}
	return rel, nil
}

// Resolve returns the absolute path for a stored file, or a not-found
// error when the blob is missing.
func (s *StorageService) Resolve(path string) (string, error) {
	abs, err := s.absPath(path)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return "", util.NewError(util.CodeNotFound, "File not found", err)
		}
		return "", util.NewError(util.CodeInternal, "cannot read file", err)
	}
	return abs, nil
}

func (s *StorageService) Delete(path string) error {
	abs, err := s.absPath(path)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil {
		if os.IsNotExist(err) {
			return util.NewError(util.CodeNotFound, "File not found", err)
		}
		return util.NewError(util.CodeInternal, "cannot delete file", err)
	}
	return nil
}

func (s *StorageService) absPath(path string) (string, error) {
	abs := filepath.Join(s.root, filepath.FromSlash(path))
	rel, err := filepath.Rel(s.root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", util.NewError(util.CodeNotFound, "File not found", err)
	}
	return abs, nil
}
