package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

var ErrInvalidFilename = errors.New("invalid filename")

// StorageService is a flat directory used as a filename -> bytes store.
type StorageService interface {
	EnsureDir() error
	SaveFile(file *multipart.FileHeader) (string, string, error)
	SaveStream(filename string, src io.Reader) (string, error)
	ListFiles() ([]string, error)
	Exists(filename string) bool
	GetFilePath(filename string) string
	DeleteFile(filename string) error
}

type storageService struct {
	basePath string
}

func NewStorageService(basePath string) StorageService {
	return &storageService{
		basePath: basePath,
	}
}

// SanitizeFilename accepts only a plain file name. Anything that would
// resolve outside the storage directory is rejected.
func SanitizeFilename(name string) (string, error) {
	if strings.TrimSpace(name) == "" || name == "." || name == ".." {
		return "", ErrInvalidFilename
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return "", ErrInvalidFilename
	}
	return name, nil
}

func (s *storageService) EnsureDir() error {
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", s.basePath, err)
	}

	return nil
}

// SaveFile stores the upload under its original name, replacing any file
// already stored under that name.
func (s *storageService) SaveFile(file *multipart.FileHeader) (string, string, error) {
	filename, err := SanitizeFilename(file.Filename)
	if err != nil {
		return "", "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	filePath, err := s.SaveStream(filename, src)
	if err != nil {
		return "", "", err
	}

	return filename, filePath, nil
}

func (s *storageService) SaveStream(filename string, src io.Reader) (string, error) {
	filename, err := SanitizeFilename(filename)
	if err != nil {
		return "", err
	}

	filePath := s.GetFilePath(filename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return filePath, nil
}

func (s *storageService) ListFiles() ([]string, error) {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", s.basePath, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}

func (s *storageService) Exists(filename string) bool {
	filename, err := SanitizeFilename(filename)
	if err != nil {
		return false
	}

	info, err := os.Stat(s.GetFilePath(filename))
	return err == nil && !info.IsDir()
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.basePath, filename)
}

func (s *storageService) DeleteFile(filename string) error {
	filePath := s.GetFilePath(filename)
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
