package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"yatube/internal/core/apperror"
	mediaPort "yatube/internal/ports/media"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

const sniffLen = 3072

// FileStorage keeps uploads on the local filesystem below Root.
type FileStorage struct {
	Root   string
	Logger *zap.Logger
}

func NewFileStorage(root string, logger *zap.Logger) *FileStorage {
	return &FileStorage{Root: root, Logger: logger}
}

// Save accepts images only; anything else is a validation error on "image".
func (s *FileStorage) Save(ctx context.Context, folder string, upload *mediaPort.Upload) (string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(upload.Content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]

	mt := mimetype.Detect(head)
	if n == 0 || !strings.HasPrefix(mt.String(), "image/") {
		return "", apperror.NewValidationError("image", "upload a valid image")
	}

	dir := filepath.Join(s.Root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	name := uuid.Must(uuid.NewV4()).String() + mt.Extension()
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, io.MultiReader(bytes.NewReader(head), upload.Content)); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write media file: %w", err)
	}

	rel := filepath.ToSlash(filepath.Join(folder, name))
	s.Logger.Info("Stored upload", zap.String("path", rel), zap.String("mime", mt.String()), zap.String("original", upload.Filename))
	return rel, nil
}

func (s *FileStorage) Delete(ctx context.Context, path string) error {
	full := filepath.Join(s.Root, filepath.FromSlash(path))
	if !strings.HasPrefix(full, filepath.Clean(s.Root)+string(filepath.Separator)) {
		return fmt.Errorf("media path %q escapes the media root", path)
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete media file: %w", err)
	}
	return nil
}
