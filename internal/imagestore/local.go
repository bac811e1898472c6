package imagestore

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Compile-time check
var _ Store = (*LocalStore)(nil)

const placeholderPath = "/assets/placeholder.png"

// LocalStore keeps images on the local filesystem under a single upload
// directory and serves them via the application's static file routes.
type LocalStore struct {
	uploadDir string
	baseURL   string
	logger    *zap.Logger
}

// NewLocalStore creates the upload directory if needed.
func NewLocalStore(uploadDir, baseURL string, logger *zap.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", uploadDir, err)
	}
	return &LocalStore{
		uploadDir: uploadDir,
		baseURL:   strings.TrimRight(baseURL, "/"),
		logger:    logger.Named("LocalImageStore"),
	}, nil
}

func (s *LocalStore) Save(ctx context.Context, originalFilename string, r io.Reader) (string, error) {
	// A fresh UUID name per upload; the client-supplied name is untrusted.
	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalFilename))
	dst := filepath.Join(s.uploadDir, name)

	f, err := os.Create(dst)
	if err != nil {
		s.logger.Error("Failed to create image file", zap.String("path", dst), zap.Error(err))
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		s.logger.Error("Failed to write image file", zap.String("path", dst), zap.Error(err))
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	imageURL := s.baseURL + "/uploads/" + name
	s.logger.Info("Image stored", zap.String("file", name), zap.String("url", imageURL))
	return imageURL, nil
}

func (s *LocalStore) Remove(ctx context.Context, ref string) error {
	if ref == "" || ref == s.PlaceholderURL() {
		return nil
	}

	filename, err := filenameFromRef(ref)
	if err != nil {
		return err
	}

	target := filepath.Join(s.uploadDir, filename)
	if err := os.Remove(target); err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("Image file already gone", zap.String("file", filename))
			return fmt.Errorf("image not found: %s", filename)
		}
		s.logger.Error("Failed to remove image file", zap.String("file", filename), zap.Error(err))
		return fmt.Errorf("failed to remove image %s: %w", filename, err)
	}

	s.logger.Info("Image removed", zap.String("file", filename))
	return nil
}

func (s *LocalStore) PlaceholderURL() string {
	return s.baseURL + placeholderPath
}

// filenameFromRef extracts the bare filename from a reference URL. Only the
// final path element is used, so a crafted reference cannot reach outside
// the upload directory.
func filenameFromRef(ref string) (string, error) {
	parsed, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("malformed image reference %q: %w", ref, err)
	}
	filename := path.Base(parsed.Path)
	if filename == "." || filename == "/" || filename == "" {
		return "", fmt.Errorf("image reference %q has no filename", ref)
	}
	return filename, nil
}
