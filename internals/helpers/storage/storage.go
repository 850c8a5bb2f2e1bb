// Package storage is the single place upload paths are produced. Every
// stored file lives under <root>/<kind>/<unix-ts>_<uuid><ext> and is
// referenced from the database by the relative "<kind>/<name>" part.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	ErrFileTooLarge    = errors.New("file exceeds the maximum allowed size")
	ErrExtNotAllowed   = errors.New("file extension is not allowed")
	ErrContentMismatch = errors.New("file content does not match an allowed type")
)

type Store struct {
	root        string
	maxSize     int
	allowedExts map[string]struct{}
}

func New(root string, maxSize int, allowedExts []string) *Store {
	m := make(map[string]struct{}, len(allowedExts))
	for _, e := range allowedExts {
		m[strings.ToLower(e)] = struct{}{}
	}
	return &Store{root: root, maxSize: maxSize, allowedExts: m}
}

// Save validates and persists one uploaded file under the given kind
// subdirectory ("gallery", "banners", "payments") and returns the relative
// path to store in the database. Validation covers size, the declared
// extension AND the sniffed content type; large raster images are
// re-encoded to WebP before hitting disk.
func (s *Store) Save(fh *multipart.FileHeader, kind string) (string, error) {
	if fh.Size > int64(s.maxSize) {
		return "", ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, io.LimitReader(src, int64(s.maxSize)+1)); err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if buf.Len() > s.maxSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := s.allowedExts[ext]; !ok {
		return "", ErrExtNotAllowed
	}

	// Never trust the client-declared type; sniff the bytes.
	detected := mimetype.Detect(buf.Bytes())
	if _, ok := s.allowedExts[strings.ToLower(detected.Extension())]; !ok {
		return "", ErrContentMismatch
	}

	data := buf.Bytes()
	if shouldRecompress(detected) {
		if converted, err := compressToWebP(data); err == nil {
			data = converted
			ext = ".webp"
		}
		// conversion failures fall back to the original bytes
	}

	dir := filepath.Join(s.root, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%d_%s%s", time.Now().Unix(), uuid.New().String(), ext)
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return kind + "/" + name, nil
}

// Remove deletes a previously saved file; used to compensate when the
// database insert after an upload fails.
func (s *Store) Remove(relPath string) error {
	clean := filepath.Clean(relPath)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return errors.New("invalid stored path")
	}
	return os.Remove(filepath.Join(s.root, clean))
}
