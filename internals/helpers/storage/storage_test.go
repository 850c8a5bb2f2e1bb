package storage_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncb_backend/internals/helpers/storage"
)

var allowed = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".pdf"}

// fileHeader builds a real multipart.FileHeader the way Fiber would hand
// it to a controller.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSaveStoresUnderKindWithRelativePath(t *testing.T) {
	root := t.TempDir()
	store := storage.New(root, 5*1024*1024, allowed)

	rel, err := store.Save(fileHeader(t, "photo.png", pngBytes(t, 10, 10)), "gallery")
	require.NoError(t, err)

	// Raster images come back as WebP under the kind directory.
	assert.True(t, strings.HasPrefix(rel, "gallery/"))
	assert.True(t, strings.HasSuffix(rel, ".webp"))

	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	assert.NoError(t, err)
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	store := storage.New(t.TempDir(), 5*1024*1024, allowed)

	_, err := store.Save(fileHeader(t, "script.php", []byte("<?php echo 1; ?>")), "gallery")
	assert.ErrorIs(t, err, storage.ErrExtNotAllowed)
}

func TestSaveRejectsMismatchedContent(t *testing.T) {
	store := storage.New(t.TempDir(), 5*1024*1024, allowed)

	// Executable content behind an image extension.
	elf := append([]byte{0x7f, 'E', 'L', 'F'}, bytes.Repeat([]byte{0}, 64)...)
	_, err := store.Save(fileHeader(t, "totally-a-photo.png", elf), "gallery")
	assert.ErrorIs(t, err, storage.ErrContentMismatch)
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	store := storage.New(t.TempDir(), 1024, allowed)

	// Pad a real PNG well past the cap; the size check must trip before
	// anything else looks at the bytes.
	data := append(pngBytes(t, 10, 10), bytes.Repeat([]byte{0xAA}, 4096)...)
	_, err := store.Save(fileHeader(t, "big.png", data), "gallery")
	assert.ErrorIs(t, err, storage.ErrFileTooLarge)
}

func TestRemoveRefusesTraversal(t *testing.T) {
	store := storage.New(t.TempDir(), 1024, allowed)

	assert.Error(t, store.Remove("../etc/passwd"))
	assert.Error(t, store.Remove("/etc/passwd"))
}
