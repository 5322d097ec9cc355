package imagestore

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatop/config"
	domainerrors "chatop/internal/domain/errors"
	"chatop/internal/domain/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T, maxSize int64, publicURL string) (service.RentalImageStore, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		Upload: config.UploadConfig{
			Dir:          dir,
			URL:          publicURL,
			MaxSizeBytes: maxSize,
		},
	}

	store, err := NewLocalRentalImageStore(cfg, testLogger())
	require.NoError(t, err)

	return store, dir
}

func encodePNG(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func encodeJPEG(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	require.NoError(t, jpeg.Encode(&buf, img, nil))

	return buf.Bytes()
}

// webpFixture returns a minimal valid 1x1 lossy WebP file.
func webpFixture() []byte {
	return []byte{
		0x52, 0x49, 0x46, 0x46, 0x24, 0x00, 0x00, 0x00, 0x57, 0x45, 0x42, 0x50,
		0x56, 0x50, 0x38, 0x20, 0x18, 0x00, 0x00, 0x00, 0x30, 0x01, 0x00, 0x9D,
		0x01, 0x2A, 0x01, 0x00, 0x01, 0x00, 0x02, 0x00, 0x34, 0x25, 0xA4, 0x00,
		0x03, 0x70, 0x00, 0xFE, 0xFB, 0xFD, 0x50, 0x00,
	}
}

func TestLocalStore_SavePNG(t *testing.T) {
	store, dir := newTestStore(t, 1<<20, "http://localhost:8080/uploads")

	url, err := store.Save(context.Background(), encodePNG(t), 42)
	require.NoError(t, err)

	// URL carries the public prefix and the generated filename
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/rental_42_"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	// The file actually landed in the upload directory
	filename := url[strings.LastIndex(url, "/")+1:]
	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, encodePNG(t), data)
}

func TestLocalStore_SaveJPEG(t *testing.T) {
	store, _ := newTestStore(t, 1<<20, "http://localhost:8080/uploads")

	url, err := store.Save(context.Background(), encodeJPEG(t), 7)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".jpg"), url)
}

func TestLocalStore_SaveWebP(t *testing.T) {
	store, dir := newTestStore(t, 1<<20, "http://localhost:8080/uploads")

	url, err := store.Save(context.Background(), webpFixture(), 11)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/rental_11_"), url)
	assert.True(t, strings.HasSuffix(url, ".webp"), url)

	filename := url[strings.LastIndex(url, "/")+1:]
	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, webpFixture(), data)
}

func TestLocalStore_EmptyPayload(t *testing.T) {
	store, _ := newTestStore(t, 1<<20, "http://localhost:8080/uploads")

	_, err := store.Save(context.Background(), nil, 1)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyImage)

	_, err = store.Save(context.Background(), []byte{}, 1)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyImage)
}

func TestLocalStore_OversizedPayload(t *testing.T) {
	payload := encodePNG(t)
	store, dir := newTestStore(t, int64(len(payload))-1, "http://localhost:8080/uploads")

	_, err := store.Save(context.Background(), payload, 1)
	assert.ErrorIs(t, err, domainerrors.ErrImageTooLarge)

	// Rejected payloads never reach the disk
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStore_UnsupportedType(t *testing.T) {
	store, _ := newTestStore(t, 1<<20, "http://localhost:8080/uploads")

	// A GIF sniffs as image/gif, which is not in the accepted set
	gif := []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
	_, err := store.Save(context.Background(), gif, 1)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedImageType)

	// Plain text is not an image at all
	_, err = store.Save(context.Background(), []byte("hello, world"), 1)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedImageType)
}

func TestLocalStore_CorruptImage(t *testing.T) {
	store, dir := newTestStore(t, 1<<20, "http://localhost:8080/uploads")

	// A valid PNG signature followed by garbage passes the sniff but fails
	// the full decode
	corrupt := append(encodePNG(t)[:16], []byte("definitely not pixel data")...)
	_, err := store.Save(context.Background(), corrupt, 1)
	assert.ErrorIs(t, err, domainerrors.ErrCorruptImage)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStore_PublicURLJoining(t *testing.T) {
	// The prefix and filename are joined with exactly one slash whether or
	// not the configured URL has a trailing one
	withSlash, _ := newTestStore(t, 1<<20, "http://cdn.example.com/uploads/")
	url, err := withSlash.Save(context.Background(), encodePNG(t), 3)
	require.NoError(t, err)
	assert.Contains(t, url, "uploads/rental_3_")
	assert.NotContains(t, url, "uploads//")

	withoutSlash, _ := newTestStore(t, 1<<20, "http://cdn.example.com/uploads")
	url, err = withoutSlash.Save(context.Background(), encodePNG(t), 3)
	require.NoError(t, err)
	assert.Contains(t, url, "uploads/rental_3_")
}

func TestNewLocalRentalImageStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	cfg := &config.Config{
		Upload: config.UploadConfig{Dir: dir, URL: "http://localhost/uploads", MaxSizeBytes: 1 << 20},
	}

	_, err := NewLocalRentalImageStore(cfg, testLogger())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
