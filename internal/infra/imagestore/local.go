// Package imagestore provides the filesystem-backed implementation of the
// rental image store.
package imagestore

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"image/png"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/webp"

	"chatop/config"
	domainerrors "chatop/internal/domain/errors"
	"chatop/internal/domain/service"
	"chatop/internal/errors"
)

// sniffLen is the number of leading bytes http.DetectContentType inspects.
const sniffLen = 512

// extensions maps each accepted sniffed content type to the file extension
// the stored file gets. Anything outside this map is rejected.
var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// localStore stores rental images as plain files under a single directory.
type localStore struct {
	baseDir   string // Absolute path of the upload directory.
	publicURL string // URL prefix the stored files are served from.
	maxSize   int64  // Upper bound on the accepted payload size, in bytes.
	logger    *slog.Logger
}

// NewLocalRentalImageStore is the constructor for localStore. It resolves and
// creates the upload directory up front so a misconfigured path fails at
// startup instead of on the first upload.
func NewLocalRentalImageStore(cfg *config.Config, logger *slog.Logger) (service.RentalImageStore, error) {
	absDir, err := filepath.Abs(cfg.Upload.Dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve upload directory %q", cfg.Upload.Dir)
	}

	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create upload directory %q", absDir)
	}

	return &localStore{
		baseDir:   absDir,
		publicURL: cfg.Upload.URL,
		maxSize:   cfg.Upload.MaxSizeBytes,
		logger:    logger,
	}, nil
}

// Save validates the payload and writes it to the upload directory.
// The checks run strictly in order: emptiness, size, sniffed content type,
// then a full decode. Nothing touches the disk until every check has passed.
func (s *localStore) Save(ctx context.Context, data []byte, rentalID uint64) (string, error) {
	if len(data) == 0 {
		return "", domainerrors.ErrEmptyImage
	}

	if int64(len(data)) > s.maxSize {
		return "", domainerrors.ErrImageTooLarge
	}

	// The sniffed type decides the extension; client-supplied names and
	// content types are never trusted.
	contentType := sniffContentType(data)
	ext, ok := extensions[contentType]
	if !ok {
		return "", domainerrors.ErrUnsupportedImageType
	}

	if err := decodeImage(contentType, data); err != nil {
		s.logger.DebugContext(ctx, "image decode failed",
			slog.String("contentType", contentType),
			slog.Any("error", err))
		return "", domainerrors.ErrCorruptImage
	}

	filename := fmt.Sprintf("rental_%d_%d%s", rentalID, time.Now().UnixMilli(), ext)
	dstPath := filepath.Join(s.baseDir, filename)

	// os.WriteFile truncates an existing file, so a filename collision
	// overwrites rather than fails.
	if err := os.WriteFile(dstPath, data, 0o644); err != nil {
		s.logger.ErrorContext(ctx, "failed to write rental image",
			slog.String("path", dstPath),
			slog.Any("error", err))
		return "", domainerrors.ErrImageStorage
	}

	return s.publicFileURL(filename), nil
}

// publicFileURL joins the configured public prefix and the filename with
// exactly one slash between them, whatever the prefix looks like.
func (s *localStore) publicFileURL(filename string) string {
	return strings.TrimRight(s.publicURL, "/") + "/" + filename
}

// sniffContentType detects the payload's content type from its leading bytes.
func sniffContentType(data []byte) string {
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	return http.DetectContentType(data)
}

// decodeImage fully decodes the payload with the decoder matching the sniffed
// type. A payload with a valid magic number but a broken body fails here.
func decodeImage(contentType string, data []byte) error {
	var err error
	switch contentType {
	case "image/jpeg":
		_, err = jpeg.Decode(bytes.NewReader(data))
	case "image/png":
		_, err = png.Decode(bytes.NewReader(data))
	case "image/webp":
		_, err = webp.Decode(bytes.NewReader(data))
	default:
		return errors.Errorf("no decoder for content type %s", contentType)
	}

	if err != nil {
		return errors.Wrap(err, "image decode failed")
	}

	return nil
}
