package thumbnails

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/google/uuid"

	"github.com/vidseo/backend/internal/logging"
)

// ErrStorageUnavailable indicates no asset storage is configured.
var ErrStorageUnavailable = errors.New("thumbnail storage unavailable")

// AssetStorage persists rendered thumbnails and returns a public URL.
type AssetStorage interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

// EncodePNG writes img as a PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if img == nil {
		return errors.New("encode png: nil image")
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Publish uploads img under a fresh thumbnails/<uuid>.png key.
func Publish(ctx context.Context, storage AssetStorage, img image.Image) (string, error) {
	if storage == nil {
		return "", ErrStorageUnavailable
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return "", err
	}

	name := fmt.Sprintf("thumbnails/%s.png", uuid.NewString())
	url, err := storage.Save(ctx, name, bytes.NewReader(buf.Bytes()))
	if err != nil {
		return "", fmt.Errorf("publish thumbnail: %w", err)
	}

	logging.FromContext(ctx).Info("thumbnail published", "key", name, "bytes", buf.Len())
	return url, nil
}
