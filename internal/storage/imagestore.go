package storage

import (
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/claims"
)

// Images larger than this are downscaled to fit, preserving aspect ratio.
const maxImageDimension = 500

// ImageStore keeps item photos on local disk, normalized to bounded JPEGs.
// It stands in for the hosted object storage the item detail pages link to.
type ImageStore struct {
	dir    string
	logger *zap.Logger
}

func NewImageStore(dir string, logger *zap.Logger) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	return &ImageStore{dir: dir, logger: logger}, nil
}

// Save decodes, bounds and persists one uploaded image, returning the
// stored file name. Only JPEG and PNG inputs are accepted.
func (s *ImageStore) Save(itemID string, r io.Reader) (string, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("%w: unsupported or corrupt image", claims.ErrValidation)
	}
	if format != "jpeg" && format != "png" {
		return "", fmt.Errorf("%w: only jpeg and png images are allowed", claims.ErrValidation)
	}

	src = bound(src)

	name := fmt.Sprintf("%s_%s.jpg", itemID, uuid.NewString())
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, src, &jpeg.Options{Quality: 85}); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	s.logger.Debug("image stored", zap.String("item_id", itemID), zap.String("file", name))
	return name, nil
}

func (s *ImageStore) Remove(name string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(name)))
}

// Dir exposes the storage root for the static file handler.
func (s *ImageStore) Dir() string {
	return s.dir
}

func bound(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxImageDimension && h <= maxImageDimension {
		return src
	}

	scale := float64(maxImageDimension) / float64(w)
	if h > w {
		scale = float64(maxImageDimension) / float64(h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
