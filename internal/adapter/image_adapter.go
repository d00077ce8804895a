package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	m "aeronib.com/pkg/navhdr/internal/model"
)

// ImageAdapter decodes, scales and encodes gallery images.
type ImageAdapter interface {
	// Decode loads an image and applies its EXIF orientation.
	Decode(path m.Path) (image.Image, error)

	// Scale resamples img to width x height.
	Scale(img image.Image, width, height int) image.Image

	// EncodeJPEG writes img as a JPEG without metadata, replacing path atomically.
	EncodeJPEG(path m.Path, img image.Image, quality int) error
}

// LocalImageAdapter implements ImageAdapter on the local file system with imaging.
type LocalImageAdapter struct{}

// NewLocalImageAdapter constructs a LocalImageAdapter.
func NewLocalImageAdapter() *LocalImageAdapter {
	return &LocalImageAdapter{}
}

// Decode implements ImageAdapter.
func (a *LocalImageAdapter) Decode(path m.Path) (image.Image, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return img, nil
}

// Scale implements ImageAdapter.
func (a *LocalImageAdapter) Scale(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// EncodeJPEG implements ImageAdapter. An existing file keeps its permissions.
func (a *LocalImageAdapter) EncodeJPEG(path m.Path, img image.Image, quality int) error {
	dir := filepath.Dir(string(path))

	perm, err := targetPerm(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".navhdr-*.jpg")
	if err != nil {
		return err
	}

	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := imaging.Encode(tmp, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), string(path))
}

// targetPerm returns the permission bits of path, or 0o644 when it does not exist.
func targetPerm(path m.Path) (fs.FileMode, error) {
	info, err := os.Stat(string(path))
	if errors.Is(err, fs.ErrNotExist) {
		return 0o644, nil
	}

	if err != nil {
		return 0, err
	}

	return info.Mode().Perm(), nil
}
