package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/utils"
)

// ImagesURLPrefix is the public path prefix of every stored image reference.
const ImagesURLPrefix = "uploads/images"

var imageExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpeg",
	"image/jpg":  "jpg",
}

// ImageExtension returns the file extension for an accepted image content type.
func ImageExtension(contentType string) (string, bool) {
	ext, ok := imageExtensions[strings.ToLower(contentType)]
	return ext, ok
}

// fileImageStorage is the filesystem implementation of [ImageStorage].
// Files live flat in root and are referenced as "uploads/images/<name>".
type fileImageStorage struct {
	root    string
	maxSize int64
	ids     *utils.UUIDGenerator
	logger  *logger.Logger
}

// NewFileImageStorage creates root if needed and returns an [ImageStorage]
// that rejects files larger than maxSize bytes. A non-positive maxSize
// disables the limit.
func NewFileImageStorage(root string, maxSize int64, logger *logger.Logger) (ImageStorage, error) {
	if root == "" {
		return nil, errors.New("image storage root is empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		logger.Err(err).Str("func", "NewFileImageStorage").Str("root", root).Msg("failed to create uploads directory")
		return nil, fmt.Errorf("error creating uploads directory: %w", err)
	}

	logger.Debug().Str("root", root).Msg("creating file image storage")
	return &fileImageStorage{
		root:    root,
		maxSize: maxSize,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}, nil
}

func (s *fileImageStorage) Save(ctx context.Context, originalName, contentType string, r io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	ext, ok := ImageExtension(contentType)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImageType, contentType)
	}

	name := s.ids.Generate() + "." + ext
	fullPath := filepath.Join(s.root, name)

	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		log.Err(err).Str("func", "*fileImageStorage.Save").Str("file", fullPath).Msg("failed to create image file")
		return "", fmt.Errorf("error creating image file: %w", err)
	}

	src := r
	if s.maxSize > 0 {
		src = io.LimitReader(r, s.maxSize+1)
	}

	written, copyErr := io.Copy(f, src)
	closeErr := f.Close()

	switch {
	case copyErr != nil:
		err = fmt.Errorf("error writing image file: %w", copyErr)
	case closeErr != nil:
		err = fmt.Errorf("error closing image file: %w", closeErr)
	case s.maxSize > 0 && written > s.maxSize:
		err = ErrImageTooLarge
	}
	if err != nil {
		if rmErr := os.Remove(fullPath); rmErr != nil {
			log.Err(rmErr).Str("func", "*fileImageStorage.Save").Str("file", fullPath).Msg("failed to remove partial image")
		}
		return "", err
	}

	log.Debug().
		Str("func", "*fileImageStorage.Save").
		Str("original_name", originalName).
		Int64("size", written).
		Str("file", name).
		Msg("image saved")

	return path.Join(ImagesURLPrefix, name), nil
}

func (s *fileImageStorage) Remove(ctx context.Context, ref string) error {
	fullPath, err := s.resolve(ref)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error removing image file: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("func", "*fileImageStorage.Remove").Str("file", ref).Msg("image removed")
	return nil
}

// resolve maps a public reference to a file inside root.
func (s *fileImageStorage) resolve(ref string) (string, error) {
	name, ok := strings.CutPrefix(path.Clean("/"+ref), "/"+ImagesURLPrefix+"/")
	if !ok || name == "" || strings.Contains(name, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidImagePath, ref)
	}

	return filepath.Join(s.root, name), nil
}
