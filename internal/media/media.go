package media

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"bnbhub/internal/errors"
)

// MaxImagesPerRequest caps how many files a single upload request may carry.
const MaxImagesPerRequest = 5

var allowedMIMEs = []string{"image/jpeg", "image/png"}

// Uploader stores image files with an external provider and returns one
// durable reference URL per file, in input order.
type Uploader interface {
	Upload(ctx context.Context, files []*multipart.FileHeader) ([]string, error)
}

// ValidateFiles enforces the per-request file ceiling and the image format
// allow-list (jpg, jpeg, png). Content is sniffed, not trusted from the
// filename alone.
func ValidateFiles(files []*multipart.FileHeader) error {
	if len(files) > MaxImagesPerRequest {
		return errors.ErrTooManyImages
	}
	for _, fh := range files {
		if err := validateFile(fh); err != nil {
			return err
		}
	}
	return nil
}

func validateFile(fh *multipart.FileHeader) error {
	switch strings.ToLower(filepath.Ext(fh.Filename)) {
	case ".jpg", ".jpeg", ".png":
	default:
		return errors.ErrUnsupportedImage
	}

	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return err
	}
	for _, allowed := range allowedMIMEs {
		if mtype.Is(allowed) {
			return nil
		}
	}
	return errors.ErrUnsupportedImage
}
