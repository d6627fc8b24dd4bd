// Package media validates uploaded images and pushes them to the external
// image host. Only the hosted URL is persisted; local files are temporary.
package media

import (
	"context"
	"fmt"
	"image"
	"os"

	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	_ "golang.org/x/image/webp" // register WebP decoder
)

// Uploader pushes a local image file to the image host and returns its
// publicly served URL.
type Uploader interface {
	Upload(ctx context.Context, localPath string) (string, error)
}

// ValidateImage checks that the file at path is a decodable image within the
// size limit. It reads only the header, not the full pixel data.
func ValidateImage(path string, maxSizeBytes int64) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat upload: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("empty file")
	}
	if info.Size() > maxSizeBytes {
		return fmt.Errorf("file too large (max %dMB)", maxSizeBytes/(1024*1024))
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	if _, _, err := image.DecodeConfig(f); err != nil {
		return fmt.Errorf("not a valid image: %w", err)
	}
	return nil
}
