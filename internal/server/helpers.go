package server

import (
	"os"
	"path/filepath"

	"inkwell/internal/media"
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// parseID extracts a route parameter by name as a positive uint.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		return 0, models.NewValidationError("Invalid " + param)
	}
	return uint(id), nil
}

// currentUserID returns the authenticated principal set by the auth middleware.
func currentUserID(c *fiber.Ctx) uint {
	if uid, ok := c.Locals("userID").(uint); ok {
		return uid
	}
	return 0
}

// saveUpload stores the multipart file from the given form field into the
// temp upload dir and validates it as an image. It returns the local path and
// a cleanup function that must run whether the upload attempt succeeds or
// fails. A missing file yields ("", noop, nil); required-ness is the caller's
// decision.
func (s *Server) saveUpload(c *fiber.Ctx, field string) (string, func(), error) {
	noop := func() {}

	fileHeader, err := c.FormFile(field)
	if err != nil || fileHeader == nil {
		return "", noop, nil
	}

	if err := os.MkdirAll(s.config.UploadTempDir, 0o755); err != nil {
		return "", noop, models.NewInternalError(err)
	}

	path := filepath.Join(s.config.UploadTempDir, uuid.New().String()+filepath.Ext(fileHeader.Filename))
	if err := c.SaveFile(fileHeader, path); err != nil {
		return "", noop, models.NewInternalError(err)
	}
	cleanup := func() { _ = os.Remove(path) }

	maxBytes := int64(s.config.UploadMaxSizeMB) * 1024 * 1024
	if err := media.ValidateImage(path, maxBytes); err != nil {
		cleanup()
		return "", noop, models.NewValidationError(err.Error())
	}

	return path, cleanup, nil
}
