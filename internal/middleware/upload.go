package middleware

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/adotapet/adota-pet-api/internal/httperr"
	"github.com/adotapet/adota-pet-api/internal/storage"
)

const (
	ContextUpload = "upload"

	maxUploadSize = 5 << 20 // 5MB
)

var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// PhotoUpload parses an optional "photo" part from a multipart body and
// rejects oversized or non-image files before the handler runs. The photo is
// always optional; enforcing its presence is not a route concern here.
func PhotoUpload() gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile("photo")
		if err != nil {
			// No file part; nothing to validate.
			c.Next()
			return
		}

		if fh.Size > maxUploadSize {
			Fail(c, httperr.BadRequest("file_too_large", "Photo must be at most 5MB."))
			return
		}

		mimeType := fh.Header.Get("Content-Type")
		if !allowedPhotoTypes[mimeType] {
			Fail(c, httperr.BadRequest("unsupported_file_type", "Photo must be a jpeg, png or webp image."))
			return
		}

		f, err := fh.Open()
		if err != nil {
			Fail(c, httperr.Internal("upload_read_failed", "Could not read the uploaded photo.", err))
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			Fail(c, httperr.Internal("upload_read_failed", "Could not read the uploaded photo.", err))
			return
		}

		c.Set(ContextUpload, &storage.Upload{
			Data:     data,
			Name:     fh.Filename,
			MimeType: mimeType,
		})

		c.Next()
	}
}

// UploadFrom returns the parsed photo, or nil when the request had none.
func UploadFrom(c *gin.Context) *storage.Upload {
	v, ok := c.Get(ContextUpload)
	if !ok {
		return nil
	}
	return v.(*storage.Upload)
}
