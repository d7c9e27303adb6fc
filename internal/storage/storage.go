package storage

import "context"

// Upload carries a validated file buffer from the multipart parser to a
// service call.
type Upload struct {
	Data     []byte
	Name     string
	MimeType string
}

// Uploader stores a binary and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, originalName, mimeType string) (string, error)
}
