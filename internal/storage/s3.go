package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/adotapet/adota-pet-api/internal/config"
)

type S3Uploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3Uploader(cfg *config.Config) *S3Uploader {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	// Custom endpoint for minio/localstack style setups.
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	publicURL := cfg.S3PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &S3Uploader{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Upload transforms image payloads to bounded webp, stores the object under a
// collision-resistant key and returns its public URL.
func (u *S3Uploader) Upload(ctx context.Context, data []byte, originalName, mimeType string) (string, error) {
	body := data
	contentType := mimeType
	ext := filepath.Ext(originalName)

	if strings.HasPrefix(mimeType, "image/") {
		converted, err := TransformImage(data, mimeType)
		if err != nil {
			return "", fmt.Errorf("transform image: %w", err)
		}
		body = converted
		contentType = "image/webp"
		ext = ".webp"
	}

	key := objectKey(originalName, ext)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return u.publicURL + "/" + key, nil
}

// objectKey builds "<unix-ms>-<uuid>-<base>.<ext>". The original base name is
// kept (sanitized) so uploads stay recognizable in the bucket.
func objectKey(originalName, ext string) string {
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	base = sanitize(base)
	if base == "" {
		base = "upload"
	}

	return fmt.Sprintf("%d-%s-%s%s", time.Now().UnixMilli(), uuid.NewString(), base, ext)
}

func sanitize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	return b.String()
}
