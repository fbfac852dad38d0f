package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/smartchef/backend/config"
)

// PhotoArchive stores an uploaded photo and returns a link to it.
type PhotoArchive interface {
	Store(ctx context.Context, photo Photo) (string, error)
}

const photoURLExpiry = 15 * time.Minute

// S3PhotoArchive uploads photos to the configured bucket under
// ingredient-photos/ and returns a presigned download URL.
type S3PhotoArchive struct {
	s3 *config.S3Config
}

func NewS3PhotoArchive(s3cfg *config.S3Config) *S3PhotoArchive {
	return &S3PhotoArchive{s3: s3cfg}
}

func (a *S3PhotoArchive) Store(ctx context.Context, photo Photo) (string, error) {
	key := photoKey(photo)
	_, err := a.s3.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.s3.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(photo.Data),
		ContentType: aws.String(photo.MIMEType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}
	return a.s3.GeneratePresignedURL(ctx, key, photoURLExpiry)
}

func photoKey(photo Photo) string {
	ext := strings.ToLower(filepath.Ext(photo.Filename))
	if ext == "" {
		switch photo.MIMEType {
		case "image/png":
			ext = ".png"
		case "image/webp":
			ext = ".webp"
		default:
			ext = ".jpg"
		}
	}
	return "ingredient-photos/" + uuid.NewString() + ext
}
