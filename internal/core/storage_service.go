package core

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type storageService struct {
	bucket     *storage.BucketHandle
	bucketName string
	logger     *zap.Logger
}

// NewStorageService creates a StorageService over the default upload
// bucket. bucket may be nil when no STORAGE_BUCKET is configured; every
// upload then fails with ErrStorageUnavailable.
func NewStorageService(bucket *storage.BucketHandle, bucketName string, logger *zap.Logger) StorageService {
	return &storageService{bucket: bucket, bucketName: bucketName, logger: logger}
}

// UploadImages stores files one at a time under
// businesses/{businessID}/{subresource}/{timestamp}-{random}.{ext}.
// A failed file is reported in the second return value and does not stop
// the rest of the upload.
func (s *storageService) UploadImages(ctx context.Context, businessID, subresource string, files []*multipart.FileHeader) ([]string, []string, error) {
	if s.bucket == nil {
		return nil, nil, ErrStorageUnavailable
	}
	if businessID == "" {
		return nil, nil, fmt.Errorf("businessID cannot be empty")
	}
	if subresource == "" {
		subresource = "gallery"
	}

	var urls []string
	var failed []string
	for _, file := range files {
		url, err := s.uploadOne(ctx, businessID, subresource, file)
		if err != nil {
			s.logger.Warn("image upload failed",
				zap.String("businessId", businessID),
				zap.String("filename", file.Filename),
				zap.Error(err))
			failed = append(failed, file.Filename)
			continue
		}
		urls = append(urls, url)
	}
	return urls, failed, nil
}

func (s *storageService) uploadOne(ctx context.Context, businessID, subresource string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(path.Ext(file.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	objectName := fmt.Sprintf("businesses/%s/%s/%d-%s%s",
		businessID, subresource, time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	writer := s.bucket.Object(objectName).NewWriter(ctx)
	writer.ContentType = file.Header.Get("Content-Type")
	if _, err := io.Copy(writer, src); err != nil {
		writer.Close()
		return "", fmt.Errorf("failed to write object '%s': %w", objectName, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object '%s': %w", objectName, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, objectName), nil
}
