package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"placehub/internal/apperror"
	"placehub/internal/microservices/http-api/dto"

	"github.com/google/uuid"
)

// BlobStore stores an object and returns its public URL.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

type UploadService interface {
	Upload(ctx context.Context, req dto.UploadFileDTO) (*dto.UploadFileResponse, error)
}

type uploadService struct {
	store    BlobStore
	maxBytes int
	logger   *slog.Logger
	now      func() time.Time
}

// NewUploadService accepts a nil store; uploads then fail with UNAVAILABLE.
func NewUploadService(store BlobStore, maxBytes int, logger *slog.Logger) UploadService {
	return &uploadService{
		store:    store,
		maxBytes: maxBytes,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *uploadService) Upload(ctx context.Context, req dto.UploadFileDTO) (*dto.UploadFileResponse, error) {
	if s.store == nil {
		s.logger.Warn("upload rejected, no blob store configured", "file", req.FileName)
		return nil, apperror.ErrStoreUnavailable
	}

	data, err := base64.StdEncoding.DecodeString(req.FileData)
	if err != nil {
		return nil, apperror.Validation("fileData must be base64 encoded")
	}
	if len(data) == 0 {
		return nil, apperror.Validation("file is empty")
	}
	if len(data) > s.maxBytes {
		return nil, apperror.Validationf("file exceeds %d bytes", s.maxBytes)
	}

	key := s.objectKey(req.FileName)
	url, err := s.store.Put(ctx, key, data, req.ContentType)
	if err != nil {
		s.logger.Error("upload failed", "key", key, "error", err)
		return nil, apperror.Internal(err)
	}

	s.logger.Info("file uploaded", "key", key, "bytes", len(data), "content_type", req.ContentType)
	return &dto.UploadFileResponse{URL: url, Key: key}, nil
}

// objectKey is uploads/<unix millis>-<8 hex>-<sanitized name>, unique per call.
func (s *uploadService) objectKey(fileName string) string {
	name := unsafeFileChars.ReplaceAllString(fileName, "_")
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("uploads/%d-%s-%s", s.now().UnixMilli(), suffix, name)
}
