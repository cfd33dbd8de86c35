package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Jordan10001/soramatcha-admin/storage"
)

// MaxImageSize caps uploads at 10 MB, matching the dashboard's client-side
// check.
const MaxImageSize = 10 * 1024 * 1024

type UploadService struct {
	store storage.ObjectStore
}

func NewUploadService(store storage.ObjectStore) *UploadService {
	return &UploadService{store: store}
}

type Upload struct {
	Filename    string
	Size        int64
	ContentType string
	Body        io.Reader
}

type UploadResult struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

func (s *UploadService) UploadMenuImage(ctx context.Context, up Upload, name string) (*UploadResult, error) {
	return s.upload(ctx, storage.BucketMenus, up, name)
}

func (s *UploadService) UploadEventImage(ctx context.Context, up Upload, name string) (*UploadResult, error) {
	return s.upload(ctx, storage.BucketEvents, up, name)
}

// upload derives the object path from the provided name (or a fresh uuid)
// plus the original file extension, then stores the binary with its content
// type. The size check runs before any storage call.
func (s *UploadService) upload(ctx context.Context, bucket string, up Upload, name string) (*UploadResult, error) {
	if !s.store.Configured() {
		return nil, ErrNotConfigured
	}
	if up.Size > MaxImageSize {
		return nil, &ValidationError{Message: fmt.Sprintf("File too large. Max %d MB", MaxImageSize/(1024*1024))}
	}

	ext := strings.TrimPrefix(filepath.Ext(up.Filename), ".")
	if name == "" {
		name = uuid.NewString()
	}
	objectPath := name
	if ext != "" {
		objectPath = name + "." + ext
	}

	if err := s.store.Upload(ctx, bucket, objectPath, up.Body, up.Size, up.ContentType); err != nil {
		return nil, err
	}

	return &UploadResult{
		URL:  s.store.PublicURL(bucket, objectPath),
		Path: objectPath,
	}, nil
}

// DeleteImage removes a stored object by bucket and path. Unlike the cleanup
// attached to row deletes this one reports its failure.
func (s *UploadService) DeleteImage(ctx context.Context, bucket, path string) error {
	if !s.store.Configured() {
		return ErrNotConfigured
	}
	if path == "" {
		return &ValidationError{Message: "Image path is required"}
	}
	return s.store.Remove(ctx, bucket, path)
}
