package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Jordan10001/soramatcha-admin/configs"
)

type MinioStore struct {
	client    *minio.Client
	publicURL string
}

func NewMinioStore(cfg *configs.Config) (*MinioStore, error) {
	client, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	publicURL := cfg.Minio.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.Minio.UseSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + cfg.Minio.Endpoint
	}

	return &MinioStore{
		client:    client,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// EnsureBuckets creates the image buckets on first boot.
func (s *MinioStore) EnsureBuckets(ctx context.Context) error {
	for _, bucket := range []string{BucketMenus, BucketEvents} {
		exists, err := s.client.BucketExists(ctx, bucket)
		if err != nil {
			return fmt.Errorf("check bucket %s: %w", bucket, err)
		}
		if exists {
			continue
		}
		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %s: %w", bucket, err)
		}
		log.Println("created bucket:", bucket)
	}
	return nil
}

func (s *MinioStore) Upload(ctx context.Context, bucket, path string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, bucket, path, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *MinioStore) Remove(ctx context.Context, bucket string, paths ...string) error {
	for _, path := range paths {
		if err := s.client.RemoveObject(ctx, bucket, path, minio.RemoveObjectOptions{}); err != nil {
			return err
		}
	}
	return nil
}

func (s *MinioStore) PublicURL(bucket, path string) string {
	return s.publicURL + "/" + bucket + "/" + path
}

func (s *MinioStore) Configured() bool { return true }
