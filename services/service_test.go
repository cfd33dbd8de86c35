package services

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Jordan10001/soramatcha-admin/entity"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Admin{}, &entity.Category{}, &entity.Menu{}, &entity.Event{}))
	return db
}

// fakeStore records storage traffic so tests can assert on best-effort
// cleanup without a running MinIO.
type fakeStore struct {
	uploads   []fakeUpload
	removed   []string
	removeErr error
	uploadErr error
}

type fakeUpload struct {
	bucket      string
	path        string
	contentType string
	size        int64
}

func (f *fakeStore) Upload(_ context.Context, bucket, path string, _ io.Reader, size int64, contentType string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.uploads = append(f.uploads, fakeUpload{bucket: bucket, path: path, contentType: contentType, size: size})
	return nil
}

func (f *fakeStore) Remove(_ context.Context, bucket string, paths ...string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	for _, p := range paths {
		f.removed = append(f.removed, bucket+"/"+p)
	}
	return nil
}

func (f *fakeStore) PublicURL(bucket, path string) string {
	return "https://cdn.test/" + bucket + "/" + path
}

func (f *fakeStore) Configured() bool { return true }

func strPtr(s string) *string { return &s }
