// Package storage wraps the object gateway holding uploaded images.
package storage

import (
	"context"
	"errors"
	"io"
)

const (
	BucketMenus  = "menus"
	BucketEvents = "event"
)

var ErrNotConfigured = errors.New("object storage is not configured")

type ObjectStore interface {
	Upload(ctx context.Context, bucket, path string, r io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, bucket string, paths ...string) error
	// PublicURL derives the retrieval URL for a stored path.
	PublicURL(bucket, path string) string
	Configured() bool
}

// Unconfigured degrades every storage call to a structured failure so the
// process can boot without an object gateway.
type Unconfigured struct{}

func (Unconfigured) Upload(context.Context, string, string, io.Reader, int64, string) error {
	return ErrNotConfigured
}

func (Unconfigured) Remove(context.Context, string, ...string) error {
	return ErrNotConfigured
}

func (Unconfigured) PublicURL(string, string) string { return "" }

func (Unconfigured) Configured() bool { return false }
