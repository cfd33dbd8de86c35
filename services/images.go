package services

import (
	"context"
	"log"

	"github.com/Jordan10001/soramatcha-admin/entity"
	"github.com/Jordan10001/soramatcha-admin/storage"
	"github.com/Jordan10001/soramatcha-admin/utils"
)

// ImagePatch is the tri-state image argument for updates: Set=false leaves
// the stored image untouched, Set=true with a nil URL clears it, Set=true
// with a URL replaces it. Path is the storage path belonging to URL.
type ImagePatch struct {
	Set  bool
	URL  *string
	Path *string
}

// menuImagePath resolves the storage path for a menu row, preferring the
// persisted path and falling back to the URL heuristic for legacy rows.
func menuImagePath(m *entity.Menu) string {
	if m.ImgPath != nil && *m.ImgPath != "" {
		return *m.ImgPath
	}
	if m.ImgURL != nil {
		return utils.ObjectPathFromURL(*m.ImgURL, utils.MenuPathSegments)
	}
	return ""
}

func eventImagePath(e *entity.Event) string {
	if e.ImgPath != nil && *e.ImgPath != "" {
		return *e.ImgPath
	}
	if e.ImgURL != nil {
		return utils.ObjectPathFromURL(*e.ImgURL, utils.EventPathSegments)
	}
	return ""
}

// removeStoredImage is best-effort: failures are logged and never block the
// row operation that triggered the cleanup.
func removeStoredImage(ctx context.Context, store storage.ObjectStore, bucket, path string) {
	if path == "" || store == nil || !store.Configured() {
		return
	}
	if err := store.Remove(ctx, bucket, path); err != nil {
		log.Printf("failed to remove %s/%s from storage: %v", bucket, path, err)
	}
}
