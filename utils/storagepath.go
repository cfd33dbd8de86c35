package utils

import "strings"

// Storage path segments recognized in public image URLs. Rows written by
// this service carry the object path in their own column; these heuristics
// only recover paths for rows created before that column existed.
var (
	MenuPathSegments  = []string{"/menus/", "/public/menus/"}
	EventPathSegments = []string{"/event/", "/events/", "/public/event/", "/public/events/"}
)

// ObjectPathFromURL recovers the storage-relative path from a public URL by
// searching for a known bucket segment. Returns "" when no segment matches.
func ObjectPathFromURL(url string, segments []string) string {
	if url == "" {
		return ""
	}
	for _, seg := range segments {
		idx := strings.Index(url, seg)
		if idx == -1 {
			continue
		}
		path := url[idx+len(seg):]
		if q := strings.Index(path, "?"); q != -1 {
			path = path[:q]
		}
		return strings.TrimLeft(path, "/")
	}
	return ""
}
