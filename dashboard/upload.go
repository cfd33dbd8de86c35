package dashboard

import "fmt"

// DefaultMaxFileSize mirrors the server-side cap.
const DefaultMaxFileSize = 10 * 1024 * 1024

// FileUpload models the picker on the create/edit modals: an oversized file
// is rejected with a size message before any network call and never
// populates the preview.
type FileUpload struct {
	MaxSize int64

	preview string
	errMsg  string
}

func NewFileUpload() *FileUpload {
	return &FileUpload{MaxSize: DefaultMaxFileSize}
}

func (u *FileUpload) Select(filename string, size int64) error {
	max := u.MaxSize
	if max <= 0 {
		max = DefaultMaxFileSize
	}
	if size > max {
		u.errMsg = fmt.Sprintf("File too large. Max %d MB", max/(1024*1024))
		return fmt.Errorf("%s", u.errMsg)
	}
	u.errMsg = ""
	u.preview = filename
	return nil
}

func (u *FileUpload) Preview() string { return u.preview }

func (u *FileUpload) Err() string { return u.errMsg }

// Reset clears the picker after a successful submit.
func (u *FileUpload) Reset() {
	u.preview = ""
	u.errMsg = ""
}
