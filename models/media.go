package models

// MediaKind groups upload rules and storage folders
type MediaKind string

const (
	MediaImage    MediaKind = "image"
	MediaVideo    MediaKind = "video"
	MediaDocument MediaKind = "document"
)

// MediaFile is an accepted multipart upload spooled to a temp file.
type MediaFile struct {
	Field       string    `json:"field"`
	Filename    string    `json:"filename"`
	Path        string    `json:"-"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	Kind        MediaKind `json:"kind"`
}
