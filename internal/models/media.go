package models

// StoredRef points at an object persisted in the media store. Path is
// the bucket-relative object key, PublicURL the long-cache public URL.
type StoredRef struct {
	Path      string `json:"path" db:"path"`
	PublicURL string `json:"public_url" db:"public_url"`
}

// Upload kinds accepted by the media ingestion adapter.
const (
	UploadKindImage    = "image"
	UploadKindDocument = "document"
	UploadKindVideo    = "video"
)

// Size ceilings per upload kind.
const (
	MaxImageSize    = 5 * 1024 * 1024  // 5 MiB
	MaxDocumentSize = 5 * 1024 * 1024  // 5 MiB
	MaxVideoSize    = 50 * 1024 * 1024 // 50 MiB
)
