package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is one entry in the media library backing the site's gallery.
type Item struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	URL         string    `json:"url"`
	ObjectKey   string    `json:"-"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	Folder      string    `json:"folder"`
	UploadedBy  uuid.UUID `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}
