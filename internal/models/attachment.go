package models

import (
	"time"

	"github.com/google/uuid"
)

// Attachment is a photo stored in object storage for a maintenance request.
// URL is a presigned link generated per response, never persisted.
type Attachment struct {
	ID          uuid.UUID `json:"id" db:"id"`
	RequestID   uuid.UUID `json:"requestId" db:"request_id"`
	ObjectKey   string    `json:"-" db:"object_key"`
	FileName    string    `json:"fileName" db:"file_name"`
	ContentType string    `json:"contentType" db:"content_type"`
	Size        int64     `json:"size" db:"size"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	URL string `json:"url,omitempty" db:"-"`
}
