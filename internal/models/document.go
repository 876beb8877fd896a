package models

import "time"

// Document is the extracted plain text of the active PDF for a single
// chat, plus the metadata echoed back to the user. Uploading a new PDF
// replaces it; there is no version history.
type Document struct {
	ID         string
	Name       string
	Text       string
	Pages      int
	SizeBytes  int64
	SHA256     string
	UploadedAt time.Time
}

// NewDocument creates a Document stamped with the upload time.
func NewDocument(id, name, text string, pages int, sizeBytes int64, sha256 string) *Document {
	return &Document{
		ID:         id,
		Name:       name,
		Text:       text,
		Pages:      pages,
		SizeBytes:  sizeBytes,
		SHA256:     sha256,
		UploadedAt: time.Now(),
	}
}
