package document

import "time"

// Document is a stored file. Which records point at it is derived by the
// document index, never stored here.
type Document struct {
	ID        string         `json:"id"`
	URI       string         `json:"uri"`
	Name      string         `json:"name"`
	MimeType  string         `json:"mimeType"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}
