package record

import (
	"time"

	"vaultkeeper/internal/domain/schema"
)

// Attachment points a record at a stored document.
type Attachment struct {
	DocumentID string `json:"documentId"`
	Name       string `json:"name,omitempty"`
}

type Record struct {
	ID          string            `json:"id"`
	EntityID    string            `json:"entityId"`
	RecordType  schema.RecordType `json:"recordType"`
	Title       string            `json:"title"`
	Data        map[string]any    `json:"data"`
	Attachments []Attachment      `json:"attachments"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// DocumentIDs returns the referenced document ids in attachment order,
// without blanks or repeats.
func (r Record) DocumentIDs() []string {
	seen := make(map[string]struct{}, len(r.Attachments))
	ids := make([]string, 0, len(r.Attachments))
	for _, a := range r.Attachments {
		if a.DocumentID == "" {
			continue
		}
		if _, dup := seen[a.DocumentID]; dup {
			continue
		}
		seen[a.DocumentID] = struct{}{}
		ids = append(ids, a.DocumentID)
	}
	return ids
}

func indexOf(records []Record, id string) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
