package document

import (
	"vaultkeeper/internal/domain/docindex"
	"vaultkeeper/internal/domain/document"
)

type listOutput struct {
	Body []document.Document
}

type idInput struct {
	ID string `path:"id" doc:"Document id"`
}

type addInput struct {
	Body addRequest
}

type addRequest struct {
	ID       string         `json:"id,omitempty" doc:"Existing document id; omit to create"`
	URI      string         `json:"uri" example:"file:///scans/passport.pdf" minLength:"1"`
	Name     string         `json:"name,omitempty" doc:"Defaults to the last URI segment"`
	MimeType string         `json:"mimeType,omitempty" doc:"Guessed from the extension when omitted"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type documentOutput struct {
	Body document.Document
}

type linksOutput struct {
	Body []docindex.Ref
}

type rebuildOutput struct {
	Body struct {
		Status string `json:"status" example:"rebuilt"`
	}
}
