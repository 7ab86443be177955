package document

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-list",
		Method:      http.MethodGet,
		Path:        "/api/documents",
		Summary:     "List documents",
		Tags:        []string{"documents"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) addOp() huma.Operation {
	return huma.Operation{
		OperationID:   "documents-add",
		Method:        http.MethodPost,
		Path:          "/api/documents",
		Summary:       "Register a document",
		Tags:          []string{"documents"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-find",
		Method:      http.MethodGet,
		Path:        "/api/documents/{id}",
		Summary:     "Get a document",
		Tags:        []string{"documents"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) linksOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-links",
		Method:      http.MethodGet,
		Path:        "/api/documents/{id}/records",
		Summary:     "Records that attach a document",
		Description: "Answered from the document index; an unknown id has no records.",
		Tags:        []string{"documents"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) rebuildOp() huma.Operation {
	return huma.Operation{
		OperationID: "document-index-rebuild",
		Method:      http.MethodPost,
		Path:        "/api/document-index/rebuild",
		Summary:     "Rebuild the document index from every record",
		Tags:        []string{"documents"},
		Middlewares: h.middleware,
	}
}
