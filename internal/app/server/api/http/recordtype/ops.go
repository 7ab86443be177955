package recordtype

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "record-types-list",
		Method:      http.MethodGet,
		Path:        "/api/record-types",
		Summary:     "List record types",
		Tags:        []string{"record-types"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) fieldsOp() huma.Operation {
	return huma.Operation{
		OperationID: "record-types-fields",
		Method:      http.MethodGet,
		Path:        "/api/record-types/{type}/fields",
		Summary:     "Field declarations of a record type",
		Description: "Unknown types have no fields.",
		Tags:        []string{"record-types"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) normalizeOp() huma.Operation {
	return huma.Operation{
		OperationID: "record-types-normalize",
		Method:      http.MethodPost,
		Path:        "/api/record-types/{type}/normalize",
		Summary:     "Normalize a payload without storing it",
		Tags:        []string{"record-types"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) displayOp() huma.Operation {
	return huma.Operation{
		OperationID: "record-types-display",
		Method:      http.MethodPost,
		Path:        "/api/record-types/{type}/display",
		Summary:     "Render a stored payload into rows and tables",
		Tags:        []string{"record-types"},
		Middlewares: h.middleware,
	}
}
