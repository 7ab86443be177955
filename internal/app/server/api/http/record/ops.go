package record

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-list",
		Method:      http.MethodGet,
		Path:        "/api/entities/{entityId}/records",
		Summary:     "List an entity's records",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-find",
		Method:      http.MethodGet,
		Path:        "/api/entities/{entityId}/records/{recordId}",
		Summary:     "Get a record with its display rows",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) upsertOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-upsert",
		Method:      http.MethodPut,
		Path:        "/api/entities/{entityId}/records",
		Summary:     "Create or replace a record",
		Description: "Normalizes data for the record type, stores the record and updates the document index.",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "records-delete",
		Method:        http.MethodDelete,
		Path:          "/api/entities/{entityId}/records/{recordId}",
		Summary:       "Delete a record",
		Description:   "Deleting an unknown record succeeds without changes.",
		Tags:          []string{"records"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
