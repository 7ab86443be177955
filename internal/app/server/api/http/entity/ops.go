package entity

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "entities-list",
		Method:      http.MethodGet,
		Path:        "/api/entities",
		Summary:     "List entities",
		Tags:        []string{"entities"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "entities-create",
		Method:        http.MethodPost,
		Path:          "/api/entities",
		Summary:       "Create an entity",
		Tags:          []string{"entities"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "entities-delete",
		Method:        http.MethodDelete,
		Path:          "/api/entities/{entityId}",
		Summary:       "Delete an entity and all of its records",
		Tags:          []string{"entities"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
