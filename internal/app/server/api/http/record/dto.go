package record

import (
	"vaultkeeper/internal/domain/normalize"
	"vaultkeeper/internal/domain/record"
)

type listInput struct {
	EntityID string `path:"entityId" example:"e_1" doc:"Entity id"`
}

type listOutput struct {
	Body []record.Record
}

type findInput struct {
	EntityID string `path:"entityId" example:"e_1" doc:"Entity id"`
	RecordID string `path:"recordId" doc:"Record id"`
}

type findOutput struct {
	Body view
}

// view is a stored record together with its rendered rows and tables.
type view struct {
	Record record.Record     `json:"record"`
	Rows   []normalize.Row   `json:"rows"`
	Tables []normalize.Table `json:"tables"`
}

type upsertInput struct {
	EntityID string `path:"entityId" example:"e_1" doc:"Entity id"`
	Body     upsertRequest
}

type upsertRequest struct {
	ID          string              `json:"id,omitempty" doc:"Existing record id; omit to create"`
	RecordType  string              `json:"recordType" example:"PASSPORT" minLength:"1" doc:"Record type"`
	Title       string              `json:"title,omitempty" doc:"Defaults to the record type name"`
	Data        map[string]any      `json:"data,omitempty" doc:"Raw field values, normalized on save"`
	Attachments []record.Attachment `json:"attachments,omitempty"`
}

type upsertOutput struct {
	Body record.Record
}

type deleteInput struct {
	EntityID string `path:"entityId" example:"e_1" doc:"Entity id"`
	RecordID string `path:"recordId" doc:"Record id"`
}
