package entity

import (
	"vaultkeeper/internal/domain/entity"
)

type listOutput struct {
	Body []entity.Entity
}

type createInput struct {
	Body struct {
		Name string      `json:"name" example:"Rex" minLength:"1"`
		Kind entity.Kind `json:"kind,omitempty" enum:"person,pet,household" doc:"Defaults to person"`
	}
}

type entityOutput struct {
	Body entity.Entity
}

type deleteInput struct {
	EntityID string `path:"entityId" doc:"Entity id"`
}
