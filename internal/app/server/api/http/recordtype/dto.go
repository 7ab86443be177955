package recordtype

import (
	"vaultkeeper/internal/domain/normalize"
	"vaultkeeper/internal/domain/schema"
)

type typeView struct {
	Type        string `json:"type" example:"PASSPORT"`
	DisplayName string `json:"displayName" example:"Passport"`
	Category    string `json:"category" example:"Identification"`
}

type listOutput struct {
	Body []typeView
}

type typeInput struct {
	Type string `path:"type" example:"PASSPORT" doc:"Record type"`
}

type conditionView struct {
	Key    string `json:"key"`
	Equals any    `json:"equals"`
}

type fieldView struct {
	Key         string         `json:"key"`
	Label       string         `json:"label"`
	Type        string         `json:"type"`
	Options     []string       `json:"options,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
	ShowWhen    *conditionView `json:"showWhen,omitempty"`
	ItemFields  []fieldView    `json:"itemFields,omitempty"`
}

type fieldsOutput struct {
	Body []fieldView
}

type payloadInput struct {
	Type string `path:"type" example:"PASSPORT" doc:"Record type"`
	Body struct {
		Data any `json:"data,omitempty" doc:"Raw or stored payload"`
	}
}

type normalizeOutput struct {
	Body struct {
		Data map[string]any `json:"data"`
	}
}

type displayOutput struct {
	Body struct {
		Rows   []normalize.Row   `json:"rows"`
		Tables []normalize.Table `json:"tables"`
	}
}

func toFieldViews(fields []schema.Field, data map[string]any) []fieldView {
	out := make([]fieldView, 0, len(fields))
	for _, f := range fields {
		v := fieldView{
			Key:         f.Key.String(),
			Label:       f.LabelFor(data),
			Type:        string(f.Type),
			Options:     f.Options,
			Placeholder: f.Placeholder,
		}
		if f.ShowWhen != nil {
			v.ShowWhen = &conditionView{Key: f.ShowWhen.Key.String(), Equals: f.ShowWhen.Equals}
		}
		if len(f.ItemFields) > 0 {
			v.ItemFields = toFieldViews(f.ItemFields, nil)
		}
		out = append(out, v)
	}
	return out
}
