package schema

import (
	"fmt"
	"strconv"

	"vaultkeeper/internal/domain/path"
)

type FieldType string

const (
	FieldText        FieldType = "text"
	FieldMultiline   FieldType = "multiline"
	FieldDate        FieldType = "date"
	FieldSelect      FieldType = "select"
	FieldToggle      FieldType = "toggle"
	FieldList        FieldType = "list"
	FieldObjectList  FieldType = "objectList"
	FieldDocument    FieldType = "document"
	FieldDescription FieldType = "description"
	FieldTimeList    FieldType = "timeList"
)

// Valid reports whether t is one of the known field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldMultiline, FieldDate, FieldSelect, FieldToggle, FieldList,
		FieldObjectList, FieldDocument, FieldDescription, FieldTimeList:
		return true
	}
	return false
}

// Condition hides a field unless the value at Key equals Equals.
type Condition struct {
	Key    path.Path
	Equals any
}

// Field declares one editable/displayable slot of a record type.
type Field struct {
	Key         path.Path
	Label       string
	LabelFunc   func(data map[string]any) string `json:"-"`
	Type        FieldType
	Options     []string
	Placeholder string
	ShowWhen    *Condition
	ItemFields  []Field
}

// LabelFor resolves the caption against the record's current values.
func (f Field) LabelFor(data map[string]any) string {
	if f.LabelFunc != nil {
		if label := f.LabelFunc(data); label != "" {
			return label
		}
	}
	return f.Label
}

// VisibleIn evaluates ShowWhen against data (the record root for top-level
// fields, the item for item fields).
func (f Field) VisibleIn(data map[string]any) bool {
	if f.ShowWhen == nil {
		return true
	}
	v, _ := path.Get(data, f.ShowWhen.Key)
	return conditionString(v) == conditionString(f.ShowWhen.Equals)
}

// Truthy reports keys stored as booleans whatever their declared type.
func (f Field) Truthy() bool {
	return f.Type == FieldToggle || f.Key.Leaf() == "includeParents"
}

// NullOnEmpty reports keys whose empty value is stored as null instead of "".
func (f Field) NullOnEmpty() bool {
	switch f.Key.Leaf() {
	case "expirationDate", "parent1Name", "parent2Name":
		return true
	}
	return false
}

// HasData is false for purely presentational fields.
func (f Field) HasData() bool {
	return f.Type != FieldDescription
}

// ZeroValue is the canonical empty value stored for f.
func (f Field) ZeroValue() any {
	switch {
	case f.Truthy():
		return false
	case f.NullOnEmpty():
		return nil
	}
	switch f.Type {
	case FieldList, FieldTimeList, FieldObjectList:
		return []any{}
	case FieldDocument:
		return nil
	}
	return ""
}

func conditionString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
