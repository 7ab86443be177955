package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vaultkeeper/internal/domain/path"
	"vaultkeeper/internal/domain/schema"
)

func TestRows(t *testing.T) {
	n := newTestNormalizer()

	tests := []struct {
		name string
		rt   schema.RecordType
		in   map[string]any
		want []Row
	}{
		{
			name: "dates are formatted",
			rt:   schema.TypePassport,
			in:   map[string]any{"firstName": "Ann", "dateOfBirth": "1990-02-03"},
			want: []Row{
				{Label: "First name", Value: "Ann"},
				{Label: "Date of birth", Value: "Feb 3, 1990"},
			},
		},
		{
			name: "dynamic label",
			rt:   schema.TypeTravelID,
			in:   map[string]any{"programType": schema.ProgramPreCheck, "travelerNumber": "TT123"},
			want: []Row{
				{Label: "Program", Value: "TSA PreCheck"},
				{Label: "Known Traveler Number", Value: "TT123"},
			},
		},
		{
			name: "dynamic label falls back to static",
			rt:   schema.TypeTravelID,
			in:   map[string]any{"travelerNumber": "TT123"},
			want: []Row{{Label: "Traveler number", Value: "TT123"}},
		},
		{
			name: "hidden fields are skipped",
			rt:   schema.TypeBirthCertificate,
			in:   map[string]any{"parents": map[string]any{"includeParents": false, "parent1Name": "Mary"}},
			want: []Row{{Label: "Include parents", Value: "No"}},
		},
		{
			name: "shown when condition holds",
			rt:   schema.TypeBirthCertificate,
			in:   map[string]any{"parents": map[string]any{"includeParents": true, "parent1Name": "Mary"}},
			want: []Row{
				{Label: "Include parents", Value: "Yes"},
				{Label: "Parent 1", Value: "Mary"},
			},
		},
		{
			name: "lists and documents",
			rt:   schema.TypeInsurance,
			in: map[string]any{
				"provider":      "Acme",
				"memberId":      "M-1",
				"insuranceCard": map[string]any{"id": "doc_1", "name": "card.jpg", "uri": "file:///card.jpg"},
			},
			want: []Row{
				{Label: "Provider", Value: "Acme"},
				{Label: "Member ID", Value: "M-1"},
				{Label: "Insurance card", Value: "card.jpg"},
			},
		},
		{
			name: "description fields never render",
			rt:   schema.TypeSocialSecurity,
			in:   map[string]any{"fullName": "Ann Lee"},
			want: []Row{{Label: "Full name", Value: "Ann Lee"}},
		},
		{
			name: "object lists are tables, not rows",
			rt:   schema.TypeMedications,
			in:   map[string]any{"medications": []any{map[string]any{"medicationName": "Aspirin"}}},
			want: []Row{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := n.ForSave(tt.rt, tt.in)
			assert.Equal(t, tt.want, n.Rows(tt.rt, payload))
		})
	}
}

func TestRows_Fallback(t *testing.T) {
	n := newTestNormalizer()

	rows := n.Rows("LEGACY_NOTE", map[string]any{
		"noteBody":  "hi",
		"createdOn": "",
		"pinned":    true,
		"tags":      []any{"a", "b"},
		"scan":      map[string]any{"uri": "file:///x.pdf", "fileName": "x.pdf"},
		"extra":     map[string]any{"nested": "object"},
	})

	assert.Equal(t, []Row{
		{Label: "Note body", Value: "hi"},
		{Label: "Pinned", Value: "Yes"},
		{Label: "Scan", Value: "x.pdf"},
		{Label: "Tags", Value: "a, b"},
	}, rows)
}

func TestTables(t *testing.T) {
	n := newTestNormalizer()

	t.Run("medications", func(t *testing.T) {
		payload := n.ForSave(schema.TypeMedications, map[string]any{
			"medications": []any{map[string]any{
				"medicationName": "Aspirin",
				"times":          []any{"8:00"},
				"active":         true,
			}},
		})

		assert.Equal(t, []Table{{
			Label: "Medications",
			Items: []TableItem{{
				ID:    "item-1",
				Title: "Aspirin",
				Rows: []Row{
					{Label: "Medication", Value: "Aspirin"},
					{Label: "Times", Value: "08:00"},
					{Label: "Active", Value: "Yes"},
				},
			}},
		}}, n.Tables(schema.TypeMedications, payload))
	})

	t.Run("item conditions use the item", func(t *testing.T) {
		payload := n.ForSave(schema.TypeEmergencyContacts, map[string]any{
			"contacts": []any{
				map[string]any{"name": "Bob", "relationship": "Friend", "otherRelationship": "ignored"},
				map[string]any{"name": "Eve", "relationship": "Other", "otherRelationship": "Neighbour"},
			},
		})

		tables := n.Tables(schema.TypeEmergencyContacts, payload)
		if assert.Len(t, tables, 1) && assert.Len(t, tables[0].Items, 2) {
			assert.Equal(t, []Row{
				{Label: "Name", Value: "Bob"},
				{Label: "Relationship", Value: "Friend"},
				{Label: "Primary contact", Value: "No"},
			}, tables[0].Items[0].Rows)
			assert.Contains(t, tables[0].Items[1].Rows, Row{Label: "Describe relationship", Value: "Neighbour"})
		}
	})

	t.Run("empty lists produce no table", func(t *testing.T) {
		payload := n.ForSave(schema.TypeMedications, nil)
		assert.Empty(t, n.Tables(schema.TypeMedications, payload))
	})

	t.Run("unknown types have no tables", func(t *testing.T) {
		assert.Empty(t, n.Tables("LEGACY_NOTE", map[string]any{"items": []any{map[string]any{"name": "x"}}}))
	})
}

func TestDisplayValue(t *testing.T) {
	textField := &schema.Field{Key: path.MustParse("note"), Label: "Note", Type: schema.FieldText}
	docField := &schema.Field{Key: path.MustParse("scan"), Label: "Scan", Type: schema.FieldDocument}
	dateField := &schema.Field{Key: path.MustParse("due"), Label: "Due", Type: schema.FieldDate, Placeholder: "YYYY-MM-DD"}

	tests := []struct {
		name  string
		field *schema.Field
		value any
		want  string
	}{
		{name: "nil", field: textField, value: nil, want: ""},
		{name: "blank", field: textField, value: "  ", want: ""},
		{name: "true", field: textField, value: true, want: "Yes"},
		{name: "false", field: textField, value: false, want: "No"},
		{name: "number", field: textField, value: 2.5, want: "2.5"},
		{name: "date via placeholder", field: dateField, value: "2024-12-25", want: "Dec 25, 2024"},
		{name: "unparseable date", field: dateField, value: "soon", want: "soon"},
		{name: "scalar list", field: textField, value: []any{"a", "", "b"}, want: "a, b"},
		{name: "one object", field: textField, value: []any{map[string]any{}}, want: "1 item"},
		{name: "objects", field: textField, value: []any{map[string]any{}, map[string]any{}}, want: "2 items"},
		{name: "empty list", field: textField, value: []any{}, want: ""},
		{name: "document without name", field: docField, value: map[string]any{"id": "doc_1"}, want: "Attached file"},
		{name: "document uri", field: docField, value: map[string]any{"uri": "file:///a.png"}, want: "file:///a.png"},
		{name: "document id string", field: docField, value: "doc_1", want: "doc_1"},
		{name: "plain object", field: textField, value: map[string]any{"a": "b"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, displayValue(tt.field, tt.value))
		})
	}
}

func TestFormatDateLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "2024-05-01", want: "May 1, 2024"},
		{in: "2024-05-01T10:00:00Z", want: "May 1, 2024"},
		{in: "2024-05-01T10:00:00", want: "May 1, 2024"},
		{in: "05/01/2024", want: "May 1, 2024"},
		{in: " 2024-05-01 ", want: "May 1, 2024"},
		{in: "next week", want: "next week"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDateLabel(tt.in))
		})
	}
}

func TestHumanizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "dateOfBirth", want: "Date of birth"},
		{in: "memberID", want: "Member ID"},
		{in: "first_name", want: "First name"},
		{in: "HTTPServer", want: "HTTP server"},
		{in: "a", want: "A"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanizeKey(tt.in))
		})
	}
}
