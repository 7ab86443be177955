package normalize

import (
	"fmt"
	"sort"
	"strings"

	"vaultkeeper/internal/domain/path"
	"vaultkeeper/internal/domain/schema"
)

type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type TableItem struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	Rows  []Row  `json:"rows"`
}

type Table struct {
	Label string      `json:"label"`
	Items []TableItem `json:"items"`
}

// itemTitleKeys is the order in which item values are tried as a card title.
var itemTitleKeys = []string{"label", "title", "name", "providerName", "vaccineName", "medicationName"}

const attachedFilePlaceholder = "Attached file"

// Rows lists one label/value pair per visible, non-empty, non-objectList field.
// Types without declared fields fall back to the payload's own top-level keys.
func (n *Normalizer) Rows(rt schema.RecordType, payload map[string]any) []Row {
	rows := []Row{}
	fields := n.registry.Fields(rt)
	if len(fields) == 0 {
		return fallbackRows(payload)
	}

	for _, f := range fields {
		if f.Type == schema.FieldObjectList || !f.HasData() || !f.VisibleIn(payload) {
			continue
		}
		v, _ := path.Get(payload, f.Key)
		if s := displayValue(&f, v); s != "" {
			rows = append(rows, Row{Label: f.LabelFor(payload), Value: s})
		}
	}
	return rows
}

// Tables renders every visible objectList field with at least one non-empty
// item as a list of cards.
func (n *Normalizer) Tables(rt schema.RecordType, payload map[string]any) []Table {
	tables := []Table{}
	for _, f := range n.registry.Fields(rt) {
		if f.Type != schema.FieldObjectList || !f.VisibleIn(payload) {
			continue
		}
		raw, _ := path.Get(payload, f.Key)
		items, _ := raw.([]any)

		var cards []TableItem
		for _, it := range items {
			item, ok := it.(map[string]any)
			if !ok || itemIsEmpty(f, item) {
				continue
			}
			cards = append(cards, TableItem{
				ID:    stringify(item["id"]),
				Title: itemTitle(item),
				Rows:  itemRows(f, item),
			})
		}
		if len(cards) > 0 {
			tables = append(tables, Table{Label: f.LabelFor(payload), Items: cards})
		}
	}
	return tables
}

func itemIsEmpty(f schema.Field, item map[string]any) bool {
	for _, sub := range f.ItemFields {
		if !sub.HasData() {
			continue
		}
		v, _ := path.Get(item, sub.Key)
		if !isEmpty(v) {
			return false
		}
	}
	return true
}

func itemTitle(item map[string]any) string {
	for _, key := range itemTitleKeys {
		if s := stringify(item[key]); s != "" {
			return s
		}
	}
	return ""
}

func itemRows(f schema.Field, item map[string]any) []Row {
	rows := []Row{}
	for _, sub := range f.ItemFields {
		if !sub.HasData() || !sub.VisibleIn(item) {
			continue
		}
		v, _ := path.Get(item, sub.Key)
		if s := displayValue(&sub, v); s != "" {
			rows = append(rows, Row{Label: sub.LabelFor(item), Value: s})
		}
	}
	return rows
}

func fallbackRows(payload map[string]any) []Row {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := []Row{}
	for _, k := range keys {
		label := HumanizeKey(k)
		f := schema.Field{Key: path.Path{k}, Label: label, Type: schema.FieldText}
		if s := displayValue(&f, payload[k]); s != "" {
			rows = append(rows, Row{Label: label, Value: s})
		}
	}
	return rows
}

// displayValue stringifies v for display; "" means the row is omitted.
func displayValue(f *schema.Field, v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case bool:
		if t {
			return "Yes"
		}
		return "No"
	case string:
		s := strings.TrimSpace(t)
		if s != "" && isDateLike(f) {
			return FormatDateLabel(s)
		}
		return s
	case []any:
		return listValue(t)
	case map[string]any:
		if f.Type == schema.FieldDocument || looksLikeFile(t) {
			return documentLabel(t)
		}
		return ""
	}
	return stringify(v)
}

func listValue(items []any) string {
	if len(items) == 0 {
		return ""
	}
	objects := 0
	var parts []string
	for _, item := range items {
		if _, ok := item.(map[string]any); ok {
			objects++
			continue
		}
		if s := stringify(item); s != "" {
			parts = append(parts, s)
		}
	}
	if objects > 0 {
		if objects == 1 {
			return "1 item"
		}
		return fmt.Sprintf("%d items", objects)
	}
	return strings.Join(parts, ", ")
}

func isDateLike(f *schema.Field) bool {
	for _, s := range []string{f.Key.String(), f.Label, f.Placeholder} {
		s = strings.ToLower(s)
		if strings.Contains(s, "date") || strings.Contains(s, "dob") || strings.Contains(s, "yyyy-mm-dd") {
			return true
		}
	}
	return false
}

func looksLikeFile(m map[string]any) bool {
	for _, k := range []string{"uri", "fileName", "mimeType"} {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}

func documentLabel(m map[string]any) string {
	for _, k := range []string{"name", "fileName", "filename", "uri"} {
		if s := stringify(m[k]); s != "" {
			return s
		}
	}
	return attachedFilePlaceholder
}
