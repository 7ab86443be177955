package schema

import "vaultkeeper/internal/domain/path"

const datePlaceholder = "YYYY-MM-DD"

func field(typ FieldType, key, label string) Field {
	return Field{Key: path.MustParse(key), Label: label, Type: typ}
}

func text(key, label string) Field      { return field(FieldText, key, label) }
func multiline(key, label string) Field { return field(FieldMultiline, key, label) }
func toggle(key, label string) Field    { return field(FieldToggle, key, label) }
func list(key, label string) Field      { return field(FieldList, key, label) }
func timeList(key, label string) Field  { return field(FieldTimeList, key, label) }
func document(key, label string) Field  { return field(FieldDocument, key, label) }

func description(key, text string) Field {
	return field(FieldDescription, key, text)
}

func date(key, label string) Field {
	f := field(FieldDate, key, label)
	f.Placeholder = datePlaceholder
	return f
}

func choice(key, label string, options ...string) Field {
	f := field(FieldSelect, key, label)
	f.Options = options
	return f
}

func objectList(key, label string, items ...Field) Field {
	f := field(FieldObjectList, key, label)
	f.ItemFields = items
	return f
}

func (f Field) when(key string, equals any) Field {
	f.ShowWhen = &Condition{Key: path.MustParse(key), Equals: equals}
	return f
}

func (f Field) labelled(fn func(data map[string]any) string) Field {
	f.LabelFunc = fn
	return f
}
