package docindex

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaultkeeper/internal/domain/record"
	"vaultkeeper/internal/domain/schema"
)

func rec(id, title string, docs ...string) record.Record {
	r := record.Record{ID: id, RecordType: schema.TypeInsurance, Title: title}
	for _, d := range docs {
		r.Attachments = append(r.Attachments, record.Attachment{DocumentID: d})
	}
	return r
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestBuild(t *testing.T) {
	idx := Build(map[string][]record.Record{
		"e_2": {rec("r3", "Dental", "doc_1")},
		"e_1": {rec("r1", "Health", "doc_1", "doc_2", "doc_1"), rec("r2", "Vision", "doc_1")},
		"e_3": {rec("r4", "None")},
	})

	assert.Equal(t, Index{
		"doc_1": {
			{EntityID: "e_1", RecordID: "r1", RecordType: schema.TypeInsurance, Title: "Health"},
			{EntityID: "e_1", RecordID: "r2", RecordType: schema.TypeInsurance, Title: "Vision"},
			{EntityID: "e_2", RecordID: "r3", RecordType: schema.TypeInsurance, Title: "Dental"},
		},
		"doc_2": {
			{EntityID: "e_1", RecordID: "r1", RecordType: schema.TypeInsurance, Title: "Health"},
		},
	}, idx)
}

func TestReplaceEntity_MatchesBuild(t *testing.T) {
	initial := map[string][]record.Record{
		"e_1": {rec("r1", "Health", "doc_1", "doc_2")},
		"e_2": {rec("r3", "Dental", "doc_1"), rec("r5", "Pet", "doc_3")},
		"e_3": {rec("r4", "Car", "doc_1")},
	}

	tests := []struct {
		name    string
		entity  string
		records []record.Record
	}{
		{name: "attachment removed", entity: "e_1", records: []record.Record{rec("r1", "Health", "doc_2")}},
		{name: "record deleted", entity: "e_2", records: []record.Record{rec("r5", "Pet", "doc_3")}},
		{name: "all records deleted", entity: "e_2", records: nil},
		{name: "record added in front", entity: "e_3", records: []record.Record{rec("r9", "New", "doc_3"), rec("r4", "Car", "doc_1")}},
		{name: "title edited", entity: "e_1", records: []record.Record{rec("r1", "Health plan", "doc_1", "doc_2")}},
		{name: "new entity", entity: "e_0", records: []record.Record{rec("r8", "First", "doc_1")}},
		{name: "unknown entity with nothing", entity: "e_9", records: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := Build(initial)
			idx.ReplaceEntity(tt.entity, tt.records)

			after := make(map[string][]record.Record, len(initial)+1)
			for k, v := range initial {
				after[k] = v
			}
			after[tt.entity] = tt.records

			assert.Equal(t, mustJSON(t, Build(after)), mustJSON(t, idx))
		})
	}
}

func TestReplaceEntity_DropsEmptyBuckets(t *testing.T) {
	idx := Build(map[string][]record.Record{"e_1": {rec("r1", "Health", "doc_1")}})
	idx.ReplaceEntity("e_1", []record.Record{rec("r1", "Health")})

	assert.Empty(t, idx)
	assert.Equal(t, "{}", mustJSON(t, idx))
}

func TestLookup(t *testing.T) {
	idx := Build(map[string][]record.Record{"e_1": {rec("r1", "Health", "doc_1")}})

	missing := idx.Lookup("doc_x")
	assert.NotNil(t, missing)
	assert.Empty(t, missing)

	refs := idx.Lookup("doc_1")
	require.Len(t, refs, 1)
	refs[0].Title = "changed"
	assert.Equal(t, "Health", idx.Lookup("doc_1")[0].Title)
}
