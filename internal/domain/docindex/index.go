// Package docindex maintains the document -> referencing records index.
//
// The index is a materialized view over every entity's record list. Replacing
// one entity's share yields exactly what Build would produce over the same
// record lists, so the persisted copy can always be thrown away and rebuilt.
package docindex

import (
	"sort"

	"vaultkeeper/internal/domain/record"
	"vaultkeeper/internal/domain/schema"
)

// Ref identifies one record that attaches a document.
type Ref struct {
	EntityID   string            `json:"entityId"`
	RecordID   string            `json:"recordId"`
	RecordType schema.RecordType `json:"recordType"`
	Title      string            `json:"title"`
}

// Index maps a document id to its references. Buckets are ordered by entity
// id, then by the entity's record order; empty buckets are not kept.
type Index map[string][]Ref

// Build computes the index from scratch.
func Build(byEntity map[string][]record.Record) Index {
	entityIDs := make([]string, 0, len(byEntity))
	for id := range byEntity {
		entityIDs = append(entityIDs, id)
	}
	sort.Strings(entityIDs)

	idx := make(Index)
	for _, id := range entityIDs {
		idx.insert(id, byEntity[id])
	}
	return idx
}

// ReplaceEntity discards every reference owned by entityID and adds the ones
// declared by records, which must be the entity's complete current list.
func (idx Index) ReplaceEntity(entityID string, records []record.Record) {
	idx.remove(entityID)
	idx.insert(entityID, records)
}

// Lookup returns a copy of the document's references; never nil.
func (idx Index) Lookup(documentID string) []Ref {
	refs := idx[documentID]
	out := make([]Ref, len(refs))
	copy(out, refs)
	return out
}

func (idx Index) remove(entityID string) {
	for docID, refs := range idx {
		kept := refs[:0]
		for _, ref := range refs {
			if ref.EntityID != entityID {
				kept = append(kept, ref)
			}
		}
		if len(kept) == 0 {
			delete(idx, docID)
			continue
		}
		idx[docID] = kept
	}
}

func (idx Index) insert(entityID string, records []record.Record) {
	for _, rec := range records {
		ref := Ref{
			EntityID:   entityID,
			RecordID:   rec.ID,
			RecordType: rec.RecordType,
			Title:      rec.Title,
		}
		for _, docID := range rec.DocumentIDs() {
			idx[docID] = insertRef(idx[docID], ref)
		}
	}
}

// insertRef places ref after every reference whose entity id sorts at or
// before its own.
func insertRef(refs []Ref, ref Ref) []Ref {
	at := sort.Search(len(refs), func(i int) bool { return refs[i].EntityID > ref.EntityID })
	refs = append(refs, Ref{})
	copy(refs[at+1:], refs[at:])
	refs[at] = ref
	return refs
}
