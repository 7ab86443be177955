package document

import "context"

// Repository stores the whole document list as one unit.
type Repository interface {
	List(ctx context.Context) ([]Document, error)
	Save(ctx context.Context, docs []Document) error
}
