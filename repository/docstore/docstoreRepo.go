package docstore

import (
	"context"

	"bookloans/model"
)

type Repo interface {
	List(ctx context.Context, token string) ([]model.Document, error)
	Delete(ctx context.Context, token, docID string) error
}
