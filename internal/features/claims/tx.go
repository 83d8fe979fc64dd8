package claims

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/foundly/internal/database"
)

type mongoTxRunner struct {
	db *database.MongoDB
}

// NewTxRunner wraps the shared Mongo connection as a TxRunner backed by a
// session transaction.
func NewTxRunner(db *database.MongoDB) TxRunner {
	return &mongoTxRunner{db: db}
}

func (r *mongoTxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.WithTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		return fn(sessCtx)
	})
}
