package repository

import (
	"context"
	"errors"

	"github.com/cakeshop/cakes-service/internal/cake"
)

var (
	ErrNotFound  = errors.New("cake not found")
	ErrDuplicate = errors.New("duplicate cake id")
)

// Store is the document store adapter consumed by the cake service.
// Documents are keyed by the "_id" string field.
type Store interface {
	// Find returns all cakes, projected to the listing fields
	// {_id, name, comment, imageUrl, yumFactor}, in store-native order.
	Find(ctx context.Context) ([]cake.Document, error)
	// FindOne returns the full stored document for id, or ErrNotFound.
	FindOne(ctx context.Context, id string) (cake.Document, error)
	// InsertOne stores a new document under its "_id" field.
	InsertOne(ctx context.Context, doc cake.Document) error
	// DeleteOne removes the document for id and reports how many were removed.
	DeleteOne(ctx context.Context, id string) (int64, error)
	// FindOneAndReplace swaps the stored document for id with doc, or
	// returns ErrNotFound when no document matches.
	FindOneAndReplace(ctx context.Context, id string, doc cake.Document) error
}
