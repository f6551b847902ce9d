package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/cakeshop/cakes-service/internal/cake"
	"github.com/cakeshop/cakes-service/internal/cake/repository"
)

// ErrNotFound signals that an identifier did not resolve to a stored cake.
var ErrNotFound = errors.New("cake not found")

// ValidationError is a client-fault rejection of an Add payload. The message
// is safe to return verbatim in the response body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Service validates inputs, assigns identities and maps store outcomes to
// API-level results. It is stateless; all state lives in the injected store.
type Service struct {
	store repository.Store
}

func New(store repository.Store) *Service {
	return &Service{store: store}
}

// ListAll returns every cake in store-native order, identifiers normalized
// to their string form under "id".
func (s *Service) ListAll(ctx context.Context) ([]cake.Document, error) {
	docs, err := s.store.Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cakes: %w", err)
	}
	out := make([]cake.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, cake.WithStringID(d))
	}
	return out, nil
}

// GetByID looks up a cake by its exact identifier. No UUID format check is
// performed; any lookup failure is reported as ErrNotFound, folding
// malformed identifiers into the not-found case.
func (s *Service) GetByID(ctx context.Context, id string) (cake.Document, error) {
	doc, err := s.store.FindOne(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return cake.WithStringID(doc), nil
}

// Add validates data and inserts a new cake under a freshly generated
// UUID v4, which is returned. Required fields are checked before the
// whitelist; a caller-supplied id passes the whitelist but is discarded.
// Any non-*ValidationError failure is a persistence failure.
func (s *Service) Add(ctx context.Context, data cake.Document) (string, error) {
	if !data.HasRequiredFields() {
		return "", &ValidationError{Message: "Missing required fields in the data"}
	}
	if extra := data.UnexpectedFields(); len(extra) > 0 {
		sort.Strings(extra)
		return "", &ValidationError{Message: "Unexpected fields: " + strings.Join(extra, ", ")}
	}

	id := uuid.NewString()
	doc := cake.Document{"_id": id}
	for _, f := range cake.RequiredFields {
		doc[f] = data[f]
	}
	if err := s.store.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("insert cake: %w", err)
	}
	return id, nil
}

// Delete removes the cake with the given identifier. Zero matches is
// ErrNotFound; identifiers are unique by construction, so more than one
// deletion cannot occur.
func (s *Service) Delete(ctx context.Context, id string) error {
	n, err := s.store.DeleteOne(ctx, id)
	if err != nil {
		return fmt.Errorf("delete cake: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Update merges data over the existing cake and replaces the stored
// document. Fields present in data overwrite, absent fields are preserved,
// new fields are added; unlike Add there is no whitelist. The read-replace
// sequence carries no concurrency token: a concurrent writer between the
// two steps wins or loses by arrival order.
func (s *Service) Update(ctx context.Context, id string, data cake.Document) error {
	existing, err := s.store.FindOne(ctx, id)
	if err != nil {
		return ErrNotFound
	}

	merged := existing.Clone()
	for k, v := range data {
		merged[k] = v
	}
	// identity is immutable regardless of payload contents
	merged["_id"] = existing["_id"]

	if err := s.store.FindOneAndReplace(ctx, id, merged); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("replace cake: %w", err)
	}
	return nil
}
