package repository

import (
	"context"
	"sync"

	"github.com/cakeshop/cakes-service/internal/cake"
)

// MemoryStore is an in-memory Store used when no MongoDB is configured and
// as the fake in unit tests. Behavior mirrors MongoStore, including the
// listing projection.
type MemoryStore struct {
	mu    sync.RWMutex
	cakes map[string]cake.Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cakes: make(map[string]cake.Document)}
}

func (m *MemoryStore) Find(_ context.Context) ([]cake.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]cake.Document, 0, len(m.cakes))
	for _, d := range m.cakes {
		proj := cake.Document{}
		for _, f := range []string{"_id", "name", "comment", "imageUrl", "yumFactor"} {
			if v, ok := d[f]; ok {
				proj[f] = v
			}
		}
		out = append(out, proj)
	}
	return out, nil
}

func (m *MemoryStore) FindOne(_ context.Context, id string) (cake.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.cakes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return d.Clone(), nil
}

func (m *MemoryStore) InsertOne(_ context.Context, doc cake.Document) error {
	id := cake.IDString(doc["_id"])
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.cakes[id]; exists {
		return ErrDuplicate
	}
	m.cakes[id] = doc.Clone()
	return nil
}

func (m *MemoryStore) DeleteOne(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cakes[id]; !ok {
		return 0, nil
	}
	delete(m.cakes, id)
	return 1, nil
}

func (m *MemoryStore) FindOneAndReplace(_ context.Context, id string, doc cake.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cakes[id]; !ok {
		return ErrNotFound
	}
	m.cakes[id] = doc.Clone()
	return nil
}
