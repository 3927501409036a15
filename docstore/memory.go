package docstore

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	doc       StoredDocument
	expiresAt time.Time // zero means no expiry
}

// MemoryStore is a process-local Store used when no redis address is
// configured, and in tests. Expired entries are dropped lazily on read.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[string]memoryEntry),
	}
}

func (store *MemoryStore) SaveDocument(
	ctx context.Context,
	id string,
	doc StoredDocument,
	ttl time.Duration,
) error {
	entry := memoryEntry{doc: doc}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	store.docs[id] = entry
	return nil
}

func (store *MemoryStore) GetDocument(ctx context.Context, id string) (*StoredDocument, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	entry, ok := store.docs[id]
	if !ok {
		return nil, ErrNotFound
	}

	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		delete(store.docs, id)
		return nil, ErrNotFound
	}

	doc := entry.doc
	return &doc, nil
}

func (store *MemoryStore) DeleteDocument(ctx context.Context, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	delete(store.docs, id)
	return nil
}
