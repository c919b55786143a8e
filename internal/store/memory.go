package store

import (
	"context"
	"sync"
)

// Memory is an in-process Client used for tests, previews and the memory backend.
type Memory struct {
	mu    sync.RWMutex
	docs  []Document
	fails map[string]error
	calls map[string]int
}

// NewMemory constructs a Memory store seeded with docs.
func NewMemory(docs ...Document) *Memory {
	m := &Memory{
		fails: make(map[string]error),
		calls: make(map[string]int),
	}
	m.Put(docs...)
	return m
}

// Put appends documents to the store. Documents are copied.
func (m *Memory) Put(docs ...Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, doc := range docs {
		m.docs = append(m.docs, cloneDocument(doc))
	}
}

// FailWith makes queries for docType return err. A nil err clears the failure.
func (m *Memory) FailWith(docType string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.fails, docType)
		return
	}
	m.fails[docType] = err
}

// Calls reports how many queries were issued for docType.
func (m *Memory) Calls(docType string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls[docType]
}

// Query implements Client.
func (m *Memory) Query(ctx context.Context, q Query) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.calls[q.Type]++
	failure := m.fails[q.Type]
	m.mu.Unlock()
	if failure != nil {
		return nil, failure
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return evaluate(m.docs, q), nil
}
