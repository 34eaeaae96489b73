package testutil

import (
	"context"
	"sync"

	"github.com/dom/league-profile-gateway/internal/domain"
	"github.com/dom/league-profile-gateway/internal/repository"
)

// MemoryRotationCache is an in-process rotation cache for handler tests.
type MemoryRotationCache struct {
	mu     sync.Mutex
	doc    *domain.RotationDocument
	err    error
	writes int
}

func NewMemoryRotationCache() *MemoryRotationCache {
	return &MemoryRotationCache{}
}

func (c *MemoryRotationCache) Get(ctx context.Context) (*domain.RotationDocument, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return nil, c.err
	}
	if c.doc == nil {
		return nil, repository.ErrCacheMiss
	}
	copied := *c.doc
	return &copied, nil
}

func (c *MemoryRotationCache) Put(ctx context.Context, doc *domain.RotationDocument) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return c.err
	}
	c.doc = doc
	c.writes++
	return nil
}

// Set stores doc without counting it as a write
func (c *MemoryRotationCache) Set(doc *domain.RotationDocument) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.doc = doc
}

// FailWith makes every subsequent Get and Put return err
func (c *MemoryRotationCache) FailWith(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

// Document returns the currently stored document
func (c *MemoryRotationCache) Document() *domain.RotationDocument {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc
}

// Writes returns how many times Put succeeded
func (c *MemoryRotationCache) Writes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writes
}
