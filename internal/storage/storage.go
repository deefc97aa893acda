package storage

import (
	"context"
	"sync"

	"github.com/carson-networks/bank-server/internal/registry"
)

// Storage guards a registry for concurrent use. Any number of Readers may be
// open at once; a Writer excludes everything else until it is closed.
type Storage struct {
	mu       sync.RWMutex
	registry *registry.Registry
}

func NewStorage(reg *registry.Registry) *Storage {
	return &Storage{registry: reg}
}

// Read opens shared access to the registry. The Reader must be closed.
func (s *Storage) Read(ctx context.Context) (*Reader, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	if err := ctx.Err(); err != nil {
		s.mu.RUnlock()
		return nil, err
	}
	return newReader(s.registry, s.mu.RUnlock), nil
}

// Write opens exclusive access to the registry. The Writer must be closed.
// ctx is checked again once the lock is held, so a caller that gave up while
// waiting never gets a Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	if err := ctx.Err(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	return newWriter(s.registry, s.mu.Unlock), nil
}
