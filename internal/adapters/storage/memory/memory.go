package memory

import (
	"context"
	"sync"

	"github.com/phenrril/flexlinen/internal/domain"
)

// Storage keeps snapshots in a map for the life of the process.
type Storage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func New() *Storage { return &Storage{data: map[string][]byte{}} }

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return domain.ErrNotFound
	}
	delete(s.data, key)
	return nil
}
