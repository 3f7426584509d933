package history

import (
	"context"
	"errors"
	"sort"
	"sync"
)

var errNotInitialized = errors.New("store is not initialized")

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	episodes    map[string]Episode
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.episodes = make(map[string]Episode)
	return nil
}

func (s *MemoryStore) SaveEpisode(_ context.Context, ep Episode) error {
	if ep.ID == "" {
		return errors.New("episode id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errNotInitialized
	}
	s.episodes[ep.ID] = ep
	return nil
}

func (s *MemoryStore) GetEpisode(_ context.Context, id string) (Episode, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return Episode{}, false, errNotInitialized
	}
	ep, ok := s.episodes[id]
	return ep, ok, nil
}

func (s *MemoryStore) ListEpisodes(_ context.Context, limit int) ([]Episode, error) {
	s.mu.RLock()
	if !s.initialized {
		s.mu.RUnlock()
		return nil, errNotInitialized
	}
	out := make([]Episode, 0, len(s.episodes))
	for _, ep := range s.episodes {
		out = append(out, ep)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].EndedAt.Equal(out[j].EndedAt) {
			return out[i].EndedAt.After(out[j].EndedAt)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }
