package store

import (
	"context"
	"sync"

	"study-tracker/internal/model"
)

// MemStore is an in-memory Store with the same contract as GormStore,
// used by tests and throwaway setups.
type MemStore struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewMemStore() *MemStore {
	return &MemStore{users: make(map[string]model.User)}
}

func (s *MemStore) FindUser(ctx context.Context, name string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[name]
	if !ok {
		return nil, ErrNotFound
	}
	cp := model.User{
		Name:      u.Name,
		Subjects:  append([]byte(nil), u.Subjects...),
		DailyLogs: append([]byte(nil), u.DailyLogs...),
	}
	return &cp, nil
}

func (s *MemStore) SaveUser(ctx context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.Name] = model.User{
		Name:      u.Name,
		Subjects:  append([]byte(nil), u.Subjects...),
		DailyLogs: append([]byte(nil), u.DailyLogs...),
	}
	return nil
}
