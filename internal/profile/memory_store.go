package profile

import (
	"context"
	"sync"
)

var _ Store = (*MemoryStore)(nil)

type MemoryStore struct {
	mutex    sync.RWMutex
	profiles map[string]UserProfile
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]UserProfile),
	}
}

func (s *MemoryStore) GetProfile(_ context.Context, userID string) (*UserProfile, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	p, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	return cloneProfile(p), nil
}

func (s *MemoryStore) SaveProfile(_ context.Context, userID string, profile UserProfile) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.profiles[userID] = *cloneProfile(profile)
	return nil
}

func cloneProfile(p UserProfile) *UserProfile {
	c := p
	if p.Age != nil {
		age := *p.Age
		c.Age = &age
	}
	return &c
}
