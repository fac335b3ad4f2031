package workouts

import (
	"context"
	"sync"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps logs in process memory. Used for guest mode and as a test double.
type MemoryStore struct {
	mutex sync.RWMutex
	// user id -> log id -> log
	logs map[string]map[string]WorkoutLog
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		logs: make(map[string]map[string]WorkoutLog),
	}
}

func (s *MemoryStore) GetLogs(_ context.Context, userID string) ([]WorkoutLog, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	logs := make([]WorkoutLog, 0, len(s.logs[userID]))
	for _, l := range s.logs[userID] {
		logs = append(logs, cloneLog(l))
	}
	return logs, nil
}

func (s *MemoryStore) GetLogByDate(_ context.Context, userID, date string) (*WorkoutLog, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, l := range s.logs[userID] {
		if l.Date == date {
			found := cloneLog(l)
			return &found, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) GetLog(_ context.Context, userID, id string) (*WorkoutLog, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	l, ok := s.logs[userID][id]
	if !ok {
		return nil, ErrLogNotFound
	}
	found := cloneLog(l)
	return &found, nil
}

func (s *MemoryStore) CreateLog(_ context.Context, userID string, log WorkoutLog) (*WorkoutLog, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if log.ID == "" {
		return nil, ErrLogIDEmpty
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.logs[userID] == nil {
		s.logs[userID] = make(map[string]WorkoutLog)
	}
	s.logs[userID][log.ID] = cloneLog(log)

	created := cloneLog(log)
	return &created, nil
}

func (s *MemoryStore) UpdateLog(_ context.Context, userID, id string, patch LogPatch) (*WorkoutLog, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, ok := s.logs[userID][id]
	if !ok {
		return nil, ErrLogNotFound
	}

	patch.Exercises = cloneEntries(patch.Exercises)
	updated := patch.Apply(current)
	s.logs[userID][id] = updated

	result := cloneLog(updated)
	return &result, nil
}

func (s *MemoryStore) DeleteLog(_ context.Context, userID, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.logs[userID][id]; !ok {
		return ErrLogNotFound
	}
	delete(s.logs[userID], id)
	return nil
}
