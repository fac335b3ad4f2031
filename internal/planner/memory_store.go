package planner

import (
	"context"
	"sync"
)

var _ Store = (*MemoryStore)(nil)

type MemoryStore struct {
	mutex sync.RWMutex
	plans map[string]WeeklyPlan
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		plans: make(map[string]WeeklyPlan),
	}
}

func (s *MemoryStore) GetPlan(_ context.Context, userID string) (WeeklyPlan, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return clonePlan(s.plans[userID]), nil
}

func (s *MemoryStore) SavePlan(_ context.Context, userID string, plan WeeklyPlan) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.plans[userID] = clonePlan(plan)
	return nil
}

func clonePlan(p WeeklyPlan) WeeklyPlan {
	out := make(WeeklyPlan, len(p))
	for day, dayPlan := range p {
		out[day] = DayPlan{
			Exercises: append([]PlannedExercise{}, dayPlan.Exercises...),
		}
	}
	return out
}
