package catalog

import (
	"context"
	"errors"
	"strings"
)

type Category string

const (
	CategoryStrength    Category = "strength"
	CategoryCardio      Category = "cardio"
	CategoryFlexibility Category = "flexibility"
	CategoryOther       Category = "other"
)

var ErrExerciseNotFound = errors.New("exercise not found")

type Exercise struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	MuscleGroups []string `json:"muscleGroups,omitempty"`
	Description  string   `json:"description,omitempty"`
}

type ListParams struct {
	Category Category
	// Query is matched case-insensitively against the exercise name.
	Query string
}

// Catalog is the read-only set of exercises users pick from.
type Catalog struct {
	exercises []Exercise
	byID      map[string]int
}

// New builds the catalog from the builtin exercise list.
func New() *Catalog {
	return NewWithExercises(builtin)
}

func NewWithExercises(exercises []Exercise) *Catalog {
	c := &Catalog{
		exercises: make([]Exercise, len(exercises)),
		byID:      make(map[string]int, len(exercises)),
	}
	for i, e := range exercises {
		c.exercises[i] = cloneExercise(e)
		c.byID[e.ID] = i
	}
	return c
}

func (c *Catalog) Count() int {
	return len(c.exercises)
}

// ListExercises returns matching exercises in catalog order.
func (c *Catalog) ListExercises(_ context.Context, params ListParams) ([]Exercise, error) {
	query := strings.ToLower(strings.TrimSpace(params.Query))
	out := make([]Exercise, 0, len(c.exercises))
	for _, e := range c.exercises {
		if params.Category != "" && e.Category != params.Category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(e.Name), query) {
			continue
		}
		out = append(out, cloneExercise(e))
	}
	return out, nil
}

func (c *Catalog) GetExercise(_ context.Context, id string) (*Exercise, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, ErrExerciseNotFound
	}
	e := cloneExercise(c.exercises[i])
	return &e, nil
}

func cloneExercise(e Exercise) Exercise {
	if e.MuscleGroups != nil {
		e.MuscleGroups = append([]string(nil), e.MuscleGroups...)
	}
	return e
}
