package workouts

import (
	"fmt"
	"sort"
	"time"
)

// DateLayout is the calendar date format used as the per-user log key.
const DateLayout = "2006-01-02"

type Set struct {
	ID        string  `json:"id"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Completed bool    `json:"completed"`
}

// ExerciseEntry is one exercise performed within a single day's log.
type ExerciseEntry struct {
	ID           string `json:"id"`
	ExerciseID   string `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`
	Sets         []Set  `json:"sets"`
	Notes        string `json:"notes,omitempty"`
}

func (e ExerciseEntry) HasCompletedSets() bool {
	for _, s := range e.Sets {
		if s.Completed {
			return true
		}
	}
	return false
}

func (e ExerciseEntry) CompletedSetsCount() int {
	count := 0
	for _, s := range e.Sets {
		if s.Completed {
			count++
		}
	}
	return count
}

// WorkoutLog holds everything done on one calendar date.
// There is at most one log per user and date.
type WorkoutLog struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Exercises []ExerciseEntry `json:"exercises"`
	Duration  *int            `json:"duration,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// HasExercise reports whether an entry for the catalog exercise is already in the log.
func (l *WorkoutLog) HasExercise(exerciseID string) bool {
	for _, e := range l.Exercises {
		if e.ExerciseID == exerciseID {
			return true
		}
	}
	return false
}

// LogPatch is a partial update, nil fields are left untouched.
type LogPatch struct {
	Exercises []ExerciseEntry `json:"exercises,omitempty"`
	Duration  *int            `json:"duration,omitempty"`
	Notes     *string         `json:"notes,omitempty"`
}

func (p LogPatch) IsEmpty() bool {
	return p.Exercises == nil && p.Duration == nil && p.Notes == nil
}

// Apply returns a copy of the log with the patch applied.
func (p LogPatch) Apply(log WorkoutLog) WorkoutLog {
	if p.Exercises != nil {
		log.Exercises = p.Exercises
	}
	if p.Duration != nil {
		d := *p.Duration
		log.Duration = &d
	}
	if p.Notes != nil {
		log.Notes = *p.Notes
	}
	return log
}

// Summary is the set counting shown next to a day's log.
type Summary struct {
	Exercises     int `json:"exercises"`
	TotalSets     int `json:"totalSets"`
	CompletedSets int `json:"completedSets"`
}

func (l *WorkoutLog) Summary() Summary {
	s := Summary{Exercises: len(l.Exercises)}
	for _, e := range l.Exercises {
		s.TotalSets += len(e.Sets)
		s.CompletedSets += e.CompletedSetsCount()
	}
	return s
}

// HistoryStats is the summary of a user's whole training history.
type HistoryStats struct {
	Workouts int `json:"workouts"`
	Summary
}

func SummarizeLogs(logs []WorkoutLog) HistoryStats {
	stats := HistoryStats{Workouts: len(logs)}
	for i := range logs {
		s := logs[i].Summary()
		stats.Exercises += s.Exercises
		stats.TotalSets += s.TotalSets
		stats.CompletedSets += s.CompletedSets
	}
	return stats
}

// ParseDate validates a YYYY-MM-DD calendar date.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return t, nil
}

// sortByDateDesc orders logs newest date first, YYYY-MM-DD sorts lexically.
func sortByDateDesc(logs []WorkoutLog) {
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Date > logs[j].Date
	})
}

func cloneLog(l WorkoutLog) WorkoutLog {
	c := l
	c.Exercises = cloneEntries(l.Exercises)
	if l.Duration != nil {
		d := *l.Duration
		c.Duration = &d
	}
	return c
}

func cloneEntries(entries []ExerciseEntry) []ExerciseEntry {
	if entries == nil {
		return nil
	}
	out := make([]ExerciseEntry, len(entries))
	for i, e := range entries {
		out[i] = e
		if e.Sets != nil {
			out[i].Sets = append(make([]Set, 0, len(e.Sets)), e.Sets...)
		}
	}
	return out
}

// ValidateEntries checks what a client sends before it reaches a store.
func ValidateEntries(entries []ExerciseEntry) error {
	for i, e := range entries {
		if e.ExerciseID == "" {
			return fmt.Errorf("%w: entry %d has no exerciseId", ErrInvalidEntry, i)
		}
		for j, s := range e.Sets {
			if s.Reps <= 0 {
				return fmt.Errorf("%w: entry %d set %d reps must be positive", ErrInvalidEntry, i, j)
			}
			if s.Weight < 0 {
				return fmt.Errorf("%w: entry %d set %d weight must not be negative", ErrInvalidEntry, i, j)
			}
		}
	}
	return nil
}

// FillMissingIDs gives entries and sets without an id a fresh one, in place.
func FillMissingIDs(entries []ExerciseEntry, newID func() string) {
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = newID()
		}
		if entries[i].Sets == nil {
			entries[i].Sets = []Set{}
		}
		for j := range entries[i].Sets {
			if entries[i].Sets[j].ID == "" {
				entries[i].Sets[j].ID = newID()
			}
		}
	}
}
