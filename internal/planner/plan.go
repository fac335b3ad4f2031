package planner

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

var (
	ErrEmptyUserID    = errors.New("empty user id")
	ErrUnknownWeekday = errors.New("unknown weekday")
	ErrInvalidPlan    = errors.New("invalid plan")
)

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

type PlannedExercise struct {
	ID           string `json:"id"`
	ExerciseID   string `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`
	Order        int    `json:"order"`
}

type DayPlan struct {
	Exercises []PlannedExercise `json:"exercises"`
}

// WeeklyPlan maps a lower-case weekday name to what is planned that day.
// It is descriptive only, nothing is logged until the user asks for it.
type WeeklyPlan map[string]DayPlan

// Weekday returns the lower-case weekday name of a YYYY-MM-DD date.
func Weekday(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}

func isWeekday(day string) bool {
	for _, d := range weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// Normalize lower-cases the day keys and validates them and their entries.
func (p WeeklyPlan) Normalize() (WeeklyPlan, error) {
	out := make(WeeklyPlan, len(p))
	for day, dayPlan := range p {
		key := strings.ToLower(strings.TrimSpace(day))
		if !isWeekday(key) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWeekday, day)
		}
		for _, e := range dayPlan.Exercises {
			if e.ExerciseID == "" {
				return nil, fmt.Errorf("%w: %s has an exercise without exerciseId", ErrInvalidPlan, key)
			}
		}
		exercises := append(out[key].Exercises, dayPlan.Exercises...)
		out[key] = DayPlan{Exercises: exercises}
	}
	return out, nil
}

// ForDay returns the day's planned exercises sorted by their order.
func (p WeeklyPlan) ForDay(day string) []PlannedExercise {
	planned := append([]PlannedExercise(nil), p[strings.ToLower(day)].Exercises...)
	sort.SliceStable(planned, func(i, j int) bool {
		return planned[i].Order < planned[j].Order
	})
	return planned
}
