package workouts

import "errors"

var (
	ErrLogNotFound   = errors.New("workout log not found")
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
	ErrEmptyUserID   = errors.New("user id empty")
	ErrLogIDEmpty    = errors.New("workout log id empty")
	ErrEmptyLogPatch = errors.New("workout log patch empty")
	ErrInvalidEntry  = errors.New("invalid exercise entry")
)
