package profile

import (
	"errors"
	"fmt"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

const (
	DefaultWeight = 70.0
	DefaultHeight = 170.0
	DefaultAge    = 25
	DefaultGender = GenderMale
)

var (
	ErrEmptyUserID   = errors.New("empty user id")
	ErrInvalidPatch  = errors.New("invalid profile update")
	ErrEmptyPatch    = errors.New("empty profile update")
	ErrUnknownGender = errors.New("unknown gender")
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// UserProfile is the single body profile a user has. Weight is in kg, height in cm.
type UserProfile struct {
	Weight    float64   `json:"weight"`
	Height    float64   `json:"height"`
	Age       *int      `json:"age,omitempty"`
	Gender    Gender    `json:"gender,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewDefaultProfile(now time.Time) UserProfile {
	age := DefaultAge
	return UserProfile{
		Weight:    DefaultWeight,
		Height:    DefaultHeight,
		Age:       &age,
		Gender:    DefaultGender,
		UpdatedAt: now.UTC(),
	}
}

func (p UserProfile) AgeOrDefault() int {
	if p.Age == nil {
		return DefaultAge
	}
	return *p.Age
}

func (p UserProfile) GenderOrDefault() Gender {
	if p.Gender == "" {
		return DefaultGender
	}
	return p.Gender
}

// Patch is a partial profile update, nil fields are left untouched.
type Patch struct {
	Weight *float64 `json:"weight,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Age    *int     `json:"age,omitempty"`
	Gender *Gender  `json:"gender,omitempty"`
}

func (p Patch) IsEmpty() bool {
	return p.Weight == nil && p.Height == nil && p.Age == nil && p.Gender == nil
}

func (p Patch) Validate() error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}
	if p.Weight != nil && *p.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidPatch)
	}
	if p.Height != nil && *p.Height <= 0 {
		return fmt.Errorf("%w: height must be positive", ErrInvalidPatch)
	}
	if p.Age != nil && *p.Age <= 0 {
		return fmt.Errorf("%w: age must be positive", ErrInvalidPatch)
	}
	if p.Gender != nil && !p.Gender.Valid() {
		return fmt.Errorf("%w: %w [%s]", ErrInvalidPatch, ErrUnknownGender, *p.Gender)
	}
	return nil
}

// Apply returns a copy of the profile with the patch applied.
func (p Patch) Apply(profile UserProfile) UserProfile {
	if p.Weight != nil {
		profile.Weight = *p.Weight
	}
	if p.Height != nil {
		profile.Height = *p.Height
	}
	if p.Age != nil {
		age := *p.Age
		profile.Age = &age
	}
	if p.Gender != nil {
		profile.Gender = *p.Gender
	}
	return profile
}
