package calories

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/2beens/fittracker/internal/profile"
)

// DefaultActivityFactor corresponds to a moderately active lifestyle.
const DefaultActivityFactor = 1.5

var ErrInvalidProfile = errors.New("invalid profile")

// activityFactors maps named activity levels to TDEE multipliers.
var activityFactors = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// ActivityFactorFor resolves a named activity level. Empty or unknown levels
// fall back to DefaultActivityFactor, ok reports whether the level was known.
func ActivityFactorFor(level string) (factor float64, ok bool) {
	factor, ok = activityFactors[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		return DefaultActivityFactor, false
	}
	return factor, true
}

// ValidateProfile checks the fields BMR cannot default.
func ValidateProfile(p profile.UserProfile) error {
	if p.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidProfile)
	}
	if p.Height <= 0 {
		return fmt.Errorf("%w: height must be positive", ErrInvalidProfile)
	}
	return nil
}

// BMR computes the basal metabolic rate (kcal/day) using the Mifflin-St Jeor
// equation. Missing age and gender default to 25 and male.
func BMR(p profile.UserProfile) int {
	bmr := 10*p.Weight + 6.25*p.Height - 5*float64(p.AgeOrDefault())
	if p.GenderOrDefault() == profile.GenderFemale {
		bmr -= 161
	} else {
		bmr += 5
	}
	return roundHalfUp(bmr)
}

// TDEE scales BMR by the activity factor.
func TDEE(p profile.UserProfile, activityFactor float64) int {
	return roundHalfUp(float64(BMR(p)) * activityFactor)
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
