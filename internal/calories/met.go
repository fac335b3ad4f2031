package calories

import "strings"

// DefaultMET is used for exercises that match no entry in the MET table.
const DefaultMET = 4.0

type metEntry struct {
	pattern string
	met     float64
}

// metTable is matched in declaration order, first match wins.
// Do not turn this into a map: "Barbell Rowing" must resolve to "barbell row", not "rowing".
var metTable = []metEntry{
	// strength
	{"bench press", 5.0},
	{"squat", 5.0},
	{"deadlift", 6.0},
	{"overhead press", 4.5},
	{"barbell row", 5.0},
	{"lat pulldown", 4.0},
	{"leg press", 4.5},
	{"leg extension", 3.5},
	{"leg curl", 3.5},
	{"bicep curl", 3.0},
	{"tricep extension", 3.0},
	{"shoulder press", 4.5},
	{"chest press", 4.5},
	{"t-bar row", 5.0},
	{"cable fly", 3.5},
	{"lateral raise", 3.0},
	{"rear delt fly", 3.0},
	{"pull-up", 8.0},
	{"dip", 6.0},
	{"push-up", 8.0},
	{"plank", 3.0},
	{"crunch", 3.0},
	{"sit-up", 8.0},

	// cardio
	{"running", 11.5},
	{"jogging", 7.0},
	{"walking", 3.5},
	{"cycling", 8.0},
	{"rowing", 7.0},
	{"elliptical", 5.0},
	{"stair climber", 9.0},
	{"treadmill", 7.0},
	{"jump rope", 12.0},
}

var cardioKeywords = []string{
	"running",
	"cycling",
	"walking",
	"jogging",
	"elliptical",
	"treadmill",
}

// LookupMET returns the MET coefficient of the first table pattern contained
// in the lower-cased exercise name, or DefaultMET.
func LookupMET(exerciseName string) float64 {
	name := strings.ToLower(exerciseName)
	for _, e := range metTable {
		if strings.Contains(name, e.pattern) {
			return e.met
		}
	}
	return DefaultMET
}

// IsCardio reports whether the exercise is timed at one second per rep.
func IsCardio(exerciseName string) bool {
	name := strings.ToLower(exerciseName)
	for _, kw := range cardioKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
