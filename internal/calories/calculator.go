package calories

import (
	"math"

	"github.com/2beens/fittracker/internal/workouts"
)

const (
	strengthSecondsPerRep = 3
	cardioSecondsPerRep   = 1
	maxLoadMultiplier     = 1.5
)

// EnergyForSet estimates kcal burned by a single completed set:
//
//	kcal = MET × body weight (kg) × duration (h)
//
// Duration is derived from reps (3s per rep for strength, 1s for cardio).
// Strength sets done with external load get MET scaled by up to 50%.
// Inputs are expected to be non-negative, nothing is validated here.
func EnergyForSet(exerciseName string, reps int, loadKg, bodyWeightKg float64) float64 {
	met := LookupMET(exerciseName)
	cardio := IsCardio(exerciseName)

	secondsPerRep := strengthSecondsPerRep
	if cardio {
		secondsPerRep = cardioSecondsPerRep
	}
	durationHours := float64(reps*secondsPerRep) / 3600

	if !cardio && loadKg > 0 {
		met *= math.Min(1+loadKg/(bodyWeightKg*2), maxLoadMultiplier)
	}

	return roundTenth(met * bodyWeightKg * durationHours)
}

// EnergyForExercise sums the energy of all completed sets of one entry.
func EnergyForExercise(entry workouts.ExerciseEntry, bodyWeightKg float64) float64 {
	if !entry.HasCompletedSets() {
		return 0
	}

	total := 0.0
	for _, set := range entry.Sets {
		if !set.Completed {
			continue
		}
		total += EnergyForSet(entry.ExerciseName, set.Reps, set.Weight, bodyWeightKg)
	}

	return roundTenth(total)
}

// EnergyForWorkout sums the energy of all entries of a day's log. Entries
// without a completed set are skipped, and the result is 0 unless at least
// one set in the whole workout is completed.
func EnergyForWorkout(entries []workouts.ExerciseEntry, bodyWeightKg float64) float64 {
	if len(entries) == 0 {
		return 0
	}

	total := 0.0
	hasCompletedSets := false
	for _, entry := range entries {
		if !entry.HasCompletedSets() {
			continue
		}
		hasCompletedSets = true
		total += EnergyForExercise(entry, bodyWeightKg)
	}

	if !hasCompletedSets {
		return 0
	}
	return roundTenth(total)
}

// roundTenth rounds half up to one decimal place.
func roundTenth(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
