package root

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/2beens/fittracker/internal/calories"
	"github.com/2beens/fittracker/internal/workouts"

	"github.com/spf13/cobra"
)

func newEnergyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "energy",
		Short: "Estimate burned kcal",
	}
	cmd.AddCommand(newEnergySetCmd(), newEnergyLogCmd())
	return cmd
}

func newEnergySetCmd() *cobra.Command {
	var exercise string
	var reps int
	var load float64
	var bodyWeight float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Energy of a single set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if exercise == "" {
				return errors.New("--exercise is required")
			}
			if reps < 0 || load < 0 || bodyWeight <= 0 {
				return errors.New("reps and load must not be negative, body weight must be positive")
			}

			kind := "strength"
			if calories.IsCardio(exercise) {
				kind = "cardio"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, MET %.1f): %.1f kcal\n",
				exercise, kind, calories.LookupMET(exercise),
				calories.EnergyForSet(exercise, reps, load, bodyWeight),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&exercise, "exercise", "e", "", "Exercise name, e.g. \"Bench Press\"")
	cmd.Flags().IntVarP(&reps, "reps", "r", 0, "Repetitions (seconds for cardio)")
	cmd.Flags().Float64VarP(&load, "load", "l", 0, "External load in kg")
	cmd.Flags().Float64VarP(&bodyWeight, "body-weight", "w", 70, "Body weight in kg")

	return cmd
}

func newEnergyLogCmd() *cobra.Command {
	var bodyWeight float64

	cmd := &cobra.Command{
		Use:   "log <file.json>",
		Short: "Energy of an exported workout log",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("log file path is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if bodyWeight <= 0 {
				return errors.New("body weight must be positive")
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read log: %w", err)
			}
			var l workouts.WorkoutLog
			if err := json.Unmarshal(raw, &l); err != nil {
				return fmt.Errorf("parse log: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, e := range l.Exercises {
				fmt.Fprintf(out, "%-28s %d/%d sets  %7.1f kcal\n",
					e.ExerciseName, e.CompletedSetsCount(), len(e.Sets),
					calories.EnergyForExercise(e, bodyWeight),
				)
			}
			fmt.Fprintf(out, "total %s: %.1f kcal\n", l.Date, calories.EnergyForWorkout(l.Exercises, bodyWeight))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&bodyWeight, "body-weight", "w", 70, "Body weight in kg")

	return cmd
}
