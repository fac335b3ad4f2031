package root

import (
	"fmt"

	"github.com/2beens/fittracker/internal/calories"
	"github.com/2beens/fittracker/internal/profile"

	"github.com/spf13/cobra"
)

func newBMRCmd() *cobra.Command {
	var weight float64
	var height float64
	var age int
	var gender string
	var activity string

	cmd := &cobra.Command{
		Use:   "bmr",
		Short: "Basal metabolic rate and daily energy expenditure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := profile.UserProfile{
				Weight: weight,
				Height: height,
				Gender: profile.Gender(gender),
			}
			if age > 0 {
				p.Age = &age
			}
			if gender != "" && !p.Gender.Valid() {
				return fmt.Errorf("%w: %s", profile.ErrUnknownGender, gender)
			}
			if err := calories.ValidateProfile(p); err != nil {
				return err
			}

			factor, ok := calories.ActivityFactorFor(activity)
			if !ok && activity != "" {
				return fmt.Errorf("unknown activity level: %s", activity)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "BMR:  %d kcal/day\n", calories.BMR(p))
			fmt.Fprintf(out, "TDEE: %d kcal/day (x%.3g)\n", calories.TDEE(p, factor), factor)
			return nil
		},
	}

	cmd.Flags().Float64Var(&weight, "weight", profile.DefaultWeight, "Body weight in kg")
	cmd.Flags().Float64Var(&height, "height", profile.DefaultHeight, "Height in cm")
	cmd.Flags().IntVar(&age, "age", 0, "Age in years (default 25)")
	cmd.Flags().StringVar(&gender, "gender", "", "male|female|other (default male)")
	cmd.Flags().StringVarP(&activity, "activity", "a", "", "sedentary|light|moderate|active|very_active")

	return cmd
}
