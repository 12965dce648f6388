package main

import (
	"fmt"

	"github.com/2beens/liftlog/internal/gymstats/exercises"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	exerciseName        string
	exerciseMuscleGroup string
	exerciseDirection   string
	exerciseSplit       bool
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Manage the exercise catalogue",
}

var exerciseAddGlobalCmd = &cobra.Command{
	Use:   "add-global",
	Short: "Add an exercise visible to every user",
	Example: `  liftlogctl exercise add-global --name "Bench Press" --muscle-group chest
  liftlogctl exercise add-global --name "Assisted Pull-up" --direction decrease
  liftlogctl exercise add-global --name "Bulgarian Split Squat" --split`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exercise, err := exercises.ExercisePayload{
			Name:          exerciseName,
			MuscleGroup:   exerciseMuscleGroup,
			Direction:     exerciseDirection,
			SplitTracking: exerciseSplit,
		}.ToExercise()
		if err != nil {
			return err
		}

		added, err := exercises.NewRepo(dbPool).AddGlobal(cmd.Context(), exercise)
		if err != nil {
			return err
		}

		color.Green("✓ Added global exercise %s", added.Name)
		fmt.Printf("  %s %d  %s  %s\n",
			color.New(color.Faint).Sprint("id"),
			added.ID,
			added.Direction,
			added.MuscleGroup,
		)
		return nil
	},
}

func init() {
	exerciseAddGlobalCmd.Flags().StringVar(&exerciseName, "name", "", "exercise name")
	exerciseAddGlobalCmd.Flags().StringVar(&exerciseMuscleGroup, "muscle-group", "", "muscle group")
	exerciseAddGlobalCmd.Flags().StringVar(&exerciseDirection, "direction", "", "increase (default) or decrease")
	exerciseAddGlobalCmd.Flags().BoolVar(&exerciseSplit, "split", false, "track left and right sides separately")
	_ = exerciseAddGlobalCmd.MarkFlagRequired("name")

	exerciseCmd.AddCommand(exerciseAddGlobalCmd)
	rootCmd.AddCommand(exerciseCmd)
}
