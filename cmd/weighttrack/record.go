package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"weighttrack/internal/app"
	"weighttrack/internal/domain"
)

var (
	recordAt     string
	recordMuscle float64
	recordFat    float64
)

var recordCmd = &cobra.Command{
	Use:     "record <weight>",
	Aliases: []string{"add", "a"},
	Short:   "Record the weight of a day",
	Long: `Record a weight in kg. A second record on the same calendar day replaces
the first one.

EXAMPLES:

  weighttrack record 81.4
  weighttrack record 81.1 --at 2026-03-14
  weighttrack record 80.9 --muscle 35.2 --fat 24.5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[0])
		}

		in := domain.RecordInput{Weight: weight}
		if recordAt != "" {
			if in.Date, err = parseTime(recordAt); err != nil {
				return fmt.Errorf("invalid timestamp: %s", recordAt)
			}
		}
		if cmd.Flags().Changed("muscle") {
			in.MuscleWeight = &recordMuscle
		}
		if cmd.Flags().Changed("fat") {
			in.BodyFatPercentage = &recordFat
		}

		rec, err := records.Record(cmd.Context(), in)
		if errors.Is(err, app.ErrSettingsNotFound) {
			return fmt.Errorf("no settings yet, run 'weighttrack setup' first")
		}
		if err != nil {
			return checkValidation(cmd, err)
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Recorded %.1f kg\n", rec.Weight)
		fmt.Fprintf(out, "  %s BMI %.1f (%s)\n",
			color.New(color.Faint).Sprint(rec.ID),
			rec.BMI, domain.ClassifyBMI(rec.BMI).Label())
		return nil
	},
}

// parseTime accepts the date layouts the CLI documents. Layouts without a
// zone are read in local time.
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		time.DateOnly,
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func init() {
	recordCmd.Flags().StringVar(&recordAt, "at", "", "timestamp (YYYY-MM-DD [HH:MM])")
	recordCmd.Flags().Float64Var(&recordMuscle, "muscle", 0, "muscle mass in kg")
	recordCmd.Flags().Float64Var(&recordFat, "fat", 0, "body fat percentage")
	rootCmd.AddCommand(recordCmd)
}
