package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"weighttrack/internal/app"
)

var progressCmd = &cobra.Command{
	Use:     "progress",
	Aliases: []string{"status", "p"},
	Short:   "Show progress toward the target weight",
	RunE: func(cmd *cobra.Command, args []string) error {
		sum, err := progress.Summary(cmd.Context())
		if errors.Is(err, app.ErrSettingsNotFound) {
			return fmt.Errorf("no settings yet, run 'weighttrack setup' first")
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Fprintf(out, "%.1f kg", sum.CurrentWeight)
		fmt.Fprintf(out, "  %.1f%% of the way from %.1f to %.1f kg\n",
			sum.ProgressPercentage, sum.InitialWeight, sum.TargetWeight)
		fmt.Fprintf(out, "  lost %s kg (%.1f%%), %.1f kg to go\n",
			signed(-sum.WeightLoss), sum.WeightLossRate, sum.RemainingWeight)
		fmt.Fprintf(out, "  pace %.2f kg/week, %.2f kg/month\n", sum.WeeklyPace, sum.MonthlyPace)
		fmt.Fprintf(out, "  BMI %.1f %s, target %.1f\n", sum.CurrentBMI, faint.Sprintf("(%s)", sum.BMILabel), sum.TargetBMI)
		fmt.Fprintf(out, "  day %d, %d days left", sum.DaysElapsed, sum.DaysRemaining)
		if sum.ExpectedCompletionDate != nil {
			fmt.Fprintf(out, ", expected %s", sum.ExpectedCompletionDate.Format("2006-01-02"))
		}
		fmt.Fprintln(out)

		if sum.IsOnTrack {
			color.New(color.FgGreen).Fprintln(out, sum.Message)
		} else {
			color.New(color.FgYellow).Fprintln(out, sum.Message)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
