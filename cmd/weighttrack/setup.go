package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"weighttrack/internal/app"
)

var (
	setupHeight     float64
	setupInitial    float64
	setupTarget     float64
	setupTargetDate string
	setupWeekly     float64
	setupMonthly    float64
	setupBMI        float64
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Save height, starting weight and goal",
	Long: `Save the user settings. Running setup again replaces every field; the
original creation time is kept.

EXAMPLES:

  weighttrack setup --height 175 --initial 82 --target 72 --target-date 2026-09-01
  weighttrack setup --height 175 --initial 82 --target 72 --target-date 2026-09-01 --weekly 0.5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		targetDate, err := parseTime(setupTargetDate)
		if err != nil {
			return fmt.Errorf("invalid --target-date: %s", setupTargetDate)
		}

		in := app.SettingsInput{
			Height:        setupHeight,
			InitialWeight: setupInitial,
			TargetWeight:  setupTarget,
			TargetDate:    targetDate,
		}
		if cmd.Flags().Changed("weekly") {
			in.WeeklyWeightLossGoal = &setupWeekly
		}
		if cmd.Flags().Changed("monthly") {
			in.MonthlyWeightLossGoal = &setupMonthly
		}
		if cmd.Flags().Changed("bmi") {
			in.TargetBMI = &setupBMI
		}

		s, err := settings.Save(cmd.Context(), in)
		if err != nil {
			return checkValidation(cmd, err)
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintln(out, "✓ Settings saved")
		fmt.Fprintf(out, "  height %.1f cm, %.1f kg → %.1f kg by %s\n",
			s.Height, s.InitialWeight, s.TargetWeight, s.TargetDate.Format("2006-01-02"))
		return nil
	},
}

func init() {
	f := setupCmd.Flags()
	f.Float64Var(&setupHeight, "height", 0, "height in cm")
	f.Float64Var(&setupInitial, "initial", 0, "starting weight in kg")
	f.Float64Var(&setupTarget, "target", 0, "target weight in kg")
	f.StringVar(&setupTargetDate, "target-date", "", "target date (YYYY-MM-DD)")
	f.Float64Var(&setupWeekly, "weekly", 0, "weekly loss goal in kg")
	f.Float64Var(&setupMonthly, "monthly", 0, "monthly loss goal in kg")
	f.Float64Var(&setupBMI, "bmi", 0, "target BMI")
	_ = setupCmd.MarkFlagRequired("height")
	_ = setupCmd.MarkFlagRequired("initial")
	_ = setupCmd.MarkFlagRequired("target")
	_ = setupCmd.MarkFlagRequired("target-date")
	rootCmd.AddCommand(setupCmd)
}
