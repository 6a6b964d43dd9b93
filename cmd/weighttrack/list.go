package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"weighttrack/internal/domain"
)

var (
	listLimit int
	listRange string
	listUnit  string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List weight records",
	Long: `List weight records, newest first.

With --range the records of a chart window are listed oldest first,
converted to --unit, followed by the change over the window.

EXAMPLES:

  weighttrack list                 # all records
  weighttrack list -n 7            # last 7 records
  weighttrack list --range 1month  # 1week, 1month, 6months or 1year
  weighttrack list --range 1year --unit lb`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listRange != "" {
			return listSeries(cmd)
		}

		items, err := records.List(cmd.Context(), listLimit)
		if err != nil {
			return fmt.Errorf("failed to list records: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(items) == 0 {
			fmt.Fprintln(out, "No records found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range items {
			fmt.Fprintf(out, "%s %s %6.1f kg  BMI %4.1f%s\n",
				faint.Sprint(r.ID),
				faint.Sprint(r.Date.Format("2006-01-02 15:04")),
				r.Weight, r.BMI, composition(r.MuscleWeight, r.BodyFatPercentage))
		}
		return nil
	},
}

func listSeries(cmd *cobra.Command) error {
	s, err := charts.Series(cmd.Context(), domain.DateRange(listRange), listUnit)
	if err != nil {
		return checkValidation(cmd, err)
	}

	out := cmd.OutOrStdout()
	color.New(color.Bold).Fprintf(out, "Last %s (%s)\n", s.Label, s.Unit)
	if len(s.Points) == 0 {
		fmt.Fprintln(out, "No records in this range.")
		return nil
	}
	faint := color.New(color.Faint)
	for _, p := range s.Points {
		fmt.Fprintf(out, "%s %6.1f %s  BMI %4.1f%s\n",
			faint.Sprint(p.Date.Format("2006-01-02")), p.Weight, s.Unit, p.BMI,
			composition(p.MuscleMass, p.BodyFatPercentage))
	}
	fmt.Fprintf(out, "Change: %s %s, BMI %+.1f\n", signed(s.Trends.Weight), s.Unit, s.Trends.BMI)
	return nil
}

func composition(muscle, fat *float64) string {
	s := ""
	if muscle != nil {
		s += fmt.Sprintf("  muscle %.1f", *muscle)
	}
	if fat != nil {
		s += fmt.Sprintf("  fat %.1f%%", *fat)
	}
	return s
}

// signed colours losses green and gains red.
func signed(v float64) string {
	switch {
	case v < 0:
		return color.GreenString("%+.1f", v)
	case v > 0:
		return color.RedString("%+.1f", v)
	default:
		return "±0.0"
	}
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "maximum number of records (0 for all)")
	listCmd.Flags().StringVarP(&listRange, "range", "r", "", "chart window: 1week, 1month, 6months, 1year")
	listCmd.Flags().StringVarP(&listUnit, "unit", "u", domain.UnitKg, "unit for --range output: kg or lb")
	rootCmd.AddCommand(listCmd)
}
