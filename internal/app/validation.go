package app

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/multierr"

	"weighttrack/internal/domain"
)

// ValidationError reports a field outside its accepted range.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Msg
}

// IsValidation reports whether err contains at least one ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ValidationErrors flattens err into its individual field errors.
func ValidationErrors(err error) []*ValidationError {
	var out []*ValidationError
	for _, e := range multierr.Errors(err) {
		var ve *ValidationError
		if errors.As(e, &ve) {
			out = append(out, ve)
		}
	}
	return out
}

func checkRange(field string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return &ValidationError{Field: field, Msg: fmt.Sprintf("must be between %g and %g", lo, hi)}
	}
	return nil
}

func checkOptionalRange(field string, v *float64, lo, hi float64) error {
	if v == nil {
		return nil
	}
	return checkRange(field, *v, lo, hi)
}

func checkDate(field string, t time.Time) error {
	if t.IsZero() {
		return &ValidationError{Field: field, Msg: "is required"}
	}
	return nil
}

func validateRecordInput(in domain.RecordInput) error {
	return multierr.Combine(
		checkRange("weight", in.Weight, 30, 300),
		checkOptionalRange("muscleWeight", in.MuscleWeight, 10, 150),
		checkOptionalRange("bodyFatPercentage", in.BodyFatPercentage, 1, 60),
	)
}

func validateSettingsInput(in SettingsInput) error {
	return multierr.Combine(
		checkRange("height", in.Height, 100, 250),
		checkRange("initialWeight", in.InitialWeight, 30, 300),
		checkRange("targetWeight", in.TargetWeight, 30, 300),
		checkDate("targetDate", in.TargetDate),
		checkOptionalRange("weeklyWeightLossGoal", in.WeeklyWeightLossGoal, 0, 2),
		checkOptionalRange("monthlyWeightLossGoal", in.MonthlyWeightLossGoal, 0, 10),
		checkOptionalRange("targetBMI", in.TargetBMI, 15, 40),
	)
}

func validateGoalsPatch(p domain.GoalsPatch) error {
	var dateErr error
	if p.TargetDate != nil {
		dateErr = checkDate("targetDate", *p.TargetDate)
	}
	return multierr.Combine(
		checkOptionalRange("targetWeight", p.TargetWeight, 30, 300),
		dateErr,
		checkOptionalRange("weeklyWeightLossGoal", p.WeeklyWeightLossGoal, 0, 2),
		checkOptionalRange("monthlyWeightLossGoal", p.MonthlyWeightLossGoal, 0, 10),
		checkOptionalRange("targetBMI", p.TargetBMI, 15, 40),
	)
}
