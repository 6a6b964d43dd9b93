package domain

import (
	"math"
	"time"
)

// BMICategory is a BMI band.
type BMICategory string

const (
	BMIUnderweight BMICategory = "underweight"
	BMINormal      BMICategory = "normal"
	BMIOverweight  BMICategory = "overweight"
	BMIObese       BMICategory = "obese"
)

// Label returns the display label of the band.
func (c BMICategory) Label() string {
	switch c {
	case BMIUnderweight:
		return "Underweight"
	case BMINormal:
		return "Normal weight"
	case BMIOverweight:
		return "Obese (grade 1)"
	case BMIObese:
		return "Obese (grade 2+)"
	}
	return string(c)
}

// CalculateBMI returns weight / (heightCm/100)^2 rounded to one decimal.
// heightCm must be positive.
func CalculateBMI(weight, heightCm float64) float64 {
	m := heightCm / 100
	return round(weight/(m*m), 1)
}

// ClassifyBMI maps a BMI value to its band. Each band includes its lower bound.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// WeightLossRate returns the loss relative to initial as a percentage,
// rounded to one decimal. initial must be positive.
func WeightLossRate(current, initial float64) float64 {
	return round((1-current/initial)*100, 1)
}

// ProgressPercentage returns how much of initial-target has been lost,
// clamped to [0, 100] and rounded to one decimal. It is 0 when there is
// nothing to lose.
func ProgressPercentage(current, initial, target float64) float64 {
	toLose := initial - target
	if toLose <= 0 {
		return 0
	}
	return round(clamp((initial-current)/toLose*100, 0, 100), 1)
}

// ExpectedCompletionDate projects when remaining kilograms are gone at
// weeklyPace. It returns nil when the pace is not positive or nothing remains.
func ExpectedCompletionDate(weeklyPace, remaining float64, now time.Time) *time.Time {
	if weeklyPace <= 0 || remaining <= 0 {
		return nil
	}
	days := int(math.Ceil(remaining / weeklyPace * 7))
	t := now.AddDate(0, 0, days)
	return &t
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
