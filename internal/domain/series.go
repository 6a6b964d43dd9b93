package domain

import "time"

// DateRange selects a chart window ending now.
type DateRange string

const (
	RangeWeek     DateRange = "1week"
	RangeMonth    DateRange = "1month"
	RangeHalfYear DateRange = "6months"
	RangeYear     DateRange = "1year"
)

// Start returns the exclusive lower bound of the window. Unknown ranges use
// one month. Month and year windows end on the last day of a shorter month,
// so the month before March 31 starts on February 28 or 29.
func (r DateRange) Start(now time.Time) time.Time {
	switch r {
	case RangeWeek:
		return now.AddDate(0, 0, -7)
	case RangeHalfYear:
		return subMonths(now, 6)
	case RangeYear:
		return subMonths(now, 12)
	default:
		return subMonths(now, 1)
	}
}

// subMonths moves t back n calendar months, keeping the clock time and
// clamping the day to the length of the target month.
func subMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m-time.Month(n), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1).Day()
	hh, mm, ss := t.Clock()
	return time.Date(first.Year(), first.Month(), min(d, last), hh, mm, ss, t.Nanosecond(), t.Location())
}

// Label returns the display label of the range.
func (r DateRange) Label() string {
	switch r {
	case RangeWeek:
		return "1 week"
	case RangeHalfYear:
		return "6 months"
	case RangeYear:
		return "1 year"
	default:
		return "1 month"
	}
}

// FilterByRange keeps the records dated strictly after r.Start(now).
func FilterByRange(records []WeightRecord, r DateRange, now time.Time) []WeightRecord {
	start := r.Start(now)
	out := make([]WeightRecord, 0, len(records))
	for _, rec := range records {
		if rec.Date.After(start) {
			out = append(out, rec)
		}
	}
	return out
}

// ChartPoint is a single record projected for charting.
type ChartPoint struct {
	Date              time.Time `json:"date"`
	Weight            float64   `json:"weight"`
	BMI               float64   `json:"bmi"`
	MuscleMass        *float64  `json:"muscleMass,omitempty"`
	BodyFatPercentage *float64  `json:"bodyFatPercentage,omitempty"`
}

// FormatSeries projects records to chart points ordered oldest first.
func FormatSeries(records []WeightRecord) []ChartPoint {
	sorted := SortedOldestFirst(records)
	out := make([]ChartPoint, len(sorted))
	for i, r := range sorted {
		out[i] = ChartPoint{
			Date:              r.Date,
			Weight:            r.Weight,
			BMI:               r.BMI,
			MuscleMass:        r.MuscleWeight,
			BodyFatPercentage: r.BodyFatPercentage,
		}
	}
	return out
}

// SeriesField names a numeric record field a trend can be computed over.
type SeriesField string

const (
	FieldWeight            SeriesField = "weight"
	FieldBMI               SeriesField = "bmi"
	FieldMuscleWeight      SeriesField = "muscleWeight"
	FieldBodyFatPercentage SeriesField = "bodyFatPercentage"
)

func (f SeriesField) value(r WeightRecord) (float64, bool) {
	switch f {
	case FieldWeight:
		return r.Weight, true
	case FieldBMI:
		return r.BMI, true
	case FieldMuscleWeight:
		if r.MuscleWeight != nil {
			return *r.MuscleWeight, true
		}
	case FieldBodyFatPercentage:
		if r.BodyFatPercentage != nil {
			return *r.BodyFatPercentage, true
		}
	}
	return 0, false
}

// Trend returns the last minus the first value of field across records in
// date order. It is 0 for fewer than two records or when either end lacks
// the field.
func Trend(records []WeightRecord, field SeriesField) float64 {
	if len(records) < 2 {
		return 0
	}
	sorted := SortedOldestFirst(records)
	first, ok1 := field.value(sorted[0])
	last, ok2 := field.value(sorted[len(sorted)-1])
	if !ok1 || !ok2 {
		return 0
	}
	return last - first
}
