package domain

import (
	"time"
)

// EvaluateProgress derives the progress snapshot for records against the
// goals in s as of now. records may be in any order.
//
// Division hazards degrade to neutral values: pace is 0 until at least one
// whole day has passed since the first record, progress is 0 when the target
// is not below the initial weight, and no completion date is projected
// without positive pace and remaining weight.
func EvaluateProgress(records []WeightRecord, s UserSettings, now time.Time) ProgressSnapshot {
	daysRemaining := max(0, daysBetween(s.TargetDate, now))

	if len(records) == 0 {
		return ProgressSnapshot{
			CurrentWeight:   s.InitialWeight,
			RemainingWeight: max(0, s.InitialWeight-s.TargetWeight),
			DaysRemaining:   daysRemaining,
			IsOnTrack:       true,
		}
	}

	sorted := SortedOldestFirst(records)
	current := sorted[len(sorted)-1].Weight

	totalLoss := s.InitialWeight - current
	remaining := current - s.TargetWeight
	toLose := s.InitialWeight - s.TargetWeight

	var pct float64
	if toLose > 0 {
		pct = totalLoss / toLose * 100
	}

	daysElapsed := daysBetween(now, sorted[0].Date)
	var weekly, monthly float64
	if daysElapsed > 0 {
		weekly = totalLoss * 7 / float64(daysElapsed)
		monthly = totalLoss * 30 / float64(daysElapsed)
	}

	// Required pace compares against what is still left, not the original plan.
	var required float64
	if daysRemaining > 0 {
		required = remaining * 7 / float64(daysRemaining)
	}

	return ProgressSnapshot{
		CurrentWeight:          current,
		ProgressPercentage:     clamp(pct, 0, 100),
		RemainingWeight:        max(0, remaining),
		WeeklyPace:             round(weekly, 2),
		MonthlyPace:            round(monthly, 2),
		ExpectedCompletionDate: ExpectedCompletionDate(weekly, remaining, now),
		DaysElapsed:            daysElapsed,
		DaysRemaining:          daysRemaining,
		IsOnTrack:              weekly >= required,
	}
}

// ProgressMessage returns an encouragement line for the dashboard.
func ProgressMessage(percentage float64, onTrack bool) string {
	switch {
	case percentage >= 100:
		return "Goal reached, congratulations!"
	case percentage >= 75:
		return "Almost there!"
	case percentage >= 50:
		return "Going well!"
	case percentage >= 25:
		return "Good start!"
	case onTrack:
		return "Right on plan"
	default:
		return "Time to pick up the pace"
	}
}

// daysBetween returns whole days from b to a, truncated toward zero. Days are
// counted on the wall clock of a's location, so a day that is 23 or 25 hours
// long across a DST change still counts as one.
func daysBetween(a, b time.Time) int {
	return int(wallClock(a, a.Location()).Sub(wallClock(b, a.Location())) / (24 * time.Hour))
}

// wallClock returns the local time of t in loc as the same reading in UTC.
func wallClock(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return time.Date(y, m, d, hh, mm, ss, t.Nanosecond(), time.UTC)
}
