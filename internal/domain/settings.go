package domain

import "time"

// UserSettings holds the body and goal parameters of the user.
type UserSettings struct {
	ID                    string    `json:"id"`
	Height                float64   `json:"height"`
	InitialWeight         float64   `json:"initialWeight"`
	TargetWeight          float64   `json:"targetWeight"`
	TargetDate            time.Time `json:"targetDate"`
	WeeklyWeightLossGoal  *float64  `json:"weeklyWeightLossGoal,omitempty"`
	MonthlyWeightLossGoal *float64  `json:"monthlyWeightLossGoal,omitempty"`
	TargetBMI             *float64  `json:"targetBMI,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// Goals is the goal subset of UserSettings.
type Goals struct {
	TargetWeight          float64   `json:"targetWeight"`
	TargetDate            time.Time `json:"targetDate"`
	WeeklyWeightLossGoal  *float64  `json:"weeklyWeightLossGoal,omitempty"`
	MonthlyWeightLossGoal *float64  `json:"monthlyWeightLossGoal,omitempty"`
	TargetBMI             *float64  `json:"targetBMI,omitempty"`
}

// GoalsPatch is a partial goals update; nil fields are left unchanged.
type GoalsPatch struct {
	TargetWeight          *float64   `json:"targetWeight,omitempty"`
	TargetDate            *time.Time `json:"targetDate,omitempty"`
	WeeklyWeightLossGoal  *float64   `json:"weeklyWeightLossGoal,omitempty"`
	MonthlyWeightLossGoal *float64   `json:"monthlyWeightLossGoal,omitempty"`
	TargetBMI             *float64   `json:"targetBMI,omitempty"`
}

// Goals extracts the goal fields.
func (s UserSettings) Goals() Goals {
	return Goals{
		TargetWeight:          s.TargetWeight,
		TargetDate:            s.TargetDate,
		WeeklyWeightLossGoal:  s.WeeklyWeightLossGoal,
		MonthlyWeightLossGoal: s.MonthlyWeightLossGoal,
		TargetBMI:             s.TargetBMI,
	}
}

// Apply merges the non-nil fields of p into s and returns the result.
func (p GoalsPatch) Apply(s UserSettings) UserSettings {
	if p.TargetWeight != nil {
		s.TargetWeight = *p.TargetWeight
	}
	if p.TargetDate != nil {
		s.TargetDate = *p.TargetDate
	}
	if p.WeeklyWeightLossGoal != nil {
		s.WeeklyWeightLossGoal = p.WeeklyWeightLossGoal
	}
	if p.MonthlyWeightLossGoal != nil {
		s.MonthlyWeightLossGoal = p.MonthlyWeightLossGoal
	}
	if p.TargetBMI != nil {
		s.TargetBMI = p.TargetBMI
	}
	return s
}
