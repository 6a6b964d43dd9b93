// Package domain contains the core business entities, the storage port and
// the pure progress/metrics computations built on them.
package domain

import (
	"errors"
	"time"
)

// ErrRecordNotFound is returned when a record id does not exist in the collection.
var ErrRecordNotFound = errors.New("record not found")

// DefaultUserID identifies the single implicit user.
const DefaultUserID = "default-user"

// WeightRecord represents a single weight measurement. BMI is stamped when the
// record is written and is not recomputed when the height changes later.
type WeightRecord struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	Date              time.Time `json:"date"`
	Weight            float64   `json:"weight"`
	MuscleWeight      *float64  `json:"muscleWeight,omitempty"`
	BodyFatPercentage *float64  `json:"bodyFatPercentage,omitempty"`
	BMI               float64   `json:"bmi"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// RecordInput is a candidate measurement before it is merged into the collection.
type RecordInput struct {
	Date              time.Time `json:"date"`
	Weight            float64   `json:"weight"`
	MuscleWeight      *float64  `json:"muscleWeight,omitempty"`
	BodyFatPercentage *float64  `json:"bodyFatPercentage,omitempty"`
}

// ProgressSnapshot is the derived progress view. It is computed on every read
// and never stored.
type ProgressSnapshot struct {
	CurrentWeight          float64    `json:"currentWeight"`
	ProgressPercentage     float64    `json:"progressPercentage"`
	RemainingWeight        float64    `json:"remainingWeight"`
	WeeklyPace             float64    `json:"weeklyPace"`
	MonthlyPace            float64    `json:"monthlyPace"`
	ExpectedCompletionDate *time.Time `json:"expectedCompletionDate"`
	DaysElapsed            int        `json:"daysElapsed"`
	DaysRemaining          int        `json:"daysRemaining"`
	IsOnTrack              bool       `json:"isOnTrack"`
}
