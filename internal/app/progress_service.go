package app

import (
	"context"
	"time"

	"weighttrack/internal/domain"
)

// Summary is the dashboard view: the progress snapshot plus BMI figures.
type Summary struct {
	domain.ProgressSnapshot
	InitialWeight  float64            `json:"initialWeight"`
	TargetWeight   float64            `json:"targetWeight"`
	WeightLoss     float64            `json:"weightLoss"`
	WeightLossRate float64            `json:"weightLossRate"`
	CurrentBMI     float64            `json:"currentBMI"`
	TargetBMI      float64            `json:"targetBMI"`
	BMICategory    domain.BMICategory `json:"bmiCategory"`
	BMILabel       string             `json:"bmiLabel"`
	Message        string             `json:"message"`
}

// ProgressService computes progress views from the stored data.
type ProgressService struct {
	repo *Repository
	now  func() time.Time
}

// NewProgressService creates a ProgressService backed by repo.
func NewProgressService(repo *Repository) *ProgressService {
	return &ProgressService{repo: repo, now: time.Now}
}

// WithClock replaces the time source, for tests.
func (s *ProgressService) WithClock(now func() time.Time) *ProgressService {
	s.now = now
	return s
}

// Snapshot evaluates progress over all stored records.
func (s *ProgressService) Snapshot(ctx context.Context) (*domain.ProgressSnapshot, error) {
	settings, records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	snap := domain.EvaluateProgress(records, *settings, s.now())
	return &snap, nil
}

// Summary evaluates progress and adds BMI, loss rate and a message.
func (s *ProgressService) Summary(ctx context.Context) (*Summary, error) {
	settings, records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	snap := domain.EvaluateProgress(records, *settings, s.now())

	currentBMI := domain.CalculateBMI(settings.InitialWeight, settings.Height)
	if latest := domain.LatestRecord(records); latest != nil {
		currentBMI = latest.BMI
	}
	targetBMI := domain.CalculateBMI(settings.TargetWeight, settings.Height)
	if settings.TargetBMI != nil {
		targetBMI = *settings.TargetBMI
	}
	category := domain.ClassifyBMI(currentBMI)

	return &Summary{
		ProgressSnapshot: snap,
		InitialWeight:    settings.InitialWeight,
		TargetWeight:     settings.TargetWeight,
		WeightLoss:       settings.InitialWeight - snap.CurrentWeight,
		WeightLossRate:   domain.WeightLossRate(snap.CurrentWeight, settings.InitialWeight),
		CurrentBMI:       currentBMI,
		TargetBMI:        targetBMI,
		BMICategory:      category,
		BMILabel:         category.Label(),
		Message:          domain.ProgressMessage(snap.ProgressPercentage, snap.IsOnTrack),
	}, nil
}

func (s *ProgressService) load(ctx context.Context) (*domain.UserSettings, []domain.WeightRecord, error) {
	settings, err := s.repo.Settings(ctx)
	if err != nil {
		return nil, nil, err
	}
	records, err := s.repo.Records(ctx)
	if err != nil {
		return nil, nil, err
	}
	return settings, records, nil
}
