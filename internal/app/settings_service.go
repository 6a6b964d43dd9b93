package app

import (
	"context"
	"time"

	"weighttrack/internal/domain"
)

// SettingsInput is the full set of user settings submitted during setup.
type SettingsInput struct {
	Height                float64   `json:"height"`
	InitialWeight         float64   `json:"initialWeight"`
	TargetWeight          float64   `json:"targetWeight"`
	TargetDate            time.Time `json:"targetDate"`
	WeeklyWeightLossGoal  *float64  `json:"weeklyWeightLossGoal,omitempty"`
	MonthlyWeightLossGoal *float64  `json:"monthlyWeightLossGoal,omitempty"`
	TargetBMI             *float64  `json:"targetBMI,omitempty"`
}

// SettingsService encapsulates settings and goal use cases.
type SettingsService struct {
	repo   *Repository
	userID string
	now    func() time.Time
}

// NewSettingsService creates a SettingsService for userID backed by repo.
func NewSettingsService(repo *Repository, userID string) *SettingsService {
	if userID == "" {
		userID = domain.DefaultUserID
	}
	return &SettingsService{repo: repo, userID: userID, now: time.Now}
}

// WithClock replaces the time source, for tests.
func (s *SettingsService) WithClock(now func() time.Time) *SettingsService {
	s.now = now
	return s
}

// Get returns the stored settings or ErrSettingsNotFound.
func (s *SettingsService) Get(ctx context.Context) (*domain.UserSettings, error) {
	return s.repo.Settings(ctx)
}

// Save validates in and replaces the stored settings with it. The original
// createdAt is kept when settings already exist.
func (s *SettingsService) Save(ctx context.Context, in SettingsInput) (*domain.UserSettings, error) {
	if err := validateSettingsInput(in); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	return s.repo.UpdateSettings(ctx, func(current *domain.UserSettings) (*domain.UserSettings, error) {
		created := now
		if current != nil && !current.CreatedAt.IsZero() {
			created = current.CreatedAt
		}
		return &domain.UserSettings{
			ID:                    s.userID,
			Height:                in.Height,
			InitialWeight:         in.InitialWeight,
			TargetWeight:          in.TargetWeight,
			TargetDate:            in.TargetDate,
			WeeklyWeightLossGoal:  in.WeeklyWeightLossGoal,
			MonthlyWeightLossGoal: in.MonthlyWeightLossGoal,
			TargetBMI:             in.TargetBMI,
			CreatedAt:             created,
			UpdatedAt:             now,
		}, nil
	})
}

// Goals returns the goal subset of the stored settings.
func (s *SettingsService) Goals(ctx context.Context) (*domain.Goals, error) {
	settings, err := s.repo.Settings(ctx)
	if err != nil {
		return nil, err
	}
	g := settings.Goals()
	return &g, nil
}

// UpdateGoals merges patch into the stored settings.
func (s *SettingsService) UpdateGoals(ctx context.Context, patch domain.GoalsPatch) (*domain.Goals, error) {
	if err := validateGoalsPatch(patch); err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdateSettings(ctx, func(current *domain.UserSettings) (*domain.UserSettings, error) {
		if current == nil {
			return nil, ErrSettingsNotFound
		}
		next := patch.Apply(*current)
		next.UpdatedAt = s.now().UTC()
		return &next, nil
	})
	if err != nil {
		return nil, err
	}
	g := updated.Goals()
	return &g, nil
}
