package app

import (
	"context"
	"time"

	"weighttrack/internal/domain"
)

// ChartsService encapsulates chart data retrieval use cases.
type ChartsService struct {
	repo *Repository
	now  func() time.Time
}

// NewChartsService creates a ChartsService backed by repo.
func NewChartsService(repo *Repository) *ChartsService {
	return &ChartsService{repo: repo, now: time.Now}
}

// WithClock replaces the time source, for tests.
func (s *ChartsService) WithClock(now func() time.Time) *ChartsService {
	s.now = now
	return s
}

// Trends holds last-minus-first changes over a chart window.
type Trends struct {
	Weight            float64 `json:"weight"`
	BMI               float64 `json:"bmi"`
	MuscleMass        float64 `json:"muscleMass"`
	BodyFatPercentage float64 `json:"bodyFatPercentage"`
}

// Series is the chart payload for one window.
type Series struct {
	Range  domain.DateRange    `json:"range"`
	Label  string              `json:"label"`
	Unit   string              `json:"unit"`
	Points []domain.ChartPoint `json:"points"`
	Trends Trends              `json:"trends"`
}

// Series returns the records inside window r, oldest first, with masses
// converted to unit. Unknown ranges use one month.
func (s *ChartsService) Series(ctx context.Context, r domain.DateRange, unit string) (*Series, error) {
	if unit == "" {
		unit = domain.UnitKg
	}
	if unit != domain.UnitKg && unit != domain.UnitLb {
		return nil, &ValidationError{Field: "unit", Msg: `must be "kg" or "lb"`}
	}
	switch r {
	case domain.RangeWeek, domain.RangeMonth, domain.RangeHalfYear, domain.RangeYear:
	default:
		r = domain.RangeMonth
	}

	records, err := s.repo.Records(ctx)
	if err != nil {
		return nil, err
	}
	window := domain.FilterByRange(records, r, s.now())

	return &Series{
		Range:  r,
		Label:  r.Label(),
		Unit:   unit,
		Points: domain.ConvertChartPoints(domain.FormatSeries(window), unit),
		Trends: Trends{
			Weight:            domain.ConvertWeight(domain.Trend(window, domain.FieldWeight), domain.UnitKg, unit),
			BMI:               domain.Trend(window, domain.FieldBMI),
			MuscleMass:        domain.ConvertWeight(domain.Trend(window, domain.FieldMuscleWeight), domain.UnitKg, unit),
			BodyFatPercentage: domain.Trend(window, domain.FieldBodyFatPercentage),
		},
	}, nil
}
