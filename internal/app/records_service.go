// Package app holds the application services and business logic.
package app

import (
	"context"
	"time"

	"weighttrack/internal/domain"
)

// RecordsService encapsulates weight-record use cases.
type RecordsService struct {
	repo   *Repository
	userID string
	now    func() time.Time
}

// NewRecordsService creates a RecordsService for userID backed by repo.
func NewRecordsService(repo *Repository, userID string) *RecordsService {
	if userID == "" {
		userID = domain.DefaultUserID
	}
	return &RecordsService{repo: repo, userID: userID, now: time.Now}
}

// WithClock replaces the time source, for tests.
func (s *RecordsService) WithClock(now func() time.Time) *RecordsService {
	s.now = now
	return s
}

// Record validates in and upserts it as the record of its calendar day.
// A zero date means now. Settings must exist because BMI needs the height.
func (s *RecordsService) Record(ctx context.Context, in domain.RecordInput) (*domain.WeightRecord, error) {
	if err := validateRecordInput(in); err != nil {
		return nil, err
	}
	now := s.now()
	if in.Date.IsZero() {
		in.Date = now
	}

	var saved domain.WeightRecord
	err := s.repo.UpdateRecords(ctx, func(records []domain.WeightRecord) ([]domain.WeightRecord, error) {
		// Read under the repository lock so BMI uses the height of the
		// latest settings save.
		settings, err := s.repo.Settings(ctx)
		if err != nil {
			return nil, err
		}
		updated, rec := domain.UpsertRecord(records, in, *settings, s.userID, now)
		saved = rec
		return updated, nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// List returns the records newest first, at most limit when limit > 0.
func (s *RecordsService) List(ctx context.Context, limit int) ([]domain.WeightRecord, error) {
	records, err := s.repo.Records(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.WeightRecord{}
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Latest returns the newest record, or nil when there are none.
func (s *RecordsService) Latest(ctx context.Context) (*domain.WeightRecord, error) {
	return s.repo.Latest(ctx)
}

// Delete removes the record with id and returns the new latest record, which
// is nil when the collection became empty. It returns
// domain.ErrRecordNotFound for unknown ids.
func (s *RecordsService) Delete(ctx context.Context, id string) (*domain.WeightRecord, error) {
	var latest *domain.WeightRecord
	err := s.repo.UpdateRecords(ctx, func(records []domain.WeightRecord) ([]domain.WeightRecord, error) {
		remaining, err := domain.DeleteRecord(records, id)
		if err != nil {
			return nil, err
		}
		latest = domain.LatestRecord(remaining)
		return remaining, nil
	})
	if err != nil {
		return nil, err
	}
	return latest, nil
}
