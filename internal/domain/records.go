package domain

import (
	"slices"
	"sort"
	"time"
)

// DayKey returns the calendar day of t in the offset t carries. A date written
// as 2026-03-01T23:30:00+09:00 belongs to 2026-03-01 even though it is the
// previous day in UTC.
func DayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// RecordID returns the stable per-day record id for userID.
func RecordID(userID string, t time.Time) string {
	return userID + "-" + DayKey(t)
}

// UpsertRecord merges in into records, keeping one record per calendar day.
// A record on the same day is replaced in place and keeps its id and
// createdAt. Otherwise a new record is appended. BMI is stamped from the
// current height. The returned collection is sorted newest first; records is
// not modified.
func UpsertRecord(records []WeightRecord, in RecordInput, s UserSettings, userID string, now time.Time) ([]WeightRecord, WeightRecord) {
	now = now.UTC()
	rec := WeightRecord{
		ID:                RecordID(userID, in.Date),
		UserID:            userID,
		Date:              in.Date,
		Weight:            in.Weight,
		MuscleWeight:      in.MuscleWeight,
		BodyFatPercentage: in.BodyFatPercentage,
		BMI:               CalculateBMI(in.Weight, s.Height),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	out := make([]WeightRecord, len(records), len(records)+1)
	copy(out, records)

	day := DayKey(in.Date)
	idx := slices.IndexFunc(out, func(r WeightRecord) bool { return DayKey(r.Date) == day })
	if idx >= 0 {
		rec.ID = out[idx].ID
		if !out[idx].CreatedAt.IsZero() {
			rec.CreatedAt = out[idx].CreatedAt
		}
		out[idx] = rec
	} else {
		out = append(out, rec)
	}

	SortNewestFirst(out)
	return out, rec
}

// DeleteRecord returns records without the record identified by id, or
// ErrRecordNotFound. records is not modified.
func DeleteRecord(records []WeightRecord, id string) ([]WeightRecord, error) {
	idx := slices.IndexFunc(records, func(r WeightRecord) bool { return r.ID == id })
	if idx < 0 {
		return records, ErrRecordNotFound
	}
	return slices.Delete(slices.Clone(records), idx, idx+1), nil
}

// LatestRecord returns the record with the newest date, or nil if records is
// empty.
func LatestRecord(records []WeightRecord) *WeightRecord {
	if len(records) == 0 {
		return nil
	}
	latest := records[0]
	for _, r := range records[1:] {
		if r.Date.After(latest.Date) {
			latest = r
		}
	}
	return &latest
}

// SortNewestFirst sorts records in place by date, descending.
func SortNewestFirst(records []WeightRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
}

// SortedOldestFirst returns a copy of records sorted by date, ascending.
func SortedOldestFirst(records []WeightRecord) []WeightRecord {
	out := slices.Clone(records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
