package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weighttrack/internal/domain"
)

func ptr(v float64) *float64 { return &v }

func TestDayKey(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	assert.Equal(t, "2026-03-01", domain.DayKey(time.Date(2026, 3, 1, 23, 30, 0, 0, tokyo)))
	assert.Equal(t, "2026-03-01", domain.DayKey(time.Date(2026, 3, 1, 0, 5, 0, 0, time.UTC)))

	parsed, err := time.Parse(time.RFC3339, "2026-03-01T01:00:00+09:00")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", domain.DayKey(parsed), "day follows the written offset, not UTC")
	assert.Equal(t, "default-user-2026-03-01", domain.RecordID(domain.DefaultUserID, parsed))
}

func TestUpsertRecord_Append(t *testing.T) {
	s := settings(80, 70, testNow.AddDate(0, 0, 60))
	existing := []domain.WeightRecord{record(daysAgo(2), 79.5)}

	got, saved := domain.UpsertRecord(existing, domain.RecordInput{
		Date:              testNow,
		Weight:            70,
		MuscleWeight:      ptr(30.2),
		BodyFatPercentage: ptr(21.5),
	}, s, domain.DefaultUserID, testNow)

	require.Len(t, got, 2)
	assert.Len(t, existing, 1, "input must not grow")
	assert.Equal(t, saved, got[0], "newest record sorts first")
	assert.Equal(t, "default-user-2026-03-15", saved.ID)
	assert.Equal(t, domain.DefaultUserID, saved.UserID)
	assert.Equal(t, 22.9, saved.BMI)
	assert.Equal(t, 30.2, *saved.MuscleWeight)
	assert.Equal(t, 21.5, *saved.BodyFatPercentage)
	assert.Equal(t, testNow, saved.CreatedAt)
	assert.Equal(t, testNow, saved.UpdatedAt)
}

func TestUpsertRecord_SameDayReplaces(t *testing.T) {
	s := settings(80, 70, testNow.AddDate(0, 0, 60))
	created := testNow.Add(-6 * time.Hour)

	first, _ := domain.UpsertRecord(nil, domain.RecordInput{Date: testNow.Add(-6 * time.Hour), Weight: 79}, s, domain.DefaultUserID, created)
	first, _ = domain.UpsertRecord(first, domain.RecordInput{Date: daysAgo(1), Weight: 79.4}, s, domain.DefaultUserID, created)
	require.Len(t, first, 2)

	got, saved := domain.UpsertRecord(first, domain.RecordInput{Date: testNow, Weight: 78.6}, s, domain.DefaultUserID, testNow)

	require.Len(t, got, 2, "same-day upsert must not grow the collection")
	assert.Equal(t, first[0].ID, saved.ID)
	assert.Equal(t, created, saved.CreatedAt, "createdAt survives the overwrite")
	assert.Equal(t, testNow, saved.UpdatedAt)
	assert.NotEqual(t, first[0].UpdatedAt, saved.UpdatedAt)
	assert.Equal(t, 78.6, got[0].Weight)
	assert.Equal(t, testNow, got[0].Date)
	assert.Equal(t, 79.0, first[0].Weight, "input collection is untouched")
}

func TestUpsertRecord_StampsBMIFromCurrentHeight(t *testing.T) {
	s := settings(80, 70, testNow.AddDate(0, 0, 60))
	records, _ := domain.UpsertRecord(nil, domain.RecordInput{Date: daysAgo(3), Weight: 70}, s, domain.DefaultUserID, daysAgo(3))

	s.Height = 180
	records, saved := domain.UpsertRecord(records, domain.RecordInput{Date: testNow, Weight: 70}, s, domain.DefaultUserID, testNow)

	assert.Equal(t, 21.6, saved.BMI)
	assert.Equal(t, 22.9, records[1].BMI, "historic BMI is not recomputed")
}

func TestUpsertRecord_SortsNewestFirst(t *testing.T) {
	s := settings(80, 70, testNow.AddDate(0, 0, 60))
	var records []domain.WeightRecord
	for _, d := range []int{5, 1, 9, 3} {
		records, _ = domain.UpsertRecord(records, domain.RecordInput{Date: daysAgo(d), Weight: 75}, s, domain.DefaultUserID, testNow)
	}
	require.Len(t, records, 4)
	for i := 1; i < len(records); i++ {
		assert.True(t, records[i-1].Date.After(records[i].Date))
	}
}

func TestDeleteRecord(t *testing.T) {
	records := []domain.WeightRecord{record(testNow, 78), record(daysAgo(7), 79), record(daysAgo(14), 80)}

	t.Run("not found", func(t *testing.T) {
		got, err := domain.DeleteRecord(records, "default-user-1999-01-01")
		require.ErrorIs(t, err, domain.ErrRecordNotFound)
		assert.Len(t, got, 3)
	})

	t.Run("non-latest keeps latest", func(t *testing.T) {
		before := domain.LatestRecord(records)
		got, err := domain.DeleteRecord(records, records[1].ID)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Len(t, records, 3, "input must not shrink")
		assert.Equal(t, before, domain.LatestRecord(got))
	})

	t.Run("latest moves to next newest", func(t *testing.T) {
		got, err := domain.DeleteRecord(records, records[0].ID)
		require.NoError(t, err)
		latest := domain.LatestRecord(got)
		require.NotNil(t, latest)
		assert.Equal(t, records[1].ID, latest.ID)
	})

	t.Run("only record clears latest", func(t *testing.T) {
		got, err := domain.DeleteRecord(records[:1], records[0].ID)
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Nil(t, domain.LatestRecord(got))
	})
}

func TestLatestRecord_Unsorted(t *testing.T) {
	records := []domain.WeightRecord{record(daysAgo(7), 79), record(testNow, 78), record(daysAgo(14), 80)}
	latest := domain.LatestRecord(records)
	require.NotNil(t, latest)
	assert.Equal(t, 78.0, latest.Weight)
	assert.Nil(t, domain.LatestRecord(nil))
}
