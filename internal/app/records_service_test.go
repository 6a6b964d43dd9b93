package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weighttrack/internal/adapter/memory"
	"weighttrack/internal/app"
	"weighttrack/internal/domain"
)

var fixedNow = time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

func clockAt(t time.Time) func() time.Time { return func() time.Time { return t } }

func ptr(v float64) *float64 { return &v }

// mockKV is a function-field KVStore for error paths.
type mockKV struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte) error
	delFn func(ctx context.Context, key string) error
}

func (m *mockKV) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, domain.ErrKeyNotFound
}

func (m *mockKV) Set(ctx context.Context, key string, value []byte) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value)
	}
	return nil
}

func (m *mockKV) Delete(ctx context.Context, key string) error {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}

type fixture struct {
	kv       *memory.DB
	keys     domain.Keys
	records  *app.RecordsService
	settings *app.SettingsService
	progress *app.ProgressService
	charts   *app.ChartsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	kv := memory.New()
	keys := domain.KeysFor(domain.DefaultKeyPrefix)
	repo := app.NewRepository(kv, keys)
	return &fixture{
		kv:       kv,
		keys:     keys,
		records:  app.NewRecordsService(repo, "").WithClock(clockAt(fixedNow)),
		settings: app.NewSettingsService(repo, "").WithClock(clockAt(fixedNow)),
		progress: app.NewProgressService(repo).WithClock(clockAt(fixedNow)),
		charts:   app.NewChartsService(repo).WithClock(clockAt(fixedNow)),
	}
}

func (f *fixture) setup(t *testing.T) {
	t.Helper()
	_, err := f.settings.Save(context.Background(), app.SettingsInput{
		Height:        175,
		InitialWeight: 80,
		TargetWeight:  70,
		TargetDate:    fixedNow.AddDate(0, 0, 70),
	})
	require.NoError(t, err)
}

func (f *fixture) record(t *testing.T, daysAgo int, weight float64) *domain.WeightRecord {
	t.Helper()
	rec, err := f.records.Record(context.Background(), domain.RecordInput{
		Date:   fixedNow.AddDate(0, 0, -daysAgo),
		Weight: weight,
	})
	require.NoError(t, err)
	return rec
}

func TestRecord_Validation(t *testing.T) {
	f := newFixture(t)
	f.setup(t)

	tests := []struct {
		name string
		in   domain.RecordInput
	}{
		{"zero weight", domain.RecordInput{Weight: 0}},
		{"too light", domain.RecordInput{Weight: 29.9}},
		{"too heavy", domain.RecordInput{Weight: 300.1}},
		{"muscle out of range", domain.RecordInput{Weight: 80, MuscleWeight: ptr(5)}},
		{"body fat out of range", domain.RecordInput{Weight: 80, BodyFatPercentage: ptr(61)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.records.Record(context.Background(), tc.in)
			require.Error(t, err)
			assert.True(t, app.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestRecord_ValidationCollectsAllFields(t *testing.T) {
	f := newFixture(t)
	_, err := f.records.Record(context.Background(), domain.RecordInput{Weight: 10, BodyFatPercentage: ptr(99)})
	require.Error(t, err)

	fields := app.ValidationErrors(err)
	require.Len(t, fields, 2)
	assert.Equal(t, "weight", fields[0].Field)
	assert.Equal(t, "bodyFatPercentage", fields[1].Field)
}

func TestRecord_RequiresSettings(t *testing.T) {
	f := newFixture(t)
	_, err := f.records.Record(context.Background(), domain.RecordInput{Date: fixedNow, Weight: 80})
	require.ErrorIs(t, err, app.ErrSettingsNotFound)
}

func TestRecord_Success(t *testing.T) {
	f := newFixture(t)
	f.setup(t)

	rec := f.record(t, 0, 70)
	assert.Equal(t, "default-user-2026-03-15", rec.ID)
	assert.Equal(t, 22.9, rec.BMI)

	items, err := f.records.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, items, 1)

	latest, err := f.records.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, rec.ID, latest.ID)
}

func TestRecord_DefaultsDateToNow(t *testing.T) {
	f := newFixture(t)
	f.setup(t)

	rec, err := f.records.Record(context.Background(), domain.RecordInput{Weight: 79})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, rec.Date)
}

func TestRecord_SameDayUpsert(t *testing.T) {
	f := newFixture(t)
	f.setup(t)
	ctx := context.Background()

	first := f.record(t, 0, 79)

	later := fixedNow.Add(3 * time.Hour)
	f.records.WithClock(clockAt(later))
	second, err := f.records.Record(ctx, domain.RecordInput{Date: fixedNow.Add(2 * time.Hour), Weight: 78.5})
	require.NoError(t, err)

	items, err := f.records.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, later, second.UpdatedAt)
	assert.Equal(t, 78.5, items[0].Weight)
}

func TestRecord_LatestIsNewestNotLastWritten(t *testing.T) {
	f := newFixture(t)
	f.setup(t)

	newest := f.record(t, 1, 79)
	f.record(t, 5, 80)

	latest, err := f.records.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, newest.ID, latest.ID)

	items, _ := f.records.List(context.Background(), 0)
	require.Len(t, items, 2)
	assert.True(t, items[0].Date.After(items[1].Date), "collection persisted newest first")
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		f := newFixture(t)
		f.setup(t)
		f.record(t, 0, 79)

		_, err := f.records.Delete(ctx, "default-user-1999-01-01")
		require.ErrorIs(t, err, domain.ErrRecordNotFound)
		items, _ := f.records.List(ctx, 0)
		assert.Len(t, items, 1)
	})

	t.Run("only record clears latest", func(t *testing.T) {
		f := newFixture(t)
		f.setup(t)
		rec := f.record(t, 0, 79)

		latest, err := f.records.Delete(ctx, rec.ID)
		require.NoError(t, err)
		assert.Nil(t, latest)

		_, err = f.kv.Get(ctx, f.keys.Latest)
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
		stored, err := f.records.Latest(ctx)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("non-latest keeps latest", func(t *testing.T) {
		f := newFixture(t)
		f.setup(t)
		newest := f.record(t, 0, 78)
		older := f.record(t, 7, 79)

		latest, err := f.records.Delete(ctx, older.ID)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, newest.ID, latest.ID)

		stored, _ := f.records.Latest(ctx)
		require.NotNil(t, stored)
		assert.Equal(t, newest.ID, stored.ID)
	})

	t.Run("latest falls back to next newest", func(t *testing.T) {
		f := newFixture(t)
		f.setup(t)
		newest := f.record(t, 0, 78)
		older := f.record(t, 7, 79)

		latest, err := f.records.Delete(ctx, newest.ID)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, older.ID, latest.ID)
	})
}

func TestListRecords_Limit(t *testing.T) {
	f := newFixture(t)
	f.setup(t)
	for i := 0; i < 5; i++ {
		f.record(t, i, 80-float64(i)*0.1)
	}

	items, err := f.records.List(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, 80.0, items[0].Weight)
}

func TestListRecords_EmptyIsNotNil(t *testing.T) {
	f := newFixture(t)
	items, err := f.records.List(context.Background(), 0)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestRecord_RepoError(t *testing.T) {
	settings, _ := json.Marshal(domain.UserSettings{Height: 175, InitialWeight: 80, TargetWeight: 70, TargetDate: fixedNow})
	kv := &mockKV{
		getFn: func(_ context.Context, key string) ([]byte, error) {
			if key == "user:settings" {
				return settings, nil
			}
			return nil, domain.ErrKeyNotFound
		},
		setFn: func(_ context.Context, _ string, _ []byte) error {
			return errors.New("kv down")
		},
	}
	svc := app.NewRecordsService(app.NewRepository(kv, domain.KeysFor("")), "")
	_, err := svc.Record(context.Background(), domain.RecordInput{Date: fixedNow, Weight: 80})
	require.Error(t, err)
	assert.False(t, app.IsValidation(err))
	assert.Contains(t, err.Error(), "kv down")
}

// hookKV runs onGet before each read of the wrapped store.
type hookKV struct {
	*memory.DB
	onGet func(key string)
}

func (h *hookKV) Get(ctx context.Context, key string) ([]byte, error) {
	if h.onGet != nil {
		h.onGet(key)
	}
	return h.DB.Get(ctx, key)
}

func TestRecord_UsesSettingsReadWithRecords(t *testing.T) {
	ctx := context.Background()
	kv := &hookKV{DB: memory.New()}
	keys := domain.KeysFor(domain.DefaultKeyPrefix)
	repo := app.NewRepository(kv, keys)
	settings := app.NewSettingsService(repo, "").WithClock(clockAt(fixedNow))
	records := app.NewRecordsService(repo, "").WithClock(clockAt(fixedNow))

	_, err := settings.Save(ctx, app.SettingsInput{Height: 175, InitialWeight: 80, TargetWeight: 70, TargetDate: fixedNow.AddDate(0, 0, 70)})
	require.NoError(t, err)

	// The height changes once the record update has loaded the collection.
	shorter, err := json.Marshal(domain.UserSettings{Height: 160, InitialWeight: 80, TargetWeight: 70, TargetDate: fixedNow.AddDate(0, 0, 70)})
	require.NoError(t, err)
	kv.onGet = func(key string) {
		if key == keys.Records {
			require.NoError(t, kv.DB.Set(ctx, keys.Settings, shorter))
			kv.onGet = nil
		}
	}

	rec, err := records.Record(ctx, domain.RecordInput{Date: fixedNow, Weight: 70})
	require.NoError(t, err)
	assert.Equal(t, 27.3, rec.BMI)
}

func TestListRecords_DecodeError(t *testing.T) {
	kv := &mockKV{
		getFn: func(_ context.Context, _ string) ([]byte, error) { return []byte("not json"), nil },
	}
	svc := app.NewRecordsService(app.NewRepository(kv, domain.KeysFor("")), "")
	_, err := svc.List(context.Background(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode user:weight:records")
}
