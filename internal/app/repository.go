package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"weighttrack/internal/domain"
)

// ErrSettingsNotFound indicates that setup has not been completed yet.
var ErrSettingsNotFound = errors.New("settings not found")

// Repository is the typed view of the key-value port shared by the services.
// It serialises read-modify-write cycles within this process; writers in
// other processes are last-write-wins.
type Repository struct {
	kv   domain.KVStore
	keys domain.Keys

	mu sync.Mutex
}

// NewRepository creates a Repository over kv using keys.
func NewRepository(kv domain.KVStore, keys domain.Keys) *Repository {
	return &Repository{kv: kv, keys: keys}
}

// Settings loads the user settings or returns ErrSettingsNotFound.
func (r *Repository) Settings(ctx context.Context) (*domain.UserSettings, error) {
	var s domain.UserSettings
	found, err := r.load(ctx, r.keys.Settings, &s)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrSettingsNotFound
	}
	return &s, nil
}

// Records loads the full record collection, newest first. A missing
// collection is empty.
func (r *Repository) Records(ctx context.Context) ([]domain.WeightRecord, error) {
	var records []domain.WeightRecord
	if _, err := r.load(ctx, r.keys.Records, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Latest loads the latest-record pointer, or nil when there are no records.
func (r *Repository) Latest(ctx context.Context) (*domain.WeightRecord, error) {
	var rec domain.WeightRecord
	found, err := r.load(ctx, r.keys.Latest, &rec)
	if err != nil || !found {
		return nil, err
	}
	return &rec, nil
}

// UpdateRecords loads the collection, applies fn and persists the result
// together with the latest pointer. Nothing is written when fn fails.
func (r *Repository) UpdateRecords(ctx context.Context, fn func([]domain.WeightRecord) ([]domain.WeightRecord, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.Records(ctx)
	if err != nil {
		return err
	}
	updated, err := fn(records)
	if err != nil {
		return err
	}
	domain.SortNewestFirst(updated)
	if err := r.save(ctx, r.keys.Records, updated); err != nil {
		return err
	}

	latest := domain.LatestRecord(updated)
	if latest == nil {
		return r.kv.Delete(ctx, r.keys.Latest)
	}
	return r.save(ctx, r.keys.Latest, latest)
}

// UpdateSettings applies fn to the stored settings (nil when none exist) and
// persists the result, mirroring the goal fields under the goals key.
func (r *Repository) UpdateSettings(ctx context.Context, fn func(*domain.UserSettings) (*domain.UserSettings, error)) (*domain.UserSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.Settings(ctx)
	if err != nil && !errors.Is(err, ErrSettingsNotFound) {
		return nil, err
	}
	updated, err := fn(current)
	if err != nil {
		return nil, err
	}
	if err := r.save(ctx, r.keys.Settings, updated); err != nil {
		return nil, err
	}
	if err := r.save(ctx, r.keys.Goals, updated.Goals()); err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Repository) load(ctx context.Context, key string, dst any) (bool, error) {
	b, err := r.kv.Get(ctx, key)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (r *Repository) save(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.kv.Set(ctx, key, b); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
