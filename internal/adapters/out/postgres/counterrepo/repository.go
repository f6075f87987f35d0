package counterrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCounterStore implements CounterStore using GORM over Postgres.
//
// The store relies on Postgres upserts to make every mutation a single
// atomic statement. It deliberately does NOT participate in the callers'
// units of work: a counter increment that committed stays committed even
// when the surrounding business operation rolls back.
type GormCounterStore struct {
	db *gorm.DB
}

// NewGormCounterStore creates a new GORM counter store.
func NewGormCounterStore(db *gorm.DB) *GormCounterStore {
	return &GormCounterStore{db: db}
}

// IncrementAndGet advances the counter by one and returns the new value,
// creating it at 1 when absent. The insert-or-increment runs as one
// statement, so two concurrent calls can never read the same value.
func (s *GormCounterStore) IncrementAndGet(ctx context.Context, key string) (int64, error) {
	if key == "" {
		return 0, errs.NewValueIsRequiredError("key")
	}

	var value int64
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO counters (key, value)
		VALUES (?, 1)
		ON CONFLICT (key)
		DO UPDATE SET value = counters.value + 1
		RETURNING value
	`, key).Scan(&value).Error
	if err != nil {
		return 0, err
	}

	return value, nil
}

// Get returns the counter's current value, zero when the counter was
// never written.
func (s *GormCounterStore) Get(ctx context.Context, key string) (int64, error) {
	if key == "" {
		return 0, errs.NewValueIsRequiredError("key")
	}

	var value int64
	err := s.db.WithContext(ctx).
		Raw(`SELECT value FROM counters WHERE key = ?`, key).
		Row().Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}

	return value, nil
}

// Set overwrites the counter's value, creating it when absent.
func (s *GormCounterStore) Set(ctx context.Context, key string, value int64) error {
	if key == "" {
		return errs.NewValueIsRequiredError("key")
	}
	if value < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"value",
			fmt.Errorf("%d is not greater than 0", value),
		)
	}

	return s.db.WithContext(ctx).Exec(`
		INSERT INTO counters (key, value)
		VALUES (?, ?)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value
	`, key, value).Error
}

// Exists reports whether the counter has ever been written.
func (s *GormCounterStore) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errs.NewValueIsRequiredError("key")
	}

	var exists bool
	err := s.db.WithContext(ctx).
		Raw(`SELECT EXISTS (SELECT 1 FROM counters WHERE key = ?)`, key).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}

	return exists, nil
}
