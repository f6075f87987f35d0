package ports

import "context"

// CounterStore defines the persistence contract for named monotonic
// counters. Each counter is identified by a key; the order-number
// sequence is one such counter.
//
// IncrementAndGet must be atomic with respect to concurrent callers:
// two simultaneous increments of the same key must observe distinct,
// consecutive values. Implementations achieve this with a single
// storage-level read-modify-write, not a read followed by a write.
type CounterStore interface {
	// IncrementAndGet advances the counter for key by one and returns
	// the new value, creating the counter at 1 when it does not exist.
	IncrementAndGet(ctx context.Context, key string) (int64, error)

	// Get returns the counter's current value without modifying it,
	// zero when the counter does not exist.
	Get(ctx context.Context, key string) (int64, error)

	// Set overwrites the counter's value, creating it when absent.
	// The value must be at least 1.
	Set(ctx context.Context, key string, value int64) error

	// Exists reports whether the counter has ever been written.
	Exists(ctx context.Context, key string) (bool, error)
}
