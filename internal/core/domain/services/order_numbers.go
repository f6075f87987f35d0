package services

import (
	"context"
	"fmt"

	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"
)

// orderNumberKey identifies the service-order counter in the store.
// There is exactly one sequence for the whole workshop; other counter
// keys may coexist in the same store without interfering.
const orderNumberKey = "service_order"

// OrderNumbers is a domain service that hands out the human-facing
// sequential numbers printed on service orders.
//
// Business rules:
//   - the first number ever issued is 1
//   - numbers increase by one per issued order, with no reuse
//   - two concurrent intakes never receive the same number
//   - a number issued for an order that fails to persist is burned,
//     leaving a gap; gaps are acceptable, duplicates are not
type OrderNumbers struct {
	counters ports.CounterStore
}

// NewOrderNumbers creates the sequence service over a counter store.
func NewOrderNumbers(counters ports.CounterStore) (*OrderNumbers, error) {
	if counters == nil {
		return nil, errs.NewValueIsRequiredError("counters")
	}
	return &OrderNumbers{counters: counters}, nil
}

// Next issues the next order number. Safe for concurrent use: the
// underlying store performs the increment atomically.
func (s *OrderNumbers) Next(ctx context.Context) (int64, error) {
	number, err := s.counters.IncrementAndGet(ctx, orderNumberKey)
	if err != nil {
		return 0, fmt.Errorf("increment order number: %w", err)
	}
	return number, nil
}

// Current returns the last issued number without issuing a new one,
// zero when no number was ever issued.
func (s *OrderNumbers) Current(ctx context.Context) (int64, error) {
	number, err := s.counters.Get(ctx, orderNumberKey)
	if err != nil {
		return 0, fmt.Errorf("read order number: %w", err)
	}
	return number, nil
}

// Set overwrites the sequence so the next issued number is value+1.
// Used by administrators to align the sequence with pre-existing paper
// records. The value must be at least 1.
func (s *OrderNumbers) Set(ctx context.Context, value int64) error {
	if value < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderNumber",
			fmt.Errorf("%d is not greater than 0", value),
		)
	}
	if err := s.counters.Set(ctx, orderNumberKey, value); err != nil {
		return fmt.Errorf("set order number: %w", err)
	}
	return nil
}

// Exists reports whether the sequence was ever written.
func (s *OrderNumbers) Exists(ctx context.Context) (bool, error) {
	exists, err := s.counters.Exists(ctx, orderNumberKey)
	if err != nil {
		return false, fmt.Errorf("check order number: %w", err)
	}
	return exists, nil
}
