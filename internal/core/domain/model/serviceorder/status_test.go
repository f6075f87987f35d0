package serviceorder_test

import (
	"fmt"
	"testing"

	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(serviceorder.StatusUnknown))
		assert.Equal(t, 1, int(serviceorder.StatusToConfirm))
		assert.Equal(t, 2, int(serviceorder.StatusApproved))
		assert.Equal(t, 3, int(serviceorder.StatusReady))
		assert.Equal(t, 4, int(serviceorder.StatusDelivered))
		assert.Equal(t, 5, int(serviceorder.StatusRejected))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []serviceorder.Status{
			serviceorder.StatusToConfirm,
			serviceorder.StatusApproved,
			serviceorder.StatusReady,
			serviceorder.StatusDelivered,
			serviceorder.StatusRejected,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := serviceorder.StatusUnknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out-of-range status", func(t *testing.T) {
		err := serviceorder.Status(42).Validate()

		require.Error(t, err)
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   serviceorder.Status
		expected string
	}{
		{serviceorder.StatusUnknown, "Unknown"},
		{serviceorder.StatusToConfirm, "ToConfirm"},
		{serviceorder.StatusApproved, "Approved"},
		{serviceorder.StatusReady, "Ready"},
		{serviceorder.StatusDelivered, "Delivered"},
		{serviceorder.StatusRejected, "Rejected"},
		{serviceorder.Status(99), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every valid status name", func(t *testing.T) {
		names := map[string]serviceorder.Status{
			"ToConfirm": serviceorder.StatusToConfirm,
			"Approved":  serviceorder.StatusApproved,
			"Ready":     serviceorder.StatusReady,
			"Delivered": serviceorder.StatusDelivered,
			"Rejected":  serviceorder.StatusRejected,
		}

		for name, expected := range names {
			status, err := serviceorder.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should reject unrecognized names", func(t *testing.T) {
		_, err := serviceorder.StatusFromString("Shipped")
		require.Error(t, err)

		_, err = serviceorder.StatusFromString("Unknown")
		require.Error(t, err)
	})
}

func TestStatus_Transitions(t *testing.T) {
	type transition struct {
		from serviceorder.Status
		to   serviceorder.Status
	}

	allowed := []transition{
		{serviceorder.StatusToConfirm, serviceorder.StatusApproved},
		{serviceorder.StatusToConfirm, serviceorder.StatusRejected},
		{serviceorder.StatusApproved, serviceorder.StatusReady},
		{serviceorder.StatusApproved, serviceorder.StatusRejected},
		{serviceorder.StatusReady, serviceorder.StatusDelivered},
		{serviceorder.StatusRejected, serviceorder.StatusToConfirm},
	}

	t.Run("should allow every listed transition", func(t *testing.T) {
		for _, tr := range allowed {
			t.Run(fmt.Sprintf("%s to %s", tr.from, tr.to), func(t *testing.T) {
				assert.True(t, tr.from.CanTransitionTo(tr.to))

				next, err := tr.from.TransitionTo(tr.to)
				require.NoError(t, err)
				assert.Equal(t, tr.to, next)
			})
		}
	})

	t.Run("should reject everything not listed", func(t *testing.T) {
		all := []serviceorder.Status{
			serviceorder.StatusToConfirm,
			serviceorder.StatusApproved,
			serviceorder.StatusReady,
			serviceorder.StatusDelivered,
			serviceorder.StatusRejected,
		}

		isAllowed := func(from, to serviceorder.Status) bool {
			for _, tr := range allowed {
				if tr.from == from && tr.to == to {
					return true
				}
			}
			return false
		}

		for _, from := range all {
			for _, to := range all {
				if isAllowed(from, to) {
					continue
				}
				t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
					assert.False(t, from.CanTransitionTo(to))

					_, err := from.TransitionTo(to)
					require.Error(t, err)
					require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
				})
			}
		}
	})

	t.Run("Delivered is terminal", func(t *testing.T) {
		targets := []serviceorder.Status{
			serviceorder.StatusToConfirm,
			serviceorder.StatusApproved,
			serviceorder.StatusReady,
			serviceorder.StatusDelivered,
			serviceorder.StatusRejected,
		}

		for _, target := range targets {
			_, err := serviceorder.StatusDelivered.TransitionTo(target)
			require.Error(t, err, "Delivered must not transition to %s", target)
		}
	})

	t.Run("self-transition is rejected", func(t *testing.T) {
		_, err := serviceorder.StatusApproved.TransitionTo(serviceorder.StatusApproved)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
	})

	t.Run("transition error names both states", func(t *testing.T) {
		_, err := serviceorder.StatusToConfirm.TransitionTo(serviceorder.StatusDelivered)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ToConfirm")
		assert.Contains(t, err.Error(), "Delivered")
	})

	t.Run("transition from Unknown is rejected as invalid value", func(t *testing.T) {
		_, err := serviceorder.StatusUnknown.TransitionTo(serviceorder.StatusApproved)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
