package liability_test

import (
	"testing"

	"go-payledger/internal/liability"
	liabilityerrors "go-payledger/internal/liability/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func loan(amount float64, total, paid int, status string) *liability.Liability {
	amt := decimal.NewFromFloat(amount)
	return &liability.Liability{
		Kind:                 liability.KindLoan,
		Amount:               amt,
		InstallmentsTotal:    total,
		InstallmentsPaid:     paid,
		AmountPerInstallment: amt.Div(decimal.NewFromInt(int64(total))).Round(2),
		Status:               status,
	}
}

func TestCanTransition(t *testing.T) {
	assert.True(t, liability.CanTransition(liability.StatusPending, liability.StatusApproved))
	assert.True(t, liability.CanTransition(liability.StatusPending, liability.StatusRejected))
	assert.True(t, liability.CanTransition(liability.StatusApproved, liability.StatusPartiallyPaid))
	assert.True(t, liability.CanTransition(liability.StatusApproved, liability.StatusPaid))
	assert.True(t, liability.CanTransition(liability.StatusPartiallyPaid, liability.StatusPaid))

	assert.False(t, liability.CanTransition(liability.StatusRejected, liability.StatusApproved))
	assert.False(t, liability.CanTransition(liability.StatusPaid, liability.StatusPartiallyPaid))
	assert.False(t, liability.CanTransition(liability.StatusPending, liability.StatusPaid))
}

func TestAdvanceInstallment(t *testing.T) {
	t.Run("loan walks to paid across four installments", func(t *testing.T) {
		l := loan(1000, 4, 0, liability.StatusApproved)
		assert.Equal(t, "250.00", l.AmountPerInstallment.StringFixed(2))

		for i := 1; i <= 3; i++ {
			assert.NoError(t, liability.AdvanceInstallment(l))
			assert.Equal(t, i, l.InstallmentsPaid)
			assert.Equal(t, liability.StatusPartiallyPaid, l.Status)
		}

		assert.NoError(t, liability.AdvanceInstallment(l))
		assert.Equal(t, 4, l.InstallmentsPaid)
		assert.Equal(t, liability.StatusPaid, l.Status)
		assert.Equal(t, "0.00", l.Remaining().StringFixed(2))

		// Fifth deduction attempt is a no-op failure.
		err := liability.AdvanceInstallment(l)
		assert.Error(t, err)
		assert.Equal(t, 4, l.InstallmentsPaid)
	})

	t.Run("single installment loan goes straight to paid", func(t *testing.T) {
		l := loan(500, 1, 0, liability.StatusApproved)
		assert.NoError(t, liability.AdvanceInstallment(l))
		assert.Equal(t, liability.StatusPaid, l.Status)
	})

	t.Run("pending loan is not deductible", func(t *testing.T) {
		l := loan(500, 2, 0, liability.StatusPending)
		assert.ErrorIs(t, liability.AdvanceInstallment(l), liabilityerrors.ErrNotDeductible)
	})

	t.Run("rejected loan is not deductible", func(t *testing.T) {
		l := loan(500, 2, 0, liability.StatusRejected)
		assert.ErrorIs(t, liability.AdvanceInstallment(l), liabilityerrors.ErrNotDeductible)
	})
}

func TestSettleAdvance(t *testing.T) {
	t.Run("approved advance settles in one step", func(t *testing.T) {
		adv := &liability.Liability{
			Kind:              liability.KindAdvance,
			Amount:            decimal.NewFromInt(300),
			InstallmentsTotal: 1,
			Status:            liability.StatusApproved,
		}
		assert.NoError(t, liability.SettleAdvance(adv))
		assert.Equal(t, liability.StatusPaid, adv.Status)
		assert.Equal(t, "0.00", adv.Remaining().StringFixed(2))
	})

	t.Run("paid advance cannot settle twice", func(t *testing.T) {
		adv := &liability.Liability{
			Kind:   liability.KindAdvance,
			Amount: decimal.NewFromInt(300),
			Status: liability.StatusPaid,
		}
		assert.ErrorIs(t, liability.SettleAdvance(adv), liabilityerrors.ErrAlreadySettled)
	})

	t.Run("pending advance cannot settle", func(t *testing.T) {
		adv := &liability.Liability{
			Kind:   liability.KindAdvance,
			Amount: decimal.NewFromInt(300),
			Status: liability.StatusPending,
		}
		assert.ErrorIs(t, liability.SettleAdvance(adv), liabilityerrors.ErrNotDeductible)
	})
}

func TestRemaining(t *testing.T) {
	t.Run("rounding drift never goes negative", func(t *testing.T) {
		// 1000 / 3 rounds to 333.33 per installment; after 3 deductions
		// 999.99 is collected, remaining clamps at the residual cent.
		l := loan(1000, 3, 3, liability.StatusPaid)
		assert.Equal(t, "0.01", l.Remaining().StringFixed(2))
	})
}
