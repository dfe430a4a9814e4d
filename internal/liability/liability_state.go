package liability

import (
	liabilityerrors "go-payledger/internal/liability/errors"
)

// transitions lists the allowed status moves. REJECTED and PAID are
// terminal.
var transitions = map[string][]string{
	StatusPending:       {StatusApproved, StatusRejected},
	StatusApproved:      {StatusPartiallyPaid, StatusPaid},
	StatusPartiallyPaid: {StatusPartiallyPaid, StatusPaid},
}

func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Deductible reports whether payroll may deduct from this liability.
func Deductible(status string) bool {
	return status == StatusApproved || status == StatusPaid || status == StatusPartiallyPaid
}

// AdvanceInstallment records one installment against a loan and moves its
// status: the final installment lands on PAID, anything earlier on
// PARTIALLY_PAID.
func AdvanceInstallment(l *Liability) error {
	if !Deductible(l.Status) {
		return liabilityerrors.ErrNotDeductible
	}
	if l.InstallmentsPaid >= l.InstallmentsTotal {
		return liabilityerrors.ErrAlreadySettled
	}

	l.InstallmentsPaid++
	next := StatusPartiallyPaid
	if l.InstallmentsPaid == l.InstallmentsTotal {
		next = StatusPaid
	}
	if !CanTransition(l.Status, next) {
		return liabilityerrors.ErrNotDeductible
	}
	l.Status = next
	return nil
}

// SettleAdvance marks a granted advance as collected in full.
func SettleAdvance(l *Liability) error {
	if !Deductible(l.Status) {
		return liabilityerrors.ErrNotDeductible
	}
	if l.Status == StatusPaid {
		return liabilityerrors.ErrAlreadySettled
	}
	l.InstallmentsPaid = l.InstallmentsTotal
	l.Status = StatusPaid
	return nil
}
