package liability

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PeriodResolution is what payroll subtracts from gross pay, plus the
// before/after pair for every liability the resolution mutated so each one
// can be audited individually.
type PeriodResolution struct {
	AdvanceDeduction decimal.Decimal
	LoanDeduction    decimal.Decimal
	Touched          []TouchedLiability
}

type TouchedLiability struct {
	Before Liability
	After  Liability
}

// Ledger resolves an employee's deductions for one pay period. The caller
// owns the transaction; installment increments and status transitions are
// persisted through it so they commit or roll back with the salary record.
type Ledger interface {
	ResolvePeriod(ctx context.Context, tx *sql.Tx, businessID, employeeID string, periodStart, periodEnd time.Time) (PeriodResolution, error)
}

type ledger struct {
	repo   Repository
	logger *zap.Logger
}

func NewLedger(repo Repository, logger ...*zap.Logger) Ledger {
	l := zap.L().Named("liability.ledger")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("liability.ledger")
	}
	return &ledger{repo: repo, logger: l}
}

func (g *ledger) ResolvePeriod(
	ctx context.Context,
	tx *sql.Tx,
	businessID, employeeID string,
	periodStart, periodEnd time.Time,
) (PeriodResolution, error) {
	qtx := g.repo.WithTx(tx)

	res := PeriodResolution{
		AdvanceDeduction: decimal.Zero,
		LoanDeduction:    decimal.Zero,
	}

	advances, err := qtx.FindAdvancesInWindow(ctx, businessID, employeeID, periodStart, periodEnd)
	if err != nil {
		return PeriodResolution{}, err
	}

	for i := range advances {
		adv := advances[i]
		if adv.BusinessID.String() != businessID {
			// Mismatched tenant rows are skipped, never an error.
			g.logger.Warn("excluding liability from foreign business",
				zap.String("liability_id", adv.ID.String()),
			)
			continue
		}

		// Advances are deducted in full, once, in the period they were
		// granted.
		res.AdvanceDeduction = res.AdvanceDeduction.Add(adv.Amount)

		if adv.Status == StatusPaid {
			continue
		}

		before := adv
		if err := SettleAdvance(&adv); err != nil {
			return PeriodResolution{}, err
		}
		if err := qtx.Update(ctx, &adv); err != nil {
			return PeriodResolution{}, err
		}
		res.Touched = append(res.Touched, TouchedLiability{Before: before, After: adv})
	}

	loans, err := qtx.FindOpenLoans(ctx, businessID, employeeID)
	if err != nil {
		return PeriodResolution{}, err
	}

	for i := range loans {
		loan := loans[i]
		if loan.BusinessID.String() != businessID {
			g.logger.Warn("excluding liability from foreign business",
				zap.String("liability_id", loan.ID.String()),
			)
			continue
		}

		before := loan
		if err := AdvanceInstallment(&loan); err != nil {
			return PeriodResolution{}, err
		}
		if err := qtx.Update(ctx, &loan); err != nil {
			return PeriodResolution{}, err
		}

		res.LoanDeduction = res.LoanDeduction.Add(loan.AmountPerInstallment)
		res.Touched = append(res.Touched, TouchedLiability{Before: before, After: loan})
	}

	return res, nil
}
