package liability

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	KindAdvance = "ADVANCE"
	KindLoan    = "LOAN"
)

const (
	StatusPending       = "PENDING"
	StatusApproved      = "APPROVED"
	StatusRejected      = "REJECTED"
	StatusPaid          = "PAID"
	StatusPartiallyPaid = "PARTIALLY_PAID"
)

// Liability is money the business handed an employee ahead of wages. An
// ADVANCE is deducted in full in the period it was granted; a LOAN is
// deducted one installment per payroll calculation until settled.
type Liability struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BusinessID           uuid.UUID       `gorm:"type:uuid;not null;index:idx_liability_business_date"`
	EmployeeID           uuid.UUID       `gorm:"type:uuid;not null;index:idx_liability_employee_status"`
	Kind                 string          `gorm:"type:varchar(10);not null"`
	Amount               decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	GrantDate            time.Time       `gorm:"type:date;not null;index:idx_liability_business_date"`
	Description          *string         `gorm:"type:text"`
	InstallmentsTotal    int             `gorm:"not null;default:1"`
	InstallmentsPaid     int             `gorm:"not null;default:0"`
	AmountPerInstallment decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status               string          `gorm:"type:varchar(16);not null;default:'PENDING';index:idx_liability_employee_status"`
	ApprovedBy           *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt            time.Time       `gorm:"autoCreateTime"`
	UpdatedAt            time.Time       `gorm:"autoUpdateTime"`
}

func (Liability) TableName() string {
	return "liabilities"
}

// Remaining is what the employee still owes on a loan.
func (l *Liability) Remaining() decimal.Decimal {
	if l.Kind != KindLoan {
		if l.Status == StatusPaid {
			return decimal.Zero
		}
		return l.Amount
	}
	paid := l.AmountPerInstallment.Mul(decimal.NewFromInt(int64(l.InstallmentsPaid)))
	remaining := l.Amount.Sub(paid)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
