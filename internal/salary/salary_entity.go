package salary

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MethodCash         = "CASH"
	MethodBankTransfer = "BANK_TRANSFER"
	MethodCheck        = "CHECK"
	MethodOther        = "OTHER"
)

func ValidPaymentMethod(m string) bool {
	switch m {
	case MethodCash, MethodBankTransfer, MethodCheck, MethodOther:
		return true
	}
	return false
}

// SalaryRecord is one employee's pay for one period. Month is zero-based
// (0 = January, 11 = December); the unique index is what makes a period
// calculable at most once per employee.
type SalaryRecord struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BusinessID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_salary_employee_period"`
	Month             int             `gorm:"not null;uniqueIndex:uq_salary_employee_period"`
	Year              int             `gorm:"not null;uniqueIndex:uq_salary_employee_period"`
	DaysWorked        decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	TotalWorkingDays  int             `gorm:"not null;default:0"`
	RegularHours      decimal.Decimal `gorm:"type:numeric(7,2);not null;default:0"`
	OvertimeHours     decimal.Decimal `gorm:"type:numeric(7,2);not null;default:0"`
	HourlyRate        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	OvertimeRate      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	GrossSalary       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	DeductionAdvances decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	DeductionLoans    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	DeductionOther    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	NetSalary         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	IsPaid            bool            `gorm:"not null;default:false"`
	PaymentDate       *time.Time      `gorm:""`
	PaymentMethod     *string         `gorm:"type:varchar(16)"`
	CreatedBy         uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt         time.Time       `gorm:"autoCreateTime"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime"`
}

func (SalaryRecord) TableName() string {
	return "salary_records"
}
