package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	LifecycleActive   = "ACTIVE"
	LifecycleInactive = "INACTIVE"
)

// Employee rows are never hard-deleted; deactivation flips LifecycleState
// and stamps EndDate so past salary records keep a valid reference.
type Employee struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BusinessID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeNumber string          `gorm:"type:varchar(20);not null;index:idx_employee_number,unique"`
	FirstName      string          `gorm:"type:varchar(120);not null"`
	LastName       string          `gorm:"type:varchar(120);not null"`
	Position       string          `gorm:"type:varchar(120)"`
	Department     string          `gorm:"type:varchar(120)"`
	HourlyRate     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	OvertimeRate   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	HireDate       time.Time       `gorm:"type:date;not null"`
	LifecycleState string          `gorm:"type:varchar(10);not null;default:'ACTIVE';index"`
	EndDate        *time.Time      `gorm:"type:date"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Employee) TableName() string {
	return "employees"
}
