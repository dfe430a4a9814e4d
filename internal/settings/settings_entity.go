package settings

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PeriodMonthly  = "MONTHLY"
	PeriodBiWeekly = "BI_WEEKLY"
	PeriodWeekly   = "WEEKLY"
)

// BusinessSettings is a one-row-per-business record. First read creates it
// with defaults, so callers never see a missing row.
type BusinessSettings struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BusinessID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_settings_business"`
	BusinessName       string          `gorm:"type:varchar(120);not null"`
	RegularHoursPerDay int             `gorm:"not null;default:8"`
	WorkingDaysPerWeek int             `gorm:"not null;default:6"`
	OvertimeMultiplier decimal.Decimal `gorm:"type:numeric(4,2);not null;default:1.5"`
	SalaryPeriod       string          `gorm:"type:varchar(12);not null;default:'MONTHLY'"`
	PaymentDay         int             `gorm:"not null;default:1"`
	AutoCalculate      bool            `gorm:"not null;default:true"`
	NotifyByEmail      bool            `gorm:"not null;default:true"`
	NotifyOnAbsence    bool            `gorm:"not null;default:true"`
	NotifyBeforePayday bool            `gorm:"not null;default:true"`
	CreatedAt          time.Time       `gorm:"autoCreateTime"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime"`
}

func (BusinessSettings) TableName() string {
	return "business_settings"
}

func defaults(businessID uuid.UUID) *BusinessSettings {
	return &BusinessSettings{
		ID:                 uuid.New(),
		BusinessID:         businessID,
		BusinessName:       "My Business",
		RegularHoursPerDay: 8,
		WorkingDaysPerWeek: 6,
		OvertimeMultiplier: decimal.NewFromFloat(1.5),
		SalaryPeriod:       PeriodMonthly,
		PaymentDay:         1,
		AutoCalculate:      true,
		NotifyByEmail:      true,
		NotifyOnAbsence:    true,
		NotifyBeforePayday: true,
	}
}
