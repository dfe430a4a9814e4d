package attendance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusLeave   = "LEAVE"
	StatusHalfDay = "HALF_DAY"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLeave, StatusHalfDay:
		return true
	}
	return false
}

// Attendance holds one employee-day. HoursWorked and OvertimeHours are filled
// at clock-out (or on manual entry) and the row is immutable afterwards.
type Attendance struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BusinessID     uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:uq_attendance_employee_date"`
	EmployeeID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	AttendanceDate time.Time       `gorm:"type:date;not null;uniqueIndex:uq_attendance_employee_date"`
	Status         string          `gorm:"type:varchar(10);not null;default:'PRESENT'"`
	ClockIn        *time.Time      `gorm:""`
	ClockOut       *time.Time      `gorm:""`
	HoursWorked    decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	OvertimeHours  decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	Notes          *string         `gorm:"type:text"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

func (Attendance) TableName() string {
	return "attendances"
}
