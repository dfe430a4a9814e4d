package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodSummary is the reduction of one employee's attendance over a pay
// period. TotalCalendarDays counts every day of the period regardless of
// whether an entry exists; it is a reporting denominator, not a pay input.
type PeriodSummary struct {
	DaysWorked        decimal.Decimal
	RegularHours      decimal.Decimal
	OvertimeHours     decimal.Decimal
	TotalCalendarDays int
}

var halfDay = decimal.NewFromFloat(0.5)

// Summarize reduces entries into per-period totals. A PRESENT day counts as
// 1.0 worked day and HALF_DAY as 0.5; ABSENT and LEAVE contribute zero days
// and zero hours even if hours are stored on the row. Entries dated outside
// [periodStart, periodEnd] are ignored. Pure function, no store access.
func Summarize(entries []Attendance, periodStart, periodEnd time.Time) PeriodSummary {
	sum := PeriodSummary{
		DaysWorked:        decimal.Zero,
		RegularHours:      decimal.Zero,
		OvertimeHours:     decimal.Zero,
		TotalCalendarDays: int(periodEnd.Sub(periodStart).Hours()/24) + 1,
	}

	for _, e := range entries {
		d := e.AttendanceDate
		if d.Before(periodStart) || d.After(periodEnd) {
			continue
		}

		switch e.Status {
		case StatusPresent:
			sum.DaysWorked = sum.DaysWorked.Add(decimal.NewFromInt(1))
		case StatusHalfDay:
			sum.DaysWorked = sum.DaysWorked.Add(halfDay)
		default:
			continue
		}

		sum.RegularHours = sum.RegularHours.Add(e.HoursWorked)
		sum.OvertimeHours = sum.OvertimeHours.Add(e.OvertimeHours)
	}

	return sum
}
