package attendance_test

import (
	"testing"
	"time"

	"go-payledger/internal/attendance"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entry(date time.Time, status string, hours, overtime float64) attendance.Attendance {
	return attendance.Attendance{
		ID:             uuid.New(),
		AttendanceDate: date,
		Status:         status,
		HoursWorked:    decimal.NewFromFloat(hours),
		OvertimeHours:  decimal.NewFromFloat(overtime),
	}
}

func TestSummarize(t *testing.T) {
	start := day(2025, time.June, 1)
	end := day(2025, time.June, 30)

	t.Run("full month with half days", func(t *testing.T) {
		var entries []attendance.Attendance
		for d := 1; d <= 20; d++ {
			entries = append(entries, entry(day(2025, time.June, d), attendance.StatusPresent, 8, 0))
		}
		entries = append(entries,
			entry(day(2025, time.June, 21), attendance.StatusHalfDay, 4, 0),
			entry(day(2025, time.June, 22), attendance.StatusHalfDay, 4, 0),
		)

		sum := attendance.Summarize(entries, start, end)

		assert.Equal(t, "21", sum.DaysWorked.String())
		assert.Equal(t, "168", sum.RegularHours.String())
		assert.Equal(t, "0", sum.OvertimeHours.String())
		assert.Equal(t, 30, sum.TotalCalendarDays)
	})

	t.Run("absent and leave contribute nothing even with stored hours", func(t *testing.T) {
		entries := []attendance.Attendance{
			entry(day(2025, time.June, 2), attendance.StatusPresent, 8, 2),
			entry(day(2025, time.June, 3), attendance.StatusAbsent, 8, 1),
			entry(day(2025, time.June, 4), attendance.StatusLeave, 8, 0),
		}

		sum := attendance.Summarize(entries, start, end)

		assert.Equal(t, "1", sum.DaysWorked.String())
		assert.Equal(t, "8", sum.RegularHours.String())
		assert.Equal(t, "2", sum.OvertimeHours.String())
	})

	t.Run("entries outside the window are ignored", func(t *testing.T) {
		entries := []attendance.Attendance{
			entry(day(2025, time.May, 31), attendance.StatusPresent, 8, 0),
			entry(day(2025, time.June, 1), attendance.StatusPresent, 8, 0),
			entry(day(2025, time.June, 30), attendance.StatusPresent, 8, 0),
			entry(day(2025, time.July, 1), attendance.StatusPresent, 8, 0),
		}

		sum := attendance.Summarize(entries, start, end)

		assert.Equal(t, "2", sum.DaysWorked.String())
		assert.Equal(t, "16", sum.RegularHours.String())
	})

	t.Run("empty set yields zero totals but full calendar", func(t *testing.T) {
		sum := attendance.Summarize(nil, day(2025, time.February, 1), day(2025, time.February, 28))

		assert.True(t, sum.DaysWorked.IsZero())
		assert.True(t, sum.RegularHours.IsZero())
		assert.True(t, sum.OvertimeHours.IsZero())
		assert.Equal(t, 28, sum.TotalCalendarDays)
	})

	t.Run("leap february calendar days", func(t *testing.T) {
		sum := attendance.Summarize(nil, day(2024, time.February, 1), day(2024, time.February, 29))
		assert.Equal(t, 29, sum.TotalCalendarDays)
	})
}
