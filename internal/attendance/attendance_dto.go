package attendance

type ClockInRequest struct {
	Notes *string `json:"notes"`
}

type ClockOutRequest struct {
	Notes *string `json:"notes"`
}

type CreateAttendanceRequest struct {
	EmployeeID     string  `json:"employee_id" binding:"required,uuid"`
	AttendanceDate string  `json:"attendance_date" binding:"required"`
	Status         string  `json:"status" binding:"required,oneof=PRESENT ABSENT LEAVE HALF_DAY"`
	HoursWorked    *string `json:"hours_worked"`
	OvertimeHours  *string `json:"overtime_hours"`
	Notes          *string `json:"notes"`
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	BusinessID     string  `json:"business_id"`
	EmployeeID     string  `json:"employee_id"`
	AttendanceDate string  `json:"attendance_date"`
	Status         string  `json:"status"`
	ClockIn        *string `json:"clock_in,omitempty"`
	ClockOut       *string `json:"clock_out,omitempty"`
	HoursWorked    string  `json:"hours_worked"`
	OvertimeHours  string  `json:"overtime_hours"`
	Notes          *string `json:"notes,omitempty"`
}

type PeriodSummaryResponse struct {
	EmployeeID        string `json:"employee_id"`
	PeriodStart       string `json:"period_start"`
	PeriodEnd         string `json:"period_end"`
	DaysWorked        string `json:"days_worked"`
	RegularHours      string `json:"regular_hours"`
	OvertimeHours     string `json:"overtime_hours"`
	TotalCalendarDays int    `json:"total_calendar_days"`
}
