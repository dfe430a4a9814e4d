package events

import "time"

const SalaryCalculatedTopic = "payroll.salary.calculated.v1"

// SalaryCalculatedEvent is emitted once per successful payroll calculation.
// Amounts travel as fixed-point strings, never floats.
type SalaryCalculatedEvent struct {
	EventType        string    `json:"event_type"`
	SalaryRecordID   string    `json:"salary_record_id"`
	BusinessID       string    `json:"business_id"`
	EmployeeID       string    `json:"employee_id"`
	Month            int       `json:"month"`
	Year             int       `json:"year"`
	GrossSalary      string    `json:"gross_salary"`
	NetSalary        string    `json:"net_salary"`
	AdvanceDeduction string    `json:"advance_deduction"`
	LoanDeduction    string    `json:"loan_deduction"`
	OccurredAt       time.Time `json:"occurred_at"`
}
