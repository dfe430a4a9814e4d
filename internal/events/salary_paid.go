package events

import "time"

const SalaryPaidTopic = "payroll.salary.paid.v1"

type SalaryPaidEvent struct {
	EventType      string    `json:"event_type"`
	SalaryRecordID string    `json:"salary_record_id"`
	BusinessID     string    `json:"business_id"`
	EmployeeID     string    `json:"employee_id"`
	Month          int       `json:"month"`
	Year           int       `json:"year"`
	NetSalary      string    `json:"net_salary"`
	PaymentMethod  string    `json:"payment_method"`
	OccurredAt     time.Time `json:"occurred_at"`
}
