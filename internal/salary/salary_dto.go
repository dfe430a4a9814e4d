package salary

type CalculateSalaryRequest struct {
	Month          int     `json:"month" binding:"min=0,max=11"`
	Year           int     `json:"year" binding:"required"`
	DeductionOther *string `json:"deduction_other"`
}

type SetPaidRequest struct {
	IsPaid        bool    `json:"is_paid"`
	PaymentMethod *string `json:"payment_method"`
}

type SalaryResponse struct {
	ID                string  `json:"id"`
	BusinessID        string  `json:"business_id"`
	EmployeeID        string  `json:"employee_id"`
	Month             int     `json:"month"`
	Year              int     `json:"year"`
	DaysWorked        string  `json:"days_worked"`
	TotalWorkingDays  int     `json:"total_working_days"`
	RegularHours      string  `json:"regular_hours"`
	OvertimeHours     string  `json:"overtime_hours"`
	HourlyRate        string  `json:"hourly_rate"`
	OvertimeRate      string  `json:"overtime_rate"`
	GrossSalary       string  `json:"gross_salary"`
	DeductionAdvances string  `json:"deduction_advances"`
	DeductionLoans    string  `json:"deduction_loans"`
	DeductionOther    string  `json:"deduction_other"`
	NetSalary         string  `json:"net_salary"`
	IsPaid            bool    `json:"is_paid"`
	PaymentDate       *string `json:"payment_date,omitempty"`
	PaymentMethod     *string `json:"payment_method,omitempty"`
}
