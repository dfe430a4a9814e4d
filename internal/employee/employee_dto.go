package employee

type CreateEmployeeRequest struct {
	FirstName      string  `json:"first_name" binding:"required"`
	LastName       string  `json:"last_name" binding:"required"`
	Position       string  `json:"position"`
	Department     string  `json:"department"`
	HourlyRate     string  `json:"hourly_rate" binding:"required"`
	OvertimeRate   *string `json:"overtime_rate"`
	HireDate       string  `json:"hire_date" binding:"required"`
	EmployeeNumber string  `json:"employee_number"`
}

type UpdateEmployeeRequest struct {
	FirstName    string  `json:"first_name" binding:"required"`
	LastName     string  `json:"last_name" binding:"required"`
	Position     string  `json:"position"`
	Department   string  `json:"department"`
	HourlyRate   string  `json:"hourly_rate" binding:"required"`
	OvertimeRate *string `json:"overtime_rate"`
	IsActive     *bool   `json:"is_active"`
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	BusinessID     string  `json:"business_id"`
	EmployeeNumber string  `json:"employee_number"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Position       string  `json:"position,omitempty"`
	Department     string  `json:"department,omitempty"`
	HourlyRate     string  `json:"hourly_rate"`
	OvertimeRate   string  `json:"overtime_rate"`
	HireDate       string  `json:"hire_date"`
	LifecycleState string  `json:"lifecycle_state"`
	EndDate        *string `json:"end_date,omitempty"`
}
