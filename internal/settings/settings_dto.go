package settings

type UpdateSettingsRequest struct {
	BusinessName       string  `json:"business_name" binding:"required"`
	RegularHoursPerDay *int    `json:"regular_hours_per_day"`
	WorkingDaysPerWeek *int    `json:"working_days_per_week"`
	OvertimeMultiplier *string `json:"overtime_multiplier"`
	SalaryPeriod       *string `json:"salary_period" binding:"omitempty,oneof=MONTHLY BI_WEEKLY WEEKLY"`
	PaymentDay         *int    `json:"payment_day"`
	AutoCalculate      *bool   `json:"auto_calculate"`
	NotifyByEmail      *bool   `json:"notify_by_email"`
	NotifyOnAbsence    *bool   `json:"notify_on_absence"`
	NotifyBeforePayday *bool   `json:"notify_before_payday"`
}

type SettingsResponse struct {
	BusinessID         string `json:"business_id"`
	BusinessName       string `json:"business_name"`
	RegularHoursPerDay int    `json:"regular_hours_per_day"`
	WorkingDaysPerWeek int    `json:"working_days_per_week"`
	OvertimeMultiplier string `json:"overtime_multiplier"`
	SalaryPeriod       string `json:"salary_period"`
	PaymentDay         int    `json:"payment_day"`
	AutoCalculate      bool   `json:"auto_calculate"`
	NotifyByEmail      bool   `json:"notify_by_email"`
	NotifyOnAbsence    bool   `json:"notify_on_absence"`
	NotifyBeforePayday bool   `json:"notify_before_payday"`
}
