package report

// MonthlySummaryResponse is the cached report payload. Month is zero-based
// like everywhere else in the payroll tables.
type MonthlySummaryResponse struct {
	BusinessID string `json:"businessId"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`

	Payroll    PayrollSummary    `json:"payroll"`
	Liability  LiabilitySummary  `json:"liabilities"`
	Attendance AttendanceSummary `json:"attendance"`

	GeneratedAt string `json:"generatedAt"`
}

type PayrollSummary struct {
	RecordsTotal int    `json:"recordsTotal"`
	RecordsPaid  int    `json:"recordsPaid"`
	PaidNet      string `json:"paidNet"`
	PendingNet   string `json:"pendingNet"`
	GrossTotal   string `json:"grossTotal"`
}

type LiabilitySummary struct {
	AdvancesGranted int    `json:"advancesGranted"`
	AdvancesAmount  string `json:"advancesAmount"`
	LoansGranted    int    `json:"loansGranted"`
	LoansAmount     string `json:"loansAmount"`
}

type AttendanceSummary struct {
	PresentDays int `json:"presentDays"`
	AbsentDays  int `json:"absentDays"`
	LeaveDays   int `json:"leaveDays"`
	HalfDays    int `json:"halfDays"`
}
