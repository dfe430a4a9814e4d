package liability

type CreateLiabilityRequest struct {
	EmployeeID        string  `json:"employee_id" binding:"required,uuid"`
	Kind              string  `json:"kind" binding:"required,oneof=ADVANCE LOAN"`
	Amount            string  `json:"amount" binding:"required"`
	GrantDate         *string `json:"grant_date"`
	Description       *string `json:"description"`
	InstallmentsTotal *int    `json:"installments_total"`
}

type DecideLiabilityRequest struct {
	Approve bool `json:"approve"`
}

type LiabilityResponse struct {
	ID                   string  `json:"id"`
	BusinessID           string  `json:"business_id"`
	EmployeeID           string  `json:"employee_id"`
	Kind                 string  `json:"kind"`
	Amount               string  `json:"amount"`
	GrantDate            string  `json:"grant_date"`
	Description          *string `json:"description,omitempty"`
	InstallmentsTotal    int     `json:"installments_total"`
	InstallmentsPaid     int     `json:"installments_paid"`
	AmountPerInstallment string  `json:"amount_per_installment"`
	Remaining            string  `json:"remaining"`
	Status               string  `json:"status"`
	ApprovedBy           *string `json:"approved_by,omitempty"`
}
