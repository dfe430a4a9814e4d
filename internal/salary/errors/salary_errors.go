package salaryerrors

import (
	"net/http"

	"go-payledger/internal/shared/apperror"
)

var (
	ErrDuplicatePeriod = apperror.New(
		apperror.CodeConflict,
		"salary already calculated for this employee and period",
		http.StatusConflict,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"month must be 0-11 and year must be between 2000 and 2100",
		http.StatusBadRequest,
	)
	ErrSalaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary record not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found in this business",
		http.StatusNotFound,
	)
	ErrInvalidPaymentMethod = apperror.New(
		apperror.CodeInvalidInput,
		"payment method must be CASH, BANK_TRANSFER, CHECK or OTHER",
		http.StatusBadRequest,
	)
	ErrInvalidDeduction = apperror.New(
		apperror.CodeInvalidInput,
		"other deductions must be zero or positive",
		http.StatusBadRequest,
	)
)
