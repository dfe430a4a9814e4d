package liabilityerrors

import (
	"net/http"

	"go-payledger/internal/shared/apperror"
)

var (
	ErrLiabilityNotFound = apperror.New(
		apperror.CodeNotFound,
		"liability not found",
		http.StatusNotFound,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidInstallments = apperror.New(
		apperror.CodeInvalidInput,
		"installments total must be at least 1",
		http.StatusBadRequest,
	)
	ErrInvalidKind = apperror.New(
		apperror.CodeInvalidInput,
		"liability kind must be ADVANCE or LOAN",
		http.StatusBadRequest,
	)
	ErrInvalidGrantDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid grant date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"liability has already been approved or rejected",
		http.StatusConflict,
	)
	ErrNotPending = apperror.New(
		apperror.CodeInvalidState,
		"only pending liabilities can be deleted",
		http.StatusConflict,
	)
	ErrAlreadySettled = apperror.New(
		apperror.CodeInvalidState,
		"liability is already fully paid",
		http.StatusConflict,
	)
	ErrNotDeductible = apperror.New(
		apperror.CodeInvalidState,
		"liability is not in a deductible state",
		http.StatusConflict,
	)
)
