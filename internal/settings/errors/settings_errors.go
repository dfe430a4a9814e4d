package settingserrors

import (
	"net/http"

	"go-payledger/internal/shared/apperror"
)

var (
	ErrSettingsNotFound = apperror.New(
		apperror.CodeNotFound,
		"business settings not found",
		http.StatusNotFound,
	)
	ErrInvalidWorkingHours = apperror.New(
		apperror.CodeInvalidInput,
		"regular hours per day must be between 1 and 24",
		http.StatusBadRequest,
	)
	ErrInvalidWorkingDays = apperror.New(
		apperror.CodeInvalidInput,
		"working days per week must be between 1 and 7",
		http.StatusBadRequest,
	)
	ErrInvalidOvertimeMultiplier = apperror.New(
		apperror.CodeInvalidInput,
		"overtime multiplier must be at least 1",
		http.StatusBadRequest,
	)
	ErrInvalidPaymentDay = apperror.New(
		apperror.CodeInvalidInput,
		"payment day must be between 1 and 28",
		http.StatusBadRequest,
	)
	ErrInvalidBusinessID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid business id",
		http.StatusBadRequest,
	)
)
