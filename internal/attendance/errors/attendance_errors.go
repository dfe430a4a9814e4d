package attendanceerrors

import (
	"net/http"

	"go-payledger/internal/shared/apperror"
)

var (
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeConflict,
		"already clocked in for this date",
		http.StatusConflict,
	)
	ErrNoClockIn = apperror.New(
		apperror.CodeInvalidState,
		"no open clock-in found for today",
		http.StatusConflict,
	)
	ErrAlreadyClockedOut = apperror.New(
		apperror.CodeInvalidState,
		"already clocked out for today",
		http.StatusConflict,
	)
	ErrEntryExists = apperror.New(
		apperror.CodeConflict,
		"attendance entry already exists for this employee and date",
		http.StatusConflict,
	)
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance entry not found",
		http.StatusNotFound,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid attendance date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"invalid attendance status",
		http.StatusBadRequest,
	)
	ErrInvalidHours = apperror.New(
		apperror.CodeInvalidInput,
		"hours must be zero or positive",
		http.StatusBadRequest,
	)
)
