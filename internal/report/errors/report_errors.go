package reporterrors

import (
	"net/http"

	"go-payledger/internal/shared/apperror"
)

var (
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"month must be 0-11 and year must be between 2000 and 2100",
		http.StatusBadRequest,
	)
	ErrInvalidBusinessID = apperror.New(
		apperror.CodeInvalidInput,
		"business id must be a valid UUID",
		http.StatusBadRequest,
	)
)
