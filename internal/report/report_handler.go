package report

import (
	"errors"
	"net/http"
	"strconv"

	reporterrors "go-payledger/internal/report/errors"
	"go-payledger/internal/shared/apperror"
	"go-payledger/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) MonthlySummary(c *gin.Context) {
	businessID := c.GetString("business_id")

	month, ok := intQuery(c, "month")
	if !ok {
		writeError(c, reporterrors.ErrInvalidPeriod)
		return
	}
	year, ok := intQuery(c, "year")
	if !ok {
		writeError(c, reporterrors.ErrInvalidPeriod)
		return
	}

	resp, err := h.service.MonthlySummary(c.Request.Context(), businessID, month, year)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func intQuery(c *gin.Context, key string) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func writeError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
}
