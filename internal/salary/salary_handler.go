package salary

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

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

func (h *Handler) Calculate(c *gin.Context) {
	businessID := c.GetString("business_id")
	actorID := c.GetString("user_id")
	employeeID := c.Param("employeeId")

	var req CalculateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Calculate(c.Request.Context(), businessID, actorID, employeeID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) SetPaid(c *gin.Context) {
	businessID := c.GetString("business_id")
	actorID := c.GetString("user_id")
	id := c.Param("id")

	var req SetPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.SetPaid(c.Request.Context(), businessID, actorID, id, req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	businessID := c.GetString("business_id")

	filter := QueryFilter{EmployeeID: c.Query("employee_id")}

	month, err := intQuery(c, "month")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}
	filter.Month = month

	year, err := intQuery(c, "year")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}
	filter.Year = year

	if raw := c.Query("is_paid"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", "is_paid must be a boolean")
			return
		}
		filter.IsPaid = &b
	}

	resp, err := h.service.GetAll(c.Request.Context(), businessID, filter)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	businessID := c.GetString("business_id")
	id := c.Param("id")

	resp, err := h.service.GetByID(c.Request.Context(), businessID, id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// intQuery returns nil when the key is absent and an error when its value
// does not parse; an unparseable filter must not widen the listing.
func intQuery(c *gin.Context, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	return &v, nil
}

func writeError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
}
