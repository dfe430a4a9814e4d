package liability

import (
	"errors"
	"net/http"

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

func (h *Handler) Create(c *gin.Context) {
	businessID := c.GetString("business_id")
	actorID := c.GetString("user_id")
	role := c.GetString("role")

	var req CreateLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), businessID, actorID, role, req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Decide(c *gin.Context) {
	businessID := c.GetString("business_id")
	actorID := c.GetString("user_id")
	id := c.Param("id")

	var req DecideLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Decide(c.Request.Context(), businessID, actorID, id, req.Approve)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	businessID := c.GetString("business_id")
	actorID := c.GetString("user_id")
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), businessID, actorID, id); err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	businessID := c.GetString("business_id")

	filter := QueryFilter{
		EmployeeID: c.Query("employee_id"),
		Kind:       c.Query("kind"),
		Status:     c.Query("status"),
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

func writeError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
}
