package leave

import (
	"errors"
	"net/http"

	"go-payledger/internal/rbac"
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

	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), businessID, actorID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	businessID := c.GetString("business_id")
	actorID := c.GetString("user_id")
	role := c.GetString("role")

	canReadAll := role == rbac.RoleOwner || role == rbac.RoleManager

	resp, err := h.service.GetAll(c.Request.Context(), businessID, actorID, canReadAll)
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

func (h *Handler) Submit(c *gin.Context) {
	h.transition(c, func(businessID, actorID, id string) (LeaveResponse, error) {
		return h.service.Submit(c.Request.Context(), businessID, actorID, id)
	})
}

func (h *Handler) Cancel(c *gin.Context) {
	h.transition(c, func(businessID, actorID, id string) (LeaveResponse, error) {
		return h.service.Cancel(c.Request.Context(), businessID, actorID, id)
	})
}

func (h *Handler) Approve(c *gin.Context) {
	h.transition(c, func(businessID, actorID, id string) (LeaveResponse, error) {
		return h.service.Approve(c.Request.Context(), businessID, actorID, id)
	})
}

func (h *Handler) Reject(c *gin.Context) {
	businessID := c.GetString("business_id")
	actorID := c.GetString("user_id")
	id := c.Param("id")

	var req RejectLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Reject(c.Request.Context(), businessID, actorID, id, req.RejectionReason)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) transition(c *gin.Context, fn func(businessID, actorID, id string) (LeaveResponse, error)) {
	businessID := c.GetString("business_id")
	actorID := c.GetString("user_id")
	id := c.Param("id")

	resp, err := fn(businessID, actorID, id)
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
