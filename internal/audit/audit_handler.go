package audit

import (
	"net/http"

	"go-payledger/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) GetAll(c *gin.Context) {
	businessID := c.GetString("business_id")

	filter := QueryFilter{
		EntityKind: c.Query("entity_kind"),
		EntityID:   c.Query("entity_id"),
	}

	rows, err := h.repo.FindAllByBusiness(c.Request.Context(), businessID, filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}

	response.Success(c, http.StatusOK, mapToListResponse(rows), nil)
}
