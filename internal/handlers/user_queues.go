package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tutoring_queue/internal/auth"
	"tutoring_queue/internal/ledger"
	"tutoring_queue/internal/models"
	"tutoring_queue/internal/response"
)

// HistoryResponse is the caller's past visits plus the dashboard summary.
type HistoryResponse struct {
	Summary ledger.UserSummary     `json:"summary"`
	Records []models.HistoryRecord `json:"records"`
}

// GetUserQueues godoc
// @Summary		My active queues
// @Description	Every queue the caller is waiting in, oldest join first, with position and ETA
// @Tags			profile
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}	response.ActiveQueueResponse
// @Router			/profile/queues [get]
func (h *Handler) GetUserQueues(c *gin.Context) {
	entries := h.Queue.UserActiveQueues(auth.UserID(c))

	out := make([]response.ActiveQueueResponse, 0, len(entries))
	for _, e := range entries {
		item := response.ActiveQueueResponse{EntryResponse: h.withETA(e)}
		if svc, ok := h.Catalog.Service(e.ServiceID); ok {
			item.ServiceName = svc.Name
			item.ServiceIcon = svc.Icon
		}
		out = append(out, item)
	}
	c.JSON(http.StatusOK, out)
}

// GetUserHistory godoc
// @Summary		My history
// @Description	Finished visits, newest first, with served count and average wait
// @Tags			profile
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	HistoryResponse
// @Router			/profile/history [get]
func (h *Handler) GetUserHistory(c *gin.Context) {
	userID := auth.UserID(c)
	c.JSON(http.StatusOK, HistoryResponse{
		Summary: h.Ledger.UserSummary(userID),
		Records: h.Ledger.ForUser(userID),
	})
}
