package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tutoring_queue/internal/response"
)

// GetStats godoc
// @Summary		Daily statistics
// @Description	Served, no-show and cancelled counts for one day plus the live queue load
// @Tags			admin
// @Produce		json
// @Security		BearerAuth
// @Param			date	query		string	false	"Day as YYYY-MM-DD, today by default"
// @Success		200		{object}	response.StatsResponse
// @Failure		400		{object}	response.ErrorResponse	"VALIDATION_ERROR"
// @Failure		403		{object}	response.ErrorResponse	"FORBIDDEN"
// @Router			/api/admin/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format(time.DateOnly))
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		validationError(c, err)
		return
	}

	day := h.Ledger.DaySummary(date)
	c.JSON(http.StatusOK, response.StatsResponse{
		Date:         day.Date,
		Served:       day.Served,
		NoShows:      day.NoShows,
		Cancelled:    day.Cancelled,
		AvgWaitTime:  day.AvgWaitTime,
		NoShowRate:   day.NoShowRate,
		TotalWaiting: h.Queue.TotalWaiting(),
		OpenServices: len(h.Catalog.Open()),
	})
}
