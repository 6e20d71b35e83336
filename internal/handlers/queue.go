package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"tutoring_queue/internal/auth"
	"tutoring_queue/internal/catalog"
	"tutoring_queue/internal/models"
	"tutoring_queue/internal/queue"
	"tutoring_queue/internal/response"
)

type JoinRequest struct {
	Notes    string               `json:"notes" binding:"max=500"`
	Priority models.EntryPriority `json:"priority"`
}

type ReorderRequest struct {
	EntryID   string `json:"entryId" binding:"required"`
	Direction string `json:"direction" binding:"required"`
}

type ReorderResponse struct {
	Moved bool                     `json:"moved"`
	Queue []response.EntryResponse `json:"queue"`
}

// JoinQueue godoc
// @Summary		Join a queue
// @Description	Adds the caller to the end of the service's queue. The body is optional.
// @Tags			queue
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			id		path		string		true	"Service ID"
// @Param			entry	body		JoinRequest	false	"Notes and priority"
// @Success		201		{object}	response.EntryResponse
// @Failure		400		{object}	response.ErrorResponse	"VALIDATION_ERROR"
// @Failure		404		{object}	response.ErrorResponse	"SERVICE_NOT_FOUND"
// @Failure		409		{object}	response.ErrorResponse	"ALREADY_IN_QUEUE or SERVICE_CLOSED"
// @Router			/api/services/{id}/join [post]
func (h *Handler) JoinQueue(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		validationError(c, err)
		return
	}

	entry, err := h.Queue.Join(auth.UserID(c), c.Param("id"), req.Notes, req.Priority)
	if err != nil {
		h.engineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.withETA(entry))
}

// LeaveQueue godoc
// @Summary		Leave a queue
// @Description	Removes a waiting entry. Students may only remove their own.
// @Tags			queue
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		string	true	"Entry ID"
// @Success		200	{object}	response.LeaveResponse
// @Failure		403	{object}	response.ErrorResponse	"FORBIDDEN"
// @Failure		404	{object}	response.ErrorResponse	"ENTRY_NOT_FOUND"
// @Router			/api/entries/{id}/leave [post]
func (h *Handler) LeaveQueue(c *gin.Context) {
	entryID := c.Param("id")
	entry, ok := h.Queue.Entry(entryID)
	if !ok {
		entryNotFound(c)
		return
	}
	if entry.UserID != auth.UserID(c) && auth.Role(c) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "You can only leave your own queue entries",
		})
		return
	}

	left, ok := h.Queue.Leave(entryID)
	if !ok {
		entryNotFound(c)
		return
	}
	c.JSON(http.StatusOK, response.LeaveResponse{Entry: left, Outcome: models.OutcomeCancelled})
}

// GetQueueSnapshot godoc
// @Summary		Current queue for a service
// @Description	Everyone gets the waiting count and their own entry. Admins also get every participant with name, email and ETA.
// @Tags			queue
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		string	true	"Service ID"
// @Success		200	{object}	response.QueueSnapshotResponse
// @Failure		404	{object}	response.ErrorResponse	"SERVICE_NOT_FOUND"
// @Router			/api/services/{id}/queue [get]
func (h *Handler) GetQueueSnapshot(c *gin.Context) {
	serviceID := c.Param("id")
	svc, ok := h.Catalog.Service(serviceID)
	if !ok {
		h.engineError(c, catalog.ErrServiceNotFound)
		return
	}

	entries := h.Queue.QueueForService(serviceID)
	snap := response.QueueSnapshotResponse{
		Service: svc,
		Waiting: len(entries),
	}

	if auth.Role(c) == models.RoleAdmin {
		snap.Participants = make([]response.ParticipantResponse, 0, len(entries))
		for _, e := range entries {
			p := response.ParticipantResponse{EntryResponse: h.withETA(e)}
			if acc, ok := h.Directory.Lookup(e.UserID); ok {
				p.Name = acc.Name
				p.Email = acc.Email
			}
			snap.Participants = append(snap.Participants, p)
		}
	}

	if mine, ok := h.Queue.UserEntry(auth.UserID(c), serviceID); ok {
		r := h.withETA(mine)
		snap.Mine = &r
	}

	c.JSON(http.StatusOK, snap)
}

// ServeNext godoc
// @Summary		Serve the next student
// @Description	Completes the entry at position 1 and notifies the new head of the line
// @Tags			queue
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		string	true	"Service ID"
// @Success		200	{object}	models.QueueEntry	"The served entry"
// @Failure		403	{object}	response.ErrorResponse	"FORBIDDEN"
// @Failure		409	{object}	response.ErrorResponse	"QUEUE_EMPTY"
// @Router			/api/services/{id}/serve-next [post]
func (h *Handler) ServeNext(c *gin.Context) {
	served, err := h.Queue.ServeNext(c.Param("id"))
	if err != nil {
		h.engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, served)
}

// MarkNoShow godoc
// @Summary		Mark a no-show
// @Tags			queue
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		string	true	"Entry ID"
// @Success		200	{object}	models.QueueEntry
// @Failure		403	{object}	response.ErrorResponse	"FORBIDDEN"
// @Failure		404	{object}	response.ErrorResponse	"ENTRY_NOT_FOUND"
// @Router			/api/entries/{id}/no-show [post]
func (h *Handler) MarkNoShow(c *gin.Context) {
	entry, ok := h.Queue.MarkNoShow(c.Param("id"))
	if !ok {
		entryNotFound(c)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// ReorderEntry godoc
// @Summary		Move an entry up or down
// @Description	Swaps the entry with its neighbour. Moving past either end leaves the queue unchanged.
// @Tags			queue
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			id		path		string			true	"Service ID"
// @Param			move	body		ReorderRequest	true	"Entry and direction (up or down)"
// @Success		200		{object}	ReorderResponse
// @Failure		400		{object}	response.ErrorResponse	"VALIDATION_ERROR"
// @Failure		404		{object}	response.ErrorResponse	"ENTRY_NOT_FOUND"
// @Router			/api/services/{id}/reorder [post]
func (h *Handler) ReorderEntry(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	dir, err := queue.ParseDirection(req.Direction)
	if err != nil {
		h.engineError(c, err)
		return
	}

	serviceID := c.Param("id")
	if e, ok := h.Queue.Entry(req.EntryID); !ok || e.ServiceID != serviceID {
		entryNotFound(c)
		return
	}

	moved := h.Queue.Reorder(serviceID, req.EntryID, dir)

	entries := h.Queue.QueueForService(serviceID)
	out := ReorderResponse{Moved: moved, Queue: make([]response.EntryResponse, 0, len(entries))}
	for _, e := range entries {
		out.Queue = append(out.Queue, h.withETA(e))
	}
	c.JSON(http.StatusOK, out)
}
