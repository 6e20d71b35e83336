package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tutoring_queue/internal/auth"
	"tutoring_queue/internal/catalog"
	"tutoring_queue/internal/models"
)

// ListServices godoc
// @Summary		List services
// @Description	Students see open services only, admins see all. The q parameter filters by name, description or category.
// @Tags			services
// @Produce		json
// @Security		BearerAuth
// @Param			q	query		string	false	"Search text"
// @Success		200	{array}		models.Service
// @Router			/api/services [get]
func (h *Handler) ListServices(c *gin.Context) {
	var services []models.Service
	if q := c.Query("q"); q != "" {
		services = h.Catalog.Search(q)
	} else {
		services = h.Catalog.List()
	}

	if auth.Role(c) != models.RoleAdmin {
		open := services[:0]
		for _, s := range services {
			if s.IsOpen {
				open = append(open, s)
			}
		}
		services = open
	}

	if services == nil {
		services = []models.Service{}
	}
	c.JSON(http.StatusOK, services)
}

// GetService godoc
// @Summary		Get a service
// @Tags			services
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		string	true	"Service ID"
// @Success		200	{object}	models.Service
// @Failure		404	{object}	response.ErrorResponse	"SERVICE_NOT_FOUND"
// @Router			/api/services/{id} [get]
func (h *Handler) GetService(c *gin.Context) {
	s, ok := h.Catalog.Service(c.Param("id"))
	if !ok {
		h.engineError(c, catalog.ErrServiceNotFound)
		return
	}
	c.JSON(http.StatusOK, s)
}

// CreateService godoc
// @Summary		Create a service
// @Tags			services
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			service	body		catalog.ServiceInput	true	"Service data"
// @Success		201		{object}	models.Service
// @Failure		400		{object}	response.ErrorResponse	"VALIDATION_ERROR"
// @Failure		403		{object}	response.ErrorResponse	"FORBIDDEN"
// @Router			/api/services [post]
func (h *Handler) CreateService(c *gin.Context) {
	var in catalog.ServiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationError(c, err)
		return
	}

	s, err := h.Catalog.Create(in)
	if err != nil {
		h.engineError(c, err)
		return
	}
	h.logger().Info("handlers: service created", "service", s.ID, "name", s.Name)
	c.JSON(http.StatusCreated, s)
}

// UpdateService godoc
// @Summary		Update a service
// @Description	Only the fields present in the body change
// @Tags			services
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			id		path		string					true	"Service ID"
// @Param			patch	body		catalog.ServicePatch	true	"Fields to change"
// @Success		200		{object}	models.Service
// @Failure		400		{object}	response.ErrorResponse	"VALIDATION_ERROR"
// @Failure		404		{object}	response.ErrorResponse	"SERVICE_NOT_FOUND"
// @Router			/api/services/{id} [put]
func (h *Handler) UpdateService(c *gin.Context) {
	var patch catalog.ServicePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		validationError(c, err)
		return
	}

	s, err := h.Catalog.Update(c.Param("id"), patch)
	if err != nil {
		h.engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// ToggleService godoc
// @Summary		Open or close a service
// @Description	Closing a service stops new joins. People already waiting stay in line.
// @Tags			services
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		string	true	"Service ID"
// @Success		200	{object}	models.Service
// @Failure		404	{object}	response.ErrorResponse	"SERVICE_NOT_FOUND"
// @Router			/api/services/{id}/toggle [post]
func (h *Handler) ToggleService(c *gin.Context) {
	s, err := h.Catalog.Toggle(c.Param("id"))
	if err != nil {
		h.engineError(c, err)
		return
	}
	h.logger().Info("handlers: service toggled", "service", s.ID, "open", s.IsOpen)
	c.JSON(http.StatusOK, s)
}
