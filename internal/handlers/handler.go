package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"tutoring_queue/internal/auth"
	"tutoring_queue/internal/catalog"
	"tutoring_queue/internal/directory"
	"tutoring_queue/internal/ledger"
	"tutoring_queue/internal/models"
	"tutoring_queue/internal/notify"
	"tutoring_queue/internal/queue"
	"tutoring_queue/internal/response"
)

// Handler holds everything the HTTP layer reads from or writes to.
type Handler struct {
	Queue     *queue.Store
	Catalog   *catalog.Catalog
	Directory *directory.Directory
	Ledger    *ledger.Ledger
	Notices   *notify.Sink
	Issuer    *auth.Issuer
	Logger    *slog.Logger

	// DB is optional. When set, new accounts are written through to it.
	DB *gorm.DB
}

// Router wires every route onto a fresh gin engine.
func (h *Handler) Router(allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	// Browsers refuse credentials with a wildcard origin.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !slices.Contains(allowedOrigins, "*"),
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.RefreshToken)
	}

	requireAuth := auth.AuthMiddleware(h.Issuer)
	adminOnly := auth.RequireRole(models.RoleAdmin)

	api := r.Group("/api", requireAuth)
	{
		api.GET("/services", h.ListServices)
		api.GET("/services/:id", h.GetService)
		api.GET("/services/:id/queue", h.GetQueueSnapshot)
		api.POST("/services/:id/join", h.JoinQueue)
		api.POST("/entries/:id/leave", h.LeaveQueue)

		admin := api.Group("", adminOnly)
		{
			admin.POST("/services", h.CreateService)
			admin.PUT("/services/:id", h.UpdateService)
			admin.POST("/services/:id/toggle", h.ToggleService)
			admin.POST("/services/:id/serve-next", h.ServeNext)
			admin.POST("/services/:id/reorder", h.ReorderEntry)
			admin.POST("/entries/:id/no-show", h.MarkNoShow)
			admin.GET("/admin/stats", h.GetStats)
		}
	}

	profile := r.Group("/profile", requireAuth)
	{
		profile.GET("/queues", h.GetUserQueues)
		profile.GET("/history", h.GetUserHistory)
		profile.GET("/notifications", h.GetNotifications)
		profile.GET("/notifications/unread", h.GetUnreadCount)
		profile.POST("/notifications/:id/read", h.MarkNotificationRead)
		profile.POST("/notifications/read-all", h.MarkAllNotificationsRead)
	}

	return r
}

func (h *Handler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// engineError maps queue and catalog errors onto HTTP replies.
func (h *Handler) engineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queue.ErrAlreadyQueued):
		c.JSON(http.StatusConflict, response.ErrorResponse{
			Code:    "ALREADY_IN_QUEUE",
			Message: "You are already waiting in this queue",
		})
	case errors.Is(err, queue.ErrServiceClosed):
		c.JSON(http.StatusConflict, response.ErrorResponse{
			Code:    "SERVICE_CLOSED",
			Message: "This service is not accepting new entries",
		})
	case errors.Is(err, queue.ErrServiceNotFound), errors.Is(err, catalog.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "SERVICE_NOT_FOUND",
			Message: "Service not found",
		})
	case errors.Is(err, queue.ErrQueueEmpty):
		c.JSON(http.StatusConflict, response.ErrorResponse{
			Code:    "QUEUE_EMPTY",
			Message: "Nobody is waiting in this queue",
		})
	case errors.Is(err, queue.ErrInvalidPriority),
		errors.Is(err, queue.ErrInvalidDirection),
		errors.Is(err, catalog.ErrInvalidService):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Invalid request data",
			Details: err.Error(),
		})
	default:
		h.logger().Error("handlers: unexpected error", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "Internal server error",
		})
	}
}

func validationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.ErrorResponse{
		Code:    "VALIDATION_ERROR",
		Message: "Invalid request data",
		Details: err.Error(),
	})
}

func entryNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, response.ErrorResponse{
		Code:    "ENTRY_NOT_FOUND",
		Message: "Queue entry not found or no longer waiting",
	})
}

func (h *Handler) withETA(e models.QueueEntry) response.EntryResponse {
	return response.EntryResponse{
		QueueEntry:    e,
		EstimatedWait: h.Queue.EstimatedWait(e.ServiceID, e.Position),
	}
}
