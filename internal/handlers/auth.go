package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tutoring_queue/internal/directory"
	"tutoring_queue/internal/models"
	"tutoring_queue/internal/response"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Register godoc
// @Summary		Register a student
// @Description	Creates a student account. Admin accounts come from the seed file or the database.
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			user	body		RegisterRequest				true	"Account data"
// @Success		201		{object}	response.AccountResponse	"Account created"
// @Failure		400		{object}	response.ErrorResponse		"VALIDATION_ERROR or EMAIL_EXISTS"
// @Failure		500		{object}	response.ErrorResponse		"PASSWORD_HASH_ERROR or DB_ERROR"
// @Router			/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	acc, err := h.Directory.Register(req.Name, req.Email, req.Password, models.RoleStudent)
	if errors.Is(err, directory.ErrEmailExists) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "EMAIL_EXISTS",
			Message: "An account with this email already exists",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "PASSWORD_HASH_ERROR",
			Message: "Could not hash password",
		})
		return
	}

	if h.DB != nil {
		if err := h.DB.Create(&acc).Error; err != nil {
			h.Directory.Remove(acc.ID)
			h.logger().Error("handlers: persist account", "email", acc.Email, "err", err)
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{
				Code:    "DB_ERROR",
				Message: "Could not save account",
			})
			return
		}
	}

	c.JSON(http.StatusCreated, accountResponse(acc))
}

// Login godoc
// @Summary		Log in
// @Description	Checks credentials and returns a token pair
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			user	body		LoginRequest			true	"Credentials"
// @Success		200		{object}	response.TokenResponse	"Tokens"
// @Failure		400		{object}	response.ErrorResponse	"VALIDATION_ERROR"
// @Failure		401		{object}	response.ErrorResponse	"INVALID_CREDENTIALS"
// @Failure		500		{object}	response.ErrorResponse	"TOKEN_GENERATION_ERROR"
// @Router			/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	acc, err := h.Directory.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Code:    "INVALID_CREDENTIALS",
			Message: "Wrong email or password",
		})
		return
	}

	h.issue(c, acc)
}

// RefreshToken godoc
// @Summary		Refresh tokens
// @Description	Exchanges a refresh token for a new token pair
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			refresh_token	body		RefreshTokenRequest		true	"Refresh token"
// @Success		200				{object}	response.TokenResponse	"Tokens"
// @Failure		400				{object}	response.ErrorResponse	"VALIDATION_ERROR"
// @Failure		401				{object}	response.ErrorResponse	"INVALID_REFRESH_TOKEN or USER_NOT_FOUND"
// @Failure		500				{object}	response.ErrorResponse	"TOKEN_GENERATION_ERROR"
// @Router			/auth/refresh [post]
func (h *Handler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	id, err := h.Issuer.ParseRefresh(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Code:    "INVALID_REFRESH_TOKEN",
			Message: "Invalid or expired refresh token",
		})
		return
	}

	acc, ok := h.Directory.Lookup(id.UserID)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Code:    "USER_NOT_FOUND",
			Message: "User not found",
		})
		return
	}

	h.issue(c, acc)
}

func (h *Handler) issue(c *gin.Context, acc models.Account) {
	access, refresh, err := h.Issuer.IssuePair(acc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "TOKEN_GENERATION_ERROR",
			Message: "Could not generate tokens",
		})
		return
	}
	c.JSON(http.StatusOK, response.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

func accountResponse(a models.Account) response.AccountResponse {
	return response.AccountResponse{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
}
