package handler

import (
	"net/http"

	"github.com/boilermarket/boilermarket-backend/internal/common"
	"github.com/boilermarket/boilermarket-backend/internal/domain"
	"github.com/boilermarket/boilermarket-backend/internal/middleware"
	"github.com/boilermarket/boilermarket-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		common.ErrorResponse(c, statusFor(err), "Registration failed", err)
		return
	}

	common.CreatedResponse(c, resp)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		common.ErrorResponse(c, statusFor(err), "Login failed", err)
		return
	}

	common.SuccessResponse(c, resp, nil)
}

// Refresh handles POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req domain.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		common.ErrorResponse(c, statusFor(err), "Token refresh failed", err)
		return
	}

	common.SuccessResponse(c, resp, nil)
}

// GetMe handles GET /api/v1/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID := middleware.GetUserID(c)
	profile, err := h.authService.GetMe(userID)
	if err != nil {
		common.ErrorResponse(c, statusFor(err), "Failed to load profile", err)
		return
	}
	common.SuccessResponse(c, profile, nil)
}

// UpdateMe handles PUT /api/v1/auth/me
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req domain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	profile, err := h.authService.UpdateProfile(userID, &req)
	if err != nil {
		common.ErrorResponse(c, statusFor(err), "Failed to update profile", err)
		return
	}
	common.SuccessResponse(c, profile, nil)
}
