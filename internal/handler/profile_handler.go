package handler

import (
	"errors"
	"net/http"

	"github.com/boilermarket/boilermarket-backend/internal/common"
	"github.com/boilermarket/boilermarket-backend/internal/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProfileHandler handles public profile endpoints
type ProfileHandler struct {
	profileRepo repository.ProfileRepository
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileRepo repository.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{profileRepo: profileRepo}
}

// GetProfile handles GET /api/v1/profiles/:id.
// Public view: display name only, no email.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id := c.Param("id")

	profile, err := h.profileRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Profile not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch profile", err)
		return
	}

	common.SuccessResponse(c, gin.H{
		"id":         profile.ID,
		"full_name":  profile.FullName,
		"created_at": profile.CreatedAt,
	}, nil)
}
