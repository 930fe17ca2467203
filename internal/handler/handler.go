package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/boilermarket/boilermarket-backend/internal/common"
	"github.com/gin-gonic/gin"
)

// parsePagination reads page/limit query params with sane bounds
func parsePagination(c *gin.Context) (int, int) {
	page := 1
	limit := 20
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 && l <= 100 {
		limit = l
	}
	return page, limit
}

// statusFor maps service-level sentinel errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrNotFound),
		errors.Is(err, common.ErrListingNotFound),
		errors.Is(err, common.ErrConversationNotFound),
		errors.Is(err, common.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrForbidden),
		errors.Is(err, common.ErrNotParticipant),
		errors.Is(err, common.ErrSelfConversation):
		return http.StatusForbidden
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrExpiredToken):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrUserAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, common.ErrInvalidInput),
		errors.Is(err, common.ErrEmptyMessage),
		errors.Is(err, common.ErrTooManyImages):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
