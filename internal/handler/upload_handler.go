package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/boilermarket/boilermarket-backend/internal/common"
	"github.com/boilermarket/boilermarket-backend/internal/middleware"
	"github.com/boilermarket/boilermarket-backend/pkg/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxUploadSize caps listing images at 5MB, same as the web client did
const maxUploadSize = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadHandler handles listing image uploads to S3-compatible storage
type UploadHandler struct {
	s3Client *storage.S3Client
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(s3Client *storage.S3Client) *UploadHandler {
	return &UploadHandler{s3Client: s3Client}
}

// UploadImage handles POST /api/v1/uploads/images
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if h.s3Client == nil {
		common.ErrorResponse(c, http.StatusServiceUnavailable, "Image storage is not configured", nil)
		return
	}

	userID := middleware.GetUserID(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Missing file", err)
		return
	}
	if fileHeader.Size > maxUploadSize {
		common.ErrorResponse(c, http.StatusBadRequest, "Image must be smaller than 5MB", nil)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		common.ErrorResponse(c, http.StatusBadRequest, "Only image uploads are allowed", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to read upload", err)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	key := fmt.Sprintf("%s/%s%s", userID, uuid.New().String(), ext)

	result, err := h.s3Client.Upload(c.Request.Context(), key, file, contentType, fileHeader.Size)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Upload failed", err)
		return
	}

	common.CreatedResponse(c, result)
}
