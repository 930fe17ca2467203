package handler

import (
	"net/http"

	"github.com/boilermarket/boilermarket-backend/internal/common"
	"github.com/boilermarket/boilermarket-backend/internal/domain"
	"github.com/boilermarket/boilermarket-backend/internal/middleware"
	"github.com/boilermarket/boilermarket-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ConversationHandler handles messaging endpoints
type ConversationHandler struct {
	conversationService service.ConversationService
}

// NewConversationHandler creates a new ConversationHandler
func NewConversationHandler(conversationService service.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversationService: conversationService}
}

// ListConversations handles GET /api/v1/conversations
func (h *ConversationHandler) ListConversations(c *gin.Context) {
	userID := middleware.GetUserID(c)

	conversations, err := h.conversationService.ListConversations(userID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load conversations", err)
		return
	}

	common.SuccessResponse(c, conversations, nil)
}

// GetThread handles GET /api/v1/conversations/:id/messages.
// Opening a thread marks the counterpart's unread messages read.
func (h *ConversationHandler) GetThread(c *gin.Context) {
	userID := middleware.GetUserID(c)
	conversationID := c.Param("id")

	messages, err := h.conversationService.GetThread(conversationID, userID)
	if err != nil {
		common.ErrorResponse(c, statusFor(err), "Failed to load messages", err)
		return
	}

	common.SuccessResponse(c, messages, nil)
}

// SendMessage handles POST /api/v1/conversations/:id/messages
func (h *ConversationHandler) SendMessage(c *gin.Context) {
	userID := middleware.GetUserID(c)
	conversationID := c.Param("id")

	var req domain.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	msg, err := h.conversationService.SendMessage(conversationID, userID, req.Content)
	if err != nil {
		common.ErrorResponse(c, statusFor(err), "Failed to send message", err)
		return
	}

	common.CreatedResponse(c, msg)
}

// StartConversation handles POST /api/v1/conversations (contact seller)
func (h *ConversationHandler) StartConversation(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req domain.StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	conversation, created, err := h.conversationService.StartConversation(req.ListingID, userID)
	if err != nil {
		common.ErrorResponse(c, statusFor(err), "Failed to start conversation", err)
		return
	}

	if created {
		common.CreatedResponse(c, conversation)
		return
	}
	// Existing thread: no duplicate row, just route the caller to it
	common.SuccessResponse(c, conversation, nil)
}
