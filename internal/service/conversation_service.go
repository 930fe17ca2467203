package service

import (
	"errors"
	"strings"
	"time"

	"github.com/boilermarket/boilermarket-backend/internal/common"
	"github.com/boilermarket/boilermarket-backend/internal/domain"
	"github.com/boilermarket/boilermarket-backend/internal/repository"
	pkglogger "github.com/boilermarket/boilermarket-backend/pkg/logger"
	"gorm.io/gorm"
)

const unknownUserName = "Unknown User"

// ConversationService assembles the messaging inbox and threads.
//
// The inbox is built from four bulk queries (conversations, listing
// summaries, counterpart names, messages) joined in memory. The queries are
// independent round-trips, not a transaction, so enrichment can be
// momentarily stale; a listing or profile deleted between queries degrades
// to a placeholder instead of failing the whole list.
type ConversationService interface {
	ListConversations(userID string) ([]*domain.ConversationResponse, error)
	GetThread(conversationID, viewerID string) ([]*domain.MessageResponse, error)
	SendMessage(conversationID, senderID, content string) (*domain.MessageResponse, error)
	// StartConversation finds or creates the conversation for (listing,
	// buyer, listing owner). The bool result is true when a new conversation
	// row was created.
	StartConversation(listingID, buyerID string) (*domain.Conversation, bool, error)
}

type conversationService struct {
	conversationRepo repository.ConversationRepository
	messageRepo      repository.MessageRepository
	listingRepo      repository.ListingRepository
	profileRepo      repository.ProfileRepository
}

// NewConversationService creates a new ConversationService
func NewConversationService(
	conversationRepo repository.ConversationRepository,
	messageRepo repository.MessageRepository,
	listingRepo repository.ListingRepository,
	profileRepo repository.ProfileRepository,
) ConversationService {
	return &conversationService{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		listingRepo:      listingRepo,
		profileRepo:      profileRepo,
	}
}

func (s *conversationService) ListConversations(userID string) ([]*domain.ConversationResponse, error) {
	// The only fetch whose failure aborts the operation
	conversations, err := s.conversationRepo.FindByParticipant(userID)
	if err != nil {
		return nil, err
	}
	if len(conversations) == 0 {
		return []*domain.ConversationResponse{}, nil
	}

	listingIDs := make([]string, 0, len(conversations))
	counterpartIDs := make([]string, 0, len(conversations))
	conversationIDs := make([]string, 0, len(conversations))
	seenListing := make(map[string]bool)
	seenUser := make(map[string]bool)
	for _, c := range conversations {
		conversationIDs = append(conversationIDs, c.ID)
		if !seenListing[c.ListingID] {
			seenListing[c.ListingID] = true
			listingIDs = append(listingIDs, c.ListingID)
		}
		other := c.OtherUserID(userID)
		if !seenUser[other] {
			seenUser[other] = true
			counterpartIDs = append(counterpartIDs, other)
		}
	}

	// Enrichment fetches degrade per-record instead of aborting
	listingByID := make(map[string]domain.ListingSummary)
	if summaries, err := s.listingRepo.FindSummariesByIDs(listingIDs); err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("inbox: listing summaries fetch failed, degrading")
	} else {
		for _, l := range summaries {
			listingByID[l.ID] = l
		}
	}

	nameByID := s.profileNames(counterpartIDs)

	var bulkMessages []*domain.Message
	if bulkMessages, err = s.messageRepo.FindByConversationIDs(conversationIDs); err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("inbox: message fetch failed, degrading")
		bulkMessages = nil
	}
	messagesByConversation := make(map[string][]*domain.Message, len(conversations))
	for _, m := range bulkMessages {
		messagesByConversation[m.ConversationID] = append(messagesByConversation[m.ConversationID], m)
	}

	responses := make([]*domain.ConversationResponse, 0, len(conversations))
	for _, c := range conversations {
		resp := &domain.ConversationResponse{
			ID:          c.ID,
			ListingID:   c.ListingID,
			BuyerID:     c.BuyerID,
			SellerID:    c.SellerID,
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
			OtherUserID: c.OtherUserID(userID),
		}

		if listing, ok := listingByID[c.ListingID]; ok {
			resp.ListingTitle = listing.Title
			resp.ListingPrice = listing.Price
			resp.ListingImages = listing.ImageList()
		}

		resp.OtherUserName = nameByID[resp.OtherUserID]
		if resp.OtherUserName == "" {
			resp.OtherUserName = unknownUserName
		}

		// Messages arrive newest first, so the head is the latest
		conversationMessages := messagesByConversation[c.ID]
		if len(conversationMessages) > 0 {
			last := conversationMessages[0]
			resp.LastMessage = last.Content
			t := last.CreatedAt
			resp.LastMessageAt = &t
		}
		resp.UnreadCount = countUnread(c, conversationMessages, userID)

		responses = append(responses, resp)
	}

	return responses, nil
}

// countUnread counts counterpart messages created strictly after the
// conversation's updated_at. updated_at is a recency stamp, not a per-viewer
// read cursor, so the count is a heuristic: the viewer's own send resets the
// baseline. Kept for compatibility; replace the body when a real read cursor
// lands.
func countUnread(c *domain.Conversation, messages []*domain.Message, viewerID string) int {
	count := 0
	for _, m := range messages {
		if m.SenderID != viewerID && m.CreatedAt.After(c.UpdatedAt) {
			count++
		}
	}
	return count
}

func (s *conversationService) GetThread(conversationID, viewerID string) ([]*domain.MessageResponse, error) {
	conversation, err := s.conversationRepo.FindByID(conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrConversationNotFound
		}
		return nil, err
	}
	if conversation.BuyerID != viewerID && conversation.SellerID != viewerID {
		return nil, common.ErrNotParticipant
	}

	messages, err := s.messageRepo.FindByConversationID(conversationID)
	if err != nil {
		return nil, err
	}

	senderIDs := make([]string, 0, 2)
	seen := make(map[string]bool)
	for _, m := range messages {
		if !seen[m.SenderID] {
			seen[m.SenderID] = true
			senderIDs = append(senderIDs, m.SenderID)
		}
	}
	nameByID := s.profileNames(senderIDs)

	responses := make([]*domain.MessageResponse, 0, len(messages))
	var unreadIDs []string
	for _, m := range messages {
		name := nameByID[m.SenderID]
		if name == "" {
			name = "Unknown"
		}
		// Responses carry the read flag as fetched; the bulk update below
		// is not reflected back into this thread
		responses = append(responses, &domain.MessageResponse{
			ID:             m.ID,
			ConversationID: m.ConversationID,
			SenderID:       m.SenderID,
			SenderName:     name,
			Content:        m.Content,
			IsRead:         m.IsRead,
			CreatedAt:      m.CreatedAt,
		})
		if m.SenderID != viewerID && !m.IsRead {
			unreadIDs = append(unreadIDs, m.ID)
		}
	}

	if len(unreadIDs) > 0 {
		if err := s.messageRepo.MarkRead(unreadIDs); err != nil {
			pkglogger.GetLogger().Warn().Err(err).
				Str("conversation_id", conversationID).
				Msg("thread: mark-read update failed")
		}
	}

	return responses, nil
}

func (s *conversationService) SendMessage(conversationID, senderID, content string) (*domain.MessageResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, common.ErrEmptyMessage
	}

	conversation, err := s.conversationRepo.FindByID(conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrConversationNotFound
		}
		return nil, err
	}
	if conversation.BuyerID != senderID && conversation.SellerID != senderID {
		return nil, common.ErrNotParticipant
	}

	msg := &domain.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		IsRead:         false,
	}
	if err := s.messageRepo.Create(msg); err != nil {
		return nil, err
	}

	// Bump recency so the inbox reorders; also resets the unread baseline
	// (see countUnread)
	if err := s.conversationRepo.TouchUpdatedAt(conversationID, time.Now().UTC()); err != nil {
		pkglogger.GetLogger().Warn().Err(err).
			Str("conversation_id", conversationID).
			Msg("send: conversation timestamp bump failed")
	}

	nameByID := s.profileNames([]string{senderID})
	name := nameByID[senderID]
	if name == "" {
		name = "Unknown"
	}

	return &domain.MessageResponse{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		SenderName:     name,
		Content:        msg.Content,
		IsRead:         msg.IsRead,
		CreatedAt:      msg.CreatedAt,
	}, nil
}

func (s *conversationService) StartConversation(listingID, buyerID string) (*domain.Conversation, bool, error) {
	listing, err := s.listingRepo.FindByID(listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, common.ErrListingNotFound
		}
		return nil, false, err
	}
	if listing.UserID == buyerID {
		return nil, false, common.ErrSelfConversation
	}

	existing, err := s.conversationRepo.FindByTriple(listingID, buyerID, listing.UserID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	conversation := &domain.Conversation{
		ListingID: listingID,
		BuyerID:   buyerID,
		SellerID:  listing.UserID,
	}
	if err := s.conversationRepo.Create(conversation); err != nil {
		// The (listing, buyer, seller) unique index closes the check-then-
		// create race: a concurrent double-click loses here, so fetch the
		// winner's row instead of surfacing the conflict
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if winner, findErr := s.conversationRepo.FindByTriple(listingID, buyerID, listing.UserID); findErr == nil && winner != nil {
				return winner, false, nil
			}
		}
		return nil, false, err
	}

	return conversation, true, nil
}

// profileNames resolves display names for a set of profile ids.
// Lookup failure degrades to an empty map; callers substitute placeholders.
func (s *conversationService) profileNames(ids []string) map[string]string {
	nameByID := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return nameByID
	}
	names, err := s.profileRepo.FindNamesByIDs(ids)
	if err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("profile name lookup failed, degrading")
		return nameByID
	}
	for _, n := range names {
		nameByID[n.ID] = n.FullName
	}
	return nameByID
}
