package service

import (
	"time"

	"github.com/boilermarket/boilermarket-backend/internal/domain"
	"github.com/boilermarket/boilermarket-backend/internal/repository"
	"github.com/stretchr/testify/mock"
)

// --- Mock ProfileRepository ---

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) Create(profile *domain.Profile) error {
	return m.Called(profile).Error(0)
}

func (m *mockProfileRepo) FindByID(id string) (*domain.Profile, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *mockProfileRepo) FindByEmail(email string) (*domain.Profile, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *mockProfileRepo) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *mockProfileRepo) Update(profile *domain.Profile) error {
	return m.Called(profile).Error(0)
}

func (m *mockProfileRepo) FindNamesByIDs(ids []string) ([]domain.ProfileName, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProfileName), args.Error(1)
}

// --- Mock ListingRepository ---

type mockListingRepo struct {
	mock.Mock
}

func (m *mockListingRepo) Create(listing *domain.Listing) error {
	return m.Called(listing).Error(0)
}

func (m *mockListingRepo) FindByID(id string) (*domain.Listing, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *mockListingRepo) Update(listing *domain.Listing) error {
	return m.Called(listing).Error(0)
}

func (m *mockListingRepo) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *mockListingRepo) List(params *repository.ListingListParams) ([]*domain.Listing, int64, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Listing), args.Get(1).(int64), args.Error(2)
}

func (m *mockListingRepo) ListBySeller(userID string, page, limit int) ([]*domain.Listing, int64, error) {
	args := m.Called(userID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Listing), args.Get(1).(int64), args.Error(2)
}

func (m *mockListingRepo) FindSummariesByIDs(ids []string) ([]domain.ListingSummary, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ListingSummary), args.Error(1)
}

func (m *mockListingRepo) IncrementViewCount(id string) error {
	return m.Called(id).Error(0)
}

func (m *mockListingRepo) SetAvailability(id string, available bool) error {
	return m.Called(id, available).Error(0)
}

// --- Mock ConversationRepository ---

type mockConversationRepo struct {
	mock.Mock
}

func (m *mockConversationRepo) Create(conversation *domain.Conversation) error {
	return m.Called(conversation).Error(0)
}

func (m *mockConversationRepo) FindByID(id string) (*domain.Conversation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}

func (m *mockConversationRepo) FindByParticipant(userID string) ([]*domain.Conversation, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Conversation), args.Error(1)
}

func (m *mockConversationRepo) FindByTriple(listingID, buyerID, sellerID string) (*domain.Conversation, error) {
	args := m.Called(listingID, buyerID, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}

func (m *mockConversationRepo) TouchUpdatedAt(id string, t time.Time) error {
	return m.Called(id, t).Error(0)
}

// --- Mock MessageRepository ---

type mockMessageRepo struct {
	mock.Mock
}

func (m *mockMessageRepo) Create(msg *domain.Message) error {
	return m.Called(msg).Error(0)
}

func (m *mockMessageRepo) FindByConversationID(conversationID string) ([]*domain.Message, error) {
	args := m.Called(conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Message), args.Error(1)
}

func (m *mockMessageRepo) FindByConversationIDs(conversationIDs []string) ([]*domain.Message, error) {
	args := m.Called(conversationIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Message), args.Error(1)
}

func (m *mockMessageRepo) MarkRead(ids []string) error {
	return m.Called(ids).Error(0)
}
