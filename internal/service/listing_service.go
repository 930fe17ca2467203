package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/boilermarket/boilermarket-backend/internal/common"
	"github.com/boilermarket/boilermarket-backend/internal/domain"
	"github.com/boilermarket/boilermarket-backend/internal/repository"
	"github.com/boilermarket/boilermarket-backend/pkg/cache"
	pkglogger "github.com/boilermarket/boilermarket-backend/pkg/logger"
	"gorm.io/gorm"
)

// ListingService listing business logic
type ListingService interface {
	CreateListing(userID string, req *domain.CreateListingRequest) (*domain.ListingResponse, error)
	GetListing(id string, viewerID *string) (*domain.ListingResponse, error)
	UpdateListing(id, userID string, req *domain.UpdateListingRequest) (*domain.ListingResponse, error)
	DeleteListing(id, userID string) error
	ListListings(params *repository.ListingListParams) ([]*domain.ListingResponse, *common.Meta, error)
	ListMyListings(userID string, page, limit int) ([]*domain.ListingResponse, *common.Meta, error)
	SetAvailability(id, userID string, available bool) error
}

type listingService struct {
	listingRepo repository.ListingRepository
	cache       cache.Service // nil when Redis is absent
}

// NewListingService creates a new ListingService
func NewListingService(listingRepo repository.ListingRepository, cacheService cache.Service) ListingService {
	return &listingService{
		listingRepo: listingRepo,
		cache:       cacheService,
	}
}

func (s *listingService) CreateListing(userID string, req *domain.CreateListingRequest) (*domain.ListingResponse, error) {
	if !req.Category.Valid() {
		return nil, common.ErrInvalidInput
	}
	if len(req.Images) > domain.MaxListingImages {
		return nil, common.ErrTooManyImages
	}

	// Subleases carry no condition
	condition := req.Condition
	if req.Category == domain.CategorySublease {
		condition = ""
	}

	imagesJSON, _ := json.Marshal(req.Images)

	listing := &domain.Listing{
		UserID:         userID,
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		Category:       req.Category,
		Condition:      condition,
		PickupLocation: req.PickupLocation,
		PickupTimeline: req.PickupTimeline,
		Images:         string(imagesJSON),
		IsAvailable:    true,
	}

	if err := s.listingRepo.Create(listing); err != nil {
		return nil, err
	}

	s.invalidatePages()
	return listing.ToResponse(), nil
}

func (s *listingService) GetListing(id string, viewerID *string) (*domain.ListingResponse, error) {
	listing, err := s.listingRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrListingNotFound
		}
		return nil, err
	}

	// Count views from everyone but the owner
	if viewerID == nil || *viewerID != listing.UserID {
		_ = s.listingRepo.IncrementViewCount(id)
		listing.ViewCount++
	}

	return listing.ToResponse(), nil
}

func (s *listingService) UpdateListing(id, userID string, req *domain.UpdateListingRequest) (*domain.ListingResponse, error) {
	listing, err := s.listingRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrListingNotFound
		}
		return nil, err
	}
	if listing.UserID != userID {
		return nil, common.ErrForbidden
	}

	if req.Title != nil {
		listing.Title = *req.Title
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.Price != nil {
		listing.Price = *req.Price
	}
	if req.Category != nil {
		if !req.Category.Valid() {
			return nil, common.ErrInvalidInput
		}
		listing.Category = *req.Category
	}
	if req.Condition != nil {
		listing.Condition = *req.Condition
	}
	if listing.Category == domain.CategorySublease {
		listing.Condition = ""
	}
	if req.PickupLocation != nil {
		listing.PickupLocation = *req.PickupLocation
	}
	if req.PickupTimeline != nil {
		listing.PickupTimeline = *req.PickupTimeline
	}
	if req.Images != nil {
		if len(req.Images) > domain.MaxListingImages {
			return nil, common.ErrTooManyImages
		}
		imagesJSON, _ := json.Marshal(req.Images)
		listing.Images = string(imagesJSON)
	}
	if req.IsAvailable != nil {
		listing.IsAvailable = *req.IsAvailable
	}

	if err := s.listingRepo.Update(listing); err != nil {
		return nil, err
	}

	s.invalidatePages()
	if s.cache != nil {
		_ = s.cache.InvalidateListing(context.Background(), id)
	}
	return listing.ToResponse(), nil
}

func (s *listingService) DeleteListing(id, userID string) error {
	listing, err := s.listingRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrListingNotFound
		}
		return err
	}
	if listing.UserID != userID {
		return common.ErrForbidden
	}

	if err := s.listingRepo.Delete(id); err != nil {
		return err
	}

	s.invalidatePages()
	if s.cache != nil {
		_ = s.cache.InvalidateListing(context.Background(), id)
	}
	return nil
}

func (s *listingService) ListListings(params *repository.ListingListParams) ([]*domain.ListingResponse, *common.Meta, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 20
	}

	type cachedPage struct {
		Listings []*domain.ListingResponse `json:"listings"`
		Meta     *common.Meta              `json:"meta"`
	}

	pageKey := listingPageKey(params)
	if s.cache != nil {
		var page cachedPage
		if err := s.cache.GetListingPage(context.Background(), pageKey, &page); err == nil {
			return page.Listings, page.Meta, nil
		}
	}

	listings, total, err := s.listingRepo.List(params)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*domain.ListingResponse, 0, len(listings))
	for _, l := range listings {
		responses = append(responses, l.ToResponse())
	}
	meta := &common.Meta{Page: params.Page, Limit: params.Limit, Total: total}

	if s.cache != nil {
		if err := s.cache.SetListingPage(context.Background(), pageKey, cachedPage{Listings: responses, Meta: meta}); err != nil {
			pkglogger.GetLogger().Warn().Err(err).Msg("listing page cache write failed")
		}
	}

	return responses, meta, nil
}

func (s *listingService) ListMyListings(userID string, page, limit int) ([]*domain.ListingResponse, *common.Meta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	listings, total, err := s.listingRepo.ListBySeller(userID, page, limit)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*domain.ListingResponse, 0, len(listings))
	for _, l := range listings {
		responses = append(responses, l.ToResponse())
	}
	return responses, &common.Meta{Page: page, Limit: limit, Total: total}, nil
}

func (s *listingService) SetAvailability(id, userID string, available bool) error {
	listing, err := s.listingRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrListingNotFound
		}
		return err
	}
	if listing.UserID != userID {
		return common.ErrForbidden
	}

	if err := s.listingRepo.SetAvailability(id, available); err != nil {
		return err
	}

	s.invalidatePages()
	return nil
}

func (s *listingService) invalidatePages() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateListingPages(context.Background()); err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("listing page cache invalidation failed")
	}
}

// listingPageKey builds a cache key covering every filter dimension
func listingPageKey(params *repository.ListingListParams) string {
	category, condition := "", ""
	if params.Category != nil {
		category = string(*params.Category)
	}
	if params.Condition != nil {
		condition = string(*params.Condition)
	}
	minPrice, maxPrice := "", ""
	if params.MinPrice != nil {
		minPrice = fmt.Sprintf("%.2f", *params.MinPrice)
	}
	if params.MaxPrice != nil {
		maxPrice = fmt.Sprintf("%.2f", *params.MaxPrice)
	}
	return fmt.Sprintf("%s:%s:%s:%s:%s:%s:%s:%s:%d:%d",
		params.Keyword, category, condition, minPrice, maxPrice, params.SellerID,
		params.SortBy, params.SortOrder, params.Page, params.Limit)
}
