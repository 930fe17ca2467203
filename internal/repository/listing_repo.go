package repository

import (
	"github.com/boilermarket/boilermarket-backend/internal/domain"
	"gorm.io/gorm"
)

// ListingRepository listing data access
type ListingRepository interface {
	Create(listing *domain.Listing) error
	FindByID(id string) (*domain.Listing, error)
	Update(listing *domain.Listing) error
	Delete(id string) error
	List(params *ListingListParams) ([]*domain.Listing, int64, error)
	ListBySeller(userID string, page, limit int) ([]*domain.Listing, int64, error)
	FindSummariesByIDs(ids []string) ([]domain.ListingSummary, error)
	IncrementViewCount(id string) error
	SetAvailability(id string, available bool) error
}

// ListingListParams listing browse/filter parameters
type ListingListParams struct {
	Keyword   string
	Category  *domain.ListingCategory
	Condition *domain.ListingCondition
	MinPrice  *float64
	MaxPrice  *float64
	SellerID  string
	SortBy    string // created_at, price, view_count
	SortOrder string // asc, desc
	Page      int
	Limit     int
}

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new ListingRepository
func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(listing *domain.Listing) error {
	return r.db.Create(listing).Error
}

func (r *listingRepository) FindByID(id string) (*domain.Listing, error) {
	var listing domain.Listing
	err := r.db.Preload("Seller").Where("id = ?", id).First(&listing).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) Update(listing *domain.Listing) error {
	return r.db.Save(listing).Error
}

func (r *listingRepository) Delete(id string) error {
	return r.db.Delete(&domain.Listing{}, "id = ?", id).Error
}

func (r *listingRepository) List(params *ListingListParams) ([]*domain.Listing, int64, error) {
	// Browse shows available listings only, matching the storefront
	query := r.db.Model(&domain.Listing{}).Preload("Seller").Where("is_available = ?", true)

	if params.Keyword != "" {
		query = query.Where("(title LIKE ? OR description LIKE ?)",
			"%"+params.Keyword+"%", "%"+params.Keyword+"%")
	}
	if params.Category != nil {
		query = query.Where("category = ?", *params.Category)
	}
	if params.Condition != nil {
		query = query.Where("`condition` = ?", *params.Condition)
	}
	if params.MinPrice != nil {
		query = query.Where("price >= ?", *params.MinPrice)
	}
	if params.MaxPrice != nil {
		query = query.Where("price <= ?", *params.MaxPrice)
	}
	if params.SellerID != "" {
		query = query.Where("user_id = ?", params.SellerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderClause := "created_at DESC"
	if params.SortBy != "" {
		order := "DESC"
		if params.SortOrder == "asc" {
			order = "ASC"
		}
		switch params.SortBy {
		case "price":
			orderClause = "price " + order
		case "view_count":
			orderClause = "view_count " + order
		default:
			orderClause = "created_at " + order
		}
	}
	query = query.Order(orderClause)

	offset := (params.Page - 1) * params.Limit
	query = query.Offset(offset).Limit(params.Limit)

	var listings []*domain.Listing
	if err := query.Find(&listings).Error; err != nil {
		return nil, 0, err
	}

	return listings, total, nil
}

func (r *listingRepository) ListBySeller(userID string, page, limit int) ([]*domain.Listing, int64, error) {
	var listings []*domain.Listing
	var total int64

	// Sellers see all of their listings, sold and hidden included
	query := r.db.Model(&domain.Listing{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&listings).Error; err != nil {
		return nil, 0, err
	}

	return listings, total, nil
}

func (r *listingRepository) FindSummariesByIDs(ids []string) ([]domain.ListingSummary, error) {
	if len(ids) == 0 {
		return []domain.ListingSummary{}, nil
	}
	var summaries []domain.ListingSummary
	err := r.db.Model(&domain.Listing{}).
		Select("id", "title", "price", "images").
		Where("id IN ?", ids).
		Find(&summaries).Error
	return summaries, err
}

func (r *listingRepository) IncrementViewCount(id string) error {
	return r.db.Model(&domain.Listing{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *listingRepository) SetAvailability(id string, available bool) error {
	return r.db.Model(&domain.Listing{}).Where("id = ?", id).
		UpdateColumn("is_available", available).Error
}
