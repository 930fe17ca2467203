package service

import (
	"testing"

	"github.com/boilermarket/boilermarket-backend/internal/common"
	"github.com/boilermarket/boilermarket-backend/internal/domain"
	"github.com/boilermarket/boilermarket-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestCreateListing_Success(t *testing.T) {
	repo := new(mockListingRepo)
	svc := NewListingService(repo, nil)

	repo.On("Create", mock.MatchedBy(func(l *domain.Listing) bool {
		return l.UserID == "seller-1" && l.Title == "Desk Lamp" && l.IsAvailable &&
			l.Images == `["https://cdn.example/lamp.jpg"]`
	})).Return(nil).Once()

	resp, err := svc.CreateListing("seller-1", &domain.CreateListingRequest{
		Title:     "Desk Lamp",
		Price:     12.50,
		Category:  domain.CategoryFurniture,
		Condition: domain.ConditionGood,
		Images:    []string{"https://cdn.example/lamp.jpg"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Desk Lamp", resp.Title)
	assert.True(t, resp.IsAvailable)
	repo.AssertExpectations(t)
}

func TestCreateListing_InvalidCategory(t *testing.T) {
	repo := new(mockListingRepo)
	svc := NewListingService(repo, nil)

	_, err := svc.CreateListing("seller-1", &domain.CreateListingRequest{
		Title:    "Mystery Box",
		Category: "vehicles",
	})

	assert.ErrorIs(t, err, common.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateListing_TooManyImages(t *testing.T) {
	repo := new(mockListingRepo)
	svc := NewListingService(repo, nil)

	images := make([]string, domain.MaxListingImages+1)
	for i := range images {
		images[i] = "https://cdn.example/img.jpg"
	}

	_, err := svc.CreateListing("seller-1", &domain.CreateListingRequest{
		Title:    "Photo Dump",
		Category: domain.CategoryOther,
		Images:   images,
	})

	assert.ErrorIs(t, err, common.ErrTooManyImages)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateListing_SubleaseDropsCondition(t *testing.T) {
	repo := new(mockListingRepo)
	svc := NewListingService(repo, nil)

	repo.On("Create", mock.MatchedBy(func(l *domain.Listing) bool {
		return l.Category == domain.CategorySublease && l.Condition == ""
	})).Return(nil).Once()

	_, err := svc.CreateListing("seller-1", &domain.CreateListingRequest{
		Title:     "Summer Sublease",
		Category:  domain.CategorySublease,
		Condition: domain.ConditionNew,
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGetListing_ViewCountSkipsOwner(t *testing.T) {
	owner := "seller-1"
	stranger := "buyer-1"

	cases := []struct {
		name          string
		viewerID      *string
		wantIncrement bool
	}{
		{"anonymous viewer counts", nil, true},
		{"stranger counts", &stranger, true},
		{"owner does not count", &owner, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mockListingRepo)
			svc := NewListingService(repo, nil)

			repo.On("FindByID", "listing-1").Return(&domain.Listing{
				ID: "listing-1", UserID: owner, ViewCount: 3, Images: "[]",
			}, nil)
			if tc.wantIncrement {
				repo.On("IncrementViewCount", "listing-1").Return(nil).Once()
			}

			resp, err := svc.GetListing("listing-1", tc.viewerID)

			assert.NoError(t, err)
			if tc.wantIncrement {
				assert.Equal(t, uint(4), resp.ViewCount)
				repo.AssertExpectations(t)
			} else {
				assert.Equal(t, uint(3), resp.ViewCount)
				repo.AssertNotCalled(t, "IncrementViewCount", mock.Anything)
			}
		})
	}
}

func TestGetListing_NotFound(t *testing.T) {
	repo := new(mockListingRepo)
	svc := NewListingService(repo, nil)

	repo.On("FindByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetListing("missing", nil)

	assert.ErrorIs(t, err, common.ErrListingNotFound)
}

func TestUpdateListing_OwnerOnly(t *testing.T) {
	repo := new(mockListingRepo)
	svc := NewListingService(repo, nil)

	repo.On("FindByID", "listing-1").Return(&domain.Listing{
		ID: "listing-1", UserID: "seller-1", Images: "[]",
	}, nil)

	title := "New Title"
	_, err := svc.UpdateListing("listing-1", "intruder-1", &domain.UpdateListingRequest{Title: &title})

	assert.ErrorIs(t, err, common.ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdateListing_MergesProvidedFields(t *testing.T) {
	repo := new(mockListingRepo)
	svc := NewListingService(repo, nil)

	repo.On("FindByID", "listing-1").Return(&domain.Listing{
		ID: "listing-1", UserID: "seller-1", Title: "Old", Price: 10,
		Category: domain.CategoryFurniture, Condition: domain.ConditionGood, Images: "[]",
	}, nil)
	repo.On("Update", mock.MatchedBy(func(l *domain.Listing) bool {
		// Price changes, untouched fields survive
		return l.Title == "Old" && l.Price == 8 && l.Condition == domain.ConditionGood
	})).Return(nil).Once()

	price := 8.0
	resp, err := svc.UpdateListing("listing-1", "seller-1", &domain.UpdateListingRequest{Price: &price})

	assert.NoError(t, err)
	assert.Equal(t, 8.0, resp.Price)
	repo.AssertExpectations(t)
}

func TestDeleteListing_OwnerOnly(t *testing.T) {
	repo := new(mockListingRepo)
	svc := NewListingService(repo, nil)

	repo.On("FindByID", "listing-1").Return(&domain.Listing{
		ID: "listing-1", UserID: "seller-1", Images: "[]",
	}, nil)

	err := svc.DeleteListing("listing-1", "intruder-1")

	assert.ErrorIs(t, err, common.ErrForbidden)
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestListListings_ClampsPagination(t *testing.T) {
	repo := new(mockListingRepo)
	svc := NewListingService(repo, nil)

	repo.On("List", mock.MatchedBy(func(p *repository.ListingListParams) bool {
		return p.Page == 1 && p.Limit == 20
	})).Return([]*domain.Listing{}, int64(0), nil).Once()

	_, meta, err := svc.ListListings(&repository.ListingListParams{Page: -3, Limit: 500})

	assert.NoError(t, err)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 20, meta.Limit)
	repo.AssertExpectations(t)
}

func TestSetAvailability_OwnerOnly(t *testing.T) {
	repo := new(mockListingRepo)
	svc := NewListingService(repo, nil)

	repo.On("FindByID", "listing-1").Return(&domain.Listing{
		ID: "listing-1", UserID: "seller-1", Images: "[]",
	}, nil)
	repo.On("SetAvailability", "listing-1", false).Return(nil).Once()

	assert.NoError(t, svc.SetAvailability("listing-1", "seller-1", false))
	assert.ErrorIs(t, svc.SetAvailability("listing-1", "intruder-1", false), common.ErrForbidden)
	repo.AssertExpectations(t)
}
