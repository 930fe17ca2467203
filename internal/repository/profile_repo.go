package repository

import (
	"github.com/boilermarket/boilermarket-backend/internal/domain"
	"gorm.io/gorm"
)

// ProfileRepository profile data access
type ProfileRepository interface {
	Create(profile *domain.Profile) error
	FindByID(id string) (*domain.Profile, error)
	FindByEmail(email string) (*domain.Profile, error)
	ExistsByEmail(email string) (bool, error)
	Update(profile *domain.Profile) error
	FindNamesByIDs(ids []string) ([]domain.ProfileName, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(profile *domain.Profile) error {
	return r.db.Create(profile).Error
}

func (r *profileRepository) FindByID(id string) (*domain.Profile, error) {
	var profile domain.Profile
	if err := r.db.Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByEmail(email string) (*domain.Profile, error) {
	var profile domain.Profile
	if err := r.db.Where("email = ?", email).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Profile{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *profileRepository) Update(profile *domain.Profile) error {
	return r.db.Save(profile).Error
}

func (r *profileRepository) FindNamesByIDs(ids []string) ([]domain.ProfileName, error) {
	if len(ids) == 0 {
		return []domain.ProfileName{}, nil
	}
	var names []domain.ProfileName
	err := r.db.Model(&domain.Profile{}).
		Select("id", "full_name").
		Where("id IN ?", ids).
		Find(&names).Error
	return names, err
}
