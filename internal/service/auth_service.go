package service

import (
	"errors"
	"strings"

	"github.com/boilermarket/boilermarket-backend/internal/common"
	"github.com/boilermarket/boilermarket-backend/internal/domain"
	"github.com/boilermarket/boilermarket-backend/internal/repository"
	"github.com/boilermarket/boilermarket-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService registration, login and token refresh
type AuthService interface {
	Register(req *domain.RegisterRequest) (*domain.TokenResponse, error)
	Login(req *domain.LoginRequest) (*domain.TokenResponse, error)
	Refresh(refreshToken string) (*domain.TokenResponse, error)
	GetMe(userID string) (*domain.ProfileResponse, error)
	UpdateProfile(userID string, req *domain.UpdateProfileRequest) (*domain.ProfileResponse, error)
}

type authService struct {
	profileRepo repository.ProfileRepository
	jwtManager  *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(profileRepo repository.ProfileRepository, jwtManager *jwt.Manager) AuthService {
	return &authService{
		profileRepo: profileRepo,
		jwtManager:  jwtManager,
	}
}

func (s *authService) Register(req *domain.RegisterRequest) (*domain.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.profileRepo.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// Fall back to the email local part, the way the original signup did
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		fullName = strings.SplitN(email, "@", 2)[0]
	}

	profile := &domain.Profile{
		Email:    email,
		Password: string(hashed),
		FullName: fullName,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, err
	}

	return s.tokens(profile)
}

func (s *authService) Login(req *domain.LoginRequest) (*domain.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	profile, err := s.profileRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(req.Password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	return s.tokens(profile)
}

func (s *authService) Refresh(refreshToken string) (*domain.TokenResponse, error) {
	claims, err := s.jwtManager.VerifyToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, common.ErrExpiredToken
		}
		return nil, common.ErrInvalidToken
	}

	profile, err := s.profileRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}

	return s.tokens(profile)
}

func (s *authService) GetMe(userID string) (*domain.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return profile.ToResponse(), nil
}

func (s *authService) UpdateProfile(userID string, req *domain.UpdateProfileRequest) (*domain.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}

	if req.FullName != nil && strings.TrimSpace(*req.FullName) != "" {
		profile.FullName = strings.TrimSpace(*req.FullName)
	}

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return profile.ToResponse(), nil
}

func (s *authService) tokens(profile *domain.Profile) (*domain.TokenResponse, error) {
	accessToken, err := s.jwtManager.GenerateToken(profile.ID, profile.Email, profile.FullName)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(profile.ID)
	if err != nil {
		return nil, err
	}
	return &domain.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         profile.ToResponse(),
	}, nil
}
