package service

import (
	"testing"

	"github.com/boilermarket/boilermarket-backend/internal/common"
	"github.com/boilermarket/boilermarket-backend/internal/domain"
	"github.com/boilermarket/boilermarket-backend/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestJWTManager() *jwt.Manager {
	return jwt.NewManager("test-secret-key-for-testing-only-32b!", 1, 24)
}

func TestRegister_Success(t *testing.T) {
	repo := new(mockProfileRepo)
	svc := NewAuthService(repo, newTestJWTManager())

	repo.On("ExistsByEmail", "pete@purdue.edu").Return(false, nil)
	repo.On("Create", mock.MatchedBy(func(p *domain.Profile) bool {
		return p.Email == "pete@purdue.edu" && p.FullName == "Purdue Pete" && p.Password != "secret-pass"
	})).Return(nil).Once()

	result, err := svc.Register(&domain.RegisterRequest{
		Email:    "  Pete@Purdue.EDU ",
		Password: "secret-pass",
		FullName: "Purdue Pete",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "pete@purdue.edu", result.User.Email)
	repo.AssertExpectations(t)
}

func TestRegister_NameFallsBackToEmailLocalPart(t *testing.T) {
	repo := new(mockProfileRepo)
	svc := NewAuthService(repo, newTestJWTManager())

	repo.On("ExistsByEmail", "pete@purdue.edu").Return(false, nil)
	repo.On("Create", mock.MatchedBy(func(p *domain.Profile) bool {
		return p.FullName == "pete"
	})).Return(nil).Once()

	result, err := svc.Register(&domain.RegisterRequest{
		Email:    "pete@purdue.edu",
		Password: "secret-pass",
	})

	assert.NoError(t, err)
	assert.Equal(t, "pete", result.User.FullName)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(mockProfileRepo)
	svc := NewAuthService(repo, newTestJWTManager())

	repo.On("ExistsByEmail", "pete@purdue.edu").Return(true, nil)

	_, err := svc.Register(&domain.RegisterRequest{
		Email:    "pete@purdue.edu",
		Password: "secret-pass",
	})

	assert.ErrorIs(t, err, common.ErrUserAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	repo := new(mockProfileRepo)
	svc := NewAuthService(repo, newTestJWTManager())

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	repo.On("FindByEmail", "pete@purdue.edu").Return(&domain.Profile{
		ID:       "user-1",
		Email:    "pete@purdue.edu",
		Password: string(hashed),
		FullName: "Purdue Pete",
	}, nil)

	result, err := svc.Login(&domain.LoginRequest{Email: "pete@purdue.edu", Password: "secret-pass"})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "user-1", result.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(mockProfileRepo)
	svc := NewAuthService(repo, newTestJWTManager())

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	repo.On("FindByEmail", "pete@purdue.edu").Return(&domain.Profile{
		Email:    "pete@purdue.edu",
		Password: string(hashed),
	}, nil)

	_, err := svc.Login(&domain.LoginRequest{Email: "pete@purdue.edu", Password: "wrong"})

	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(mockProfileRepo)
	svc := NewAuthService(repo, newTestJWTManager())

	repo.On("FindByEmail", "ghost@purdue.edu").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(&domain.LoginRequest{Email: "ghost@purdue.edu", Password: "whatever"})

	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestRefresh_Success(t *testing.T) {
	repo := new(mockProfileRepo)
	jwtMgr := newTestJWTManager()
	svc := NewAuthService(repo, jwtMgr)

	refreshToken, err := jwtMgr.GenerateRefreshToken("user-1")
	assert.NoError(t, err)

	repo.On("FindByID", "user-1").Return(&domain.Profile{
		ID: "user-1", Email: "pete@purdue.edu", FullName: "Purdue Pete",
	}, nil)

	result, err := svc.Refresh(refreshToken)

	assert.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "user-1", result.User.ID)
}

func TestRefresh_GarbageToken(t *testing.T) {
	repo := new(mockProfileRepo)
	svc := NewAuthService(repo, newTestJWTManager())

	_, err := svc.Refresh("not-a-token")

	assert.ErrorIs(t, err, common.ErrInvalidToken)
	repo.AssertNotCalled(t, "FindByID", mock.Anything)
}

func TestUpdateProfile_BlankNameIgnored(t *testing.T) {
	repo := new(mockProfileRepo)
	svc := NewAuthService(repo, newTestJWTManager())

	repo.On("FindByID", "user-1").Return(&domain.Profile{
		ID: "user-1", FullName: "Purdue Pete",
	}, nil)
	repo.On("Update", mock.MatchedBy(func(p *domain.Profile) bool {
		return p.FullName == "Purdue Pete"
	})).Return(nil).Once()

	blank := "   "
	result, err := svc.UpdateProfile("user-1", &domain.UpdateProfileRequest{FullName: &blank})

	assert.NoError(t, err)
	assert.Equal(t, "Purdue Pete", result.FullName)
	repo.AssertExpectations(t)
}
