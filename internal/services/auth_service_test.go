package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hzkfs012/zapatoofficial/internal/models"
	"github.com/hzkfs012/zapatoofficial/internal/repositories"
)

type stubAuthRepo struct {
	byUsername map[string]*models.User
	byID       map[int64]*models.User
}

func (r *stubAuthRepo) GetUserByUsername(username string) (*models.User, error) {
	user, ok := r.byUsername[username]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (r *stubAuthRepo) GetUserByID(id int64) (*models.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (r *stubAuthRepo) CreateUser(_ repositories.SQLExecutor, user *models.User) (*models.User, error) {
	return user, nil
}

func adminUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:           1,
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         "Admin",
		IsActive:     true,
	}
}

func TestLoginUser(t *testing.T) {
	user := adminUser(t, "secret-pass")
	repo := &stubAuthRepo{byUsername: map[string]*models.User{"admin": user}}
	svc := NewAuthService(repo)

	resp, err := svc.LoginUser(LoginRequest{Username: "admin", Password: "secret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "admin", resp.User.Username)
}

func TestLoginUserWrongPassword(t *testing.T) {
	user := adminUser(t, "secret-pass")
	repo := &stubAuthRepo{byUsername: map[string]*models.User{"admin": user}}
	svc := NewAuthService(repo)

	_, err := svc.LoginUser(LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserUnknownUsername(t *testing.T) {
	svc := NewAuthService(&stubAuthRepo{byUsername: map[string]*models.User{}})

	_, err := svc.LoginUser(LoginRequest{Username: "ghost", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown users and bad passwords are indistinguishable")
}

func TestLoginUserInactive(t *testing.T) {
	user := adminUser(t, "secret-pass")
	user.IsActive = false
	repo := &stubAuthRepo{byUsername: map[string]*models.User{"admin": user}}
	svc := NewAuthService(repo)

	_, err := svc.LoginUser(LoginRequest{Username: "admin", Password: "secret-pass"})
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	user := adminUser(t, "secret-pass")
	repo := &stubAuthRepo{
		byUsername: map[string]*models.User{"admin": user},
		byID:       map[int64]*models.User{1: user},
	}
	svc := NewAuthService(repo)

	login, err := svc.LoginUser(LoginRequest{Username: "admin", Password: "secret-pass"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, user.ID, refreshed.User.ID)
}

func TestRefreshTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(&stubAuthRepo{})

	_, err := svc.RefreshToken("bogus")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetUserProfileNotFound(t *testing.T) {
	svc := NewAuthService(&stubAuthRepo{byID: map[int64]*models.User{}})

	_, err := svc.GetUserProfile(99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
