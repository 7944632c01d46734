package service

import (
	"testing"
	"time"

	"lms_backend/internal/config"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestAuthRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := &model.User{
		Email:     "new@example.com",
		Password:  "secret123",
		FirstName: "New",
		LastName:  "User",
	}
	token, err := svc.Register(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The role defaults and the stored password is a bcrypt hash.
	assert.Equal(t, model.RoleStudent, user.Role)
	assert.True(t, user.Active)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))

	claims, err := util.ParseJWT(token, svc.Cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.RoleStudent, claims.Role)
	assert.Equal(t, "new@example.com", claims.Email)

	token, logged, err := svc.Login("new@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(&model.User{Email: "dup@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(&model.User{Email: "dup@example.com", Password: "other456"})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestAuthLoginFailures(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(&model.User{Email: "known@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, _, err = svc.Login("known@example.com", "wrong-password")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, _, err = svc.Login("unknown@example.com", "secret123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestAuthTokenExpiry(t *testing.T) {
	user := &model.User{Email: "x@example.com", Role: model.RoleStudent}
	user.ID = 7

	token, err := util.GenerateJWT(user, "s", -time.Minute)
	require.NoError(t, err)

	_, err = util.ParseJWT(token, "s")
	assert.Error(t, err)
}
