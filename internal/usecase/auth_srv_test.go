package usecase

import (
	"context"
	"testing"

	"cinetrack/internal/data/repository"
	"cinetrack/internal/dto/request"
	"cinetrack/pkg/apperror"
	"cinetrack/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newAccounts(t *testing.T) (AuthService, UserService, *repository.Repository, *fakeSessionRepo) {
	sessions := newFakeSessionRepo()
	repo := &repository.Repository{
		User:    newFakeUserRepo(),
		Session: sessions,
	}
	cfg := utils.SessionConfig{Secret: "s3cret", ExpiryHours: 1, BcryptCost: 4}
	log := zaptest.NewLogger(t)
	return NewAuthService(repo, cfg, log), NewUserService(repo, cfg, log), repo, sessions
}

func TestRegisterLoginLogout(t *testing.T) {
	auth, _, _, sessions := newAccounts(t)
	ctx := context.Background()
	client := request.ClientInfo{UserAgent: "test", IPAddress: "127.0.0.1"}

	reg, err := auth.Register(ctx, &request.RegisterRequest{Name: "Neo", Email: "Neo@Example.com", Password: "redpill123"}, client)
	require.NoError(t, err)
	assert.Equal(t, "neo@example.com", reg.User.Email)
	assert.NotEmpty(t, reg.Token)

	// only the HMAC of the token is stored
	stored, err := sessions.FindValidSession(ctx, utils.HashSessionToken("s3cret", reg.Token))
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, reg.Token, stored.TokenHash)

	_, err = auth.Register(ctx, &request.RegisterRequest{Name: "Neo", Email: "neo@example.com", Password: "redpill123"}, client)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	_, err = auth.Login(ctx, &request.LoginRequest{Email: "neo@example.com", Password: "bluepill"}, client)
	assert.Equal(t, apperror.KindAuthentication, apperror.KindOf(err))

	_, err = auth.Login(ctx, &request.LoginRequest{Email: "nobody@example.com", Password: "redpill123"}, client)
	assert.Equal(t, apperror.KindAuthentication, apperror.KindOf(err))

	login, err := auth.Login(ctx, &request.LoginRequest{Email: "NEO@example.com", Password: "redpill123"}, client)
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, login.Token))
	stored, err = sessions.FindValidSession(ctx, utils.HashSessionToken("s3cret", login.Token))
	require.NoError(t, err)
	assert.Nil(t, stored)

	assert.Equal(t, apperror.KindAuthentication, apperror.KindOf(auth.Logout(ctx, login.Token)))
}

func TestUpdateProfile_PasswordChange(t *testing.T) {
	auth, users, _, sessions := newAccounts(t)
	ctx := context.Background()

	reg, err := auth.Register(ctx, &request.RegisterRequest{Name: "Trinity", Email: "t@example.com", Password: "password1"}, request.ClientInfo{})
	require.NoError(t, err)

	userID, err := utils.ParseUUID(reg.User.ID)
	require.NoError(t, err)

	wrong, next := "nope-nope", "password2"
	_, err = users.UpdateProfile(ctx, userID, &request.UpdateProfileRequest{CurrentPassword: &wrong, NewPassword: &next})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	current, name := "password1", "Trin"
	updated, err := users.UpdateProfile(ctx, userID, &request.UpdateProfileRequest{Name: &name, CurrentPassword: &current, NewPassword: &next})
	require.NoError(t, err)
	assert.Equal(t, "Trin", updated.Name)

	// every session ends with the password change
	stored, err := sessions.FindValidSession(ctx, utils.HashSessionToken("s3cret", reg.Token))
	require.NoError(t, err)
	assert.Nil(t, stored)

	_, err = auth.Login(ctx, &request.LoginRequest{Email: "t@example.com", Password: "password2"}, request.ClientInfo{})
	require.NoError(t, err)

	profile, err := users.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "t@example.com", profile.Email)
}
