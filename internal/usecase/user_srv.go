package usecase

import (
	"context"
	"strings"
	"time"

	"cinetrack/internal/data/repository"
	"cinetrack/internal/dto/request"
	"cinetrack/internal/dto/response"
	"cinetrack/pkg/apperror"
	"cinetrack/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error)
}

type userService struct {
	repo   *repository.Repository
	config utils.SessionConfig
	log    *zap.Logger
}

func NewUserService(repo *repository.Repository, config utils.SessionConfig, log *zap.Logger) UserService {
	return &userService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := us.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal("failed to get profile", err)
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// UpdateProfile changes name and photo. A password change needs the current
// password and signs out every session of the user.
func (us *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if err := validate(us.log, "Update profile", req); err != nil {
		return nil, err
	}

	user, err := us.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal("failed to get profile", err)
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.PhotoURL != nil {
		if photo := strings.TrimSpace(*req.PhotoURL); photo != "" {
			user.PhotoURL = &photo
		} else {
			user.PhotoURL = nil
		}
	}

	passwordChanged := false
	if req.NewPassword != nil {
		if req.CurrentPassword == nil || !utils.CheckPasswordHash(*req.CurrentPassword, user.PasswordHash) {
			return nil, apperror.Validation("current password is incorrect")
		}
		hashed, err := utils.HashPassword(*req.NewPassword, us.config.BcryptCost)
		if err != nil {
			return nil, apperror.Internal("failed to process password", err)
		}
		user.PasswordHash = hashed
		passwordChanged = true
	}

	user.UpdatedAt = time.Now()
	if err := us.repo.User.Update(ctx, user); err != nil {
		return nil, apperror.Internal("failed to update profile", err)
	}

	if passwordChanged {
		if err := us.repo.Session.RevokeAllUserSessions(ctx, userID); err != nil {
			us.log.Error("Failed to revoke sessions after password change",
				zap.Error(err), zap.String("user_id", userID.String()))
		}
	}

	us.log.Info("Profile updated",
		zap.String("user_id", userID.String()),
		zap.Bool("password_changed", passwordChanged))

	resp := response.UserToResponse(user)
	return &resp, nil
}
