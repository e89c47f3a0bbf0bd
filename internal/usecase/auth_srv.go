package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cinetrack/internal/data/entity"
	"cinetrack/internal/data/repository"
	"cinetrack/internal/dto/request"
	"cinetrack/internal/dto/response"
	"cinetrack/pkg/apperror"
	"cinetrack/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultSessionHours = 24 * 7

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest, client request.ClientInfo) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest, client request.ClientInfo) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	PurgeExpiredSessions(ctx context.Context) error
}

type authService struct {
	repo   *repository.Repository
	config utils.SessionConfig
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config utils.SessionConfig, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest, client request.ClientInfo) (*response.AuthResponse, error) {
	if err := validate(s.log, "Register", req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Internal("failed to check email", err)
	}
	if existing != nil {
		return nil, apperror.Conflict("email already registered")
	}

	hashed, err := utils.HashPassword(req.Password, s.config.BcryptCost)
	if err != nil {
		return nil, apperror.Internal("failed to process password", err)
	}

	now := time.Now()
	user := &entity.User{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hashed,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("email already registered")
		}
		return nil, apperror.Internal("failed to create account", err)
	}

	token, session, err := s.createSession(ctx, user.ID, client)
	if err != nil {
		return nil, apperror.Internal("account created but sign-in failed", err)
	}

	s.log.Info("User registered", zap.String("user_id", user.ID.String()))

	return &response.AuthResponse{
		User:      response.UserToResponse(user),
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, client request.ClientInfo) (*response.AuthResponse, error) {
	if err := validate(s.log, "Login", req); err != nil {
		return nil, err
	}

	user, err := s.repo.User.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, apperror.Internal("failed to find user", err)
	}

	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid login attempt", zap.String("email", req.Email))
		return nil, apperror.Authentication("invalid credentials")
	}

	token, session, err := s.createSession(ctx, user.ID, client)
	if err != nil {
		return nil, apperror.Internal("failed to create session", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &response.AuthResponse{
		User:      response.UserToResponse(user),
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return apperror.Authentication("missing session token")
	}

	if err := s.repo.Session.Revoke(ctx, utils.HashSessionToken(s.config.Secret, token)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.Authentication("session already ended")
		}
		return apperror.Internal("failed to logout", err)
	}

	return nil
}

func (s *authService) PurgeExpiredSessions(ctx context.Context) error {
	if err := s.repo.Session.CleanExpiredSessions(ctx); err != nil {
		s.log.Error("Failed to purge expired sessions", zap.Error(err))
		return err
	}
	return nil
}

// createSession hands out a fresh token; only its HMAC is stored.
func (s *authService) createSession(ctx context.Context, userID uuid.UUID, client request.ClientInfo) (string, *entity.Session, error) {
	hours := s.config.ExpiryHours
	if hours <= 0 {
		hours = defaultSessionHours
	}

	token := utils.GenerateSessionToken()
	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    userID,
		TokenHash: utils.HashSessionToken(s.config.Secret, token),
		UserAgent: optionalString(client.UserAgent),
		IPAddress: optionalString(client.IPAddress),
		ExpiresAt: now.Add(time.Duration(hours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return "", nil, err
	}
	return token, session, nil
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
