package adaptor

import (
	"net"
	"net/http"
	"time"

	"cinetrack/internal/dto/request"
	"cinetrack/internal/usecase"
	"cinetrack/pkg/middleware"
	"cinetrack/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service      usecase.AuthService
	secureCookie bool
	log          *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, config utils.SessionConfig, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:      service,
		secureCookie: config.SecureCookie,
		log:          log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	response, err := h.service.Register(r.Context(), &req, clientInfo(r))
	if err != nil {
		h.handleServiceError(w, err, "register")
		return
	}

	h.setSessionCookie(w, response.Token, response.ExpiresAt)
	utils.ResponseCreated(w, "Registration successful", response)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	response, err := h.service.Login(r.Context(), &req, clientInfo(r))
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	h.setSessionCookie(w, response.Token, response.ExpiresAt)
	utils.ResponseSuccess(w, "Login successful", response)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		h.handleServiceError(w, err, "logout")
		return
	}

	h.setSessionCookie(w, "", time.Unix(0, 0))
	utils.ResponseSuccess(w, "Logout successful", nil)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	if token == "" {
		cookie.MaxAge = -1
	}
	http.SetCookie(w, cookie)
}

func clientInfo(r *http.Request) request.ClientInfo {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	return request.ClientInfo{
		UserAgent: r.UserAgent(),
		IPAddress: ip,
	}
}

func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	writeServiceError(w, h.log, err, operation)
}
