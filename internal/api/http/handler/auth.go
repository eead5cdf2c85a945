package handler

import (
	"net/http"

	"github.com/dtroode/socialfeed-server/internal/api/http/cookie"
	"github.com/dtroode/socialfeed-server/internal/api/http/response"
	"github.com/dtroode/socialfeed-server/internal/logger"
	"github.com/dtroode/socialfeed-server/internal/model"
)

// Auth handles registration, login and logout.
type Auth struct {
	authService AuthService
	cookies     *cookie.Manager
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, cookies *cookie.Manager, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		cookies:     cookies,
		logger:      logger,
	}
}

// Register creates an account and starts a session.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(w, r, &req); err != nil {
		response.Error(w, r, err, h.logger)
		return
	}

	session, err := h.authService.Register(r.Context(), model.RegisterParams{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(w, r, err, h.logger)
		return
	}

	h.cookies.Set(w, session.Token, h.authService.TokenTTL())
	response.Data(w, http.StatusCreated, newSessionResponse(session))
}

// Login verifies credentials and starts a session.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(w, r, &req); err != nil {
		response.Error(w, r, err, h.logger)
		return
	}

	session, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(w, r, err, h.logger)
		return
	}

	h.cookies.Set(w, session.Token, h.authService.TokenTTL())
	response.Data(w, http.StatusOK, newSessionResponse(session))
}

// Logout clears the session cookie. Tokens are stateless, so nothing is revoked.
func (h *Auth) Logout(w http.ResponseWriter, _ *http.Request) {
	h.cookies.Clear(w)
	response.Message(w, http.StatusOK, "Logged out successfully")
}
