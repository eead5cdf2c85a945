package handler

import (
	"net/http"

	"github.com/dtroode/socialfeed-server/internal/api/http/response"
	"github.com/dtroode/socialfeed-server/internal/logger"
)

type User struct {
	userService UserService
	logger      *logger.Logger
}

func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

func (h *User) SearchByUsername(w http.ResponseWriter, r *http.Request) {
	profile, err := h.userService.FindByUsername(r.Context(), r.URL.Query().Get("username"))
	if err != nil {
		response.Error(w, r, err, h.logger)
		return
	}
	response.Data(w, http.StatusOK, newUserResponse(profile))
}

func (h *User) SearchByEmail(w http.ResponseWriter, r *http.Request) {
	profile, err := h.userService.FindByEmail(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		response.Error(w, r, err, h.logger)
		return
	}
	response.Data(w, http.StatusOK, newUserResponse(profile))
}
