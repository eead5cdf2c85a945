package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apiErrors "github.com/dtroode/socialfeed-server/internal/errors"
	"github.com/dtroode/socialfeed-server/internal/logger"
	"github.com/dtroode/socialfeed-server/internal/model"
)

type User struct {
	userStore model.UserStore
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		logger:    logger,
	}
}

func (s *User) FindByUsername(ctx context.Context, username string) (model.Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return model.Profile{}, apiErrors.NewErrValidation("Username is required")
	}

	user, err := s.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return model.Profile{}, apiErrors.NewErrUserNotFound(username)
	}
	if err != nil {
		s.logger.Error("User service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user.Profile(), nil
}

func (s *User) FindByEmail(ctx context.Context, email string) (model.Profile, error) {
	email = normalizeEmail(email)
	if email == "" {
		return model.Profile{}, apiErrors.NewErrValidation("Email is required")
	}

	user, err := s.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.Profile{}, apiErrors.NewErrUserNotFound(email)
	}
	if err != nil {
		s.logger.Error("User service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user.Profile(), nil
}
