package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/socialfeed-server/internal/errors"
	"github.com/dtroode/socialfeed-server/internal/logger"
	"github.com/dtroode/socialfeed-server/internal/model"
)

const (
	authActionRegister = "register"
	authActionLogin    = "login"
)

// dummyPassword is hashed once and compared against for unknown emails so that
// login latency does not reveal which emails are registered.
const dummyPassword = "socialfeed-dummy-password"

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	metrics      model.MetricsRecorder
	logger       *logger.Logger

	dummyOnce sync.Once
	dummyHash string

	now func() time.Time
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	metrics model.MetricsRecorder,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		metrics:      metrics,
		logger:       logger,
		now:          time.Now,
	}
}

// TokenTTL returns the lifetime of issued session tokens.
func (a *Auth) TokenTTL() time.Duration {
	return a.tokenManager.TTL()
}

func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (session model.Session, err error) {
	defer func() { a.metrics.RecordAuthAttempt(authActionRegister, err == nil) }()

	email := normalizeEmail(params.Email)
	username := strings.TrimSpace(params.Username)

	a.logger.Debug("Auth service: registering user",
		"email", email,
		"username", username)

	if email == "" || username == "" {
		return model.Session{}, apiErrors.NewErrValidation("Email and username are required")
	}
	if utf8.RuneCountInString(params.Password) < MinPasswordLength {
		return model.Session{}, apiErrors.NewErrWeakPassword(MinPasswordLength)
	}
	if n := utf8.RuneCountInString(username); n < MinUsernameLength || n > MaxUsernameLength {
		return model.Session{}, apiErrors.NewErrValidation(
			fmt.Sprintf("Username must be %d to %d characters", MinUsernameLength, MaxUsernameLength))
	}

	_, err = a.userStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: email already registered",
			"email", email)
		return model.Session{}, apiErrors.NewErrEmailIsTaken(email)
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	_, err = a.userStore.GetByUsername(ctx, username)
	if err == nil {
		a.logger.Info("Auth service: username already taken",
			"username", username)
		return model.Session{}, apiErrors.NewErrUsernameIsTaken(username)
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := a.now().UTC()
	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// A concurrent registration can win the race between the checks and the insert.
		switch {
		case errors.Is(err, model.ErrEmailTaken):
			return model.Session{}, apiErrors.NewErrEmailIsTaken(email)
		case errors.Is(err, model.ErrUsernameTaken):
			return model.Session{}, apiErrors.NewErrUsernameIsTaken(username)
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	session, err = a.issueSession(user)
	if err != nil {
		return model.Session{}, err
	}

	a.logger.Info("Auth service: user registered",
		"user_id", user.ID.String(),
		"username", user.Username)

	return session, nil
}

func (a *Auth) Login(ctx context.Context, email, password string) (session model.Session, err error) {
	defer func() { a.metrics.RecordAuthAttempt(authActionLogin, err == nil) }()

	email = normalizeEmail(email)

	a.logger.Debug("Auth service: logging in",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.compareDummy(password)
		a.logger.Info("Auth service: login for unknown email",
			"email", email)
		return model.Session{}, apiErrors.NewErrInvalidCredentials()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := a.hasher.Compare(user.PasswordHash, password); err != nil {
		a.logger.Info("Auth service: wrong password",
			"user_id", user.ID.String())
		return model.Session{}, apiErrors.NewErrInvalidCredentials()
	}

	session, err = a.issueSession(user)
	if err != nil {
		return model.Session{}, err
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID.String())

	return session, nil
}

// Authenticate resolves a session token into the viewer it was issued for.
func (a *Auth) Authenticate(_ context.Context, token string) (model.Viewer, error) {
	if token == "" {
		return model.Viewer{}, apiErrors.NewErrMissingAuthorizationToken()
	}

	viewer, err := a.tokenManager.Parse(token)
	if err != nil {
		a.logger.Debug("Auth service: rejected token",
			"error", err.Error())
		return model.Viewer{}, apiErrors.NewErrInvalidAuthorizationToken()
	}

	return viewer, nil
}

func (a *Auth) issueSession(user model.User) (model.Session, error) {
	token, err := a.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to generate token",
			"user_id", user.ID.String(),
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return model.Session{
		User:  user.Profile(),
		Token: token,
	}, nil
}

func (a *Auth) compareDummy(password string) {
	a.dummyOnce.Do(func() {
		hash, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			a.logger.Warn("Auth service: failed to prepare dummy hash",
				"error", err.Error())
			return
		}
		a.dummyHash = hash
	})
	if a.dummyHash != "" {
		_ = a.hasher.Compare(a.dummyHash, password)
	}
}
