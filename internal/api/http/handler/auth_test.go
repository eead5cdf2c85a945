package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/socialfeed-server/internal/api/http/cookie"
	apiErrors "github.com/dtroode/socialfeed-server/internal/errors"
	"github.com/dtroode/socialfeed-server/internal/mocks"
	"github.com/dtroode/socialfeed-server/internal/model"
	"github.com/dtroode/socialfeed-server/internal/testutil"
)

func newTestCookies() *cookie.Manager {
	return cookie.NewManager("token", false, http.SameSiteLaxMode)
}

func TestAuth_Register(t *testing.T) {
	authService := mocks.NewAuthService(t)
	h := NewAuth(authService, newTestCookies(), testutil.MakeNoopLogger())

	userID := uuid.New()
	authService.On("Register", mock.Anything, model.RegisterParams{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "secret1",
	}).Return(model.Session{
		User:  model.Profile{ID: userID, Email: "alice@example.com", Username: "alice"},
		Token: "jwt",
	}, nil)
	authService.On("TokenTTL").Return(time.Hour)

	w := httptest.NewRecorder()
	h.Register(w, newJSONRequest(http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","username":"alice","password":"secret1"}`))

	assert.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	var data sessionResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, userID, data.User.ID)
	assert.Equal(t, "alice", data.User.Username)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "jwt", cookies[0].Value)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuth_Register_Conflict(t *testing.T) {
	authService := mocks.NewAuthService(t)
	h := NewAuth(authService, newTestCookies(), testutil.MakeNoopLogger())

	authService.On("Register", mock.Anything, mock.Anything).
		Return(model.Session{}, apiErrors.NewErrEmailIsTaken("alice@example.com"))

	w := httptest.NewRecorder()
	h.Register(w, newJSONRequest(http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","username":"alice","password":"secret1"}`))

	assert.Equal(t, http.StatusConflict, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, apiErrors.CodeEmailTaken, env.Error.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestAuth_Register_InvalidBody(t *testing.T) {
	authService := mocks.NewAuthService(t)
	h := NewAuth(authService, newTestCookies(), testutil.MakeNoopLogger())

	w := httptest.NewRecorder()
	h.Register(w, newJSONRequest(http.MethodPost, "/auth/register", `{"email":"alice@example.com"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	authService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuth_Register_ShortUsername(t *testing.T) {
	authService := mocks.NewAuthService(t)
	h := NewAuth(authService, newTestCookies(), testutil.MakeNoopLogger())

	w := httptest.NewRecorder()
	h.Register(w, newJSONRequest(http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","username":"al","password":"secret1"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, apiErrors.CodeValidation, env.Error.Code)
	assert.Equal(t, "username must be at least 3 characters", env.Error.Message)
	authService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuth_Login(t *testing.T) {
	authService := mocks.NewAuthService(t)
	h := NewAuth(authService, newTestCookies(), testutil.MakeNoopLogger())

	authService.On("Login", mock.Anything, "alice@example.com", "secret1").Return(model.Session{
		User:  model.Profile{ID: uuid.New(), Email: "alice@example.com", Username: "alice"},
		Token: "jwt",
	}, nil)
	authService.On("TokenTTL").Return(time.Hour)

	w := httptest.NewRecorder()
	h.Login(w, newJSONRequest(http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"secret1"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, w.Result().Cookies(), 1)
}

func TestAuth_Login_InvalidCredentials(t *testing.T) {
	authService := mocks.NewAuthService(t)
	h := NewAuth(authService, newTestCookies(), testutil.MakeNoopLogger())

	authService.On("Login", mock.Anything, "alice@example.com", "wrong").
		Return(model.Session{}, apiErrors.NewErrInvalidCredentials())

	w := httptest.NewRecorder()
	h.Login(w, newJSONRequest(http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"wrong"}`))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, apiErrors.CodeInvalidCredentials, env.Error.Code)
}

func TestAuth_Logout(t *testing.T) {
	h := NewAuth(mocks.NewAuthService(t), newTestCookies(), testutil.MakeNoopLogger())

	w := httptest.NewRecorder()
	h.Logout(w, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Logged out successfully", env.Message)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)
}
