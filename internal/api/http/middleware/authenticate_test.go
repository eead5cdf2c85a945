package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpcontext "github.com/dtroode/socialfeed-server/internal/api/http/context"
	"github.com/dtroode/socialfeed-server/internal/api/http/cookie"
	apiErrors "github.com/dtroode/socialfeed-server/internal/errors"
	"github.com/dtroode/socialfeed-server/internal/mocks"
	"github.com/dtroode/socialfeed-server/internal/model"
	"github.com/dtroode/socialfeed-server/internal/testutil"
)

func TestAuthenticate_ValidCookie(t *testing.T) {
	authenticator := mocks.NewAuthenticator(t)
	cm := httpcontext.NewManager()
	viewer := model.Viewer{UserID: uuid.New(), Email: "a@example.com"}
	authenticator.On("Authenticate", mock.Anything, "good").Return(viewer, nil)

	m := NewAuthenticate(authenticator, cookie.NewManager("token", false, http.SameSiteLaxMode), cm, testutil.MakeNoopLogger())

	var got model.Viewer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v, ok := cm.GetViewerFromContext(r.Context())
		require.True(t, ok)
		got = v
		w.WriteHeader(http.StatusNoContent)
	})

	r := httptest.NewRequest(http.MethodGet, "/feed", nil)
	r.AddCookie(&http.Cookie{Name: "token", Value: "good"})
	w := httptest.NewRecorder()
	m.Handle(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, viewer, got)
}

func TestAuthenticate_BearerFallback(t *testing.T) {
	authenticator := mocks.NewAuthenticator(t)
	authenticator.On("Authenticate", mock.Anything, "header-token").Return(model.Viewer{UserID: uuid.New()}, nil)

	m := NewAuthenticate(authenticator, cookie.NewManager("token", false, http.SameSiteLaxMode), httpcontext.NewManager(), testutil.MakeNoopLogger())

	r := httptest.NewRequest(http.MethodGet, "/feed", nil)
	r.Header.Set("Authorization", "Bearer header-token")
	w := httptest.NewRecorder()
	m.Handle(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticate_Rejected(t *testing.T) {
	authenticator := mocks.NewAuthenticator(t)
	authenticator.On("Authenticate", mock.Anything, "").Return(model.Viewer{}, apiErrors.NewErrMissingAuthorizationToken())

	m := NewAuthenticate(authenticator, cookie.NewManager("token", false, http.SameSiteLaxMode), httpcontext.NewManager(), testutil.MakeNoopLogger())

	called := false
	r := httptest.NewRequest(http.MethodGet, "/feed", nil)
	w := httptest.NewRecorder()
	m.Handle(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })).ServeHTTP(w, r)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), apiErrors.CodeMissingToken)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}
