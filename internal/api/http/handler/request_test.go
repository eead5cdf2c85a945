package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiErrors "github.com/dtroode/socialfeed-server/internal/errors"
	"github.com/dtroode/socialfeed-server/internal/model"
)

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
		wantMsg  string
	}{
		{name: "valid", body: `{"email":"a@example.com","username":"alice","password":"secret1"}`},
		{name: "malformed", body: `{"email":`, wantCode: apiErrors.CodeValidation, wantMsg: "Invalid JSON body"},
		{name: "missing email", body: `{"username":"alice","password":"secret1"}`, wantCode: apiErrors.CodeValidation, wantMsg: "email is required"},
		{name: "bad email", body: `{"email":"nope","username":"alice","password":"secret1"}`, wantCode: apiErrors.CodeValidation, wantMsg: "Invalid email format"},
		{name: "short username", body: `{"email":"a@example.com","username":"al","password":"secret1"}`, wantCode: apiErrors.CodeValidation, wantMsg: "username must be at least 3 characters"},
		{name: "long username", body: `{"email":"a@example.com","username":"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa","password":"secret1"}`, wantCode: apiErrors.CodeValidation, wantMsg: "username must be at most 30 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req registerRequest
			err := decodeBody(httptest.NewRecorder(), newJSONRequest(http.MethodPost, "/auth/register", tt.body), &req)
			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, "alice", req.Username)
				return
			}
			apiErr, ok := apiErrors.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}

func TestDecodeBody_MediaURL(t *testing.T) {
	var req createPostRequest
	err := decodeBody(httptest.NewRecorder(), newJSONRequest(http.MethodPost, "/posts", `{"content":"hi","mediaUrl":"not a url"}`), &req)

	apiErr, ok := apiErrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apiErrors.CodeInvalidMediaURL, apiErr.Code)
}

func TestUserIDParam(t *testing.T) {
	id := uuid.New()

	got, err := userIDParam(withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "userId", id.String()))
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = userIDParam(withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "userId", "nope"))
	assert.Equal(t, apiErrors.KindValidation, apiErrors.KindOf(err))
}

func TestPageParams(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    model.PageRequest
		wantErr bool
	}{
		{name: "defaults", query: "", want: model.PageRequest{Page: 1, Limit: 10}},
		{name: "explicit", query: "?page=3&limit=25", want: model.PageRequest{Page: 3, Limit: 25}},
		{name: "zero passes through", query: "?page=0", want: model.PageRequest{Page: 0, Limit: 10}},
		{name: "non-integer page", query: "?page=abc", wantErr: true},
		{name: "non-integer limit", query: "?limit=1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pageParams(httptest.NewRequest(http.MethodGet, "/feed"+tt.query, nil))
			if tt.wantErr {
				assert.Equal(t, apiErrors.KindValidation, apiErrors.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
