package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiErrors "github.com/dtroode/socialfeed-server/internal/errors"
	"github.com/dtroode/socialfeed-server/internal/model"
	"github.com/dtroode/socialfeed-server/internal/testutil"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestData(t *testing.T) {
	w := httptest.NewRecorder()
	Data(w, http.StatusCreated, map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]any{"id": "1"}, body["data"])
	assert.NotContains(t, body, "error")
}

func TestData_EmptySliceIsKept(t *testing.T) {
	w := httptest.NewRecorder()
	Data(w, http.StatusOK, []string{})

	body := decode(t, w)
	assert.Equal(t, []any{}, body["data"])
}

func TestPage(t *testing.T) {
	w := httptest.NewRecorder()
	Page(w, []string{"a"}, model.PostPage{Page: 2, Limit: 10, Total: 21})

	body := decode(t, w)
	assert.Equal(t, map[string]any{
		"page":       float64(2),
		"limit":      float64(10),
		"total":      float64(21),
		"totalPages": float64(3),
	}, body["pagination"])
}

func TestError(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/feed", nil)

	tests := []struct {
		name     string
		err      error
		status   int
		code     string
		message  string
		internal bool
	}{
		{name: "validation", err: apiErrors.NewErrInvalidPage(), status: http.StatusBadRequest, code: apiErrors.CodeInvalidPagination, message: "Page must be greater than 0"},
		{name: "wrapped conflict", err: fmt.Errorf("x: %w", apiErrors.NewErrAlreadyFollowing()), status: http.StatusConflict, code: apiErrors.CodeAlreadyFollowing},
		{name: "unauthorized", err: apiErrors.NewErrMissingAuthorizationToken(), status: http.StatusUnauthorized, code: apiErrors.CodeMissingToken},
		{name: "internal hides cause", err: fmt.Errorf("db: %w", assert.AnError), status: http.StatusInternalServerError, code: apiErrors.CodeInternal, message: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Error(w, r, tt.err, testutil.MakeNoopLogger())

			assert.Equal(t, tt.status, w.Code)
			body := decode(t, w)
			assert.Equal(t, false, body["success"])
			errBody := body["error"].(map[string]any)
			assert.Equal(t, tt.code, errBody["code"])
			if tt.message != "" {
				assert.Equal(t, tt.message, errBody["message"])
			}
			assert.NotContains(t, w.Body.String(), assert.AnError.Error())
		})
	}
}

func TestError_Diagnostics(t *testing.T) {
	handler := Diagnostics(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		Error(rw, r, fmt.Errorf("failed to list posts: %w", assert.AnError), nil)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/feed", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	errBody := decode(t, w)["error"].(map[string]any)
	assert.Equal(t, "Internal server error: failed to list posts: "+assert.AnError.Error(), errBody["message"])
}
