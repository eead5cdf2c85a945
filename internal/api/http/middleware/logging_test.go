package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/socialfeed-server/internal/logger"
	"github.com/dtroode/socialfeed-server/internal/model"
)

func TestLogging_LogsRequest(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogging(logger.NewWithFormat(&buf, -4, "json"))
	userID := uuid.New()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recordViewer(r.Context(), model.Viewer{UserID: userID})
		w.WriteHeader(http.StatusCreated)
	})

	r := httptest.NewRequest(http.MethodPost, "/posts", nil)
	w := httptest.NewRecorder()
	l.Handle(next).ServeHTTP(w, r)

	out := buf.String()
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, out, `"msg":"HTTP request completed"`)
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"path":"/posts"`)
	assert.Contains(t, out, `"status":201`)
	assert.Contains(t, out, userID.String())
	assert.Contains(t, out, `"level":"INFO"`)
}

func TestLogging_LevelByStatus(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{status: http.StatusOK, level: "INFO"},
		{status: http.StatusNotFound, level: "WARN"},
		{status: http.StatusInternalServerError, level: "ERROR"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		l := NewLogging(logger.NewWithFormat(&buf, -4, "json"))

		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(tt.status) })
		l.Handle(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Contains(t, buf.String(), `"level":"`+tt.level+`"`)
	}
}
