// Package response writes the JSON envelope shared by every endpoint.
package response

import (
	"context"
	"encoding/json"
	"net/http"

	apiErrors "github.com/dtroode/socialfeed-server/internal/errors"
	"github.com/dtroode/socialfeed-server/internal/logger"
	"github.com/dtroode/socialfeed-server/internal/model"
)

// Envelope is the top-level body of every response.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Error      *ErrorBody  `json:"error,omitempty"`
}

// Pagination describes the position of a page in a listing.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ErrorBody is the caller-facing part of a failure.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Data writes a successful envelope carrying data.
func Data(w http.ResponseWriter, status int, data any) {
	JSON(w, status, Envelope{Success: true, Data: data})
}

// Message writes a successful envelope carrying only a message.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Success: true, Message: message})
}

// Page writes a successful envelope with pagination metadata taken from page.
func Page(w http.ResponseWriter, data any, page model.PostPage) {
	JSON(w, http.StatusOK, Envelope{
		Success: true,
		Data:    data,
		Pagination: &Pagination{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      page.Total,
			TotalPages: page.TotalPages(),
		},
	})
}

type diagnosticsKey struct{}

// Diagnostics makes Error include the cause of internal errors in the body.
// Only mounted in development.
func Diagnostics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), diagnosticsKey{}, true)))
	})
}

func diagnosticsEnabled(ctx context.Context) bool {
	on, _ := ctx.Value(diagnosticsKey{}).(bool)
	return on
}

// Error maps err to a status and envelope. Errors that are not APIErrors are
// logged and reported as internal without leaking their text.
func Error(w http.ResponseWriter, r *http.Request, err error, log *logger.Logger) {
	apiErr, ok := apiErrors.As(err)
	if !ok {
		apiErr = apiErrors.NewErrInternalServerError(err)
	}

	message := apiErr.Message
	if apiErr.Kind == apiErrors.KindInternal {
		if log != nil {
			log.Error("HTTP handler: request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"error", err.Error())
		}
		if diagnosticsEnabled(r.Context()) {
			message += ": " + err.Error()
		}
	}

	JSON(w, apiErr.Kind.HTTPStatus(), Envelope{
		Success: false,
		Error: &ErrorBody{
			Code:    apiErr.Code,
			Message: message,
		},
	})
}
