package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/dtroode/socialfeed-server/internal/api/http/response"
	apiErrors "github.com/dtroode/socialfeed-server/internal/errors"
	"github.com/dtroode/socialfeed-server/internal/logger"
)

// Recovery turns handler panics into internal error responses.
type Recovery struct {
	logger *logger.Logger
}

func NewRecovery(logger *logger.Logger) *Recovery {
	return &Recovery{logger: logger}
}

func (m *Recovery) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			m.logger.Error("Recovery middleware: panic recovered",
				"panic", fmt.Sprint(rec),
				"method", r.Method,
				"path", r.URL.Path,
				"stack", string(debug.Stack()))
			response.Error(w, r, apiErrors.NewErrInternalServerError(fmt.Errorf("panic: %v", rec)), nil)
		}()

		next.ServeHTTP(w, r)
	})
}
