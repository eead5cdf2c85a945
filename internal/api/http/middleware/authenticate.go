package middleware

import (
	"context"
	"net/http"

	"github.com/dtroode/socialfeed-server/internal/api/http/cookie"
	"github.com/dtroode/socialfeed-server/internal/api/http/response"
	"github.com/dtroode/socialfeed-server/internal/logger"
	"github.com/dtroode/socialfeed-server/internal/model"
)

// Authenticator resolves a session token into a viewer.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (model.Viewer, error)
}

// Authenticate validates the session token and injects the viewer into the
// request context. Rejected requests get the session cookie cleared.
type Authenticate struct {
	authenticator  Authenticator
	cookies        *cookie.Manager
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(
	authenticator Authenticator,
	cookies *cookie.Manager,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Authenticate {
	return &Authenticate{
		authenticator:  authenticator,
		cookies:        cookies,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewer, err := m.authenticator.Authenticate(r.Context(), m.cookies.Token(r))
		if err != nil {
			m.logger.Debug("Authenticate middleware: request rejected",
				"path", r.URL.Path,
				"error", err.Error())
			m.cookies.Clear(w)
			response.Error(w, r, err, m.logger)
			return
		}

		recordViewer(r.Context(), viewer)
		next.ServeHTTP(w, r.WithContext(m.contextManager.SetViewerToContext(r.Context(), viewer)))
	})
}
