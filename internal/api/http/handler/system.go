package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dtroode/socialfeed-server/internal/api/http/response"
	apiErrors "github.com/dtroode/socialfeed-server/internal/errors"
	"github.com/dtroode/socialfeed-server/internal/logger"
	"github.com/dtroode/socialfeed-server/internal/model"
)

const healthTimeout = 2 * time.Second

// System serves the index, health and fallback routes.
type System struct {
	pinger model.Pinger
	logger *logger.Logger
	now    func() time.Time
}

func NewSystem(pinger model.Pinger, logger *logger.Logger) *System {
	return &System{
		pinger: pinger,
		logger: logger,
		now:    time.Now,
	}
}

type indexResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]any    `json:"endpoints"`
	Docs      map[string]string `json:"docs,omitempty"`
}

// Index describes the available endpoints.
func (h *System) Index(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, indexResponse{
		Success: true,
		Message: "Social Media Backend API",
		Version: "1.0.0",
		Endpoints: map[string]any{
			"health":  "GET /health",
			"metrics": "GET /metrics",
			"auth": map[string]string{
				"register": "POST /auth/register",
				"login":    "POST /auth/login",
				"logout":   "POST /auth/logout",
			},
			"users": map[string]string{
				"searchByUsername": "GET /users/search/username?username=xxx",
				"searchByEmail":    "GET /users/search/email?email=xxx",
			},
			"follow": map[string]string{
				"follow":       "POST /follow/:userId",
				"unfollow":     "DELETE /follow/:userId",
				"getFollowers": "GET /follow/followers/:userId",
				"getFollowing": "GET /follow/following/:userId",
			},
			"posts": map[string]string{
				"create":    "POST /posts",
				"getByUser": "GET /posts/:userId?page=1&limit=10",
				"getFeed":   "GET /feed?page=1&limit=10",
			},
		},
	})
}

type healthResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message,omitempty"`
	Timestamp string              `json:"timestamp"`
	Error     *response.ErrorBody `json:"error,omitempty"`
}

// Health reports whether the database is reachable.
func (h *System) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	timestamp := h.now().UTC().Format(time.RFC3339)

	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn("Health handler: database ping failed",
			"error", err.Error())
		response.JSON(w, http.StatusServiceUnavailable, healthResponse{
			Success:   false,
			Timestamp: timestamp,
			Error: &response.ErrorBody{
				Code:    "SERVICE_UNAVAILABLE",
				Message: "Database is unreachable",
			},
		})
		return
	}

	response.JSON(w, http.StatusOK, healthResponse{
		Success:   true,
		Message:   "Server is healthy",
		Timestamp: timestamp,
	})
}

// NotFound answers unknown routes and methods.
func (h *System) NotFound(w http.ResponseWriter, r *http.Request) {
	response.Error(w, r, apiErrors.NewErrRouteNotFound(), h.logger)
}
