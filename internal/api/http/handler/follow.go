package handler

import (
	"net/http"

	"github.com/dtroode/socialfeed-server/internal/api/http/response"
	apiErrors "github.com/dtroode/socialfeed-server/internal/errors"
	"github.com/dtroode/socialfeed-server/internal/logger"
	"github.com/dtroode/socialfeed-server/internal/model"
)

// Follow handles follow graph endpoints. Every route requires a viewer.
type Follow struct {
	followService  FollowService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewFollow(followService FollowService, contextManager model.ContextManager, logger *logger.Logger) *Follow {
	return &Follow{
		followService:  followService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Follow) Follow(w http.ResponseWriter, r *http.Request) {
	viewer, ok := h.contextManager.GetViewerFromContext(r.Context())
	if !ok {
		response.Error(w, r, apiErrors.NewErrMissingAuthorizationToken(), h.logger)
		return
	}

	targetID, err := userIDParam(r)
	if err != nil {
		response.Error(w, r, err, h.logger)
		return
	}

	if err := h.followService.Follow(r.Context(), viewer.UserID, targetID); err != nil {
		response.Error(w, r, err, h.logger)
		return
	}

	response.Data(w, http.StatusOK, messageResponse{Message: "Successfully followed user"})
}

func (h *Follow) Unfollow(w http.ResponseWriter, r *http.Request) {
	viewer, ok := h.contextManager.GetViewerFromContext(r.Context())
	if !ok {
		response.Error(w, r, apiErrors.NewErrMissingAuthorizationToken(), h.logger)
		return
	}

	targetID, err := userIDParam(r)
	if err != nil {
		response.Error(w, r, err, h.logger)
		return
	}

	if err := h.followService.Unfollow(r.Context(), viewer.UserID, targetID); err != nil {
		response.Error(w, r, err, h.logger)
		return
	}

	response.Data(w, http.StatusOK, messageResponse{Message: "Successfully unfollowed user"})
}

func (h *Follow) Followers(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		response.Error(w, r, err, h.logger)
		return
	}

	followers, err := h.followService.ListFollowers(r.Context(), userID)
	if err != nil {
		response.Error(w, r, err, h.logger)
		return
	}

	response.Data(w, http.StatusOK, newUserResponses(followers))
}

func (h *Follow) Following(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		response.Error(w, r, err, h.logger)
		return
	}

	following, err := h.followService.ListFollowing(r.Context(), userID)
	if err != nil {
		response.Error(w, r, err, h.logger)
		return
	}

	response.Data(w, http.StatusOK, newUserResponses(following))
}
