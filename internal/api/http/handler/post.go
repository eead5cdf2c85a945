package handler

import (
	"net/http"

	"github.com/dtroode/socialfeed-server/internal/api/http/response"
	apiErrors "github.com/dtroode/socialfeed-server/internal/errors"
	"github.com/dtroode/socialfeed-server/internal/logger"
	"github.com/dtroode/socialfeed-server/internal/model"
)

// Post handles post creation, per-author listings and the feed.
type Post struct {
	postService    PostService
	feedService    FeedService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewPost(
	postService PostService,
	feedService FeedService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Post {
	return &Post{
		postService:    postService,
		feedService:    feedService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Post) Create(w http.ResponseWriter, r *http.Request) {
	viewer, ok := h.contextManager.GetViewerFromContext(r.Context())
	if !ok {
		response.Error(w, r, apiErrors.NewErrMissingAuthorizationToken(), h.logger)
		return
	}

	var req createPostRequest
	if err := decodeBody(w, r, &req); err != nil {
		response.Error(w, r, err, h.logger)
		return
	}

	post, err := h.postService.CreatePost(r.Context(), model.CreatePostParams{
		AuthorID: viewer.UserID,
		Content:  req.Content,
		MediaURL: req.MediaURL,
	})
	if err != nil {
		response.Error(w, r, err, h.logger)
		return
	}

	response.Data(w, http.StatusCreated, newPostResponse(post))
}

func (h *Post) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		response.Error(w, r, err, h.logger)
		return
	}

	pageReq, err := pageParams(r)
	if err != nil {
		response.Error(w, r, err, h.logger)
		return
	}

	page, err := h.postService.ListByAuthor(r.Context(), userID, pageReq)
	if err != nil {
		response.Error(w, r, err, h.logger)
		return
	}

	response.Page(w, newPostResponses(page.Posts), page)
}

func (h *Post) Feed(w http.ResponseWriter, r *http.Request) {
	viewer, ok := h.contextManager.GetViewerFromContext(r.Context())
	if !ok {
		response.Error(w, r, apiErrors.NewErrMissingAuthorizationToken(), h.logger)
		return
	}

	pageReq, err := pageParams(r)
	if err != nil {
		response.Error(w, r, err, h.logger)
		return
	}

	page, err := h.feedService.GetFeed(r.Context(), viewer.UserID, pageReq)
	if err != nil {
		response.Error(w, r, err, h.logger)
		return
	}

	response.Page(w, newPostResponses(page.Posts), page)
}
