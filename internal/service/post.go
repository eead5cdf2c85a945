package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/socialfeed-server/internal/errors"
	"github.com/dtroode/socialfeed-server/internal/logger"
	"github.com/dtroode/socialfeed-server/internal/model"
)

type Post struct {
	postStore model.PostStore
	metrics   model.MetricsRecorder
	logger    *logger.Logger

	now   func() time.Time
	newID func() (uuid.UUID, error)
}

func NewPost(postStore model.PostStore, metrics model.MetricsRecorder, logger *logger.Logger) *Post {
	return &Post{
		postStore: postStore,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewV7,
	}
}

// CreatePost validates and stores a post with at most one media attachment.
func (s *Post) CreatePost(ctx context.Context, params model.CreatePostParams) (model.Post, error) {
	content, err := normalizeContent(params.Content)
	if err != nil {
		return model.Post{}, err
	}
	if params.MediaURL != "" {
		if err := validateMediaURL(params.MediaURL); err != nil {
			return model.Post{}, err
		}
	}

	postID, err := s.newID()
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to generate post id: %w", err)
	}

	now := s.now().UTC()
	post := model.Post{
		ID:        postID,
		AuthorID:  params.AuthorID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if params.MediaURL != "" {
		post.Media = []model.Media{{
			ID:        uuid.New(),
			PostID:    postID,
			URL:       params.MediaURL,
			CreatedAt: now,
		}}
	}

	saved, err := s.postStore.Create(ctx, post)
	if errors.Is(err, model.ErrReferenceMissing) {
		return model.Post{}, apiErrors.NewErrUserNotFound(params.AuthorID.String())
	}
	if err != nil {
		s.logger.Error("Post service: failed to create post",
			"author_id", params.AuthorID.String(),
			"error", err.Error())
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	s.metrics.RecordPostCreated(len(post.Media) > 0)
	s.logger.Info("Post service: post created",
		"post_id", saved.ID.String(),
		"author_id", params.AuthorID.String())

	return saved, nil
}

// ListByAuthor returns a page of the author's posts, newest first.
func (s *Post) ListByAuthor(ctx context.Context, authorID uuid.UUID, req model.PageRequest) (model.PostPage, error) {
	if err := validatePage(req); err != nil {
		return model.PostPage{}, err
	}

	posts, total, err := s.postStore.ListByAuthors(ctx, []uuid.UUID{authorID}, req.Limit, req.Offset())
	if err != nil {
		s.logger.Error("Post service: failed to list posts",
			"author_id", authorID.String(),
			"error", err.Error())
		return model.PostPage{}, fmt.Errorf("failed to list posts: %w", err)
	}

	return model.PostPage{
		Posts: posts,
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	}, nil
}
