package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/socialfeed-server/internal/logger"
	"github.com/dtroode/socialfeed-server/internal/model"
)

// Feed composes a viewer's timeline from their own posts and the posts of
// everyone they follow, in one global reverse-chronological order.
type Feed struct {
	followStore model.FollowStore
	postStore   model.PostStore
	logger      *logger.Logger
}

func NewFeed(followStore model.FollowStore, postStore model.PostStore, logger *logger.Logger) *Feed {
	return &Feed{
		followStore: followStore,
		postStore:   postStore,
		logger:      logger,
	}
}

func (s *Feed) GetFeed(ctx context.Context, viewerID uuid.UUID, req model.PageRequest) (model.PostPage, error) {
	if err := validatePage(req); err != nil {
		return model.PostPage{}, err
	}

	following, err := s.followStore.ListFollowingIDs(ctx, viewerID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		s.logger.Error("Feed service: failed to list following ids",
			"viewer_id", viewerID.String(),
			"error", err.Error())
		return model.PostPage{}, fmt.Errorf("failed to list following ids: %w", err)
	}

	authors := authorSet(viewerID, following)

	posts, total, err := s.postStore.ListByAuthors(ctx, authors, req.Limit, req.Offset())
	if err != nil {
		s.logger.Error("Feed service: failed to list posts",
			"viewer_id", viewerID.String(),
			"authors", len(authors),
			"error", err.Error())
		return model.PostPage{}, fmt.Errorf("failed to list feed posts: %w", err)
	}

	s.logger.Debug("Feed service: feed composed",
		"viewer_id", viewerID.String(),
		"authors", len(authors),
		"total", total)

	return model.PostPage{
		Posts: posts,
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	}, nil
}

// authorSet returns the viewer followed by every distinct followed id.
func authorSet(viewerID uuid.UUID, following []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(following)+1)
	authors := make([]uuid.UUID, 0, len(following)+1)

	seen[viewerID] = struct{}{}
	authors = append(authors, viewerID)
	for _, id := range following {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		authors = append(authors, id)
	}
	return authors
}
